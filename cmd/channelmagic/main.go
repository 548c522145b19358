// Command channelmagic drives the channel wizard and content-creation flow
// from the terminal, talking to the ChannelMagic API for persistence and to
// the AI providers for generation.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"channelmagic/internal/gateway"
	"channelmagic/internal/project"
	"channelmagic/internal/session"
	"channelmagic/internal/state"
	"channelmagic/internal/wizard"
)

var (
	apiURL   string
	apiToken string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "channelmagic",
	Short: "Configure a content channel and take projects from topic to export",
	Long: `ChannelMagic walks through a 6-step channel setup wizard, then a
content-creation pipeline (topic, script, video, thumbnail, review, export)
for short-form social video.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "ChannelMagic API base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Session access token (defaults to CHANNELMAGIC_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if apiToken == "" {
			apiToken = os.Getenv("CHANNELMAGIC_TOKEN")
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".channelmagic"
	}
	return filepath.Join(home, ".channelmagic")
}

func newGateway() *gateway.Client {
	return gateway.NewClient(apiURL, apiToken)
}

func wizardMachine() *wizard.Machine {
	store := state.NewFileStore(filepath.Join(stateDir(), "wizard.json"))
	return wizard.New(store, newGateway())
}

func projectMachine() *project.Machine {
	store := state.NewFileStore(filepath.Join(stateDir(), "project.json"))
	return project.New(store, newGateway())
}

func prefs() *session.Prefs {
	store := state.NewFileStore(filepath.Join(stateDir(), "prefs.json"))
	return session.New(store)
}
