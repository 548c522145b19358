package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"channelmagic/internal/session"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage app preferences (workflow mode, locale, session)",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current preferences",
	Run: func(cmd *cobra.Command, args []string) {
		s := prefs().State()
		mode := string(s.Mode)
		if mode == "" {
			mode = "(not chosen)"
		}
		fmt.Printf("Mode:    %s\n", mode)
		fmt.Printf("Locale:  %s\n", s.Locale)
		fmt.Printf("Session: %s\n", s.SessionID)
	},
}

var prefsModeCmd = &cobra.Command{
	Use:   "mode <auto|diy>",
	Short: "Choose the workflow mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := session.Mode(args[0])
		if mode != session.ModeAuto && mode != session.ModeDIY {
			return fmt.Errorf("invalid mode %q (auto, diy)", args[0])
		}
		prefs().SetMode(mode)
		fmt.Printf("Mode: %s\n", mode)
		return nil
	},
}

var prefsLocaleCmd = &cobra.Command{
	Use:   "locale <de|en>",
	Short: "Set the content locale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locale := args[0]
		if locale != "de" && locale != "en" {
			return fmt.Errorf("invalid locale %q (de, en)", args[0])
		}
		prefs().SetLocale(locale)
		fmt.Printf("Locale: %s\n", locale)
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore defaults and start a new session",
	Run: func(cmd *cobra.Command, args []string) {
		p := prefs()
		p.Reset()
		fmt.Printf("Preferences reset. Session: %s\n", p.State().SessionID)
	},
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd, prefsModeCmd, prefsLocaleCmd, prefsResetCmd)
	rootCmd.AddCommand(prefsCmd)
}
