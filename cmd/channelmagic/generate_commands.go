package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"channelmagic/internal/hashtags"
	"channelmagic/internal/heygen"
	"channelmagic/internal/openrouter"
	"channelmagic/internal/prompts"
	"channelmagic/models"
)

var (
	flagPlatform   string
	flagLocale     string
	flagScriptText string
	flagDuration   string
	flagScriptFile string
	flagAvatarID   string
	flagVoiceID    string
)

var hashtagsCmd = &cobra.Command{
	Use:   "hashtags <topic>",
	Short: "Generate hashtags for a topic locally",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := models.Platform(flagPlatform)
		if !models.ValidPlatform(platform) {
			return fmt.Errorf("invalid platform %q", flagPlatform)
		}
		tags := hashtags.Generate(strings.Join(args, " "), platform, flagScriptText, flagLocale)
		for _, tag := range tags {
			fmt.Println("#" + tag)
		}
		return nil
	},
}

var scriptCmd = &cobra.Command{
	Use:   "script <topic>",
	Short: "Generate a video script via OpenRouter",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := os.Getenv("OPENROUTER_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is not set")
		}

		platform := models.Platform(flagPlatform)
		if !models.ValidPlatform(platform) {
			return fmt.Errorf("invalid platform %q", flagPlatform)
		}

		w := wizardMachine().State()
		params := prompts.ScriptParams{
			Topic:          strings.Join(args, " "),
			Style:          models.StyleEducational,
			Duration:       flagDuration,
			Platform:       platform,
			Locale:         flagLocale,
			TargetAudience: w.Channel.TargetAudience,
		}
		if w.Strategy.Style != nil {
			params.Style = *w.Strategy.Style
		}
		if w.Channel.Niche != nil {
			params.Niche = string(*w.Channel.Niche)
		}

		client := openrouter.NewClient(apiKey)
		script, err := client.GenerateScript(context.Background(), params)
		if err != nil {
			return err
		}
		fmt.Println(script)
		return nil
	},
}

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Generate an avatar video via HeyGen",
}

var videoCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a render job for the given script file",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := os.Getenv("HEYGEN_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("HEYGEN_API_KEY is not set")
		}
		if flagScriptFile == "" {
			return fmt.Errorf("--script-file is required")
		}
		script, err := os.ReadFile(flagScriptFile)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}

		client := heygen.NewClient(apiKey)
		videoID, err := client.CreateVideo(context.Background(), heygen.VideoParams{
			Script:   string(script),
			AvatarID: flagAvatarID,
			VoiceID:  flagVoiceID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Render job submitted: %s\n", videoID)
		return nil
	},
}

var videoWaitCmd = &cobra.Command{
	Use:   "wait <video-id>",
	Short: "Poll a render job until it completes or fails",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := os.Getenv("HEYGEN_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("HEYGEN_API_KEY is not set")
		}

		client := heygen.NewClient(apiKey)
		status, err := client.PollStatus(context.Background(), args[0], heygen.DefaultPollInterval)
		if err != nil {
			return err
		}
		if status.Status == heygen.StatusFailed {
			return fmt.Errorf("render failed: %s", status.Error)
		}
		fmt.Printf("Render complete: %s\n", status.VideoURL)
		return nil
	},
}

func init() {
	hashtagsCmd.Flags().StringVarP(&flagPlatform, "platform", "p", "youtube", "Target platform")
	hashtagsCmd.Flags().StringVar(&flagLocale, "locale", "en", "Locale (de or en)")
	hashtagsCmd.Flags().StringVar(&flagScriptText, "script", "", "Script excerpt to improve category detection")

	scriptCmd.Flags().StringVarP(&flagPlatform, "platform", "p", "youtube", "Target platform")
	scriptCmd.Flags().StringVar(&flagLocale, "locale", "en", "Locale (de or en)")
	scriptCmd.Flags().StringVar(&flagDuration, "duration", "short", "Video duration (short or long)")

	videoCreateCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Path to the script text")
	videoCreateCmd.Flags().StringVar(&flagAvatarID, "avatar", "", "HeyGen avatar id")
	videoCreateCmd.Flags().StringVar(&flagVoiceID, "voice", "", "HeyGen voice id")
	videoCmd.AddCommand(videoCreateCmd, videoWaitCmd)

	rootCmd.AddCommand(hashtagsCmd, scriptCmd, videoCmd)
}
