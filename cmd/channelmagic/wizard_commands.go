package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"channelmagic/internal/wizard"
	"channelmagic/models"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Work through the channel setup wizard",
}

var wizardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current wizard state and step gates",
	Run: func(cmd *cobra.Command, args []string) {
		m := wizardMachine()
		s := m.State()

		fmt.Printf("Step %d of 6 (%d%%)\n", s.CurrentStep, m.Progress())
		fmt.Printf("Channel:   %q", s.Channel.Name)
		if s.Channel.Niche != nil {
			fmt.Printf("  niche=%s", *s.Channel.Niche)
		}
		fmt.Println()
		fmt.Printf("Topics:    %s\n", strings.Join(s.Strategy.Topics, ", "))
		if s.Strategy.Style != nil {
			fmt.Printf("Style:     %s\n", *s.Strategy.Style)
		}
		if s.Strategy.Frequency != nil {
			fmt.Printf("Frequency: %s\n", *s.Strategy.Frequency)
		}
		platforms := make([]string, 0, len(s.Platforms))
		for _, p := range s.Platforms {
			platforms = append(platforms, string(p))
		}
		fmt.Printf("Platforms: %s\n", strings.Join(platforms, ", "))
		for step := 1; step <= 3; step++ {
			fmt.Printf("Step %d complete: %v\n", step, m.CanProceed(step))
		}
		if s.ChannelID != "" {
			fmt.Printf("Saved as channel %s\n", s.ChannelID)
		}
	},
}

var (
	flagChannelName string
	flagNiche       string
	flagAudience    string
	flagCustomNiche string
	flagStyle       string
	flagFrequency   string
)

var wizardChannelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Set channel name, niche and target audience (step 1)",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := wizardMachine()
		update := wizard.ChannelUpdate{}
		if cmd.Flags().Changed("name") {
			update.Name = &flagChannelName
		}
		if cmd.Flags().Changed("audience") {
			update.TargetAudience = &flagAudience
		}
		if cmd.Flags().Changed("custom-niche") {
			update.CustomNiche = &flagCustomNiche
		}
		if cmd.Flags().Changed("niche") {
			niche := models.Niche(flagNiche)
			update.Niche = &niche
		}
		m.SetChannel(update)
		fmt.Printf("Channel updated. Step 1 complete: %v\n", m.CanProceed(1))
		return nil
	},
}

var wizardTopicCmd = &cobra.Command{
	Use:   "topic <text>",
	Short: "Add a content topic (step 2)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := wizardMachine()
		m.AddTopic(strings.Join(args, " "))
		fmt.Printf("Topics: %d\n", len(m.State().Strategy.Topics))
		return nil
	},
}

var wizardStrategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Set content style and frequency (step 2)",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := wizardMachine()
		data := models.ContentStrategy{}
		if flagStyle != "" {
			style := models.ContentStyle(flagStyle)
			if !models.ValidContentStyle(style) {
				return fmt.Errorf("invalid style %q (educational, entertaining, inspirational)", flagStyle)
			}
			data.Style = &style
		}
		if flagFrequency != "" {
			frequency := models.Frequency(flagFrequency)
			data.Frequency = &frequency
		}
		m.SetStrategy(data)
		fmt.Printf("Strategy updated. Step 2 complete: %v\n", m.CanProceed(2))
		return nil
	},
}

var wizardPlatformCmd = &cobra.Command{
	Use:   "platform <youtube|tiktok|instagram>",
	Short: "Toggle a target platform (step 3)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := models.Platform(args[0])
		if !models.ValidPlatform(platform) {
			return fmt.Errorf("invalid platform %q", args[0])
		}
		m := wizardMachine()
		m.TogglePlatform(platform)
		platforms := make([]string, 0)
		for _, p := range m.State().Platforms {
			platforms = append(platforms, string(p))
		}
		fmt.Printf("Platforms: %s\n", strings.Join(platforms, ", "))
		return nil
	},
}

var wizardSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the channel to the ChannelMagic API",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := wizardMachine()
		result := m.SaveChannel(context.Background())
		if !result.Ok() {
			return fmt.Errorf("channel not saved: %w", result.Err)
		}
		fmt.Printf("Channel saved with id %s\n", result.ID)
		return nil
	},
}

var wizardResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all wizard answers",
	Run: func(cmd *cobra.Command, args []string) {
		wizardMachine().Reset()
		fmt.Println("Wizard reset.")
	},
}

func init() {
	wizardChannelCmd.Flags().StringVar(&flagChannelName, "name", "", "Channel name")
	wizardChannelCmd.Flags().StringVar(&flagNiche, "niche", "", "Channel niche")
	wizardChannelCmd.Flags().StringVar(&flagAudience, "audience", "", "Target audience")
	wizardChannelCmd.Flags().StringVar(&flagCustomNiche, "custom-niche", "", "Custom niche when niche is 'other'")
	wizardStrategyCmd.Flags().StringVar(&flagStyle, "style", "", "Content style")
	wizardStrategyCmd.Flags().StringVar(&flagFrequency, "frequency", "", "Publishing frequency")

	wizardCmd.AddCommand(wizardShowCmd, wizardChannelCmd, wizardTopicCmd,
		wizardStrategyCmd, wizardPlatformCmd, wizardSaveCmd, wizardResetCmd)
	rootCmd.AddCommand(wizardCmd)
}
