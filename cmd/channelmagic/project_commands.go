package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"channelmagic/internal/project"
	"channelmagic/models"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage the current content project",
}

var flagProjectPlatforms []string

var projectNewCmd = &cobra.Command{
	Use:   "new <topic>",
	Short: "Start a fresh project in draft status",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platforms := make([]models.Platform, 0, len(flagProjectPlatforms))
		for _, name := range flagProjectPlatforms {
			platform := models.Platform(name)
			if !models.ValidPlatform(platform) {
				return fmt.Errorf("invalid platform %q", name)
			}
			platforms = append(platforms, platform)
		}
		if len(platforms) == 0 {
			// Fall back to the wizard's selection.
			platforms = wizardMachine().State().Platforms
		}
		if len(platforms) == 0 {
			return fmt.Errorf("no platforms selected; pass --platforms or finish wizard step 3")
		}

		m := projectMachine()
		p := m.CreateProject(strings.Join(args, " "), platforms)
		fmt.Printf("Created project %s (%d platforms)\n", p.ID, len(p.PlatformContent))
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := projectMachine()
		p := m.Current()
		if p == nil {
			return fmt.Errorf("no current project")
		}

		fmt.Printf("Project %s\n", p.ID)
		fmt.Printf("Topic:   %s\n", p.Topic)
		fmt.Printf("Status:  %s\n", p.Status)
		if p.Script != nil {
			fmt.Printf("Script:  %d characters\n", len(p.Script.FullText))
		}
		for _, row := range p.PlatformContent {
			fmt.Printf("  %-10s title=%q hashtags=%d published=%v\n",
				row.Platform, row.Title, len(row.Hashtags), row.Published)
		}
		if id := m.VideoID(); id != "" {
			fmt.Printf("Saved as video %s\n", id)
		}
		checklist := m.State().DIYChecklist
		fmt.Printf("DIY checklist: script=%v voiceover=%v video=%v thumbnail=%v\n",
			checklist.ScriptDone, checklist.VoiceoverDone, checklist.VideoDone, checklist.ThumbnailDone)
		return nil
	},
}

var projectStatusCmd = &cobra.Command{
	Use:   "status <draft|script|video|thumbnail|review|ready|published>",
	Short: "Overwrite the project status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := projectMachine()
		if m.Current() == nil {
			return fmt.Errorf("no current project")
		}
		m.SetStatus(models.ProjectStatus(args[0]))
		fmt.Printf("Status: %s\n", m.Current().Status)
		return nil
	},
}

var projectSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the project summary to the ChannelMagic API",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := projectMachine()
		if m.Current() == nil {
			return fmt.Errorf("no current project")
		}
		if id := m.VideoID(); id != "" {
			result := m.UpdateInDatabase(context.Background(), map[string]interface{}{
				"status": string(m.Current().Status),
			})
			if !result.Ok() {
				return fmt.Errorf("project not updated: %w", result.Err)
			}
			fmt.Printf("Project %s updated\n", id)
			return nil
		}

		result := m.SaveToDatabase(context.Background())
		if !result.Ok() {
			return fmt.Errorf("project not saved: %w", result.Err)
		}
		fmt.Printf("Project saved with id %s\n", result.ID)
		return nil
	},
}

var projectCheckCmd = &cobra.Command{
	Use:   "check <scriptDone|voiceoverDone|videoDone|thumbnailDone> <true|false>",
	Short: "Set a DIY checklist flag",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		done, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid boolean %q", args[1])
		}
		projectMachine().SetDIYChecklistItem(project.ChecklistItem(args[0]), done)
		return nil
	},
}

var projectClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the current project and checklist",
	Run: func(cmd *cobra.Command, args []string) {
		projectMachine().ClearCurrentProject()
		fmt.Println("Project cleared.")
	},
}

func init() {
	projectNewCmd.Flags().StringSliceVarP(&flagProjectPlatforms, "platforms", "p", nil,
		"Target platforms (defaults to the wizard selection)")

	projectCmd.AddCommand(projectNewCmd, projectShowCmd, projectStatusCmd,
		projectSaveCmd, projectCheckCmd, projectClearCmd)
	rootCmd.AddCommand(projectCmd)
}
