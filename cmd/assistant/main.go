package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ai-writing-assistant/internal/bootstrap"
	"ai-writing-assistant/internal/config"
	"ai-writing-assistant/internal/host"

	"github.com/spf13/cobra"
)

var Version = "dev"

// errActionFailed is returned after the panel already printed a notice.
var errActionFailed = errors.New("assistant action failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errActionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "assistant",
		Short:         "Critical thinking assistant for a markdown draft",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("dev", false, "Use canned questions and highlights instead of a model")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(questionsCmd())
	rootCmd.AddCommand(highlightsCmd())
	rootCmd.AddCommand(metadataCmd())

	return rootCmd
}

func questionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions [file]",
		Short: "Ask questions about the end of a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPanel(cmd, args[0], (*host.AssistantPanel).ShowQuestions)
		},
	}
}

func highlightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highlights [file]",
		Short: "Mark claims and evidence in a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPanel(cmd, args[0], (*host.AssistantPanel).ShowHighlights)
		},
	}
}

func metadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Show or change per-document assistant settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [file]",
		Short: "Show the stored settings of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPanel(cmd, args[0], (*host.AssistantPanel).ShowMetadata)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle [file]",
		Short: "Turn the assistant on or off for a document (persists only with a postgres or redis backend)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPanel(cmd, args[0], (*host.AssistantPanel).ToggleAssistant)
		},
	})

	return cmd
}

func withPanel(cmd *cobra.Command, path string, action func(*host.AssistantPanel, context.Context) bool) error {
	dev, _ := cmd.Flags().GetBool("dev")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg := config.Load()
	if dev {
		cfg.App.Environment = config.ModeDevelopment
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	container, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to start assistant: %w", err)
	}
	defer container.Close()

	if cfg.Metadata.Backend == "" || cfg.Metadata.Backend == config.MetadataBackendMemory {
		container.Logger.Warn("CLI", "Metadata is kept in memory and is lost when the command exits", map[string]interface{}{
			"hint": "set METADATA_BACKEND=postgres or redis to keep settings between runs",
		})
	}

	if err := container.ActivityConsumer.Consume(ctx); err != nil {
		container.Logger.Warn("CLI", "Activity consumer not started", map[string]interface{}{"error": err.Error()})
	}

	panel := host.NewAssistantPanel(
		host.NewFileSource(path),
		container.Core,
		host.NewTerminalRenderer(cmd.OutOrStdout(), !noColor),
	)
	if !action(panel, ctx) {
		return errActionFailed
	}
	return nil
}
