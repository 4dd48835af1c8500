package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/aether/app/providers/text"
	"github.com/vango-dev/aether/internal/config"
	"github.com/vango-dev/aether/internal/stories"
)

type rootFlags struct {
	previewFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "aether-docs",
		Short:         "Browse and render the aether component stories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.previewFile, "preview", "", "Preview YAML file (overrides PREVIEW_FILE)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))

	return cmd
}

// app is what every command needs: config, the story registry with the
// preview applied, and the text scope to render with.
type app struct {
	cfg          *config.Config
	registry     *stories.Registry
	textDefaults *text.Defaults
}

func loadApp(flags *rootFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.previewFile != "" {
		cfg.PreviewFile = flags.previewFile
	}

	registry, err := stories.Builtin()
	if err != nil {
		return nil, fmt.Errorf("register stories: %w", err)
	}

	var preview *stories.Preview
	if cfg.PreviewFile != "" {
		if preview, err = stories.LoadPreview(cfg.PreviewFile); err != nil {
			return nil, err
		}
		if err := preview.Apply(registry); err != nil {
			return nil, err
		}
	}

	// Environment settings win over the preview file.
	defaults := cfg.TextDefaults()
	if defaults == nil {
		defaults = preview.TextDefaults()
	}

	return &app{cfg: cfg, registry: registry, textDefaults: defaults}, nil
}

// cliLogger is the text logger used by the one-shot commands.
func cliLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
