package main

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/vango-dev/aether/app/providers/text"
	"github.com/vango-dev/aether/internal/chrome"
	"github.com/vango-dev/aether/internal/stories"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		rawArgs []string
		page    bool
	)

	cmd := &cobra.Command{
		Use:   "render <story-id>",
		Short: "Render a story as HTML to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			logger := cliLogger(a.cfg.SlogLevel())

			overrides, err := parseArgFlags(rawArgs)
			if err != nil {
				return err
			}

			e, err := a.registry.Get(args[0])
			if err != nil {
				return err
			}

			preview, resolved, err := e.Component(overrides)
			if err != nil {
				return err
			}
			logger.Debug("rendering story", "id", e.ID, "args", resolved)

			var out templ.Component = preview
			if page {
				out = chrome.Canvas(e, preview)
			}

			ctx := text.Provide(cmd.Context(), a.textDefaults)
			if err := out.Render(ctx, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("render %s: %w", e.ID, err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "Story arg override as name=value (repeatable)")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the story in a full HTML page")
	return cmd
}

func parseArgFlags(raw []string) (stories.Args, error) {
	args := stories.Args{}
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --arg %q, expected name=value", kv)
		}
		args[name] = value
	}
	return args, nil
}
