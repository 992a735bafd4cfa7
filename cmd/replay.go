package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/strugee/profanity/internal/adapters/clock"
	windowsadapter "github.com/strugee/profanity/internal/adapters/render/windows"
	scripttoml "github.com/strugee/profanity/internal/adapters/script/toml"
	"github.com/strugee/profanity/internal/adapters/terminal"
	"github.com/strugee/profanity/internal/adapters/tui"
	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/ports"
)

type replayOptions struct {
	at          string
	focusedOnly bool
	asJSON      bool
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Apply a scripted session to headless windows and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(root)
			if err != nil {
				return err
			}
			return runReplay(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "time", "", "pin the clock to this RFC 3339 instant")
	cmd.Flags().BoolVar(&opts.focusedOnly, "focused", false, "print only the focused window")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print windows as JSON")

	return cmd
}

func runReplay(cmd *cobra.Command, a *app, path string, opts *replayOptions) error {
	var source ports.Clock = ports.SystemClock{}
	if opts.at != "" {
		at, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("parse --time: %w", err)
		}
		source = clock.Fixed{At: at}
	}

	script, err := scripttoml.Load(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}

	palette := terminal.MonochromePalette()
	formatter := clock.NewFormatter(source, a.cfg.UI.TimestampFormat)
	screen := terminal.NewScreen(terminal.WithPalette(palette))
	svc := application.NewService(screen,
		tui.NewStatusBar(palette, formatter),
		tui.NewTitleBar(palette, a.cfg.UI.Title),
		formatter,
		a.serviceOptions("replay")...,
	)
	if err := svc.Initialize(); err != nil {
		return fmt.Errorf("initialize windows: %w", err)
	}
	defer func() { _ = svc.Shutdown() }()

	a.logger.Info("replaying script", "path", path, "events", len(script.Commands))
	if err := svc.ApplyAll(script.Commands); err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}

	windows := svc.Snapshot()
	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(windows)
	}

	rendered, err := a.windowRenderer(windows, windowsadapter.RenderOptions{FocusedOnly: opts.focusedOnly})
	if err != nil {
		return fmt.Errorf("render windows: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
