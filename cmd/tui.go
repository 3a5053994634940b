package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/boomboxfm/boombox/internal/library"
	"github.com/boomboxfm/boombox/internal/shared"
	"github.com/boomboxfm/boombox/internal/ui"
)

// TUI launches the interactive terminal UI for building playlists.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/boombox-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	store, err := r.playlistStore(cmd)
	if err != nil {
		return err
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		model := ui.NewModel(lib, store)
		p := tea.NewProgram(model)

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}

		return nil
	})
}
