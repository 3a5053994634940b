package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/boomboxfm/boombox/internal/formatter"
	"github.com/boomboxfm/boombox/internal/library"
	"github.com/boomboxfm/boombox/internal/shared"
)

// ArtistList prints every artist in the library.
func (r *Runner) ArtistList(ctx context.Context, cmd *cli.Command) error {
	return r.withLibrary(cmd, func(lib *library.Library) error {
		artists, err := lib.ListArtists()
		if err != nil {
			return err
		}

		r.writePlainHeader("Artists")
		return r.writePlain("%s", formatter.FormatArtists(artists))
	})
}

// ArtistDelete removes the named artist together with all of their songs.
func (r *Runner) ArtistDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: artist name", shared.ErrMissingArgument)
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		if err := lib.DeleteArtist(name); err != nil {
			return err
		}

		return r.writePlain("✓ Deleted %s and their songs\n", name)
	})
}
