package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/boomboxfm/boombox/internal/formatter"
	"github.com/boomboxfm/boombox/internal/library"
)

// FavoriteAdd marks a song as liked by a listener.
func (r *Runner) FavoriteAdd(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	title := cmd.String("title")

	return r.withLibrary(cmd, func(lib *library.Library) error {
		if _, err := lib.FavoriteSong(email, title); err != nil {
			return err
		}

		return r.writePlain("✓ %s likes '%s'\n", email, title)
	})
}

// FavoriteList prints a listener's liked songs.
func (r *Runner) FavoriteList(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")

	return r.withLibrary(cmd, func(lib *library.Library) error {
		favorites, err := lib.ListFavorites(email)
		if err != nil {
			return err
		}

		r.writePlainHeader("Favorites")
		return r.writePlain("%s", formatter.FormatFavorites(favorites))
	})
}
