package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/boomboxfm/boombox/internal/formatter"
	"github.com/boomboxfm/boombox/internal/library"
	"github.com/boomboxfm/boombox/internal/shared"
)

// SongAdd stores a new song, creating its artist when the name is unseen.
func (r *Runner) SongAdd(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: song title", shared.ErrMissingArgument)
	}

	artistName := cmd.String("artist")
	duration := cmd.Int("duration")

	var year *int
	if cmd.IsSet("year") {
		y := cmd.Int("year")
		year = &y
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		song, err := lib.AddSong(title, artistName, duration, year)
		if err != nil {
			return err
		}

		r.writePlain("✓ Added '%s' by %s [%s]\n", song.Title(), artistName, formatter.FormatDuration(song.Duration()))
		return nil
	})
}

// SongList prints every song, optionally as JSON or exported to CSV/Markdown.
func (r *Runner) SongList(ctx context.Context, cmd *cli.Command) error {
	return r.withLibrary(cmd, func(lib *library.Library) error {
		songs, err := lib.ListSongs()
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			return r.writeJSON(songs, true)
		}

		switch cmd.String("export") {
		case "csv":
			files, err := formatter.WriteCSVExport(songs, cmd.String("output"))
			if err != nil {
				return err
			}
			for _, file := range files {
				r.writePlain("✓ Wrote %s\n", file)
			}
			return nil
		case "markdown", "md":
			file, err := formatter.WriteMarkdownExport(songs, "Music Library", cmd.String("output"))
			if err != nil {
				return err
			}
			r.writePlain("✓ Wrote %s\n", file)
			return nil
		case "":
		default:
			return fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, cmd.String("export"))
		}

		r.writePlainHeader("Songs")
		return r.writePlain("%s", formatter.FormatSongs(songs))
	})
}

// SongSearch prints songs whose title contains the keyword.
func (r *Runner) SongSearch(ctx context.Context, cmd *cli.Command) error {
	keyword := cmd.StringArg("keyword")
	if keyword == "" {
		return fmt.Errorf("%w: search keyword", shared.ErrMissingArgument)
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		songs, err := lib.SearchSongs(keyword)
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			return r.writeJSON(songs, true)
		}

		if len(songs) == 0 {
			return r.writePlain("No songs matching %q.\n", keyword)
		}

		return r.writePlain("%s", formatter.FormatSongs(songs))
	})
}

// SongDelete removes the first song whose title exactly matches.
func (r *Runner) SongDelete(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: song title", shared.ErrMissingArgument)
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		deleted, err := lib.DeleteSongByTitle(title)
		if err != nil {
			return err
		}

		if !deleted {
			return r.writePlain("No song titled %q.\n", title)
		}

		return r.writePlain("✓ Deleted '%s'\n", title)
	})
}
