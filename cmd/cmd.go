// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configFlag is shared by every command that touches the database or
// the playlist directory.
func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}

// songCommand handles song catalog operations
func songCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "song",
		Usage: "Manage songs in the library",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a song, creating its artist on first use",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "artist",
						Aliases:  []string{"a"},
						Usage:    "Artist name",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "duration",
						Aliases:  []string{"d"},
						Usage:    "Duration in seconds",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "year",
						Usage: "Release year",
					},
				},
				Action: r.SongAdd,
			},
			{
				Name:  "list",
				Usage: "List all songs with their artists",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.StringFlag{
						Name:  "export",
						Usage: "Export format (csv or markdown)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Base path for exported files",
					},
				},
				Action: r.SongList,
			},
			{
				Name:  "search",
				Usage: "Search songs by title keyword",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "keyword"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SongSearch,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete the first song matching a title",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.SongDelete,
			},
		},
	}
}

// artistCommand handles artist operations
func artistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artist",
		Usage: "Manage artists in the library",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all artists",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ArtistList,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete an artist and all of their songs",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.ArtistDelete,
			},
		},
	}
}

// userCommand handles listener registration
func userCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage registered listeners",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Register a listener",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "dob",
						Usage: "Date of birth (YYYY-MM-DD)",
					},
				},
				Action: r.UserAdd,
			},
			{
				Name:   "list",
				Usage:  "List registered listeners",
				Flags:  []cli.Flag{configFlag()},
				Action: r.UserList,
			},
		},
	}
}

// favoriteCommand handles liked songs
func favoriteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorite",
		Aliases: []string{"fav"},
		Usage:   "Manage liked songs",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Mark a song as liked by a listener",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Listener email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Song title",
						Required: true,
					},
				},
				Action: r.FavoriteAdd,
			},
			{
				Name:  "list",
				Usage: "List a listener's liked songs",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Listener email",
						Required: true,
					},
				},
				Action: r.FavoriteList,
			},
		},
	}
}

// playlistCommand handles playlist file operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Create and edit playlist files",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Build a playlist by picking songs from the library",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "edit",
				Usage: "Add or remove songs in an existing playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.PlaylistEdit,
			},
			{
				Name:  "show",
				Usage: "Print a playlist's songs",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.PlaylistShow,
			},
			{
				Name:   "list",
				Usage:  "List playlists in the playlist directory",
				Flags:  []cli.Flag{configFlag()},
				Action: r.PlaylistList,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a playlist file",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "archive",
				Usage: "Snapshot all playlists into an export directory",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Archive format (txt, csv, markdown, json)",
						Value:   "txt",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent workers",
						Value: 4,
					},
				},
				Action: r.PlaylistArchive,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist building.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for building playlists",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
