package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/boomboxfm/boombox/internal/formatter"
	"github.com/boomboxfm/boombox/internal/library"
	"github.com/boomboxfm/boombox/internal/playlist"
	"github.com/boomboxfm/boombox/internal/shared"
	"github.com/boomboxfm/boombox/internal/tasks"
)

// PlaylistCreate builds a playlist interactively by picking songs from the
// library by number, then writes <name>.txt to the playlist directory.
//
// An existing playlist of the same name is overwritten.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	store, err := r.playlistStore(cmd)
	if err != nil {
		return err
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		songs, err := lib.ListSongs()
		if err != nil {
			return err
		}

		if len(songs) == 0 {
			return r.writePlain("The library has no songs to add.\n")
		}

		builder := playlist.NewBuilder(songs)

		r.writePlainHeader(fmt.Sprintf("Building '%s'", name))
		r.writePlain("%s", formatter.FormatSongs(songs))
		r.writePlain("\nEnter a song number to add it, or 'done' to finish.\n")

		scanner := r.scanner()
		for {
			r.writePlain("> ")
			if !scanner.Scan() {
				break
			}

			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if strings.EqualFold(input, "done") {
				break
			}

			if err := builder.SelectRaw(input); err != nil {
				if errors.Is(err, shared.ErrInvalidArgument) {
					r.writePlain("Invalid choice: %s\n", input)
					continue
				}
				return err
			}

			last := builder.Entries()[builder.Len()-1]
			r.writePlain("Added '%s' (%d so far)\n", last.Title, builder.Len())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := store.Save(name, builder.Entries()); err != nil {
			return err
		}

		return r.writePlain("✓ Saved %d song(s) to %s\n", builder.Len(), store.Path(name))
	})
}

// PlaylistEdit adds or removes songs in an existing playlist.
//
// Changes stay in memory until the save option is chosen; quitting the loop
// any other way leaves the file untouched.
func (r *Runner) PlaylistEdit(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	store, err := r.playlistStore(cmd)
	if err != nil {
		return err
	}

	editor, err := playlist.NewEditor(store, name)
	if err != nil {
		return err
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		scanner := r.scanner()

		for {
			r.writePlainHeader(fmt.Sprintf("Editing '%s'", name))
			r.writePlain("%s", formatter.FormatEntries(editor.Entries()))
			r.writePlainln("1. Add a song\n2. Remove a song\n3. Save and exit")
			r.writePlain("> ")

			if !scanner.Scan() {
				break
			}

			switch strings.TrimSpace(scanner.Text()) {
			case "1":
				if err := r.editAdd(lib, editor, scanner); err != nil {
					return err
				}
			case "2":
				r.editRemove(editor, scanner)
			case "3":
				if err := editor.Save(); err != nil {
					return err
				}
				return r.writePlain("✓ Saved %s\n", store.Path(name))
			default:
				r.writePlain("Choose 1, 2, or 3.\n")
			}
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if editor.Dirty() {
			r.writePlain("Discarded unsaved changes to '%s'.\n", name)
		}
		return nil
	})
}

// editAdd prompts for a song title and appends it to the playlist.
//
// A title that exactly matches a library song takes that song's duration;
// any other title gets a prompted duration, so a playlist can hold songs
// the library does not know about.
func (r *Runner) editAdd(lib *library.Library, editor *playlist.Editor, scanner *bufio.Scanner) error {
	r.writePlain("Song title to add: ")
	if !scanner.Scan() {
		return nil
	}

	title := strings.TrimSpace(scanner.Text())
	if title == "" {
		return nil
	}

	matches, err := lib.SearchSongs(title)
	if err != nil {
		return err
	}

	for _, song := range matches {
		if song.Title == title {
			editor.Add(song)
			r.writePlain("Added '%s'.\n", title)
			return nil
		}
	}

	r.writePlain("Duration in seconds: ")
	if !scanner.Scan() {
		return nil
	}

	duration := strings.TrimSpace(scanner.Text())
	if seconds, err := strconv.Atoi(duration); err != nil || seconds <= 0 {
		r.writePlain("Invalid duration: %s\n", duration)
		return nil
	}

	editor.AddEntry(playlist.Entry{Title: title, Duration: duration})
	r.writePlain("Added '%s'.\n", title)
	return nil
}

// editRemove prompts for a title and removes the first matching entry.
func (r *Runner) editRemove(editor *playlist.Editor, scanner *bufio.Scanner) {
	r.writePlain("Song title to remove: ")
	if !scanner.Scan() {
		return
	}

	title := strings.TrimSpace(scanner.Text())
	if title == "" {
		return
	}

	if editor.Remove(title) {
		r.writePlain("Removed '%s'.\n", title)
	} else {
		r.writePlain("'%s' is not in the playlist.\n", title)
	}
}

// PlaylistArchive snapshots every playlist in the store into an export
// directory, streaming progress as playlists complete.
func (r *Runner) PlaylistArchive(ctx context.Context, cmd *cli.Command) error {
	store, err := r.playlistStore(cmd)
	if err != nil {
		return err
	}

	names, err := store.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		return r.writePlain("No playlists to archive.\n")
	}

	archiver := tasks.NewArchiver(store)
	prog := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range prog {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := archiver.Archive(ctx, prog, names, tasks.ArchiveOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
	})
	close(prog)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("✓ Archived %d/%d playlist(s) to %s\n", result.Archived, result.TotalPlaylists, result.OutputDirectory)
	if result.Failed > 0 {
		r.writePlain("%d playlist(s) failed; see %s\n", result.Failed, result.ManifestPath)
	}
	return nil
}

// PlaylistShow prints the contents of a playlist.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	store, err := r.playlistStore(cmd)
	if err != nil {
		return err
	}

	entries, err := store.Load(name)
	if err != nil {
		return err
	}

	r.writePlainHeader(name)
	return r.writePlain("%s", formatter.FormatEntries(entries))
}

// PlaylistList prints the names of all playlists in the playlist directory.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.playlistStore(cmd)
	if err != nil {
		return err
	}

	names, err := store.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		return r.writePlain("No playlists in %s.\n", store.Dir())
	}

	r.writePlainHeader("Playlists")
	for i, name := range names {
		r.writePlain("%d. %s\n", i+1, name)
	}
	return nil
}

// PlaylistDelete removes a playlist file.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	store, err := r.playlistStore(cmd)
	if err != nil {
		return err
	}

	deleted, err := store.Delete(name)
	if err != nil {
		return err
	}

	if !deleted {
		return r.writePlain("No playlist named %q.\n", name)
	}

	return r.writePlain("✓ Deleted %s\n", store.Path(name))
}
