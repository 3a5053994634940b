// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for building playlists from the library:
//  1. [SongListView] : Browse the song catalog and pick songs
//  2. [ReviewView] : Review the draft playlist before saving
//  3. [NameView] : Name the playlist
//  4. [ResultView] : Confirm where the file was written
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// The catalog loads asynchronously on Init; saving goes through [playlist.Store]
// so the TUI and the CLI create byte-identical files.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
