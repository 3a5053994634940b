// package tasks implements long-running operations over the playlist store.
//
// The core abstraction is [Archiver], which snapshots playlists into export
// directories. Operations emit progress updates via channels for non-blocking
// status reporting to CLI/UI layers.
package tasks

import (
	"github.com/boomboxfm/boombox/internal/playlist"
)

// PlaylistArchiveResult represents the outcome of archiving one playlist.
type PlaylistArchiveResult struct {
	Name    string   `json:"name"`              // Playlist name
	Success bool     `json:"success"`           // Whether the archive succeeded
	Files   []string `json:"files"`             // Files written for this playlist
	Entries int      `json:"entries"`           // Number of songs archived
	Error   error    `json:"-"`                 // Failure cause, nil on success
	Message string   `json:"message,omitempty"` // Error text for the manifest
}

// ArchiveResult contains all data from an archive operation.
type ArchiveResult struct {
	TotalPlaylists  int                     `json:"total_playlists"`
	Archived        int                     `json:"archived"`
	Failed          int                     `json:"failed"`
	OutputDirectory string                  `json:"output_directory"`
	Format          string                  `json:"format"`
	ManifestPath    string                  `json:"manifest_path,omitempty"`
	Results         []PlaylistArchiveResult `json:"results"`
}

// archiveJob carries one loaded playlist to a worker.
type archiveJob struct {
	name    string
	entries []playlist.Entry
}

// Archiver snapshots playlists from a [playlist.Store] into export directories.
type Archiver struct {
	store *playlist.Store
}

// NewArchiver creates an [Archiver] over the given store.
func NewArchiver(store *playlist.Store) *Archiver {
	return &Archiver{store: store}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (a *Archiver) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
