package playlist

import (
	"strconv"

	"github.com/boomboxfm/boombox/internal/models"
)

// Editor applies add and remove operations to a loaded playlist, in memory,
// until the caller saves.
//
// Nothing touches the file until [Editor.Save]: abandoning an edit session
// leaves the playlist as it was.
type Editor struct {
	store   *Store
	name    string
	entries []Entry
	dirty   bool
}

// NewEditor loads the named playlist from the store for editing.
func NewEditor(store *Store, name string) (*Editor, error) {
	entries, err := store.Load(name)
	if err != nil {
		return nil, err
	}

	return &Editor{store: store, name: name, entries: entries}, nil
}

// Name returns the playlist name under edit.
func (e *Editor) Name() string {
	return e.name
}

// Entries returns the playlist's current in-memory contents.
func (e *Editor) Entries() []Entry {
	return e.entries
}

// Dirty reports whether unsaved changes exist.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Add appends a library song to the playlist. Duplicates are allowed.
func (e *Editor) Add(song models.SongInfo) {
	e.AddEntry(Entry{
		Title:    song.Title,
		Duration: strconv.Itoa(song.Duration),
	})
}

// AddEntry appends a raw entry to the playlist. The playlist file is not
// bound to the library, so entries for songs it has never seen are fine.
func (e *Editor) AddEntry(entry Entry) {
	e.entries = append(e.entries, entry)
	e.dirty = true
}

// Remove deletes the first entry whose title exactly matches.
//
// Returns false when no entry matches; later duplicates stay put either way.
func (e *Editor) Remove(title string) bool {
	for i, entry := range e.entries {
		if entry.Title == title {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			e.dirty = true
			return true
		}
	}

	return false
}

// Save writes the current contents back to the store.
func (e *Editor) Save() error {
	if err := e.store.Save(e.name, e.entries); err != nil {
		return err
	}

	e.dirty = false
	return nil
}
