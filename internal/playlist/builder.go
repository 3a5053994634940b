package playlist

import (
	"fmt"
	"strconv"

	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/shared"
)

// Builder accumulates playlist entries by picking songs from a catalog
// snapshot, one at a time, by 1-based position.
//
// The create flow numbers the library's songs and reads selections until the
// user is done; the builder holds that state so the prompting loop stays in
// the command layer.
type Builder struct {
	catalog []models.SongInfo
	entries []Entry
}

// NewBuilder creates a [Builder] over the given catalog snapshot.
func NewBuilder(catalog []models.SongInfo) *Builder {
	return &Builder{catalog: catalog, entries: []Entry{}}
}

// Catalog returns the snapshot the builder selects from.
func (b *Builder) Catalog() []models.SongInfo {
	return b.catalog
}

// Select appends the catalog song at the given 1-based position.
//
// The same position may be selected more than once; each selection appends
// another entry.
func (b *Builder) Select(position int) error {
	if position < 1 || position > len(b.catalog) {
		return fmt.Errorf("%w: position %d out of range 1-%d", shared.ErrInvalidArgument, position, len(b.catalog))
	}

	song := b.catalog[position-1]
	b.entries = append(b.entries, Entry{
		Title:    song.Title,
		Duration: strconv.Itoa(song.Duration),
	})

	return nil
}

// SelectRaw parses input as a 1-based position and selects it.
func (b *Builder) SelectRaw(input string) error {
	position, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", shared.ErrInvalidArgument, input)
	}

	return b.Select(position)
}

// Entries returns the selections made so far, in order.
func (b *Builder) Entries() []Entry {
	return b.entries
}

// Len returns the number of selections made so far.
func (b *Builder) Len() int {
	return len(b.entries)
}
