package models

import (
	"fmt"
	"strings"
)

// Artist represents a recording artist. The display name is the natural key:
// the resolver guarantees at most one live artist row per distinct name.
type Artist struct {
	entity
	name         string
	creationDate *int
}

var _ Model = (*Artist)(nil)

// NewArtist creates a new [Artist] with the given sequence, display name and optional creation year.
func NewArtist(sequence int, name string, creationDate *int) *Artist {
	return &Artist{
		entity:       newEntity(sequence),
		name:         name,
		creationDate: creationDate,
	}
}

// Name returns the artist's display name
func (a *Artist) Name() string { return a.name }

// CreationDate returns the artist's creation year, or nil if unknown
func (a *Artist) CreationDate() *int { return a.creationDate }

// Validate checks if the artist's data is valid and returns an error if not
func (a *Artist) Validate() error {
	if strings.TrimSpace(a.name) == "" {
		return fmt.Errorf("artist name is required")
	}
	return nil
}
