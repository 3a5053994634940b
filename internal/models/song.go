package models

import (
	"fmt"
	"strings"
)

// Song represents a song owned by exactly one artist. Duration is integer
// seconds; free-text durations are rejected at the input boundary.
type Song struct {
	entity
	title        string
	duration     int
	creationDate *int
	artistID     string
}

var _ Model = (*Song)(nil)

// NewSong creates a new [Song] with the given sequence, title, duration in
// seconds, optional creation year and owning artist ID.
func NewSong(sequence int, title string, duration int, creationDate *int, artistID string) *Song {
	return &Song{
		entity:       newEntity(sequence),
		title:        title,
		duration:     duration,
		creationDate: creationDate,
		artistID:     artistID,
	}
}

// Title returns the song title
func (s *Song) Title() string { return s.title }

// Duration returns the song duration in seconds
func (s *Song) Duration() int { return s.duration }

// CreationDate returns the song's creation year, or nil if unknown
func (s *Song) CreationDate() *int { return s.creationDate }

// ArtistID returns the ID of the owning artist
func (s *Song) ArtistID() string { return s.artistID }

func (s *Song) SetTitle(title string)     { s.title = title }
func (s *Song) SetDuration(duration int)  { s.duration = duration }
func (s *Song) SetCreationDate(year *int) { s.creationDate = year }

// Validate checks if the song's data is valid and returns an error if not
func (s *Song) Validate() error {
	if strings.TrimSpace(s.title) == "" {
		return fmt.Errorf("song title is required")
	}
	if s.duration <= 0 {
		return fmt.Errorf("song duration must be a positive number of seconds, got %d", s.duration)
	}
	if s.artistID == "" {
		return fmt.Errorf("song must reference an artist")
	}
	return nil
}
