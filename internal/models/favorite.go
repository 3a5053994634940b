package models

import (
	"fmt"
	"time"
)

// Favorite represents one user liking one song. The user↔song relation is
// many-to-many, materialized as rows.
type Favorite struct {
	entity
	userID  string
	songID  string
	likedAt time.Time
}

var _ Model = (*Favorite)(nil)

// NewFavorite creates a new [Favorite] linking the given user and song.
func NewFavorite(sequence int, userID, songID string, likedAt time.Time) *Favorite {
	return &Favorite{
		entity:  newEntity(sequence),
		userID:  userID,
		songID:  songID,
		likedAt: likedAt,
	}
}

// UserID returns the ID of the user who liked the song
func (f *Favorite) UserID() string { return f.userID }

// SongID returns the ID of the liked song
func (f *Favorite) SongID() string { return f.songID }

// LikedAt returns when the song was liked
func (f *Favorite) LikedAt() time.Time { return f.likedAt }

// Validate checks if the favorite's data is valid and returns an error if not
func (f *Favorite) Validate() error {
	if f.userID == "" {
		return fmt.Errorf("favorite must reference a user")
	}
	if f.songID == "" {
		return fmt.Errorf("favorite must reference a song")
	}
	return nil
}
