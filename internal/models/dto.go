package models

import "time"

// SongInfo is a song joined with its artist's display name, in library
// (insertion) order. Used for listings, search results and playlist creation.
type SongInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration int    `json:"duration"`
	Year     *int   `json:"year,omitempty"`
}

// FavoriteInfo is a favorite joined with user and song details.
type FavoriteInfo struct {
	User    string    `json:"user"`
	Title   string    `json:"title"`
	Artist  string    `json:"artist"`
	LikedAt time.Time `json:"liked_at"`
}
