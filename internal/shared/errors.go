package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidDuration = fmt.Errorf("invalid duration")
	ErrInvalidYear     = fmt.Errorf("invalid year")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// Lookup errors
	ErrSongNotFound     = fmt.Errorf("song not found")
	ErrArtistNotFound   = fmt.Errorf("artist not found")
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")

	// Playlist file errors
	ErrPlaylistIO = fmt.Errorf("playlist file operation failed")
)
