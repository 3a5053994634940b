// package library exposes the music catalog as a single facade over the
// entity repositories.
//
// [Library] owns input validation at the boundary (durations, years, emails)
// so repositories can assume well-formed values, and it resolves artist names
// to rows so callers never handle artist IDs directly.
package library

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/repositories"
	"github.com/boomboxfm/boombox/internal/shared"
)

// Library coordinates song, artist, user, and favorite operations.
type Library struct {
	artists   *repositories.ArtistRepository
	songs     *repositories.SongRepository
	users     *repositories.UserRepository
	favorites *repositories.FavoriteRepository
	logger    *log.Logger
}

// New creates a [Library] over the given database connection.
func New(db *sql.DB, logger *log.Logger) *Library {
	return &Library{
		artists:   repositories.NewArtistRepository(db),
		songs:     repositories.NewSongRepository(db),
		users:     repositories.NewUserRepository(db),
		favorites: repositories.NewFavoriteRepository(db),
		logger:    logger,
	}
}

// AddSong stores a song under the named artist, creating the artist row when
// the name is unseen. The year applies to the song; an artist created here
// starts without one.
func (l *Library) AddSong(title, artistName string, duration int, year *int) (*models.Song, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: song title is required", shared.ErrInvalidInput)
	}
	if artistName == "" {
		return nil, fmt.Errorf("%w: artist name is required", shared.ErrInvalidInput)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %d", shared.ErrInvalidDuration, duration)
	}
	if year != nil && (*year < 0 || *year > time.Now().Year()+1) {
		return nil, fmt.Errorf("%w: %d", shared.ErrInvalidYear, *year)
	}

	artist, err := l.artists.Resolve(artistName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve artist: %w", err)
	}

	song := models.NewSong(0, title, duration, year, artist.ID())
	if err := l.songs.Create(song); err != nil {
		return nil, err
	}

	l.logger.Debug("added song", "title", title, "artist", artistName, "duration", duration)
	return song, nil
}

// SearchSongs returns songs whose title contains the keyword,
// case-insensitively. An empty result is not an error.
func (l *Library) SearchSongs(keyword string) ([]models.SongInfo, error) {
	return l.songs.Search(keyword)
}

// ListSongs returns every song with its artist name, in insertion order.
func (l *Library) ListSongs() ([]models.SongInfo, error) {
	return l.songs.ListInfo()
}

// ListArtists returns every artist in insertion order.
func (l *Library) ListArtists() ([]*models.Artist, error) {
	return l.artists.List(map[string]any{})
}

// DeleteSongByTitle removes the first song whose title exactly matches.
// Returns false, with no error, when no song matches.
func (l *Library) DeleteSongByTitle(title string) (bool, error) {
	deleted, err := l.songs.DeleteByTitle(title)
	if err != nil {
		return false, err
	}
	if deleted {
		l.logger.Debug("deleted song", "title", title)
	}
	return deleted, nil
}

// DeleteArtist removes the named artist together with all of its songs.
func (l *Library) DeleteArtist(name string) error {
	artist, err := l.artists.GetByName(name)
	if err != nil {
		return err
	}

	if err := l.artists.Delete(artist.ID()); err != nil {
		return err
	}

	l.logger.Debug("deleted artist", "name", name)
	return nil
}

// AddUser registers a listener with the given name, email, and optional
// date of birth.
func (l *Library) AddUser(name, email string, dateOfBirth *time.Time) (*models.User, error) {
	user := models.NewUser(0, name, email, dateOfBirth)
	if err := l.users.Create(user); err != nil {
		return nil, err
	}

	l.logger.Debug("added user", "name", name, "email", email)
	return user, nil
}

// ListUsers returns every registered user in insertion order.
func (l *Library) ListUsers() ([]*models.User, error) {
	return l.users.List(map[string]any{})
}

// FavoriteSong records that the user with the given email likes the first
// song whose title exactly matches.
func (l *Library) FavoriteSong(email, title string) (*models.Favorite, error) {
	user, err := l.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	song, err := l.songs.GetByTitle(title)
	if err != nil {
		return nil, err
	}

	favorite := models.NewFavorite(0, user.ID(), song.ID(), time.Now())
	if err := l.favorites.Create(favorite); err != nil {
		return nil, err
	}

	l.logger.Debug("favorited song", "email", email, "title", title)
	return favorite, nil
}

// ListFavorites returns the favorites of the user with the given email,
// joined with song and artist details, in the order they were liked.
func (l *Library) ListFavorites(email string) ([]models.FavoriteInfo, error) {
	user, err := l.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	return l.favorites.ListInfo(user.ID())
}
