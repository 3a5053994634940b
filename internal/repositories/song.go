package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/shared"
)

// SongRepository implements [models.Repository] for [models.Song] persistence.
//
// Songs reference exactly one artist. Listings and search results carry the
// resolved artist name via a join, in insertion order.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new [SongRepository] with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create inserts a new song into the database with generated ID and sequence
func (r *SongRepository) Create(song *models.Song) error {
	sequence, err := NextSequence(r.db, "songs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	song.SetID(id)
	song.SetSequence(sequence)

	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO songs (id, sequence, artist_id, song_title, duration, creation_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		song.ArtistID(),
		song.Title(),
		song.Duration(),
		nullYear(song.CreationDate()),
		song.CreatedAt(),
		song.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}

	return nil
}

// Get retrieves a song by ID, excluding soft-deleted songs
func (r *SongRepository) Get(id string) (*models.Song, error) {
	query := `
		SELECT id, sequence, artist_id, song_title, duration, creation_date, created_at, updated_at, deleted_at
		FROM songs
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByTitle retrieves the first song whose title exactly matches, in insertion order
func (r *SongRepository) GetByTitle(title string) (*models.Song, error) {
	query := `
		SELECT id, sequence, artist_id, song_title, duration, creation_date, created_at, updated_at, deleted_at
		FROM songs
		WHERE song_title = ? AND deleted_at IS NULL
		ORDER BY sequence ASC
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRow(query, title))
}

// Update modifies an existing song in the database
func (r *SongRepository) Update(song *models.Song) error {
	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	song.SetUpdatedAt(now)

	query := `
		UPDATE songs
		SET song_title = ?, duration = ?, creation_date = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, song.Title(), song.Duration(), nullYear(song.CreationDate()), now, song.ID())
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, song.ID())
	}

	return nil
}

// Delete soft-deletes a song by ID. The owning artist is never touched.
func (r *SongRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE songs
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
	}

	return nil
}

// DeleteByTitle soft-deletes the first song whose title exactly matches.
//
// Returns false, with no error, when no song matches. Only one row goes even
// when duplicate titles exist.
func (r *SongRepository) DeleteByTitle(title string) (bool, error) {
	song, err := r.GetByTitle(title)
	if errors.Is(err, shared.ErrSongNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := r.Delete(song.ID()); err != nil {
		return false, err
	}

	return true, nil
}

// List retrieves all songs matching the given criteria in insertion order, excluding soft-deleted songs
func (r *SongRepository) List(criteria map[string]any) ([]*models.Song, error) {
	query := `
		SELECT id, sequence, artist_id, song_title, duration, creation_date, created_at, updated_at, deleted_at
		FROM songs
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if artistID, ok := criteria["artist_id"].(string); ok && artistID != "" {
		query += " AND artist_id = ?"
		args = append(args, artistID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		song, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// ListInfo retrieves all songs joined with their artist names, in insertion order.
func (r *SongRepository) ListInfo() ([]models.SongInfo, error) {
	query := `
		SELECT s.id, s.song_title, a.artist_name, s.duration, s.creation_date
		FROM songs s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.deleted_at IS NULL
		ORDER BY s.sequence ASC
	`

	return r.queryInfo(query)
}

// Search retrieves songs whose title contains the keyword, case-insensitively,
// joined with their artist names. An empty result is not an error.
func (r *SongRepository) Search(keyword string) ([]models.SongInfo, error) {
	query := `
		SELECT s.id, s.song_title, a.artist_name, s.duration, s.creation_date
		FROM songs s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.deleted_at IS NULL
		  AND LOWER(s.song_title) LIKE '%' || LOWER(?) || '%'
		ORDER BY s.sequence ASC
	`

	return r.queryInfo(query, keyword)
}

// queryInfo runs a join query producing [models.SongInfo] rows.
func (r *SongRepository) queryInfo(query string, args ...any) ([]models.SongInfo, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	infos := []models.SongInfo{}
	for rows.Next() {
		var (
			info models.SongInfo
			year sql.NullInt64
		)

		if err := rows.Scan(&info.ID, &info.Title, &info.Artist, &info.Duration, &year); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}

		info.Year = yearPtr(year)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return infos, nil
}

// scanOne scans a single [sql.Row] into a [models.Song]
func (r *SongRepository) scanOne(row *sql.Row) (*models.Song, error) {
	var (
		id           string
		sequence     int
		artistID     string
		title        string
		duration     int
		creationDate sql.NullInt64
		createdAt    time.Time
		updatedAt    time.Time
		deletedAt    sql.NullTime
	)

	err := row.Scan(&id, &sequence, &artistID, &title, &duration, &creationDate, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrSongNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan song: %w", err)
	}

	return restoreSong(id, sequence, artistID, title, duration, creationDate, createdAt, updatedAt, deletedAt), nil
}

// scanRow scans a row from [sql.Rows] into a [models.Song]
func (r *SongRepository) scanRow(rows *sql.Rows) (*models.Song, error) {
	var (
		id           string
		sequence     int
		artistID     string
		title        string
		duration     int
		creationDate sql.NullInt64
		createdAt    time.Time
		updatedAt    time.Time
		deletedAt    sql.NullTime
	)

	err := rows.Scan(&id, &sequence, &artistID, &title, &duration, &creationDate, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan song: %w", err)
	}

	return restoreSong(id, sequence, artistID, title, duration, creationDate, createdAt, updatedAt, deletedAt), nil
}

// restoreSong rebuilds a [models.Song] from scanned column values.
func restoreSong(id string, sequence int, artistID, title string, duration int, creationDate sql.NullInt64, createdAt, updatedAt time.Time, deletedAt sql.NullTime) *models.Song {
	song := models.NewSong(sequence, title, duration, yearPtr(creationDate), artistID)
	song.SetID(id)
	song.SetCreatedAt(createdAt)
	song.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		song.SetDeletedAt(&deletedAt.Time)
	}
	return song
}
