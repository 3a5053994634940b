package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/shared"
)

// ArtistRepository implements [models.Repository] for [models.Artist] persistence.
//
// The artist name is the natural key: Resolve guarantees at most one live row
// per distinct name, and Delete removes the artist's songs with it.
type ArtistRepository struct {
	db *sql.DB
}

// NewArtistRepository creates a new [ArtistRepository] with the given database connection
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create inserts a new artist into the database with generated ID and sequence
func (r *ArtistRepository) Create(artist *models.Artist) error {
	sequence, err := NextSequence(r.db, "artists")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	artist.SetID(id)
	artist.SetSequence(sequence)

	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO artists (id, sequence, artist_name, creation_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, artist.Name(), nullYear(artist.CreationDate()), artist.CreatedAt(), artist.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert artist: %w", err)
	}

	return nil
}

// Get retrieves an artist by ID, excluding soft-deleted artists
func (r *ArtistRepository) Get(id string) (*models.Artist, error) {
	query := `
		SELECT id, sequence, artist_name, creation_date, created_at, updated_at, deleted_at
		FROM artists
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByName retrieves an artist by exact display name, excluding soft-deleted artists
func (r *ArtistRepository) GetByName(name string) (*models.Artist, error) {
	query := `
		SELECT id, sequence, artist_name, creation_date, created_at, updated_at, deleted_at
		FROM artists
		WHERE artist_name = ? AND deleted_at IS NULL
		ORDER BY sequence ASC
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRow(query, name))
}

// Resolve returns the existing artist with the given name, or creates one.
//
// The supplied creation year applies only when a new row is inserted; an
// existing artist keeps its original value.
func (r *ArtistRepository) Resolve(name string, creationDate *int) (*models.Artist, error) {
	artist, err := r.GetByName(name)
	if err == nil {
		return artist, nil
	}
	if !errors.Is(err, shared.ErrArtistNotFound) {
		return nil, err
	}

	artist = models.NewArtist(0, name, creationDate)
	if err := r.Create(artist); err != nil {
		return nil, err
	}

	return artist, nil
}

// Update modifies an existing artist in the database
func (r *ArtistRepository) Update(artist *models.Artist) error {
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	artist.SetUpdatedAt(now)

	query := `
		UPDATE artists
		SET artist_name = ?, creation_date = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, artist.Name(), nullYear(artist.CreationDate()), now, artist.ID())
	if err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrArtistNotFound, artist.ID())
	}

	return nil
}

// Delete soft-deletes an artist by ID together with all of its songs.
//
// Orphan removal: songs belong to exactly one artist, so they go with it.
// Songs of other artists are never touched.
func (r *ArtistRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	result, err := tx.Exec(`
		UPDATE artists
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrArtistNotFound, id)
	}

	_, err = tx.Exec(`
		UPDATE songs
		SET deleted_at = ?
		WHERE artist_id = ? AND deleted_at IS NULL
	`, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist's songs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit artist delete: %w", err)
	}

	return nil
}

// List retrieves all artists matching the given criteria in insertion order, excluding soft-deleted artists
func (r *ArtistRepository) List(criteria map[string]any) ([]*models.Artist, error) {
	query := `
		SELECT id, sequence, artist_name, creation_date, created_at, updated_at, deleted_at
		FROM artists
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if name, ok := criteria["name"].(string); ok && name != "" {
		query += " AND artist_name = ?"
		args = append(args, name)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []*models.Artist
	for rows.Next() {
		var (
			id           string
			sequence     int
			name         string
			creationDate sql.NullInt64
			createdAt    time.Time
			updatedAt    time.Time
			deletedAt    sql.NullTime
		)

		if err := rows.Scan(&id, &sequence, &name, &creationDate, &createdAt, &updatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}

		artists = append(artists, restoreArtist(id, sequence, name, creationDate, createdAt, updatedAt, deletedAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return artists, nil
}

// scanOne scans a single [sql.Row] into a [models.Artist]
func (r *ArtistRepository) scanOne(row *sql.Row) (*models.Artist, error) {
	var (
		id           string
		sequence     int
		name         string
		creationDate sql.NullInt64
		createdAt    time.Time
		updatedAt    time.Time
		deletedAt    sql.NullTime
	)

	err := row.Scan(&id, &sequence, &name, &creationDate, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan artist: %w", err)
	}

	return restoreArtist(id, sequence, name, creationDate, createdAt, updatedAt, deletedAt), nil
}

// restoreArtist rebuilds a [models.Artist] from scanned column values.
func restoreArtist(id string, sequence int, name string, creationDate sql.NullInt64, createdAt, updatedAt time.Time, deletedAt sql.NullTime) *models.Artist {
	artist := models.NewArtist(sequence, name, yearPtr(creationDate))
	artist.SetID(id)
	artist.SetCreatedAt(createdAt)
	artist.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		artist.SetDeletedAt(&deletedAt.Time)
	}
	return artist
}
