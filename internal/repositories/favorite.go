package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/shared"
)

// FavoriteRepository implements [models.Repository] for [models.Favorite] persistence.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new [FavoriteRepository] with the given database connection
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a new favorite into the database with generated ID and sequence
func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	sequence, err := NextSequence(r.db, "favorites")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	favorite.SetID(id)
	favorite.SetSequence(sequence)

	if err := favorite.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO favorites (id, sequence, user_id, song_id, timestamp, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, favorite.UserID(), favorite.SongID(), favorite.LikedAt(), favorite.CreatedAt(), favorite.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	return nil
}

// Get retrieves a favorite by ID, excluding soft-deleted favorites
func (r *FavoriteRepository) Get(id string) (*models.Favorite, error) {
	query := `
		SELECT id, sequence, user_id, song_id, timestamp, created_at, updated_at, deleted_at
		FROM favorites
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing favorite in the database
func (r *FavoriteRepository) Update(favorite *models.Favorite) error {
	if err := favorite.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	favorite.SetUpdatedAt(now)

	query := `
		UPDATE favorites
		SET timestamp = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, favorite.LikedAt(), now, favorite.ID())
	if err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("favorite not found or already deleted: %s", favorite.ID())
	}

	return nil
}

// Delete soft-deletes a favorite by ID
func (r *FavoriteRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE favorites
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("favorite not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all favorites matching the given criteria in insertion order, excluding soft-deleted favorites
func (r *FavoriteRepository) List(criteria map[string]any) ([]*models.Favorite, error) {
	query := `
		SELECT id, sequence, user_id, song_id, timestamp, created_at, updated_at, deleted_at
		FROM favorites
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if userID, ok := criteria["user_id"].(string); ok && userID != "" {
		query += " AND user_id = ?"
		args = append(args, userID)
	}

	if songID, ok := criteria["song_id"].(string); ok && songID != "" {
		query += " AND song_id = ?"
		args = append(args, songID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*models.Favorite
	for rows.Next() {
		var (
			id        string
			sequence  int
			userID    string
			songID    string
			likedAt   time.Time
			createdAt time.Time
			updatedAt time.Time
			deletedAt sql.NullTime
		)

		if err := rows.Scan(&id, &sequence, &userID, &songID, &likedAt, &createdAt, &updatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		favorites = append(favorites, restoreFavorite(id, sequence, userID, songID, likedAt, createdAt, updatedAt, deletedAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return favorites, nil
}

// ListInfo retrieves a user's favorites joined with song and artist details, in insertion order.
func (r *FavoriteRepository) ListInfo(userID string) ([]models.FavoriteInfo, error) {
	query := `
		SELECT u.user_name, s.song_title, a.artist_name, f.timestamp
		FROM favorites f
		JOIN users u ON u.id = f.user_id
		JOIN songs s ON s.id = f.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE f.deleted_at IS NULL AND s.deleted_at IS NULL AND f.user_id = ?
		ORDER BY f.sequence ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	infos := []models.FavoriteInfo{}
	for rows.Next() {
		var info models.FavoriteInfo
		if err := rows.Scan(&info.User, &info.Title, &info.Artist, &info.LikedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return infos, nil
}

// scanOne scans a single [sql.Row] into a [models.Favorite]
func (r *FavoriteRepository) scanOne(row *sql.Row) (*models.Favorite, error) {
	var (
		id        string
		sequence  int
		userID    string
		songID    string
		likedAt   time.Time
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &userID, &songID, &likedAt, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("favorite not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan favorite: %w", err)
	}

	return restoreFavorite(id, sequence, userID, songID, likedAt, createdAt, updatedAt, deletedAt), nil
}

// restoreFavorite rebuilds a [models.Favorite] from scanned column values.
func restoreFavorite(id string, sequence int, userID, songID string, likedAt, createdAt, updatedAt time.Time, deletedAt sql.NullTime) *models.Favorite {
	favorite := models.NewFavorite(sequence, userID, songID, likedAt)
	favorite.SetID(id)
	favorite.SetCreatedAt(createdAt)
	favorite.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		favorite.SetDeletedAt(&deletedAt.Time)
	}
	return favorite
}
