// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for stable insertion ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [UserRepository] : Library user persistence with email-based lookups
//   - [ArtistRepository] : Artist persistence with name-based resolution (at most one live row per name)
//   - [SongRepository] : Song persistence with title search and artist joins
//   - [FavoriteRepository] : User↔song liked relation
//
// Deleting an artist soft-deletes the artist together with all of its songs in
// one transaction; deleting a song never touches its artist.
//
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
