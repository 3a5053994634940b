// Package models defines domain entities and persistence interfaces for the boombox music library.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs for rendering and file export
//   - [SongInfo] : A song joined with its artist's name
//   - [FavoriteInfo] : A favorite joined with user and song details
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [User] : Library users with contact details
//   - [Artist] : Artists deduplicated by name
//   - [Song] : Songs owned by exactly one artist
//   - [Favorite] : User↔song liked relation materialized as rows
//
// All persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
