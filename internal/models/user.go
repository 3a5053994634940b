package models

import (
	"fmt"
	"strings"
	"time"
)

// User represents a library user. Users hold favorite-song rows but are not
// mutated by the song or playlist workflows.
type User struct {
	entity
	name        string
	email       string
	dateOfBirth *time.Time
}

var _ Model = (*User)(nil)

// NewUser creates a new [User] with the given sequence, display name, email and optional birth date.
func NewUser(sequence int, name, email string, dateOfBirth *time.Time) *User {
	return &User{
		entity:      newEntity(sequence),
		name:        name,
		email:       email,
		dateOfBirth: dateOfBirth,
	}
}

// Name returns the user's display name
func (u *User) Name() string { return u.name }

// Email returns the user's contact email
func (u *User) Email() string { return u.email }

// DateOfBirth returns the user's birth date, or nil if unknown
func (u *User) DateOfBirth() *time.Time { return u.dateOfBirth }

func (u *User) SetName(name string)   { u.name = name }
func (u *User) SetEmail(email string) { u.email = email }

// Validate checks if the user's data is valid and returns an error if not
func (u *User) Validate() error {
	if strings.TrimSpace(u.name) == "" {
		return fmt.Errorf("user name is required")
	}
	if !strings.Contains(u.email, "@") {
		return fmt.Errorf("user email %q is not valid", u.email)
	}
	return nil
}
