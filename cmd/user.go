package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/boomboxfm/boombox/internal/formatter"
	"github.com/boomboxfm/boombox/internal/library"
	"github.com/boomboxfm/boombox/internal/shared"
)

// UserAdd registers a listener.
func (r *Runner) UserAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: user name", shared.ErrMissingArgument)
	}

	email := cmd.String("email")

	var dateOfBirth *time.Time
	if dob := cmd.String("dob"); dob != "" {
		parsed, err := time.Parse("2006-01-02", dob)
		if err != nil {
			return fmt.Errorf("%w: date of birth must be YYYY-MM-DD", shared.ErrInvalidArgument)
		}
		dateOfBirth = &parsed
	}

	return r.withLibrary(cmd, func(lib *library.Library) error {
		user, err := lib.AddUser(name, email, dateOfBirth)
		if err != nil {
			return err
		}

		return r.writePlain("✓ Registered %s <%s>\n", user.Name(), user.Email())
	})
}

// UserList prints every registered listener.
func (r *Runner) UserList(ctx context.Context, cmd *cli.Command) error {
	return r.withLibrary(cmd, func(lib *library.Library) error {
		users, err := lib.ListUsers()
		if err != nil {
			return err
		}

		r.writePlainHeader("Users")
		return r.writePlain("%s", formatter.FormatUsers(users))
	})
}
