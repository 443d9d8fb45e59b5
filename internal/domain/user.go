package domain

import "github.com/google/uuid"

// UserWithPreferences is a user joined with the raw preferences JSON stored on
// their profile. Preferences is nil when the user has no profile row.
type UserWithPreferences struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	Name        *string   `db:"name"`
	Preferences []byte    `db:"preferences"`
}
