// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// AuthUser is the account record behind a login. The username doubles as the
// token subject; the password is stored only as a bcrypt hash.
type AuthUser struct {
	ID           int64     // Numeric identity, also embedded in issued tokens as the uid claim.
	Username     string    // Unique login identifier and token subject.
	Email        string    // Unique contact email, collected at registration.
	PasswordHash string    // bcrypt hash of the password; never leaves the persistence boundary.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
