// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail identifies email/password credentials.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // The login identifier at the provider; the lowercase email for "email".
	PasswordHash   string    // Stores the bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID         uuid.UUID  // The unique ID for this specific refresh token record.
	UserID     uuid.UUID  // Links this session to the User it belongs to.
	TokenHash  string     // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	DeviceInfo string     // Free-form client description captured at login (user agent).
	ExpiresAt  time.Time  // The exact time when this refresh token will expire and become invalid.
	LastUsedAt *time.Time // Last time the token was exchanged for an access token.
	CreatedAt  time.Time  // Timestamp of when this session was created (i.e., when the user logged in).
}

// IsExpired reports whether the session is past its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
