// Package service declares the domain services the use cases depend on:
// password hashing, token issuing and event publication.
package service

// PasswordHasher hashes and verifies account passwords for email/password
// authentications and enforces the password policy on registration.
type PasswordHasher interface {
	// Hash validates password against the policy and returns its salted hash.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns a PASSWORD_STRENGTH error naming the
	// "password" field when the policy rejects password.
	ValidatePasswordStrength(password string) error
}
