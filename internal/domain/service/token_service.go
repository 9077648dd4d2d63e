package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID          uuid.UUID `json:"user_id"`
	Roles           []string  `json:"roles"`
	ProfileComplete bool      `json:"profile_complete"`
	Type            string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenSubject is the user data embedded into issued tokens.
type TokenSubject struct {
	UserID          uuid.UUID
	Roles           []string
	ProfileComplete bool
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(subject TokenSubject) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the value stored in place of a raw refresh token.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
