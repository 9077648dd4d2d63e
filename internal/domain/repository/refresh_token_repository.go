package repository

import (
	"context"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned by FindRefreshTokenByHash for a known but expired token,
	// so a refresh with it is rejected like an unknown one.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores login sessions. Only the SHA-256 hash of a
// refresh token is persisted; a session id is the id of its record.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindRefreshTokensByUserID lists the unexpired sessions of a user, newest first.
	// The login session cap revokes from the tail of this list.
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteRefreshToken revokes one session. It returns ErrRefreshTokenNotFound when id is unknown.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokenByHash ends the session a refresh token belongs to (logout and rotation).
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID revokes every session of a user (logout-all, instructor deactivation).
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
