package usecase

import (
	"context"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase manages the login sessions of the authenticated user.
// Sessions of other users are reported as not found.
type SessionUsecase interface {
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	// RevokeAllSessions signs the user out everywhere; access tokens stay valid until they expire.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
}
