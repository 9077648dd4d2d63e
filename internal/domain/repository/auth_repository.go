package repository

import (
	"context"
	"errors"

	"academia/internal/domain/entity"
)

var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores the credentials a user signs in with. Email logins are
// keyed by provider "email" and the normalized address.
type AuthRepository interface {
	// CreateAuthentication fails with EMAIL_ALREADY_EXISTS when the provider key is taken.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication reads from the primary so a login right after registration succeeds.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
