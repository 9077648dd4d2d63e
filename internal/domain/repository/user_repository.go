// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Implementations refresh the derived user fields (age, profile completeness) before every write.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, compared in lowercase.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether any user owns the email, compared in lowercase.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether the system username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByHandle reports whether the handle is taken case-insensitively by a user other than excludeID.
	// Pass uuid.Nil to check against every user.
	ExistsByHandle(ctx context.Context, handle string, excludeID uuid.UUID) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// AcquireSessionMutex locks the user's row until the surrounding transaction ends.
	// It serializes concurrent logins of the same user while the session limit is enforced.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
