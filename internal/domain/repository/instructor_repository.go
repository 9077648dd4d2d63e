package repository

import (
	"context"
	"errors"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInstructorNotFound is returned when an instructor is not found.
var ErrInstructorNotFound = errors.New("instructor not found")

// InstructorRepository defines persistence operations for instructors.
// Every Create and Update also coerces the linked user's role to instructor.
type InstructorRepository interface {
	// FindByID retrieves an instructor with its user loaded.
	FindByID(ctx context.Context, id uint64) (*entity.Instructor, error)

	// FindByUserID retrieves the instructor extending the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Instructor, error)

	// ListAvailable returns instructors whose user is active and profile-complete, ordered by name.
	ListAvailable(ctx context.Context) ([]*entity.Instructor, error)

	// ListAll returns every instructor with its user, ordered by name.
	ListAll(ctx context.Context) ([]*entity.Instructor, error)

	Create(ctx context.Context, instructor *entity.Instructor) error
	Update(ctx context.Context, instructor *entity.Instructor) error
}
