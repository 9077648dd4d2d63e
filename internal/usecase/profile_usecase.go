package usecase

import (
	"context"
	"time"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the profile state machine operations of the authenticated user.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	CompleteProfile(ctx context.Context, userID uuid.UUID, input *CompleteProfileInput, partial bool) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ProfileStatus(ctx context.Context, userID uuid.UUID) (*ProfileStatusOutput, error)
	CheckHandleAvailability(ctx context.Context, userID uuid.UUID, handle string) (*HandleAvailabilityOutput, error)
}

// --- Input DTOs ---

// ProfileFields are the optional personal fields shared by every profile write.
// A nil pointer leaves the stored value unchanged.
type ProfileFields struct {
	AvatarURL    *string
	CoverURL     *string
	Biography    *string
	Phone        *string
	FacebookURL  *string
	LinkedInURL  *string
	InstagramURL *string
}

// CompleteProfileInput is step 2 of the registration.
type CompleteProfileInput struct {
	FirstName *string
	LastName  *string
	BirthDate *time.Time
	Handle    *string
	Country   *string
	ProfileFields
}

// UpdateProfileInput edits the personal fields. The handle cannot change here.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	BirthDate *time.Time
	Country   *string
	ProfileFields
}

// --- Output DTOs ---

// ProfileStatusOutput reports where the user stands in the registration flow.
type ProfileStatusOutput struct {
	ProfileComplete           bool
	MissingFields             []string
	NextStep                  string
	SuggestedHandle           string
	IsInstructor              bool
	InstructorProfileComplete *bool // Nil unless the user is an instructor.
}

// HandleAvailabilityOutput answers a handle availability query.
type HandleAvailabilityOutput struct {
	Handle    string
	Available bool
	Message   string
}
