package usecase

import (
	"context"
	"time"

	"academia/internal/domain/entity"

	"github.com/google/uuid"
)

// InstructorUsecase defines instructor administration and the public instructor directory.
type InstructorUsecase interface {
	// CreateInstructor creates a user and its instructor extension atomically. Admin only.
	CreateInstructor(ctx context.Context, actor *Actor, input *CreateInstructorInput) (*entity.Instructor, error)
	UpdateInstructor(ctx context.Context, actor *Actor, id uint64, input *UpdateInstructorInput) (*entity.Instructor, error)
	// DeactivateInstructor soft-deletes the instructor by deactivating its user.
	DeactivateInstructor(ctx context.Context, actor *Actor, id uint64) error
	GetInstructor(ctx context.Context, actor *Actor, id uint64) (*entity.Instructor, error)
	ListInstructors(ctx context.Context, actor *Actor) ([]*entity.Instructor, error)
	// ListAvailableInstructors returns the instructors a course may be assigned to.
	ListAvailableInstructors(ctx context.Context, actor *Actor) ([]*entity.Instructor, error)

	ListPublicInstructors(ctx context.Context) ([]*entity.Instructor, error)
	GetPublicInstructor(ctx context.Context, id uint64) (*entity.Instructor, error)
}

// Actor is the authenticated caller of a privileged operation.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsAdmin reports whether the actor carries the admin role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Roles.Contains(entity.RoleAdmin)
}

// --- Input DTOs ---

// CreateInstructorInput carries the user account and the instructor data.
type CreateInstructorInput struct {
	Email           string
	Username        string
	FirstName       string
	LastName        string
	BirthDate       time.Time
	Country         string
	Password        string
	ConfirmPassword string

	AvatarURL   string
	Biography   string
	Phone       string
	LinkedInURL string

	Specialty         string
	ExtendedBio       string
	ExperienceYears   int
	ProfessionalTitle string
	Certifications    string
	GitHubURL         string
}

// UpdateInstructorInput is a partial update of the instructor-specific fields.
type UpdateInstructorInput struct {
	Specialty         *string
	ExtendedBio       *string
	ExperienceYears   *int
	ProfessionalTitle *string
	Certifications    *string
	GitHubURL         *string
}
