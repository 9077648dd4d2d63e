package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MinExperienceYears and MaxExperienceYears bound Instructor.ExperienceYears.
	MinExperienceYears = 0
	MaxExperienceYears = 60

	maxSpecialtyLength = 200
	maxTitleLength     = 200
)

// Instructor extends exactly one User with teaching-specific data.
type Instructor struct {
	ID                uint64
	UserID            uuid.UUID
	User              *User // Loaded alongside the instructor by the repositories.
	Specialty         string
	ExtendedBio       string
	ExperienceYears   int
	ProfessionalTitle string
	Certifications    string
	GitHubURL         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the instructor-specific fields and returns failures keyed by field name.
func (i *Instructor) Validate() FieldErrors {
	errs := FieldErrors{}

	switch specialty := strings.TrimSpace(i.Specialty); {
	case specialty == "":
		errs.Add("specialty", "is required")
	case len(specialty) > maxSpecialtyLength:
		errs.Add("specialty", "must be at most 200 characters")
	}

	if strings.TrimSpace(i.ExtendedBio) == "" {
		errs.Add("extended_bio", "is required")
	}

	if i.ExperienceYears < MinExperienceYears || i.ExperienceYears > MaxExperienceYears {
		errs.Add("experience_years", "must be between 0 and 60")
	}

	if len(i.ProfessionalTitle) > maxTitleLength {
		errs.Add("professional_title", "must be at most 200 characters")
	}

	return errs
}

// ProfileComplete reports whether the instructor's own mandatory fields are
// present and the linked user's profile is complete.
func (i *Instructor) ProfileComplete() bool {
	if i.User == nil || !i.User.ProfileComplete {
		return false
	}

	return strings.TrimSpace(i.Specialty) != "" && strings.TrimSpace(i.ExtendedBio) != ""
}

// EnforceUserRole coerces the linked user's role to instructor and reports whether it changed.
func (i *Instructor) EnforceUserRole() bool {
	if i.User == nil || i.User.Role == RoleInstructor {
		return false
	}
	i.User.Role = RoleInstructor

	return true
}

// IsAvailable reports whether the instructor may be assigned to courses and shown publicly.
func (i *Instructor) IsAvailable() bool {
	return i.User != nil && i.User.Active && i.User.ProfileComplete
}

// FullName returns the linked user's display name.
func (i *Instructor) FullName() string {
	if i.User == nil {
		return ""
	}

	return i.User.FullName()
}

// SocialLinks returns the user's social links plus GitHub.
func (i *Instructor) SocialLinks() map[string]string {
	links := map[string]string{}
	if i.User != nil {
		links = i.User.SocialLinks()
	}
	links["github"] = i.GitHubURL

	return links
}
