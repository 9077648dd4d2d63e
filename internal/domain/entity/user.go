// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MinUserAge is the minimum age for completing a personal profile.
	MinUserAge = 13
	// MinInstructorAge is the minimum age for instructor accounts.
	MinInstructorAge = 18
	// MaxUserAge bounds the derived age.
	MaxUserAge = 120
)

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID              uuid.UUID  // Global unique identifier, also the external identifier exposed by the API.
	Email           string     // Lowercase login email, unique.
	Username        string     // System username generated at registration, unique.
	FirstName       string     // Mandatory for a complete profile.
	LastName        string     // Mandatory for a complete profile.
	Handle          string     // Human-chosen public handle, empty until chosen. Mandatory for a complete profile.
	BirthDate       *time.Time // Mandatory for a complete profile.
	Age             *int       // Derived from BirthDate on every save.
	Country         string     // Mandatory for a complete profile.
	AvatarURL       string
	CoverURL        string
	Biography       string
	Phone           string
	FacebookURL     string
	LinkedInURL     string
	InstagramURL    string
	Role            Role
	ProfileComplete bool // Derived on every save from the mandatory fields.
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProfileField names a mandatory profile field and its human-readable label.
type ProfileField struct {
	Name  string
	Label string
}

// RequiredProfileFields lists, in display order, the fields a complete profile needs.
var RequiredProfileFields = []ProfileField{
	{Name: "first_name", Label: "First name"},
	{Name: "last_name", Label: "Last name"},
	{Name: "birth_date", Label: "Birth date"},
	{Name: "handle", Label: "Handle"},
	{Name: "country", Label: "Country"},
}

func (u *User) hasProfileField(name string) bool {
	switch name {
	case "first_name":
		return strings.TrimSpace(u.FirstName) != ""
	case "last_name":
		return strings.TrimSpace(u.LastName) != ""
	case "birth_date":
		return u.BirthDate != nil && !u.BirthDate.IsZero()
	case "handle":
		return strings.TrimSpace(u.Handle) != ""
	case "country":
		return strings.TrimSpace(u.Country) != ""
	default:
		return false
	}
}

// MissingProfileFields returns the labels of the mandatory fields that are empty.
func (u *User) MissingProfileFields() []string {
	missing := make([]string, 0, len(RequiredProfileFields))
	for _, field := range RequiredProfileFields {
		if !u.hasProfileField(field.Name) {
			missing = append(missing, field.Label)
		}
	}

	return missing
}

// IsProfileComplete computes completeness from the current field values.
func (u *User) IsProfileComplete() bool {
	return len(u.MissingProfileFields()) == 0
}

// RefreshDerived recomputes age and profile completeness. It must run before
// every write of the user, so the flag can move in either direction.
func (u *User) RefreshDerived(today time.Time) {
	u.Email = NormalizeEmail(u.Email)
	u.Handle = strings.ToLower(strings.TrimSpace(u.Handle))

	if u.BirthDate != nil && !u.BirthDate.IsZero() {
		age := AgeOn(*u.BirthDate, today)
		u.Age = &age
	} else {
		u.Age = nil
	}

	u.ProfileComplete = u.IsProfileComplete()
}

// FullName returns "First Last", or the email when either name is missing.
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}

	return u.Email
}

// IsInstructor reports whether the user carries the instructor role.
func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Roles returns the user's role as a Roles slice for token claims.
func (u *User) Roles() Roles {
	if !u.Role.IsValid() {
		return Roles{RoleStudent}
	}

	return Roles{u.Role}
}

// SocialLinks returns the configured social profile URLs keyed by network.
func (u *User) SocialLinks() map[string]string {
	return map[string]string{
		"facebook":  u.FacebookURL,
		"linkedin":  u.LinkedInURL,
		"instagram": u.InstagramURL,
	}
}

// HasSocialLinks reports whether at least one social profile is configured.
func (u *User) HasSocialLinks() bool {
	for _, link := range u.SocialLinks() {
		if link != "" {
			return true
		}
	}

	return false
}

// ValidPhone reports whether phone matches the accepted international format.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailLocalPart returns the part of the email before "@".
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(NormalizeEmail(email), "@")

	return local
}

// AgeOn returns the number of full years between birth and today.
func AgeOn(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}

	return age
}
