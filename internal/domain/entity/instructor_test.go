package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructorValidate_ExperienceBounds(t *testing.T) {
	tests := []struct {
		years int
		valid bool
	}{
		{years: -1, valid: false},
		{years: 0, valid: true},
		{years: 60, valid: true},
		{years: 61, valid: false},
	}

	for _, tt := range tests {
		i := &Instructor{Specialty: "Go", ExtendedBio: "Backend engineer", ExperienceYears: tt.years}
		errs := i.Validate()

		if tt.valid {
			assert.NotContains(t, errs, "experience_years", "years=%d", tt.years)
		} else {
			assert.Contains(t, errs, "experience_years", "years=%d", tt.years)
		}
	}
}

func TestInstructorEnforceUserRole(t *testing.T) {
	i := &Instructor{User: &User{Role: RoleStudent}}

	assert.True(t, i.EnforceUserRole())
	assert.Equal(t, RoleInstructor, i.User.Role)
	assert.False(t, i.EnforceUserRole())
}

func TestInstructorProfileComplete(t *testing.T) {
	i := &Instructor{
		Specialty:   "Go",
		ExtendedBio: "Bio",
		User:        &User{ProfileComplete: true, Active: true},
	}

	assert.True(t, i.ProfileComplete())
	assert.True(t, i.IsAvailable())

	i.User.Active = false
	assert.False(t, i.IsAvailable())

	i.ExtendedBio = ""
	assert.False(t, i.ProfileComplete())

	assert.False(t, (&Instructor{Specialty: "Go", ExtendedBio: "Bio"}).ProfileComplete())
}
