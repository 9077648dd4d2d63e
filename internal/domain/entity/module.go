package entity

import (
	"strings"
	"time"
)

const maxModuleTitleLength = 200

// Module is an ordered section of a course. Order is unique within the course.
type Module struct {
	ID              uint64
	CourseID        uint64
	Title           string
	Description     string
	Order           int
	DurationMinutes *int
	Expandable      bool
	Active          bool
	Lessons         []*Lesson // Ordered by Lesson.Order when loaded.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewModule returns a module with the default flags set.
func NewModule() *Module {
	return &Module{Expandable: true, Active: true}
}

// Normalize trims the module before a write.
func (m *Module) Normalize() {
	m.Title = strings.TrimSpace(m.Title)
}

// Validate checks the module's own fields.
func (m *Module) Validate() FieldErrors {
	errs := FieldErrors{}

	switch title := strings.TrimSpace(m.Title); {
	case title == "":
		errs.Add("title", "is required")
	case len(title) > maxModuleTitleLength:
		errs.Add("title", "must be at most 200 characters")
	}

	if m.Order < 0 {
		errs.Add("order", "must not be negative")
	}
	if m.DurationMinutes != nil && *m.DurationMinutes < 0 {
		errs.Add("duration_minutes", "must not be negative")
	}

	return errs
}

// TotalLessons counts the active lessons currently loaded.
func (m *Module) TotalLessons() int {
	total := 0
	for _, l := range m.Lessons {
		if l.Active {
			total++
		}
	}

	return total
}
