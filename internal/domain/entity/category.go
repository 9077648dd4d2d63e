package entity

import (
	"regexp"
	"strings"
	"time"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#007bff"

const maxCategoryNameLength = 100

var colorHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category groups courses in the catalog.
type Category struct {
	ID           uint64
	Name         string
	Description  string
	ColorHex     string
	Active       bool
	TotalCourses int // Number of active courses; filled by read queries.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCategory returns an active category with the default color.
func NewCategory() *Category {
	return &Category{ColorHex: DefaultCategoryColor, Active: true}
}

// Normalize applies defaults before a write.
func (c *Category) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	if c.ColorHex == "" {
		c.ColorHex = DefaultCategoryColor
	}
}

// Validate checks the category fields.
func (c *Category) Validate() FieldErrors {
	errs := FieldErrors{}

	switch name := strings.TrimSpace(c.Name); {
	case name == "":
		errs.Add("name", "is required")
	case len(name) > maxCategoryNameLength:
		errs.Add("name", "must be at most 100 characters")
	}

	if c.ColorHex != "" && !colorHexPattern.MatchString(c.ColorHex) {
		errs.Add("color_hex", "must be a #RRGGBB color")
	}

	return errs
}
