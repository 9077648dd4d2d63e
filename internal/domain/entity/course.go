package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Modality describes how a course is delivered.
type Modality string

const (
	ModalityAsync  Modality = "async"
	ModalitySync   Modality = "sync"
	ModalityHybrid Modality = "hybrid"
)

// IsValid checks if the Modality is a valid value.
func (m Modality) IsValid() bool {
	switch m {
	case ModalityAsync, ModalitySync, ModalityHybrid:
		return true
	default:
		return false
	}
}

// Level is the difficulty level of a course.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// IsValid checks if the Level is a valid value.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

const (
	maxCourseTitleLength      = 200
	maxShortDescriptionLength = 500
	maxURLLength              = 500
	ratingMax                 = 5
)

// priceLimit is the exclusive upper bound of a price with 8 integer digits.
var priceLimit = decimal.New(1, 8)

// Course is the root of the catalog tree. ID is internal; UUID is the stable
// identifier exposed to clients.
type Course struct {
	ID               uint64
	UUID             uuid.UUID
	Title            string
	Description      string
	ShortDescription string
	CategoryID       uint64
	Category         *Category
	InstructorID     uint64
	Instructor       *Instructor
	CoverImageURL    string
	IntroVideoURL    string
	Modality         Modality
	Level            Level
	DurationHours    *int
	Price            decimal.Decimal
	IsFree           bool
	Rating           *decimal.Decimal
	Featured         bool
	Active           bool
	Modules          []*Module // Ordered by Module.Order when loaded.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCourse returns an active, free course with default modality and level.
func NewCourse() *Course {
	return &Course{
		Modality: ModalityAsync,
		Level:    LevelBeginner,
		IsFree:   true,
		Active:   true,
	}
}

// Normalize applies defaults and the pricing invariant. It must run before every write.
func (c *Course) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	if c.Modality == "" {
		c.Modality = ModalityAsync
	}
	if c.Level == "" {
		c.Level = LevelBeginner
	}
	if c.IsFree {
		c.Price = decimal.Zero
	}
	c.Price = c.Price.Round(2)
	if c.Rating != nil {
		rounded := c.Rating.Round(2)
		c.Rating = &rounded
	}
}

// Validate checks the course's own fields. References are checked by the use cases.
func (c *Course) Validate() FieldErrors {
	errs := FieldErrors{}

	switch title := strings.TrimSpace(c.Title); {
	case title == "":
		errs.Add("title", "is required")
	case len(title) > maxCourseTitleLength:
		errs.Add("title", "must be at most 200 characters")
	}

	if strings.TrimSpace(c.Description) == "" {
		errs.Add("description", "is required")
	}
	if len(c.ShortDescription) > maxShortDescriptionLength {
		errs.Add("short_description", "must be at most 500 characters")
	}
	if c.CategoryID == 0 {
		errs.Add("category_id", "is required")
	}
	if c.InstructorID == 0 {
		errs.Add("instructor_id", "is required")
	}
	if len(c.CoverImageURL) > maxURLLength {
		errs.Add("cover_image_url", "must be at most 500 characters")
	}
	if len(c.IntroVideoURL) > maxURLLength {
		errs.Add("intro_video_url", "must be at most 500 characters")
	}
	if c.Modality != "" && !c.Modality.IsValid() {
		errs.Add("modality", "must be one of async, sync, hybrid")
	}
	if c.Level != "" && !c.Level.IsValid() {
		errs.Add("level", "must be one of beginner, intermediate, advanced")
	}
	if c.DurationHours != nil && *c.DurationHours < 0 {
		errs.Add("duration_hours", "must not be negative")
	}
	// A free course is saved at 0.00 whatever price was sent.
	switch {
	case c.IsFree:
	case c.Price.IsNegative():
		errs.Add("price", "must not be negative")
	case c.Price.GreaterThanOrEqual(priceLimit):
		errs.Add("price", "must have at most 8 digits before the decimal point")
	}
	if c.Rating != nil && (c.Rating.IsNegative() || c.Rating.GreaterThan(decimal.NewFromInt(ratingMax))) {
		errs.Add("rating", "must be between 0 and 5")
	}

	return errs
}

// TotalModules counts the active modules currently loaded.
func (c *Course) TotalModules() int {
	total := 0
	for _, m := range c.Modules {
		if m.Active {
			total++
		}
	}

	return total
}

// TotalLessons counts active lessons of active modules currently loaded.
func (c *Course) TotalLessons() int {
	total := 0
	for _, m := range c.Modules {
		if m.Active {
			total += m.TotalLessons()
		}
	}

	return total
}

// TotalStudents is fixed at zero until enrollment exists.
func (c *Course) TotalStudents() int {
	return 0
}
