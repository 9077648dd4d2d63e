package entity

import (
	"strings"
	"time"
)

// ContentType is the kind of material a lesson carries.
type ContentType string

const (
	ContentTypeVideo   ContentType = "video"
	ContentTypeText    ContentType = "text"
	ContentTypeQuiz    ContentType = "quiz"
	ContentTypeProject ContentType = "project"
)

// IsValid checks if the ContentType is a valid value.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeVideo, ContentTypeText, ContentTypeQuiz, ContentTypeProject:
		return true
	default:
		return false
	}
}

const (
	maxLessonTitleLength = 200
	secondsPerMinute     = 60
)

// Lesson is an ordered unit of content inside a module. Order is unique within the module.
type Lesson struct {
	ID              uint64
	ModuleID        uint64
	Title           string
	Content         string
	ContentType     ContentType
	VideoURL        string
	DurationMinutes int
	DurationSeconds int
	Order           int
	IsFreePreview   bool
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewLesson returns an active lesson with the default content type.
func NewLesson() *Lesson {
	return &Lesson{ContentType: ContentTypeVideo, Active: true}
}

// Normalize applies defaults and downgrades a video lesson without a URL to text.
// It must run before every write and is idempotent.
func (l *Lesson) Normalize() {
	l.Title = strings.TrimSpace(l.Title)
	l.VideoURL = strings.TrimSpace(l.VideoURL)
	if l.ContentType == "" {
		l.ContentType = ContentTypeVideo
	}
	if l.ContentType == ContentTypeVideo && l.VideoURL == "" {
		l.ContentType = ContentTypeText
	}
}

// Validate checks the lesson's own fields.
func (l *Lesson) Validate() FieldErrors {
	errs := FieldErrors{}

	switch title := strings.TrimSpace(l.Title); {
	case title == "":
		errs.Add("title", "is required")
	case len(title) > maxLessonTitleLength:
		errs.Add("title", "must be at most 200 characters")
	}

	if l.ContentType != "" && !l.ContentType.IsValid() {
		errs.Add("content_type", "must be one of video, text, quiz, project")
	}
	if len(l.VideoURL) > maxURLLength {
		errs.Add("video_url", "must be at most 500 characters")
	}
	if l.DurationMinutes < 0 {
		errs.Add("duration_minutes", "must not be negative")
	}
	if l.DurationSeconds < 0 {
		errs.Add("duration_seconds", "must not be negative")
	}
	if l.Order < 0 {
		errs.Add("order", "must not be negative")
	}

	return errs
}

// TotalDurationSeconds returns the lesson length in seconds.
func (l *Lesson) TotalDurationSeconds() int {
	return l.DurationMinutes*secondsPerMinute + l.DurationSeconds
}
