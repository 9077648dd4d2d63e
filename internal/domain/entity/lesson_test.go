package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLessonNormalize(t *testing.T) {
	tests := []struct {
		name     string
		lesson   Lesson
		expected ContentType
	}{
		{name: "video without url becomes text", lesson: Lesson{ContentType: ContentTypeVideo}, expected: ContentTypeText},
		{name: "video with blank url becomes text", lesson: Lesson{ContentType: ContentTypeVideo, VideoURL: "  "}, expected: ContentTypeText},
		{name: "video with url stays video", lesson: Lesson{ContentType: ContentTypeVideo, VideoURL: "https://cdn/v.mp4"}, expected: ContentTypeVideo},
		{name: "empty type without url defaults then coerces", lesson: Lesson{}, expected: ContentTypeText},
		{name: "quiz is untouched", lesson: Lesson{ContentType: ContentTypeQuiz}, expected: ContentTypeQuiz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.lesson
			l.Normalize()
			assert.Equal(t, tt.expected, l.ContentType)

			l.Normalize()
			assert.Equal(t, tt.expected, l.ContentType, "normalize must be idempotent")
		})
	}
}

func TestLessonValidate(t *testing.T) {
	l := &Lesson{Title: "", ContentType: "slides", Order: -1, DurationMinutes: -2}

	errs := l.Validate()

	assert.Equal(t, []string{"content_type", "duration_minutes", "order", "title"}, errs.Paths())
}

func TestLessonTotalDurationSeconds(t *testing.T) {
	l := &Lesson{DurationMinutes: 3, DurationSeconds: 15}

	assert.Equal(t, 195, l.TotalDurationSeconds())
}

func TestModuleValidate(t *testing.T) {
	m := NewModule()
	m.Title = "Intro"

	assert.True(t, m.Validate().Empty())
	assert.True(t, m.Expandable)

	m.Order = -1
	assert.Contains(t, m.Validate(), "order")
}
