package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	ColorHex    string `gorm:"type:varchar(7);not null"`
	Active      bool   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// TotalCourses is filled by read queries only.
	TotalCourses int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// CourseModel mirrors the 'courses' table. UUID is the identifier exposed to clients.
type CourseModel struct {
	ID               uint64              `gorm:"primaryKey"`
	UUID             uuid.UUID           `gorm:"column:uuid;type:uuid;not null;uniqueIndex:idx_courses_uuid"`
	Title            string              `gorm:"type:varchar(200);not null"`
	Description      string              `gorm:"type:text;not null"`
	ShortDescription string              `gorm:"type:varchar(500)"`
	CategoryID       uint64              `gorm:"not null;index"`
	Category         *CategoryModel      `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	InstructorID     uint64              `gorm:"not null;index"`
	Instructor       *InstructorModel    `gorm:"foreignKey:InstructorID;constraint:OnDelete:RESTRICT"`
	CoverImageURL    string              `gorm:"column:cover_image_url;type:varchar(500)"`
	IntroVideoURL    string              `gorm:"column:intro_video_url;type:varchar(500)"`
	Modality         string              `gorm:"type:varchar(10);not null"`
	Level            string              `gorm:"type:varchar(15);not null"`
	DurationHours    *int                `gorm:"check:chk_courses_duration,duration_hours IS NULL OR duration_hours >= 0"`
	Price            decimal.Decimal     `gorm:"type:numeric(10,2);not null;check:chk_courses_price,price >= 0"`
	IsFree           bool                `gorm:"not null"`
	Rating           decimal.NullDecimal `gorm:"type:numeric(3,2)"`
	Featured         bool                `gorm:"not null;index"`
	Active           bool                `gorm:"not null;index"`
	CreatedAt        time.Time           `gorm:"index"`
	UpdatedAt        time.Time

	Modules []ModuleModel `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// ModuleModel mirrors the 'modules' table. (course_id, sort_order) is unique.
type ModuleModel struct {
	ID              uint64 `gorm:"primaryKey"`
	CourseID        uint64 `gorm:"not null;uniqueIndex:idx_modules_course_order,priority:1"`
	Title           string `gorm:"type:varchar(200);not null"`
	Description     string `gorm:"type:text"`
	Order           int    `gorm:"column:sort_order;not null;uniqueIndex:idx_modules_course_order,priority:2"`
	DurationMinutes *int
	Expandable      bool `gorm:"not null"`
	Active          bool `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Lessons []LessonModel `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ModuleModel) TableName() string {
	return "modules"
}

// LessonModel mirrors the 'lessons' table. (module_id, sort_order) is unique.
type LessonModel struct {
	ID              uint64 `gorm:"primaryKey"`
	ModuleID        uint64 `gorm:"not null;uniqueIndex:idx_lessons_module_order,priority:1"`
	Title           string `gorm:"type:varchar(200);not null"`
	Content         string `gorm:"type:text"`
	ContentType     string `gorm:"type:varchar(10);not null"`
	VideoURL        string `gorm:"column:video_url;type:varchar(500)"`
	DurationMinutes int    `gorm:"not null"`
	DurationSeconds int    `gorm:"not null"`
	Order           int    `gorm:"column:sort_order;not null;uniqueIndex:idx_lessons_module_order,priority:2"`
	IsFreePreview   bool   `gorm:"not null"`
	Active          bool   `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LessonModel) TableName() string {
	return "lessons"
}
