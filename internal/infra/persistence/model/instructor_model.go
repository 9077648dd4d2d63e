package model

import (
	"time"

	"github.com/google/uuid"
)

// InstructorModel mirrors the 'instructors' table, a one-to-one extension of users.
type InstructorModel struct {
	ID                uint64     `gorm:"primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_instructors_user_id"`
	User              *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Specialty         string     `gorm:"type:varchar(200);not null"`
	ExtendedBio       string     `gorm:"type:text;not null"`
	ExperienceYears   int        `gorm:"not null;check:chk_instructors_experience,experience_years BETWEEN 0 AND 60"`
	ProfessionalTitle string     `gorm:"type:varchar(200)"`
	Certifications    string     `gorm:"type:text"`
	GitHubURL         string     `gorm:"column:github_url;type:varchar(500)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (InstructorModel) TableName() string {
	return "instructors"
}
