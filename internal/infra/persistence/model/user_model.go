package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the repository.
// It is an exported type so it can be used by the migration and other packages.
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Username        string     `gorm:"type:varchar(150);not null;uniqueIndex:idx_users_username"`
	FirstName       string     `gorm:"type:varchar(150)"`
	LastName        string     `gorm:"type:varchar(150)"`
	Handle          *string    `gorm:"type:varchar(50)"` // Unique on lower(handle), see Migrate.
	BirthDate       *time.Time `gorm:"type:date"`
	Age             *int       `gorm:"check:chk_users_age,age IS NULL OR age BETWEEN 13 AND 120"`
	Country         string     `gorm:"type:varchar(100)"`
	AvatarURL       string     `gorm:"column:avatar_url;type:varchar(500)"`
	CoverURL        string     `gorm:"column:cover_url;type:varchar(500)"`
	Biography       string     `gorm:"type:text"`
	Phone           string     `gorm:"type:varchar(17)"`
	FacebookURL     string     `gorm:"column:facebook_url;type:varchar(500)"`
	LinkedInURL     string     `gorm:"column:linkedin_url;type:varchar(500)"`
	InstagramURL    string     `gorm:"column:instagram_url;type:varchar(500)"`
	Role            string     `gorm:"type:varchar(20);not null;index"`
	ProfileComplete bool       `gorm:"not null"`
	Active          bool       `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
