package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel is a row of "authentications". Provider and
// ProviderUserID together identify a login; for email logins the latter is
// the normalized address.
type AuthenticationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	User           *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Provider       string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_authentications_provider_key"`
	ProviderUserID string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_authentications_provider_key"`
	PasswordHash   string     `gorm:"type:varchar(72)"`
	CreatedAt      time.Time
}

func (AuthenticationModel) TableName() string {
	return "authentications"
}

// RefreshTokenModel is a login session. Session listing reads it by
// (user_id, expires_at).
type RefreshTokenModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_refresh_tokens_user_expiry,priority:1"`
	User       *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TokenHash  string     `gorm:"type:char(64);not null;uniqueIndex:uq_refresh_tokens_token_hash"`
	DeviceInfo string     `gorm:"type:varchar(255)"`
	ExpiresAt  time.Time  `gorm:"not null;index:idx_refresh_tokens_user_expiry,priority:2"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
