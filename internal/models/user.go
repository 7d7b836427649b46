package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	FullName     string         `gorm:"not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// UserProfile carries the gamification state for a user. The streak fields
// are only ever written through the streak update path.
type UserProfile struct {
	ID             uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID        `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Email          string           `gorm:"size:255;not null" json:"email"`
	LastCookedDate *time.Time       `gorm:"type:date" json:"last_cooked_date,omitempty"`
	StreakCount    int              `gorm:"not null;default:0;check:streak_count >= 0" json:"streak_count"`
	Badges         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"badges"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}
