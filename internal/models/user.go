package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           EntityID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	// RefreshTokenHash is nil when the user is logged out or has never
	// logged in. The hash, never the token itself, is what persists.
	RefreshTokenHash *string   `gorm:"type:varchar(255)" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID.IsZero() {
		u.ID = NewEntityID()
	}
	return nil
}
