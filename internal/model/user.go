package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered employee who records logs and sends reports.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ManagerEmail string     `json:"manager_email,omitempty" gorm:"size:150"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:char(36);index"`
	DateJoined   time.Time  `json:"date_joined" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Team *Team `json:"-" gorm:"foreignKey:TeamID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
