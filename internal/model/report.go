package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is the audit record of a sent weekly report. Rows are written
// only after the mail transport confirms delivery and are never updated.
type Report struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	SentAt        time.Time `json:"sent_at" gorm:"autoCreateTime"`
	Recipients    string    `json:"recipients" gorm:"type:text;not null"` // ", "-joined address list
	LastWeek      string    `json:"last_week" gorm:"type:text"`
	Issues        string    `json:"issues" gorm:"type:text"`
	Opportunities string    `json:"opportunities" gorm:"type:text"`
	NextWeek      string    `json:"next_week" gorm:"type:text"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Summary holds the four text sections of a weekly report, either
// aggregated from daily logs or edited by the user before sending.
type Summary struct {
	LastWeek      string `json:"last_week"`
	Issues        string `json:"issues"`
	Opportunities string `json:"opportunities"`
	NextWeek      string `json:"next_week"`
}
