package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LIONEntry is a weekly L.I.O.N. retrospective (achievements, issues,
// opportunities, next-week commitments) owned exclusively by its author.
type LIONEntry struct {
	ID                   uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID               uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Date                 time.Time `json:"date" gorm:"type:date;not null"`
	LastWeekAchievements string    `json:"last_week_achievements" gorm:"type:text"`
	Issues               string    `json:"issues" gorm:"type:text"`
	Opportunities        string    `json:"opportunities" gorm:"type:text"`
	NextWeekCommitments  string    `json:"next_week_commitments" gorm:"type:text"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *LIONEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
