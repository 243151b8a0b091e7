package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLog records one user's work for a single calendar day.
// The composite unique index keeps one canonical log per (user, date);
// same-day submissions update the existing row instead of inserting.
type DailyLog struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:uk_user_date"`
	Date          time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:uk_user_date"`
	Achievements  string    `json:"achievements" gorm:"type:text"`
	Issues        string    `json:"issues" gorm:"type:text"`
	Opportunities string    `json:"opportunities" gorm:"type:text"`
	NextDayTasks  string    `json:"next_day_tasks" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
