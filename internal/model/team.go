package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company groups teams. Used only for organisational structure.
type Company struct {
	ID   uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name string    `json:"name" gorm:"size:255;not null;uniqueIndex"`

	// Relations
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:CompanyID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Team groups users under a company and carries the fallback manager
// email used for report delivery when a user has none of their own.
type Team struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CompanyID    uuid.UUID `json:"company_id" gorm:"type:char(36);not null;index"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	ManagerEmail string    `json:"manager_email,omitempty" gorm:"size:150"`

	// Relations
	Company Company `json:"-" gorm:"foreignKey:CompanyID"`
	Users   []User  `json:"users,omitempty" gorm:"foreignKey:TeamID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
