package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is read-mostly from the scheduler's side. CustomID is the stable
// human-facing number every scheduling and attendance record points at; the
// uuid row id is never used as a foreign key.
type Employee struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CustomID    uint      `gorm:"uniqueIndex;not null" json:"customId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Departments []string  `gorm:"serializer:json" json:"departments"`
	Position    string    `gorm:"size:120" json:"position"`
	Phone       string    `gorm:"size:50" json:"phone"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
