package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRow is one (job, worker) pair for one date. Rows sharing a date and
// installation belong to the same job; ad-hoc rows have no installation and are
// grouped by JobKey instead (legacy rows without a JobKey fall back to their
// notes text).
type AssignmentRow struct {
	ID                   uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Date                 time.Time  `gorm:"type:date;index;not null" json:"date"`
	InstallationCustomID *uint      `gorm:"index" json:"installationCustomId,omitempty"`
	JobKey               *uuid.UUID `gorm:"type:char(36);index" json:"jobKey,omitempty"`
	EmployeeCustomID     uint       `gorm:"index;not null" json:"employeeCustomId"`
	Hours                float64    `gorm:"type:decimal(5,2);not null;default:8" json:"hours"`
	Notes                string     `gorm:"size:500" json:"notes"`
	CreatedAt            time.Time  `json:"createdAt"`
}

func (a *AssignmentRow) TableName() string {
	return "installation_workers"
}

func (a *AssignmentRow) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
