package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TimeOffStatusOff       = "off"
	TimeOffStatusVacation  = "vacation"
	TimeOffStatusSickLeave = "sick_leave"
)

// TimeOffEntry marks one employee unavailable on one calendar day. The unique
// index on (employee, date) is the only server-side conflict guard; all writes
// go through an upsert keyed on it.
type TimeOffEntry struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeCustomID uint      `gorm:"uniqueIndex:idx_timeoff_employee_date;not null" json:"employeeCustomId"`
	Date             time.Time `gorm:"type:date;uniqueIndex:idx_timeoff_employee_date;not null" json:"date"`
	Status           string    `gorm:"size:20;not null" json:"status"`
	Notes            string    `gorm:"size:500" json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (t *TimeOffEntry) TableName() string {
	return "time_off_entries"
}

func (t *TimeOffEntry) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func ValidTimeOffStatus(status string) bool {
	switch status {
	case TimeOffStatusOff, TimeOffStatusVacation, TimeOffStatusSickLeave:
		return true
	}
	return false
}
