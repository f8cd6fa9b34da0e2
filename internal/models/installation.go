package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InstallationStatusPlanned    = "planned"
	InstallationStatusInProgress = "in_progress"
	InstallationStatusOnHold     = "on_hold"
	InstallationStatusCompleted  = "completed"
	InstallationStatusCancelled  = "cancelled"
)

// ActiveInstallationStatuses are the statuses under which an installation may
// still receive worker assignments.
var ActiveInstallationStatuses = []string{
	InstallationStatusPlanned,
	InstallationStatusInProgress,
	InstallationStatusOnHold,
}

type Installation struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CustomID  uint      `gorm:"uniqueIndex;not null" json:"customId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:500" json:"address"`
	Status    string    `gorm:"size:50;index;not null;default:planned" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Installation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
