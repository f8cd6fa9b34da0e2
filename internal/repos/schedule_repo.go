package repos

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kairos-ukr/ses-sub000/internal/models"
	"github.com/kairos-ukr/ses-sub000/internal/schedule"
)

var ErrUnknownCancelReason = errors.New("unknown cancel reason")

const (
	CancelReasonDelete = "delete"
	CancelReasonSetOff = "set-off"
)

type ScheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// WeekSnapshot is everything the scheduling screens need for one date range,
// assembled from four independent reads.
type WeekSnapshot struct {
	Installations []models.Installation     `json:"installations"`
	Employees     []models.Employee         `json:"employees"`
	TimeOff       []models.TimeOffEntry     `json:"timeOff"`
	JobsByDate    map[string][]schedule.Job `json:"jobsByDate"`
}

// LoadWeek aborts on the first failing read; there is no partial snapshot.
func (r *ScheduleRepo) LoadWeek(start, end time.Time) (WeekSnapshot, error) {
	var snapshot WeekSnapshot

	if err := r.db.Where("status IN ?", models.ActiveInstallationStatuses).
		Order("created_at desc").Find(&snapshot.Installations).Error; err != nil {
		return snapshot, fmt.Errorf("load installations: %w", err)
	}

	if err := r.db.Order("name asc").Find(&snapshot.Employees).Error; err != nil {
		return snapshot, fmt.Errorf("load employees: %w", err)
	}

	if err := r.db.Where("date >= ? AND date <= ?", start, end).
		Order("date asc").Find(&snapshot.TimeOff).Error; err != nil {
		return snapshot, fmt.Errorf("load time off: %w", err)
	}

	var rows []models.AssignmentRow
	if err := r.db.Where("date >= ? AND date <= ?", start, end).
		Order("created_at asc").Find(&rows).Error; err != nil {
		return snapshot, fmt.Errorf("load assignments: %w", err)
	}
	snapshot.JobsByDate = schedule.JobsFromRows(rows)

	return snapshot, nil
}

// LoadDay returns just the grouped jobs for one date.
func (r *ScheduleRepo) LoadDay(dateKey string) ([]schedule.Job, error) {
	date, err := schedule.ParseDateKey(dateKey)
	if err != nil {
		return nil, err
	}
	var rows []models.AssignmentRow
	if err := r.db.Where("date = ?", date).
		Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	return schedule.JobsFromRows(rows)[dateKey], nil
}

// SaveDay replaces the full set of assignment rows for the draft's date.
// Delete and insert run in one transaction so a failed insert cannot leave
// the day empty. Only a previewed draft may be flushed.
func (r *ScheduleRepo) SaveDay(draft schedule.Draft) (schedule.Draft, error) {
	if draft.Phase != schedule.PhasePreview {
		return draft, schedule.ErrNotPreviewed
	}

	rows, err := schedule.RowsFromDraft(draft)
	if err != nil {
		return draft, err
	}
	date, err := schedule.ParseDateKey(draft.DateKey)
	if err != nil {
		return draft, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", date).Delete(&models.AssignmentRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return draft, fmt.Errorf("save day %s: %w", draft.DateKey, err)
	}

	return draft.Committed()
}

// CancelJob removes one job's rows for the date. With reason set-off, every
// worker who was on the job also gets an OFF time-off entry for that date,
// upserted on the (employee, date) key.
func (r *ScheduleRepo) CancelJob(dateKey string, job schedule.Job, reason string) error {
	if reason != CancelReasonDelete && reason != CancelReasonSetOff {
		return ErrUnknownCancelReason
	}
	date, err := schedule.ParseDateKey(dateKey)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("date = ?", date)
		switch {
		case !job.Custom:
			query = query.Where("installation_custom_id = ?", job.InstallationID)
		case job.JobKey != uuid.Nil:
			query = query.Where("job_key = ?", job.JobKey)
		default:
			query = query.Where("installation_custom_id IS NULL AND notes = ?", job.Notes)
		}
		if err := query.Delete(&models.AssignmentRow{}).Error; err != nil {
			return err
		}

		if reason != CancelReasonSetOff {
			return nil
		}
		for _, worker := range job.Workers {
			entry := models.TimeOffEntry{
				EmployeeCustomID: worker.EmployeeID,
				Date:             date,
				Status:           models.TimeOffStatusOff,
				Notes:            "assignment cancelled",
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "employee_custom_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "updated_at"}),
			}).Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
