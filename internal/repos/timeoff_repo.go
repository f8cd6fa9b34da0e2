package repos

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kairos-ukr/ses-sub000/internal/models"
	"github.com/kairos-ukr/ses-sub000/internal/schedule"
)

type TimeOffRepo struct {
	db *gorm.DB
}

func NewTimeOffRepo(db *gorm.DB) *TimeOffRepo {
	return &TimeOffRepo{db: db}
}

func (r *TimeOffRepo) ListRange(from, to time.Time) ([]models.TimeOffEntry, error) {
	var entries []models.TimeOffEntry
	if err := r.db.Where("date >= ? AND date <= ?", from, to).
		Order("date asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load time off: %w", err)
	}
	return entries, nil
}

// RangeReport distinguishes per-item conflicts from transport failure: a date
// that already had an entry for the employee lands in Conflicts, the rest of
// the batch still goes through.
type RangeReport struct {
	Created   int      `json:"created"`
	Conflicts []string `json:"conflicts,omitempty"`
}

// CreateRange inserts one entry per date, skipping dates where the employee
// already has one. The (employee, date) unique key is the only conflict guard.
func (r *TimeOffRepo) CreateRange(employeeID uint, dates []time.Time, status, notes string) (RangeReport, error) {
	var report RangeReport
	for _, date := range dates {
		entry := models.TimeOffEntry{
			EmployeeCustomID: employeeID,
			Date:             date,
			Status:           status,
			Notes:            notes,
		}
		res := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_custom_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(&entry)
		if res.Error != nil {
			return report, fmt.Errorf("create time off: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			report.Conflicts = append(report.Conflicts, schedule.DateKey(date))
			continue
		}
		report.Created++
	}
	return report, nil
}

func (r *TimeOffRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TimeOffEntry{}, "id = ?", id).Error
}
