package schedule

import "github.com/kairos-ukr/ses-sub000/internal/models"

// AvailabilityIndex maps date key -> employee customId -> time-off status.
// It is rebuilt from scratch whenever the time-off list changes.
type AvailabilityIndex map[string]map[uint]string

func BuildAvailabilityIndex(entries []models.TimeOffEntry) AvailabilityIndex {
	index := make(AvailabilityIndex)
	for _, entry := range entries {
		key := DateKey(entry.Date)
		day, ok := index[key]
		if !ok {
			day = make(map[uint]string)
			index[key] = day
		}
		day[entry.EmployeeCustomID] = entry.Status
	}
	return index
}

func (index AvailabilityIndex) Unavailable(employeeID uint, dateKey string) bool {
	_, ok := index[dateKey][employeeID]
	return ok
}

func (index AvailabilityIndex) StatusFor(employeeID uint, dateKey string) (string, bool) {
	status, ok := index[dateKey][employeeID]
	return status, ok
}
