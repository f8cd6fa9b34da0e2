package schedule

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/kairos-ukr/ses-sub000/internal/models"
)

// JobsFromRows rebuilds the grouped-by-date job shape from flat assignment
// rows. Rows sharing (date, installation) merge into one job; custom rows
// merge by their stable JobKey, or by notes text when an old row has none.
func JobsFromRows(rows []models.AssignmentRow) map[string][]Job {
	type slot struct {
		dateKey string
		index   int
	}
	jobsByDate := make(map[string][]Job)
	slots := make(map[string]slot)

	for _, row := range rows {
		dateKey := DateKey(row.Date)

		var groupKey string
		switch {
		case row.InstallationCustomID != nil:
			groupKey = dateKey + "|inst|" + strconv.FormatUint(uint64(*row.InstallationCustomID), 10)
		case row.JobKey != nil && *row.JobKey != uuid.Nil:
			groupKey = dateKey + "|key|" + row.JobKey.String()
		default:
			groupKey = dateKey + "|notes|" + row.Notes
		}

		if found, ok := slots[groupKey]; ok {
			job := &jobsByDate[found.dateKey][found.index]
			if !job.HasWorker(row.EmployeeCustomID) {
				job.Workers = append(job.Workers, Worker{EmployeeID: row.EmployeeCustomID, Hours: row.Hours})
			}
			if job.Notes == "" {
				job.Notes = row.Notes
			}
			continue
		}

		job := Job{
			Workers: []Worker{{EmployeeID: row.EmployeeCustomID, Hours: row.Hours}},
			Notes:   row.Notes,
		}
		if row.InstallationCustomID != nil {
			job.InstallationID = *row.InstallationCustomID
		} else {
			job.Custom = true
			if row.JobKey != nil {
				job.JobKey = *row.JobKey
			}
		}

		jobsByDate[dateKey] = append(jobsByDate[dateKey], job)
		slots[groupKey] = slot{dateKey: dateKey, index: len(jobsByDate[dateKey]) - 1}
	}

	return jobsByDate
}

// RowsFromDraft flattens the draft into one row per (job, worker) pair. An
// all-removed day flattens to zero rows, which is a valid end state.
func RowsFromDraft(d Draft) ([]models.AssignmentRow, error) {
	date, err := ParseDateKey(d.DateKey)
	if err != nil {
		return nil, err
	}

	var rows []models.AssignmentRow
	for _, job := range d.Jobs {
		for _, worker := range job.Workers {
			row := models.AssignmentRow{
				Date:             date,
				EmployeeCustomID: worker.EmployeeID,
				Hours:            worker.Hours,
				Notes:            job.Notes,
			}
			if job.Custom {
				if job.JobKey != uuid.Nil {
					key := job.JobKey
					row.JobKey = &key
				}
			} else {
				installationID := job.InstallationID
				row.InstallationCustomID = &installationID
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}
