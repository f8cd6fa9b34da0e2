package schedule

import "github.com/kairos-ukr/ses-sub000/internal/models"

// RoleFilter reports whether an employee is eligible for field assignment at
// all. Department rules are the caller's business; the engine assumes nothing
// about department names, and a nil filter admits everyone.
type RoleFilter func(models.Employee) bool

// FieldWorkFilter excludes employees whose every department is in the given
// exclusion list. An employee with no department at all stays eligible.
func FieldWorkFilter(excludedDepartments ...string) RoleFilter {
	excluded := make(map[string]struct{}, len(excludedDepartments))
	for _, dep := range excludedDepartments {
		excluded[dep] = struct{}{}
	}
	return func(e models.Employee) bool {
		if len(e.Departments) == 0 {
			return true
		}
		for _, dep := range e.Departments {
			if _, ok := excluded[dep]; !ok {
				return true
			}
		}
		return false
	}
}

// AvailableWorkers computes which employees may still be added to the given
// job: not filtered out, not off that day, not on another job that day, not
// already on this job. Order follows the employees slice, which the caller
// keeps sorted by name.
func AvailableWorkers(d Draft, jobIndex int, index AvailabilityIndex, employees []models.Employee, filter RoleFilter) []models.Employee {
	if jobIndex < 0 || jobIndex >= len(d.Jobs) {
		return nil
	}

	assignedElsewhere := make(map[uint]struct{})
	for i, job := range d.Jobs {
		if i == jobIndex {
			continue
		}
		for _, w := range job.Workers {
			assignedElsewhere[w.EmployeeID] = struct{}{}
		}
	}

	var available []models.Employee
	for _, employee := range employees {
		if filter != nil && !filter(employee) {
			continue
		}
		if index.Unavailable(employee.CustomID, d.DateKey) {
			continue
		}
		if _, ok := assignedElsewhere[employee.CustomID]; ok {
			continue
		}
		if d.Jobs[jobIndex].HasWorker(employee.CustomID) {
			continue
		}
		available = append(available, employee)
	}
	return available
}
