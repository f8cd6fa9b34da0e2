package schedule

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotEditing   = errors.New("draft is not in the editing phase")
	ErrNotPreviewed = errors.New("draft has not been previewed")
	ErrNoSuchJob    = errors.New("no job at that index")
	ErrWorkerBooked = errors.New("worker already assigned to another job that day")
	ErrNotValid     = errors.New("draft has validation errors")
)

type Phase int

const (
	PhaseEditing Phase = iota
	PhasePreview
	PhaseCommitted
)

const DefaultHours = 8

type Worker struct {
	EmployeeID uint    `json:"employeeId"`
	Hours      float64 `json:"hours"`
}

// Job is one (date, target) unit of work. Either InstallationID is set, or
// Custom is true and JobKey carries the stable identity of the ad-hoc task.
type Job struct {
	InstallationID uint      `json:"installationId,omitempty"`
	Custom         bool      `json:"custom,omitempty"`
	JobKey         uuid.UUID `json:"jobKey,omitempty"`
	Workers        []Worker  `json:"workers"`
	Notes          string    `json:"notes,omitempty"`
}

func (j Job) HasTarget() bool {
	return j.Custom || j.InstallationID != 0
}

func (j Job) HasWorker(employeeID uint) bool {
	for _, w := range j.Workers {
		if w.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

// Draft is an immutable in-memory schedule for one date. Every mutator returns
// a new Draft; committed state is never modified in place.
type Draft struct {
	DateKey string
	Phase   Phase
	Jobs    []Job
}

func NewDraft(dateKey string, jobs []Job) Draft {
	d := Draft{DateKey: dateKey, Phase: PhaseEditing}
	d.Jobs = copyJobs(jobs)
	return d
}

func copyJobs(jobs []Job) []Job {
	out := make([]Job, len(jobs))
	for i, job := range jobs {
		out[i] = job
		out[i].Workers = append([]Worker(nil), job.Workers...)
	}
	return out
}

func (d Draft) clone() Draft {
	d.Jobs = copyJobs(d.Jobs)
	return d
}

func (d Draft) checkJob(jobIndex int) error {
	if d.Phase != PhaseEditing {
		return ErrNotEditing
	}
	if jobIndex < 0 || jobIndex >= len(d.Jobs) {
		return ErrNoSuchJob
	}
	return nil
}

func (d Draft) AddJob() (Draft, error) {
	if d.Phase != PhaseEditing {
		return d, ErrNotEditing
	}
	next := d.clone()
	next.Jobs = append(next.Jobs, Job{})
	return next, nil
}

func (d Draft) RemoveJob(jobIndex int) (Draft, error) {
	if err := d.checkJob(jobIndex); err != nil {
		return d, err
	}
	next := d.clone()
	next.Jobs = append(next.Jobs[:jobIndex], next.Jobs[jobIndex+1:]...)
	return next, nil
}

func (d Draft) SetInstallationTarget(jobIndex int, installationID uint) (Draft, error) {
	if err := d.checkJob(jobIndex); err != nil {
		return d, err
	}
	next := d.clone()
	job := &next.Jobs[jobIndex]
	job.InstallationID = installationID
	job.Custom = false
	job.JobKey = uuid.Nil
	return next, nil
}

// SetCustomTarget turns the job into an ad-hoc task. Pass uuid.Nil to mint a
// fresh stable key, or an existing key to keep a reloaded job's identity.
// Notes carried over from a prior installation target are cleared.
func (d Draft) SetCustomTarget(jobIndex int, key uuid.UUID) (Draft, error) {
	if err := d.checkJob(jobIndex); err != nil {
		return d, err
	}
	next := d.clone()
	job := &next.Jobs[jobIndex]
	if !job.Custom {
		job.Notes = ""
	}
	if key == uuid.Nil {
		key = uuid.New()
	}
	job.JobKey = key
	job.Custom = true
	job.InstallationID = 0
	return next, nil
}

// AddWorker is a no-op when the worker is already on this job and an error
// when the worker is on any other job of the same date.
func (d Draft) AddWorker(jobIndex int, employeeID uint) (Draft, error) {
	if err := d.checkJob(jobIndex); err != nil {
		return d, err
	}
	if d.Jobs[jobIndex].HasWorker(employeeID) {
		return d, nil
	}
	for i, job := range d.Jobs {
		if i != jobIndex && job.HasWorker(employeeID) {
			return d, ErrWorkerBooked
		}
	}
	next := d.clone()
	job := &next.Jobs[jobIndex]
	job.Workers = append(job.Workers, Worker{EmployeeID: employeeID, Hours: DefaultHours})
	return next, nil
}

func (d Draft) RemoveWorker(jobIndex int, employeeID uint) (Draft, error) {
	if err := d.checkJob(jobIndex); err != nil {
		return d, err
	}
	next := d.clone()
	job := &next.Jobs[jobIndex]
	workers := job.Workers[:0]
	for _, w := range job.Workers {
		if w.EmployeeID != employeeID {
			workers = append(workers, w)
		}
	}
	job.Workers = workers
	return next, nil
}

func (d Draft) SetWorkerHours(jobIndex int, employeeID uint, hours float64) (Draft, error) {
	if err := d.checkJob(jobIndex); err != nil {
		return d, err
	}
	next := d.clone()
	job := &next.Jobs[jobIndex]
	for i := range job.Workers {
		if job.Workers[i].EmployeeID == employeeID {
			job.Workers[i].Hours = hours
		}
	}
	return next, nil
}

func (d Draft) SetNotes(jobIndex int, text string) (Draft, error) {
	if err := d.checkJob(jobIndex); err != nil {
		return d, err
	}
	next := d.clone()
	next.Jobs[jobIndex].Notes = text
	return next, nil
}

// Preview moves the draft out of the editing phase. The transition is gated on
// validation; the caller gets the full violation map back on failure.
func (d Draft) Preview() (Draft, ValidationResult, error) {
	if d.Phase != PhaseEditing {
		return d, nil, ErrNotEditing
	}
	result := Validate(d)
	if len(result) > 0 {
		return d, result, ErrNotValid
	}
	next := d.clone()
	next.Phase = PhasePreview
	return next, nil, nil
}

func (d Draft) BackToEditing() (Draft, error) {
	if d.Phase != PhasePreview {
		return d, ErrNotPreviewed
	}
	next := d.clone()
	next.Phase = PhaseEditing
	return next, nil
}

// Committed is called by the persistence layer after a successful flush.
func (d Draft) Committed() (Draft, error) {
	if d.Phase != PhasePreview {
		return d, ErrNotPreviewed
	}
	next := d.clone()
	next.Phase = PhaseCommitted
	return next, nil
}
