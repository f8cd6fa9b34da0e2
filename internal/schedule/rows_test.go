package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-ukr/ses-sub000/internal/models"
)

func date(t *testing.T, key string) time.Time {
	t.Helper()
	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("bad date key %q: %v", key, err)
	}
	return parsed
}

func instID(id uint) *uint { return &id }

func TestJobsFromRowsMergesInstallationRows(t *testing.T) {
	day := date(t, "2024-05-01")
	rows := []models.AssignmentRow{
		{Date: day, InstallationCustomID: instID(42), EmployeeCustomID: 7, Hours: 8},
		{Date: day, InstallationCustomID: instID(42), EmployeeCustomID: 9, Hours: 6},
		{Date: day, InstallationCustomID: instID(42), EmployeeCustomID: 7, Hours: 8},
	}

	jobsByDate := JobsFromRows(rows)
	jobs := jobsByDate["2024-05-01"]
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1 merged job: %+v", len(jobs), jobs)
	}
	job := jobs[0]
	if job.InstallationID != 42 || job.Custom {
		t.Errorf("job target = %+v, want installation 42", job)
	}
	if len(job.Workers) != 2 || job.Workers[0].EmployeeID != 7 || job.Workers[1].EmployeeID != 9 {
		t.Errorf("workers = %+v, want [7 9]", job.Workers)
	}
}

func TestJobsFromRowsCustomGroupedByNotes(t *testing.T) {
	day := date(t, "2024-05-01")
	rows := []models.AssignmentRow{
		{Date: day, EmployeeCustomID: 7, Hours: 8, Notes: "Warehouse cleanup"},
		{Date: day, EmployeeCustomID: 9, Hours: 8, Notes: "Warehouse cleanup"},
		{Date: day, EmployeeCustomID: 11, Hours: 4, Notes: "Panel delivery"},
	}

	jobs := JobsFromRows(rows)["2024-05-01"]
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2: %+v", len(jobs), jobs)
	}
	if !jobs[0].Custom || len(jobs[0].Workers) != 2 || jobs[0].Notes != "Warehouse cleanup" {
		t.Errorf("first custom job = %+v, want merged cleanup pair", jobs[0])
	}
	if len(jobs[1].Workers) != 1 || jobs[1].Notes != "Panel delivery" {
		t.Errorf("second custom job = %+v, want separate delivery job", jobs[1])
	}
}

func TestJobsFromRowsCustomGroupedByJobKey(t *testing.T) {
	day := date(t, "2024-05-01")
	keyA := uuid.New()
	keyB := uuid.New()
	rows := []models.AssignmentRow{
		{Date: day, JobKey: &keyA, EmployeeCustomID: 7, Notes: "Cleanup"},
		{Date: day, JobKey: &keyA, EmployeeCustomID: 9, Notes: "Cleanup"},
		// same notes text but a different key stays a separate job
		{Date: day, JobKey: &keyB, EmployeeCustomID: 11, Notes: "Cleanup"},
	}

	jobs := JobsFromRows(rows)["2024-05-01"]
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2 keyed jobs: %+v", len(jobs), jobs)
	}
	if jobs[0].JobKey != keyA || len(jobs[0].Workers) != 2 {
		t.Errorf("keyed job A = %+v", jobs[0])
	}
	if jobs[1].JobKey != keyB || len(jobs[1].Workers) != 1 {
		t.Errorf("keyed job B = %+v", jobs[1])
	}
}

func TestJobsFromRowsSplitsDates(t *testing.T) {
	rows := []models.AssignmentRow{
		{Date: date(t, "2024-05-01"), InstallationCustomID: instID(42), EmployeeCustomID: 7},
		{Date: date(t, "2024-05-02"), InstallationCustomID: instID(42), EmployeeCustomID: 7},
	}
	jobsByDate := JobsFromRows(rows)
	if len(jobsByDate) != 2 {
		t.Fatalf("got %d dates, want 2", len(jobsByDate))
	}
	if len(jobsByDate["2024-05-01"]) != 1 || len(jobsByDate["2024-05-02"]) != 1 {
		t.Errorf("same installation on two dates must stay two jobs: %+v", jobsByDate)
	}
}

func TestRowsFromDraftEmptyDay(t *testing.T) {
	d := NewDraft("2024-05-01", nil)
	rows, err := RowsFromDraft(d)
	if err != nil {
		t.Fatalf("RowsFromDraft: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("empty draft flattened to %d rows, want 0", len(rows))
	}
}

func TestRowsFromDraftRoundTrip(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())
	d = must(d.SetInstallationTarget(0, 42))
	d = must(d.AddWorker(0, 7))
	d = must(d.AddWorker(0, 9))
	d = must(d.SetWorkerHours(0, 9, 4))
	d = must(d.SetNotes(0, "south field"))

	d = must(d.AddJob())
	d = must(d.SetCustomTarget(1, uuid.Nil))
	d = must(d.SetNotes(1, "Warehouse cleanup"))
	d = must(d.AddWorker(1, 11))

	rows, err := RowsFromDraft(d)
	if err != nil {
		t.Fatalf("RowsFromDraft: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	reloaded := JobsFromRows(rows)["2024-05-01"]
	if len(reloaded) != 2 {
		t.Fatalf("round trip produced %d jobs, want 2", len(reloaded))
	}

	first := reloaded[0]
	if first.InstallationID != 42 || first.Notes != "south field" {
		t.Errorf("first job = %+v", first)
	}
	if len(first.Workers) != 2 || first.Workers[0] != (Worker{EmployeeID: 7, Hours: 8}) ||
		first.Workers[1] != (Worker{EmployeeID: 9, Hours: 4}) {
		t.Errorf("first job workers = %+v", first.Workers)
	}

	second := reloaded[1]
	if !second.Custom || second.JobKey != d.Jobs[1].JobKey || second.Notes != "Warehouse cleanup" {
		t.Errorf("second job = %+v, want custom job with preserved key", second)
	}
}
