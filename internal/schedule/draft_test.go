package schedule

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// mustDraft returns an applier so mutator calls can be passed through
// directly: must := mustDraft(t); d = must(d.AddJob()).
func mustDraft(t *testing.T) func(Draft, error) Draft {
	t.Helper()
	return func(d Draft, err error) Draft {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected draft error: %v", err)
		}
		return d
	}
}

func TestAddJobAndTargets(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())
	d = must(d.AddJob())
	if len(d.Jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(d.Jobs))
	}

	d = must(d.SetInstallationTarget(0, 42))
	if d.Jobs[0].InstallationID != 42 || d.Jobs[0].Custom {
		t.Errorf("job 0 target = %+v, want installation 42", d.Jobs[0])
	}

	d = must(d.SetCustomTarget(1, uuid.Nil))
	if !d.Jobs[1].Custom || d.Jobs[1].JobKey == uuid.Nil {
		t.Errorf("job 1 = %+v, want custom with generated key", d.Jobs[1])
	}
}

func TestSetCustomTargetClearsInstallationNotes(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())
	d = must(d.SetInstallationTarget(0, 42))
	d = must(d.SetNotes(0, "bring the crane"))

	d = must(d.SetCustomTarget(0, uuid.Nil))
	if d.Jobs[0].Notes != "" {
		t.Errorf("notes = %q, want cleared on switch to custom", d.Jobs[0].Notes)
	}

	// switching custom->custom keeps the description
	d = must(d.SetNotes(0, "warehouse cleanup"))
	key := d.Jobs[0].JobKey
	d = must(d.SetCustomTarget(0, key))
	if d.Jobs[0].Notes != "warehouse cleanup" {
		t.Errorf("notes = %q, want kept for custom job", d.Jobs[0].Notes)
	}
	if d.Jobs[0].JobKey != key {
		t.Errorf("job key changed on re-set")
	}
}

func TestNoDoubleBookingAcrossJobs(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())
	d = must(d.AddJob())
	d = must(d.AddWorker(0, 7))

	if _, err := d.AddWorker(1, 7); !errors.Is(err, ErrWorkerBooked) {
		t.Fatalf("AddWorker to second job = %v, want ErrWorkerBooked", err)
	}

	// re-adding to the same job is a silent no-op
	d = must(d.AddWorker(0, 7))
	if len(d.Jobs[0].Workers) != 1 {
		t.Errorf("got %d workers, want 1 after duplicate add", len(d.Jobs[0].Workers))
	}

	// after removal the worker may move to the other job
	d = must(d.RemoveWorker(0, 7))
	d = must(d.AddWorker(1, 7))

	seen := map[uint]int{}
	for _, job := range d.Jobs {
		for _, w := range job.Workers {
			seen[w.EmployeeID]++
		}
	}
	for id, count := range seen {
		if count > 1 {
			t.Errorf("worker %d appears in %d jobs", id, count)
		}
	}
}

func TestMutatorsDoNotTouchOriginal(t *testing.T) {
	must := mustDraft(t)
	base := NewDraft("2024-05-01", nil)
	base = must(base.AddJob())
	base = must(base.SetInstallationTarget(0, 42))
	base = must(base.AddWorker(0, 7))

	next := must(base.AddWorker(0, 9))
	if len(base.Jobs[0].Workers) != 1 {
		t.Errorf("original draft gained a worker: %+v", base.Jobs[0].Workers)
	}
	if len(next.Jobs[0].Workers) != 2 {
		t.Errorf("new draft has %d workers, want 2", len(next.Jobs[0].Workers))
	}

	next = must(next.RemoveJob(0))
	if len(base.Jobs) != 1 {
		t.Errorf("original draft lost a job")
	}
}

func TestSetWorkerHours(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())
	d = must(d.AddWorker(0, 7))
	if d.Jobs[0].Workers[0].Hours != DefaultHours {
		t.Errorf("default hours = %v, want %v", d.Jobs[0].Workers[0].Hours, DefaultHours)
	}
	d = must(d.SetWorkerHours(0, 7, 6.5))
	if d.Jobs[0].Workers[0].Hours != 6.5 {
		t.Errorf("hours = %v, want 6.5", d.Jobs[0].Workers[0].Hours)
	}
}

func TestJobIndexOutOfRange(t *testing.T) {
	d := NewDraft("2024-05-01", nil)
	if _, err := d.RemoveJob(0); !errors.Is(err, ErrNoSuchJob) {
		t.Errorf("RemoveJob on empty draft = %v, want ErrNoSuchJob", err)
	}
	if _, err := d.AddWorker(-1, 7); !errors.Is(err, ErrNoSuchJob) {
		t.Errorf("AddWorker(-1) = %v, want ErrNoSuchJob", err)
	}
}

func TestPhaseTransitions(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())
	d = must(d.SetInstallationTarget(0, 42))
	d = must(d.AddWorker(0, 7))

	previewed, violations, err := d.Preview()
	if err != nil || len(violations) != 0 {
		t.Fatalf("Preview = %v (violations %v), want clean transition", err, violations)
	}
	if previewed.Phase != PhasePreview {
		t.Fatalf("phase = %v, want PhasePreview", previewed.Phase)
	}

	// no edits while previewed
	if _, err := previewed.AddWorker(0, 9); !errors.Is(err, ErrNotEditing) {
		t.Errorf("AddWorker in preview = %v, want ErrNotEditing", err)
	}

	back, err := previewed.BackToEditing()
	if err != nil || back.Phase != PhaseEditing {
		t.Errorf("BackToEditing = (%v, %v), want editing phase", back.Phase, err)
	}

	committed, err := previewed.Committed()
	if err != nil || committed.Phase != PhaseCommitted {
		t.Errorf("Committed = (%v, %v), want committed phase", committed.Phase, err)
	}

	// commit requires a preview first
	if _, err := d.Committed(); !errors.Is(err, ErrNotPreviewed) {
		t.Errorf("Committed from editing = %v, want ErrNotPreviewed", err)
	}
}

func TestPreviewBlockedByValidation(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())

	_, violations, err := d.Preview()
	if !errors.Is(err, ErrNotValid) {
		t.Fatalf("Preview = %v, want ErrNotValid", err)
	}
	if len(violations) != 1 {
		t.Errorf("got %d violations, want 1", len(violations))
	}
}
