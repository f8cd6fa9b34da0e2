package schedule

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidateCollectsAllViolations(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob()) // job 0: no target
	d = must(d.AddJob()) // job 1: target but no workers
	d = must(d.SetInstallationTarget(1, 42))

	result := Validate(d)
	if len(result) != 2 {
		t.Fatalf("got %d offending jobs, want 2: %v", len(result), result)
	}
	if _, ok := result[0][FieldTarget]; !ok {
		t.Errorf("job 0 missing %q violation: %v", FieldTarget, result[0])
	}
	if _, ok := result[1][FieldWorkers]; !ok {
		t.Errorf("job 1 missing %q violation: %v", FieldWorkers, result[1])
	}
}

func TestValidateCustomJobNeedsDescription(t *testing.T) {
	must := mustDraft(t)
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())
	d = must(d.SetCustomTarget(0, uuid.Nil))
	d = must(d.AddWorker(0, 7))
	d = must(d.SetNotes(0, "   "))

	result := Validate(d)
	if _, ok := result[0][FieldDescription]; !ok {
		t.Fatalf("whitespace-only description accepted: %v", result)
	}

	d = must(d.SetNotes(0, "warehouse cleanup"))
	if result := Validate(d); len(result) != 0 {
		t.Errorf("valid custom job flagged: %v", result)
	}
}

func TestValidateEmptyDraftIsValid(t *testing.T) {
	d := NewDraft("2024-05-01", nil)
	if result := Validate(d); len(result) != 0 {
		t.Errorf("empty draft flagged: %v", result)
	}
}

func TestValidateMissingTargetShadowsOtherRules(t *testing.T) {
	must := mustDraft(t)
	// a job with no target reports only the target violation, the rest is
	// meaningless until one is picked
	d := NewDraft("2024-05-01", nil)
	d = must(d.AddJob())

	result := Validate(d)
	if len(result[0]) != 1 {
		t.Errorf("job 0 violations = %v, want target only", result[0])
	}
}
