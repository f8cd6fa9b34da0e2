package schedule

import "strings"

const (
	FieldTarget      = "target"
	FieldDescription = "description"
	FieldWorkers     = "workers"
)

// ValidationResult maps job index -> field -> message so the caller can
// annotate every offending field at once.
type ValidationResult map[int]map[string]string

func (r ValidationResult) add(jobIndex int, field, message string) {
	fields, ok := r[jobIndex]
	if !ok {
		fields = make(map[string]string)
		r[jobIndex] = fields
	}
	fields[field] = message
}

// Validate collects every violation in the draft; it never fails fast.
func Validate(d Draft) ValidationResult {
	result := make(ValidationResult)
	for i, job := range d.Jobs {
		if !job.HasTarget() {
			result.add(i, FieldTarget, "select an installation or a custom task")
			continue
		}
		if job.Custom && strings.TrimSpace(job.Notes) == "" {
			result.add(i, FieldDescription, "custom task needs a description")
		}
		if len(job.Workers) == 0 {
			result.add(i, FieldWorkers, "assign at least one worker")
		}
	}
	return result
}
