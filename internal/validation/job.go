package validation

import (
	"time"

	"github.com/google/uuid"

	"xbrlgate/internal/packages"
)

// Status is a validation job's lifecycle state. Transitions are monotonic:
// pending → classifying → submitting → one terminal state.
type Status string

const (
	StatusPending     Status = "pending"
	StatusClassifying Status = "classifying"
	StatusSubmitting  Status = "submitting"
	StatusCompleted   Status = "completed"
	StatusRejected    Status = "rejected"
	StatusFailed      Status = "failed"
	StatusTimedOut    Status = "timed_out"
)

// Terminal reports whether the status ends a job's lifecycle.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusFailed, StatusTimedOut:
		return true
	}
	return false
}

// Job tracks one filing submission through pre-check and engine validation.
// A job whose taxonomy package fails the pre-check is rejected without the
// engine ever being called; its Verdict explains why.
type Job struct {
	ID               uuid.UUID         `json:"id"`
	Status           Status            `json:"status"`
	InstanceFilename string            `json:"instance_filename"`
	TaxonomyFilename string            `json:"taxonomy_filename,omitempty"`
	TableCode        string            `json:"table_code,omitempty"`
	Verdict          *packages.Verdict `json:"verdict,omitempty"`
	Result           *Result           `json:"result,omitempty"`
	Error            string            `json:"error,omitempty"`
	SubmittedAt      time.Time         `json:"submitted_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// SubmitCommand carries the data needed to start a validation job.
// TaxonomyData is optional; TableCode selects a rule subset on the engine.
type SubmitCommand struct {
	InstanceFilename string
	InstanceData     []byte
	TaxonomyFilename string
	TaxonomyData     []byte
	TableCode        string
}

// EngineStatus reports the outcome of an engine reachability check.
type EngineStatus struct {
	Endpoint  string    `json:"endpoint,omitempty"`
	Healthy   bool      `json:"healthy"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}
