package domain

import "time"

// BuildRecord is the persisted outcome of one invocation.
type BuildRecord struct {
	Target      string    `json:"target"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	State       State     `json:"state"`
	FailedPhase State     `json:"failed_phase,omitzero"`
	ErrorKind   ErrorKind `json:"error_kind,omitzero"`
	ExitCode    int       `json:"exit_code"`
	Message     string    `json:"message,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
	// Duration is the wall-clock time of the whole invocation.
	Duration time.Duration `json:"duration,omitzero"`
}
