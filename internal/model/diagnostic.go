package model

// DiagnosticKind labels the data-quality conditions observed while
// normalizing an analysis payload.
type DiagnosticKind string

const (
	DiagnosticJoinMiss          DiagnosticKind = "JOIN_MISS"
	DiagnosticAmbiguousCategory DiagnosticKind = "AMBIGUOUS_CATEGORY"
)

// DiagnosticEvent is one data-quality signal queued for persistence.
// These feed the analysis_diagnostics table; they never affect the
// report returned to the caller.
type DiagnosticEvent struct {
	StudentID string         `json:"student_id"`
	Kind      DiagnosticKind `json:"kind"`
	Year      int            `json:"year,omitempty"`
	Semester  string         `json:"semester,omitempty"`
	Detail    string         `json:"detail,omitempty"`
}
