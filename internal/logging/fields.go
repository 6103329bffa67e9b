package logging

const (
	// FieldComponent names the subsystem emitting the line (scanner, encoder, workflow).
	FieldComponent = "component"
	// FieldEventType is a stable machine-readable name for the event.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the operator's next step for warnings and errors.
	FieldErrorHint = "error_hint"
	// FieldImpact states the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldCorrelationID ties together every line emitted for one job.
	FieldCorrelationID = "correlation_id"
	// FieldErrorKind carries the job.Kind label of a failure.
	FieldErrorKind = "error_kind"
	// FieldState carries the workflow loop state.
	FieldState = "state"
)
