// Package audit records every application submission attempt and its outcome.
// Entries are written through zerolog; a failure to write a log line never
// affects the request being audited.
package audit

import (
	"github.com/rs/zerolog"
)

// Recorder writes the audit trail for submission attempts.
type Recorder struct {
	logger zerolog.Logger
}

// NewRecorder creates a Recorder writing through the given logger.
func NewRecorder(logger zerolog.Logger) *Recorder {
	return &Recorder{logger: logger}
}

// SubmissionReceived records the raw field values of an inbound submission,
// before any validation has run.
func (r *Recorder) SubmissionReceived(fields map[string]string, domains []string) {
	event := r.logger.Info().Str("event", "submission_received")
	for key, value := range fields {
		event = event.Str(key, value)
	}
	event.Strs("domains", domains).Msg("Application submission received")
}

// ValidationRejected records a submission turned away by the validator.
func (r *Recorder) ValidationRejected(reason string) {
	r.logger.Warn().
		Str("event", "submission_rejected").
		Str("reason", reason).
		Msg("Application submission failed validation")
}

// Persisted records a successfully stored submission.
func (r *Recorder) Persisted(id int64, email string) {
	r.logger.Info().
		Str("event", "submission_persisted").
		Int64("applicationId", id).
		Str("email", email).
		Msg("Application persisted")
}

// PersistFailed records a submission the store refused. The full error detail
// lands here and nowhere user-visible.
func (r *Recorder) PersistFailed(email string, err error) {
	r.logger.Error().
		Str("event", "submission_persist_failed").
		Str("email", email).
		Err(err).
		Msg("Application could not be persisted")
}
