package episode

import (
	"time"

	"podclip/internal/status"
)

// StatusRecord is the episode's lifecycle state: a history plus the legacy
// scalar kept from records written before histories existed.
type StatusRecord struct {
	history status.History
	legacy  status.Label
}

// NewStatusRecord builds a record from its stored parts.
func NewStatusRecord(history status.History, legacy status.Label) StatusRecord {
	return StatusRecord{history: history, legacy: legacy}
}

// History returns the recorded transitions, oldest first.
func (r StatusRecord) History() status.History {
	return r.history
}

// Legacy returns the scalar status stored by older writers.
func (r StatusRecord) Legacy() status.Label {
	return r.legacy
}

// Current resolves the effective status.
func (r StatusRecord) Current() (status.Label, bool) {
	if label, ok := status.CurrentStatus(r.history); ok {
		return label, true
	}
	if r.legacy != "" {
		return r.legacy, true
	}
	return "", false
}

// Append returns a record with one more history entry. The legacy scalar is
// kept for readers that predate histories.
func (r StatusRecord) Append(label status.Label, ts time.Time) StatusRecord {
	return StatusRecord{history: status.Append(r.history, label, ts), legacy: r.legacy}
}
