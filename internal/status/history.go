package status

import (
	"bytes"
	"encoding/json"
	"time"
)

// TimestampLayout is the ISO 8601 layout used for history timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Label names a lifecycle stage, either an episode stage or a ClipStatus value.
type Label string

// Episode stage labels used by the production pipeline. Histories accept any
// label; these are the ones podclip itself writes.
const (
	LabelDraft          Label = "Draft"
	LabelTracksUploaded Label = "Tracks Uploaded"
	LabelReadyForClips  Label = "Ready for Clip Gen"
	LabelClipsGenerated Label = "Clips Generated"
	LabelInReview       Label = "In Review"
	LabelPublished      Label = "Published"
)

// Entry records one lifecycle transition.
type Entry struct {
	Status    Label  `json:"status,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// History is an append-only, chronologically ordered list of entries.
type History []Entry

// CurrentStatus returns the status of the last entry. It reports false for an
// empty history and for a trailing entry without a status; earlier entries are
// never consulted.
func CurrentStatus(h History) (Label, bool) {
	if len(h) == 0 {
		return "", false
	}
	last := h[len(h)-1]
	if last.Status == "" {
		return "", false
	}
	return last.Status, true
}

// Current is CurrentStatus as a method.
func (h History) Current() (Label, bool) {
	return CurrentStatus(h)
}

// Append returns a new history with one trailing entry. The input is not
// modified and the result never shares its backing array.
func Append(h History, label Label, ts time.Time) History {
	next := make(History, len(h), len(h)+1)
	copy(next, h)
	return append(next, Entry{Status: label, Timestamp: ts.UTC().Format(TimestampLayout)})
}

// UnmarshalJSON decodes a history, treating null or any non-array value as an
// absent history instead of failing.
func (h *History) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		*h = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	entries := make(History, 0, len(raw))
	for _, item := range raw {
		entries = append(entries, decodeEntry(item))
	}
	*h = entries
	return nil
}

// decodeEntry keeps malformed elements as empty entries so they still occupy
// their position in the history.
func decodeEntry(raw json.RawMessage) Entry {
	var fields struct {
		Status    any `json:"status"`
		Timestamp any `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Entry{}
	}
	var entry Entry
	if s, ok := fields.Status.(string); ok {
		entry.Status = Label(s)
	}
	if s, ok := fields.Timestamp.(string); ok {
		entry.Timestamp = s
	}
	return entry
}
