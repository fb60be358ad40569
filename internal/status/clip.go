package status

import "strings"

// ClipStatus represents the lifecycle of a generated clip.
type ClipStatus string

const (
	ClipDetected   ClipStatus = "detected"
	ClipProcessing ClipStatus = "processing"
	ClipProcessed  ClipStatus = "processed"
	ClipFailed     ClipStatus = "failed"
	ClipReviewed   ClipStatus = "reviewed"
	ClipApproved   ClipStatus = "approved"
	ClipRejected   ClipStatus = "rejected"
	ClipPublished  ClipStatus = "published"
)

var allClipStatuses = []ClipStatus{
	ClipDetected,
	ClipProcessing,
	ClipProcessed,
	ClipFailed,
	ClipReviewed,
	ClipApproved,
	ClipRejected,
	ClipPublished,
}

var clipStatusSet = func() map[ClipStatus]struct{} {
	set := make(map[ClipStatus]struct{}, len(allClipStatuses))
	for _, s := range allClipStatuses {
		set[s] = struct{}{}
	}
	return set
}()

// AllClipStatuses returns the ordered list of known clip statuses.
func AllClipStatuses() []ClipStatus {
	cp := make([]ClipStatus, len(allClipStatuses))
	copy(cp, allClipStatuses)
	return cp
}

// ParseClipStatus converts a string into a known ClipStatus.
func ParseClipStatus(value string) (ClipStatus, bool) {
	normalized := ClipStatus(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := clipStatusSet[normalized]
	return normalized, ok
}

// Known reports whether s is a member of the clip status set.
func (s ClipStatus) Known() bool {
	_, ok := clipStatusSet[s]
	return ok
}

// Label converts the clip status to a history label.
func (s ClipStatus) Label() Label {
	return Label(s)
}
