// Package status models lifecycle labels and the append-only status history
// carried by episodes and clips.
//
// A History is ordered oldest first; its last entry defines the current status.
// Histories are never edited in place: Append returns a fresh slice so callers
// holding the previous value keep an unchanged view.
//
// ClipStatus enumerates the clip pipeline states. Membership is checked by
// ParseClipStatus, but no transition graph is enforced; moving a published clip
// back to detected is the caller's decision.
package status
