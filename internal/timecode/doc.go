// Package timecode converts between human time codes and whole seconds and
// aggregates elapsed time across ordered ranges.
//
// Accepted inputs are MM:SS and HH:MM:SS with ASCII-digit fields that need
// not be zero padded. Format always renders HH:MM:SS with each field padded to
// a minimum width of two; hours are never wrapped, so 24 hours renders as
// 24:00:00.
//
// Every error wraps services.ErrInvalidFormat or services.ErrInvalidDuration.
package timecode
