package services

import "time"

// Clock supplies wall-clock time. Components that derive timestamps read it
// once per operation.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reports the current UTC time.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
