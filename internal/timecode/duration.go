package timecode

import (
	"fmt"
	"math"

	"podclip/internal/services"
)

// Range is a time-coded slice of source media.
type Range struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TotalDuration sums end minus start across the ranges in order. An empty
// list sums to zero. Ranges whose end precedes their start contribute a
// negative delta; they are not rejected. A sum outside ±math.MaxInt64 fails
// with services.ErrInvalidDuration.
func TotalDuration(ranges []Range) (int64, error) {
	var total int64
	for i, r := range ranges {
		start, err := Parse(r.StartTime)
		if err != nil {
			return 0, services.Wrap(nil, "timecode", "total duration", fmt.Sprintf("range %d start", i), err)
		}
		end, err := Parse(r.EndTime)
		if err != nil {
			return 0, services.Wrap(nil, "timecode", "total duration", fmt.Sprintf("range %d end", i), err)
		}
		delta := end - start
		if (delta > 0 && total > math.MaxInt64-delta) || (delta < 0 && total < -math.MaxInt64-delta) {
			return 0, services.Wrap(services.ErrInvalidDuration, "timecode", "total duration", fmt.Sprintf("range %d overflows the total", i), nil)
		}
		total += delta
	}
	return total, nil
}
