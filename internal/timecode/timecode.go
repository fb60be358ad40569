package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"podclip/internal/services"
)

// Parse converts an MM:SS or HH:MM:SS time code to seconds.
func Parse(text string) (int64, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty time code", services.ErrInvalidFormat)
	}
	segments := strings.Split(text, ":")
	if len(segments) != 2 && len(segments) != 3 {
		return 0, fmt.Errorf("%w: %q must be MM:SS or HH:MM:SS", services.ErrInvalidFormat, text)
	}

	values := make([]int64, len(segments))
	for i, segment := range segments {
		value, err := parseField(segment)
		if err != nil {
			return 0, fmt.Errorf("%w: %q field %d: %w", services.ErrInvalidFormat, text, i+1, err)
		}
		values[i] = value
	}

	weights := []int64{60, 1}
	if len(values) == 3 {
		weights = []int64{3600, 60, 1}
	}
	var total int64
	for i, value := range values {
		if value > (math.MaxInt64-total)/weights[i] {
			return 0, fmt.Errorf("%w: %q exceeds the representable range", services.ErrInvalidFormat, text)
		}
		total += value * weights[i]
	}
	return total, nil
}

// parseField accepts only ASCII digits; strconv alone would also take a sign.
func parseField(field string) (int64, error) {
	if field == "" {
		return 0, errors.New("empty field")
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, fmt.Errorf("non-digit %q", field[i])
		}
	}
	return strconv.ParseInt(field, 10, 64)
}

// Format renders seconds as a zero-padded HH:MM:SS time code. Fractional
// seconds are truncated.
func Format(seconds float64) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "", fmt.Errorf("%w: %v is not a non-negative finite number", services.ErrInvalidDuration, seconds)
	}
	if seconds >= math.MaxInt64 {
		return "", fmt.Errorf("%w: %v exceeds the representable range", services.ErrInvalidDuration, seconds)
	}
	return formatWhole(int64(math.Floor(seconds))), nil
}

// MustFormat is Format for whole seconds already known to be valid, such as
// non-negative sums. Negative input renders as an empty string.
func MustFormat(seconds int64) string {
	if seconds < 0 {
		return ""
	}
	return formatWhole(seconds)
}

func formatWhole(total int64) string {
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
