package timecode_test

import (
	"errors"
	"strings"
	"testing"

	"podclip/internal/services"
	"podclip/internal/timecode"
)

func TestTotalDuration(t *testing.T) {
	ranges := []timecode.Range{
		{StartTime: "00:00", EndTime: "00:30"},
		{StartTime: "01:00", EndTime: "01:45"},
	}
	total, err := timecode.TotalDuration(ranges)
	if err != nil {
		t.Fatalf("TotalDuration failed: %v", err)
	}
	if total != 75 {
		t.Fatalf("expected 75 seconds, got %d", total)
	}
}

func TestTotalDurationEmpty(t *testing.T) {
	for _, ranges := range [][]timecode.Range{nil, {}} {
		total, err := timecode.TotalDuration(ranges)
		if err != nil {
			t.Fatalf("expected no error for empty input, got %v", err)
		}
		if total != 0 {
			t.Fatalf("expected zero, got %d", total)
		}
	}
}

func TestTotalDurationMixedForms(t *testing.T) {
	ranges := []timecode.Range{
		{StartTime: "59:30", EndTime: "01:00:10"},
		{StartTime: "1:00:00", EndTime: "1:00:05"},
	}
	total, err := timecode.TotalDuration(ranges)
	if err != nil {
		t.Fatalf("TotalDuration failed: %v", err)
	}
	if total != 45 {
		t.Fatalf("expected 45 seconds, got %d", total)
	}
}

func TestTotalDurationKeepsNegativeDeltas(t *testing.T) {
	ranges := []timecode.Range{
		{StartTime: "00:10", EndTime: "00:40"},
		{StartTime: "02:00", EndTime: "01:00"},
	}
	total, err := timecode.TotalDuration(ranges)
	if err != nil {
		t.Fatalf("TotalDuration failed: %v", err)
	}
	if total != -30 {
		t.Fatalf("expected -30 seconds, got %d", total)
	}
}

func TestTotalDurationPropagatesInvalidFormat(t *testing.T) {
	ranges := []timecode.Range{
		{StartTime: "00:00", EndTime: "00:30"},
		{StartTime: "00:40", EndTime: "bad"},
	}
	_, err := timecode.TotalDuration(ranges)
	if !errors.Is(err, services.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "range 1 end") {
		t.Fatalf("expected offending range in message, got %q", err.Error())
	}
}

func TestTotalDurationRejectsOverflow(t *testing.T) {
	largest := "2562047788015215:30:07"
	cases := []struct {
		name   string
		ranges []timecode.Range
	}{
		{"positive", []timecode.Range{
			{StartTime: "00:00", EndTime: largest},
			{StartTime: "00:00", EndTime: "00:01"},
		}},
		{"negative", []timecode.Range{
			{StartTime: largest, EndTime: "00:00"},
			{StartTime: "00:01", EndTime: "00:00"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := timecode.TotalDuration(tc.ranges); !errors.Is(err, services.ErrInvalidDuration) {
				t.Fatalf("expected ErrInvalidDuration, got %v", err)
			}
		})
	}
}
