package timecode_test

import (
	"errors"
	"math"
	"testing"

	"podclip/internal/services"
	"podclip/internal/timecode"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"01:30", 90},
		{"01:30:45", 5445},
		{"0:0", 0},
		{"5:7", 307},
		{"00:00:59", 59},
		{"100:00:00", 360000},
		{"90:00", 5400},
	}
	for _, tc := range cases {
		got, err := timecode.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"90",
		"1:2:3:4",
		"aa:bb",
		"01:3x",
		"-1:30",
		"+1:30",
		" 1:30",
		"1:",
		":30",
		"1.5:30",
		"01-30",
	}
	for _, input := range inputs {
		if _, err := timecode.Parse(input); !errors.Is(err, services.ErrInvalidFormat) {
			t.Fatalf("Parse(%q): expected ErrInvalidFormat, got %v", input, err)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{90, "00:01:30"},
		{5445, "01:30:45"},
		{86400, "24:00:00"},
		{360000, "100:00:00"},
		{61.9, "00:01:01"},
	}
	for _, tc := range cases {
		got, err := timecode.Format(tc.input)
		if err != nil {
			t.Fatalf("Format(%v) failed: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatRejectsInvalid(t *testing.T) {
	for _, input := range []float64{-1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := timecode.Format(input); !errors.Is(err, services.ErrInvalidDuration) {
			t.Fatalf("Format(%v): expected ErrInvalidDuration, got %v", input, err)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, seconds := range []int64{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399, 86400, 359999, 1234567} {
		text, err := timecode.Format(float64(seconds))
		if err != nil {
			t.Fatalf("Format(%d) failed: %v", seconds, err)
		}
		back, err := timecode.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", text, err)
		}
		if back != seconds {
			t.Fatalf("round trip of %d produced %d via %q", seconds, back, text)
		}
	}
}

func TestMustFormat(t *testing.T) {
	if got := timecode.MustFormat(75); got != "00:01:15" {
		t.Fatalf("MustFormat(75) = %q", got)
	}
	if got := timecode.MustFormat(-5); got != "" {
		t.Fatalf("expected empty string for negative input, got %q", got)
	}
}

func TestParseRejectsOverflow(t *testing.T) {
	inputs := []string{
		"3000000000000000:00:00",
		"2562047788015216:00:00",
		"153722867280912931:00",
		"99999999999999999999:00",
	}
	for _, input := range inputs {
		got, err := timecode.Parse(input)
		if !errors.Is(err, services.ErrInvalidFormat) {
			t.Fatalf("Parse(%q): expected ErrInvalidFormat, got %d, %v", input, got, err)
		}
	}
}

func TestParseLargestValue(t *testing.T) {
	// 2562047788015215*3600 + 30*60 + 7 == math.MaxInt64
	got, err := timecode.Parse("2562047788015215:30:07")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != math.MaxInt64 {
		t.Fatalf("expected MaxInt64, got %d", got)
	}
}

func TestMustFormatLargeValues(t *testing.T) {
	if got := timecode.MustFormat(math.MaxInt64); got != "2562047788015215:30:07" {
		t.Fatalf("MustFormat(MaxInt64) = %q", got)
	}
	if got := timecode.MustFormat(-1); got != "" {
		t.Fatalf("MustFormat(-1) = %q, want empty", got)
	}
}
