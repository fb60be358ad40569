package status_test

import (
	"encoding/json"
	"testing"
	"time"

	"podclip/internal/status"
)

func TestCurrentStatusUsesLastEntry(t *testing.T) {
	h := status.History{
		{Status: "Draft", Timestamp: "2024-01-01T00:00:00.000Z"},
		{Status: "Ready for Clip Gen", Timestamp: "2024-01-02T00:00:00.000Z"},
	}
	got, ok := status.CurrentStatus(h)
	if !ok || got != "Ready for Clip Gen" {
		t.Fatalf("expected Ready for Clip Gen, got %q (ok=%v)", got, ok)
	}
}

func TestCurrentStatusAbsent(t *testing.T) {
	for name, h := range map[string]status.History{"nil": nil, "empty": {}} {
		if got, ok := status.CurrentStatus(h); ok {
			t.Fatalf("%s: expected no current status, got %q", name, got)
		}
	}
}

func TestCurrentStatusDoesNotFallBack(t *testing.T) {
	h := status.History{
		{Status: "Draft", Timestamp: "2024-01-01T00:00:00.000Z"},
		{Timestamp: "2024-01-02T00:00:00.000Z"},
	}
	if got, ok := h.Current(); ok {
		t.Fatalf("expected malformed trailing entry to yield no status, got %q", got)
	}
}

func TestAppendDoesNotMutateInput(t *testing.T) {
	base := make(status.History, 1, 4)
	base[0] = status.Entry{Status: status.LabelDraft, Timestamp: "2024-01-01T00:00:00.000Z"}

	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	first := status.Append(base, status.LabelTracksUploaded, at)
	second := status.Append(base, status.LabelInReview, at)

	if len(base) != 1 {
		t.Fatalf("input length changed to %d", len(base))
	}
	if first[1].Status != status.LabelTracksUploaded {
		t.Fatalf("first append was clobbered: %+v", first)
	}
	if second[1].Status != status.LabelInReview {
		t.Fatalf("unexpected second append: %+v", second)
	}
	if first[1].Timestamp != "2024-05-06T07:08:09.000Z" {
		t.Fatalf("unexpected timestamp %q", first[1].Timestamp)
	}
	if got, _ := status.CurrentStatus(first); got != status.LabelTracksUploaded {
		t.Fatalf("expected appended label to become current, got %q", got)
	}
}

func TestAppendToEmpty(t *testing.T) {
	h := status.Append(nil, status.LabelDraft, time.Unix(0, 0))
	if len(h) != 1 || h[0].Status != status.LabelDraft {
		t.Fatalf("unexpected history %+v", h)
	}
}

func TestHistoryUnmarshalTolerant(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		current status.Label
		ok      bool
		length  int
	}{
		{"null", `{"statusHistory":null}`, "", false, 0},
		{"object", `{"statusHistory":{"status":"Draft"}}`, "", false, 0},
		{"string", `{"statusHistory":"Draft"}`, "", false, 0},
		{"empty", `{"statusHistory":[]}`, "", false, 0},
		{"valid", `{"statusHistory":[{"status":"Draft","timestamp":"t1"},{"status":"Published","timestamp":"t2"}]}`, "Published", true, 2},
		{"missing status", `{"statusHistory":[{"status":"Draft"},{"timestamp":"t2"}]}`, "", false, 2},
		{"non-string status", `{"statusHistory":[{"status":"Draft"},{"status":7}]}`, "", false, 2},
		{"non-object entry", `{"statusHistory":[{"status":"Draft"},"oops"]}`, "", false, 2},
	}
	for _, tc := range cases {
		var doc struct {
			StatusHistory status.History `json:"statusHistory"`
		}
		if err := json.Unmarshal([]byte(tc.payload), &doc); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", tc.name, err)
		}
		if len(doc.StatusHistory) != tc.length {
			t.Fatalf("%s: expected %d entries, got %d", tc.name, tc.length, len(doc.StatusHistory))
		}
		got, ok := status.CurrentStatus(doc.StatusHistory)
		if ok != tc.ok || got != tc.current {
			t.Fatalf("%s: expected (%q,%v), got (%q,%v)", tc.name, tc.current, tc.ok, got, ok)
		}
	}
}
