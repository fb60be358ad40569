package episode_test

import (
	"encoding/json"
	"testing"
	"time"

	"podclip/internal/episode"
	"podclip/internal/status"
)

func decodeEpisode(t *testing.T, payload string) episode.Episode {
	t.Helper()
	var ep episode.Episode
	if err := json.Unmarshal([]byte(payload), &ep); err != nil {
		t.Fatalf("decode episode: %v", err)
	}
	return ep
}

func encodeResponse(t *testing.T, resp episode.Response) map[string]any {
	t.Helper()
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("encode response: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestFormatPrefersHistoryOverLegacyStatus(t *testing.T) {
	ep := decodeEpisode(t, `{
		"id": "ep-1",
		"title": "Pilot",
		"episodeNumber": 1,
		"status": "Draft",
		"statusHistory": [
			{"status": "Draft", "timestamp": "2024-01-01T00:00:00.000Z"},
			{"status": "Ready for Clip Gen", "timestamp": "2024-01-02T00:00:00.000Z"}
		],
		"createdAt": "2024-01-01T00:00:00.000Z",
		"updatedAt": "2024-01-02T00:00:00.000Z"
	}`)
	resp := episode.Format(ep, "ep-1")
	if resp.Status == nil || *resp.Status != status.LabelReadyForClips {
		t.Fatalf("expected history status, got %v", resp.Status)
	}
}

func TestFormatFallsBackToLegacyStatus(t *testing.T) {
	cases := map[string]string{
		"absent history":    `{"id":"ep-1","title":"Pilot","status":"Draft"}`,
		"empty history":     `{"id":"ep-1","title":"Pilot","status":"Draft","statusHistory":[]}`,
		"malformed history": `{"id":"ep-1","title":"Pilot","status":"Draft","statusHistory":{"oops":true}}`,
		"statusless tail":   `{"id":"ep-1","title":"Pilot","status":"Draft","statusHistory":[{"status":"Published"},{"timestamp":"t"}]}`,
	}
	for name, payload := range cases {
		resp := episode.Format(decodeEpisode(t, payload), "ep-1")
		if resp.Status == nil || *resp.Status != status.LabelDraft {
			t.Fatalf("%s: expected legacy status Draft, got %v", name, resp.Status)
		}
	}
}

func TestFormatStatusNullWhenUnderivable(t *testing.T) {
	resp := episode.Format(decodeEpisode(t, `{"id":"ep-1","title":"Pilot"}`), "ep-1")
	encoded := encodeResponse(t, resp)
	value, ok := encoded["status"]
	if !ok || value != nil {
		t.Fatalf("expected status key with null value, got %v (present=%v)", value, ok)
	}
}

func TestFormatOptionalFields(t *testing.T) {
	full := episode.Episode{
		ID:            "stored-id",
		Title:         "Pilot",
		EpisodeNumber: 3,
		CreatedAt:     "c",
		UpdatedAt:     "u",
		Summary:       "An episode",
		AirDate:       "2024-02-01",
		Platforms:     []string{"youtube", "spotify"},
		Themes:        []string{"tech"},
		SeriesName:    "Builders",
	}
	encoded := encodeResponse(t, episode.Format(full, "ep-3"))
	if encoded["id"] != "ep-3" {
		t.Fatalf("expected requested id, got %v", encoded["id"])
	}
	for _, key := range []string{"summary", "airDate", "platforms", "themes", "seriesName"} {
		if _, ok := encoded[key]; !ok {
			t.Fatalf("expected %s to be present", key)
		}
	}

	sparse := episode.Episode{Title: "Pilot", Platforms: []string{}, Themes: nil}
	encoded = encodeResponse(t, episode.Format(sparse, "ep-3"))
	for _, key := range []string{"summary", "airDate", "platforms", "themes", "seriesName"} {
		if _, ok := encoded[key]; ok {
			t.Fatalf("expected %s to be omitted", key)
		}
	}
	for _, key := range []string{"id", "title", "status", "episodeNumber", "createdAt", "updatedAt"} {
		if _, ok := encoded[key]; !ok {
			t.Fatalf("expected %s to always be present", key)
		}
	}
}

func TestStatusRecordAppend(t *testing.T) {
	record := episode.NewStatusRecord(nil, status.LabelDraft)
	next := record.Append(status.LabelTracksUploaded, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	if got, _ := record.Current(); got != status.LabelDraft {
		t.Fatalf("original record changed: %q", got)
	}
	if got, _ := next.Current(); got != status.LabelTracksUploaded {
		t.Fatalf("expected appended status to win, got %q", got)
	}
	if next.Legacy() != status.LabelDraft {
		t.Fatalf("expected legacy scalar to be kept, got %q", next.Legacy())
	}
}

func TestEpisodeJSONRoundTrip(t *testing.T) {
	ep := decodeEpisode(t, `{"tenantId":"t1","id":"ep-1","title":"Pilot","episodeNumber":2,"status":"Draft","statusHistory":[{"status":"In Review","timestamp":"t"}]}`)
	data, err := json.Marshal(ep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back := decodeEpisode(t, string(data))
	if back.TenantID != "t1" || back.EpisodeNumber != 2 {
		t.Fatalf("unexpected round trip %+v", back)
	}
	if got, _ := back.Status.Current(); got != status.LabelInReview {
		t.Fatalf("expected In Review, got %q", got)
	}
	if back.Status.Legacy() != status.LabelDraft {
		t.Fatalf("expected legacy Draft, got %q", back.Status.Legacy())
	}
}
