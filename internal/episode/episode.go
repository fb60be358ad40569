package episode

import (
	"encoding/json"

	"podclip/internal/status"
)

// Episode is the stored representation of a podcast episode.
type Episode struct {
	TenantID      string
	ID            string
	Title         string
	EpisodeNumber int
	Status        StatusRecord
	CreatedAt     string
	UpdatedAt     string
	Summary       string
	AirDate       string
	Platforms     []string
	Themes        []string
	SeriesName    string
}

type episodeJSON struct {
	TenantID      string         `json:"tenantId,omitempty"`
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	EpisodeNumber int            `json:"episodeNumber"`
	Status        status.Label   `json:"status,omitempty"`
	StatusHistory status.History `json:"statusHistory,omitempty"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
	Summary       string         `json:"summary,omitempty"`
	AirDate       string         `json:"airDate,omitempty"`
	Platforms     []string       `json:"platforms,omitempty"`
	Themes        []string       `json:"themes,omitempty"`
	SeriesName    string         `json:"seriesName,omitempty"`
}

// MarshalJSON writes the stored field layout.
func (e Episode) MarshalJSON() ([]byte, error) {
	return json.Marshal(episodeJSON{
		TenantID:      e.TenantID,
		ID:            e.ID,
		Title:         e.Title,
		EpisodeNumber: e.EpisodeNumber,
		Status:        e.Status.Legacy(),
		StatusHistory: e.Status.History(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		Summary:       e.Summary,
		AirDate:       e.AirDate,
		Platforms:     e.Platforms,
		Themes:        e.Themes,
		SeriesName:    e.SeriesName,
	})
}

// UnmarshalJSON reads the stored field layout, folding the scalar status and
// the history into one StatusRecord.
func (e *Episode) UnmarshalJSON(data []byte) error {
	var raw episodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Episode{
		TenantID:      raw.TenantID,
		ID:            raw.ID,
		Title:         raw.Title,
		EpisodeNumber: raw.EpisodeNumber,
		Status:        NewStatusRecord(raw.StatusHistory, raw.Status),
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
		Summary:       raw.Summary,
		AirDate:       raw.AirDate,
		Platforms:     raw.Platforms,
		Themes:        raw.Themes,
		SeriesName:    raw.SeriesName,
	}
	return nil
}
