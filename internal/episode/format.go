package episode

import "podclip/internal/status"

// Response is the external representation of an episode.
type Response struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Status        *status.Label `json:"status"`
	EpisodeNumber int           `json:"episodeNumber"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
	Summary       string        `json:"summary,omitempty"`
	AirDate       string        `json:"airDate,omitempty"`
	Platforms     []string      `json:"platforms,omitempty"`
	Themes        []string      `json:"themes,omitempty"`
	SeriesName    string        `json:"seriesName,omitempty"`
}

// Format builds the response for ep as requested under episodeID. Optional
// fields are dropped when empty; a status that cannot be derived is null.
func Format(ep Episode, episodeID string) Response {
	resp := Response{
		ID:            episodeID,
		Title:         ep.Title,
		EpisodeNumber: ep.EpisodeNumber,
		CreatedAt:     ep.CreatedAt,
		UpdatedAt:     ep.UpdatedAt,
	}
	if label, ok := ep.Status.Current(); ok {
		resp.Status = &label
	}
	if ep.Summary != "" {
		resp.Summary = ep.Summary
	}
	if ep.AirDate != "" {
		resp.AirDate = ep.AirDate
	}
	if len(ep.Platforms) > 0 {
		resp.Platforms = ep.Platforms
	}
	if len(ep.Themes) > 0 {
		resp.Themes = ep.Themes
	}
	if ep.SeriesName != "" {
		resp.SeriesName = ep.SeriesName
	}
	return resp
}
