// Package clipplan assembles everything needed to build one clip from its
// time-coded segments: storage keys, the concat manifest, and the total
// running time.
package clipplan

import (
	"podclip/internal/concat"
	"podclip/internal/services"
	"podclip/internal/storagekey"
	"podclip/internal/timecode"
)

// Segment pairs a source range with the key its extracted media is stored under.
type Segment struct {
	Index      int    `json:"index"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Seconds    int64  `json:"seconds"`
	StorageKey string `json:"storageKey"`
}

// Plan describes how a clip is assembled.
type Plan struct {
	EpisodeID     string    `json:"episodeId"`
	ClipID        string    `json:"clipId"`
	ClipKey       string    `json:"clipKey"`
	Segments      []Segment `json:"segments"`
	SegmentKeys   []string  `json:"segmentKeys"`
	Manifest      string    `json:"manifest"`
	TotalSeconds  int64     `json:"totalSeconds"`
	TotalDuration string    `json:"totalDuration"`
}

// Build plans the clip whose segment i is cut from ranges[i].
func Build(episodeID, clipID string, ranges []timecode.Range) (Plan, error) {
	var missing []string
	if episodeID == "" {
		missing = append(missing, "episodeId")
	}
	if clipID == "" {
		missing = append(missing, "clipId")
	}
	if len(missing) > 0 {
		return Plan{}, &services.MissingParametersError{Missing: missing}
	}
	if len(ranges) == 0 {
		return Plan{}, services.ErrEmptySegmentList
	}

	total, err := timecode.TotalDuration(ranges)
	if err != nil {
		return Plan{}, err
	}

	keys := storagekey.SegmentKeys(episodeID, clipID, len(ranges))
	segments := make([]Segment, len(ranges))
	for i, r := range ranges {
		// TotalDuration already validated every endpoint.
		start, _ := timecode.Parse(r.StartTime)
		end, _ := timecode.Parse(r.EndTime)
		segments[i] = Segment{
			Index:      i,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			Seconds:    end - start,
			StorageKey: keys[i],
		}
	}

	manifest, err := concat.BuildManifest(keys)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		EpisodeID:    episodeID,
		ClipID:       clipID,
		ClipKey:      storagekey.ClipKey(episodeID, clipID),
		Segments:     segments,
		SegmentKeys:  keys,
		Manifest:     manifest,
		TotalSeconds: total,
	}
	if total >= 0 {
		plan.TotalDuration = timecode.MustFormat(total)
	} else {
		// TotalDuration keeps total within ±math.MaxInt64, so the negation is safe.
		plan.TotalDuration = "-" + timecode.MustFormat(-total)
	}
	return plan, nil
}
