package clipupdate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Request is a partial clip update as received from the pipeline.
type Request struct {
	EpisodeID           string         `json:"episodeId"`
	ClipID              string         `json:"clipId"`
	ClipStorageKey      *string        `json:"clipStorageKey,omitempty"`
	FileSize            *int64         `json:"fileSize,omitempty"`
	Status              string         `json:"status,omitempty"`
	ProcessingStartedAt *string        `json:"processingStartedAt,omitempty"`
	Duration            *float64       `json:"duration,omitempty"`
	ProcessingMetadata  map[string]any `json:"processingMetadata,omitempty"`
	Error               *ErrorInput    `json:"error,omitempty"`
}

// ErrorInput is the failure detail attached to a failed update. The pipeline
// sends either a bare string or an object with message and code.
type ErrorInput struct {
	Message string
	Code    any

	raw        string
	hasMessage bool
}

// UnmarshalJSON accepts a JSON string or object.
func (e *ErrorInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	e.raw = string(trimmed)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		e.hasMessage = true
		return json.Unmarshal(trimmed, &e.Message)
	case '{':
		var fields map[string]any
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		if msg, ok := fields["message"]; ok && msg != nil {
			e.Message = stringify(msg)
			e.hasMessage = true
		}
		if code, ok := fields["code"]; ok && code != nil {
			e.Code = code
		}
		return nil
	default:
		var value any
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		if value != nil {
			e.Message = stringify(value)
			e.hasMessage = true
		}
		return nil
	}
}

// MarshalJSON renders the input back as an object.
func (e ErrorInput) MarshalJSON() ([]byte, error) {
	out := map[string]any{"message": e.Message}
	if e.Code != nil {
		out["code"] = e.Code
	}
	return json.Marshal(out)
}

// message resolves the text stored in the error payload: the explicit message
// when one was sent, otherwise the raw input text.
func (e *ErrorInput) message() string {
	if e.hasMessage || e.Message != "" || e.raw == "" {
		return e.Message
	}
	return e.raw
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
