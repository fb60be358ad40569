package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"podclip/internal/clipupdate"
	"podclip/internal/services"
	"podclip/internal/status"
)

// Clip is a persisted clip record.
type Clip struct {
	EpisodeID           string                `json:"episodeId"`
	ClipID              string                `json:"clipId"`
	Status              status.ClipStatus     `json:"status"`
	ClipStorageKey      string                `json:"clipStorageKey,omitempty"`
	FileSize            *int64                `json:"fileSize,omitempty"`
	Duration            *float64              `json:"duration,omitempty"`
	ProcessingStartedAt string                `json:"processingStartedAt,omitempty"`
	ProcessingDuration  *int64                `json:"processingDuration,omitempty"`
	ProcessingMetadata  map[string]any        `json:"processingMetadata,omitempty"`
	ErrorInfo           *clipupdate.ErrorInfo `json:"errorInfo,omitempty"`
	CreatedAt           string                `json:"createdAt"`
	UpdatedAt           string                `json:"updatedAt"`
}

const clipColumns = "episode_id, clip_id, status, clip_storage_key, file_size, duration, processing_started_at, processing_duration, processing_metadata_json, error_info_json, created_at, updated_at"

// clipAttrColumns maps update attribute names onto clip table columns.
var clipAttrColumns = map[string]string{
	clipupdate.AttrStatus:              "status",
	clipupdate.AttrClipStorageKey:      "clip_storage_key",
	clipupdate.AttrFileSize:            "file_size",
	clipupdate.AttrDuration:            "duration",
	clipupdate.AttrProcessingStartedAt: "processing_started_at",
	clipupdate.AttrProcessingDuration:  "processing_duration",
	clipupdate.AttrProcessingMetadata:  "processing_metadata_json",
	clipupdate.AttrErrorInfo:           "error_info_json",
	clipupdate.AttrUpdatedAt:           "updated_at",
}

func scanClip(scanner rowScanner) (Clip, error) {
	var (
		clip        Clip
		statusStr   string
		storageKey  sql.NullString
		fileSize    sql.NullInt64
		duration    sql.NullFloat64
		startedAt   sql.NullString
		elapsed     sql.NullInt64
		metadataRaw sql.NullString
		errorRaw    sql.NullString
	)
	if err := scanner.Scan(
		&clip.EpisodeID,
		&clip.ClipID,
		&statusStr,
		&storageKey,
		&fileSize,
		&duration,
		&startedAt,
		&elapsed,
		&metadataRaw,
		&errorRaw,
		&clip.CreatedAt,
		&clip.UpdatedAt,
	); err != nil {
		return Clip{}, err
	}
	if err := decodeJSON(metadataRaw, &clip.ProcessingMetadata, "processing_metadata_json"); err != nil {
		return Clip{}, err
	}
	if errorRaw.Valid && errorRaw.String != "" {
		var info clipupdate.ErrorInfo
		if err := decodeJSON(errorRaw, &info, "error_info_json"); err != nil {
			return Clip{}, err
		}
		clip.ErrorInfo = &info
	}
	clip.Status = status.ClipStatus(statusStr)
	clip.ClipStorageKey = storageKey.String
	clip.FileSize = int64Ptr(fileSize)
	clip.Duration = float64Ptr(duration)
	clip.ProcessingStartedAt = startedAt.String
	clip.ProcessingDuration = int64Ptr(elapsed)
	return clip, nil
}

func clipNotFound(episodeID, clipID string) error {
	return services.Wrap(services.ErrNotFound, "store", "get clip",
		fmt.Sprintf("clip %q of episode %q", clipID, episodeID), nil)
}

// ApplyClipUpdate upserts the clip keyed by (EpisodeID, ClipID), writing only
// the attributes present on the update. Existing columns the update does not
// carry keep their stored values.
func (s *Store) ApplyClipUpdate(ctx context.Context, update clipupdate.Update) (Clip, error) {
	var missing []string
	if update.EpisodeID == "" {
		missing = append(missing, "episodeId")
	}
	if update.ClipID == "" {
		missing = append(missing, "clipId")
	}
	if len(missing) > 0 {
		return Clip{}, &services.MissingParametersError{Missing: missing}
	}

	stamp := update.UpdatedAt
	if stamp == "" {
		stamp = s.now()
	}

	columns := []string{"episode_id", "clip_id", "created_at"}
	args := []any{update.EpisodeID, update.ClipID, stamp}
	assignments := make([]string, 0, len(clipAttrColumns))
	for _, field := range update.Fields() {
		column, ok := clipAttrColumns[field.Name]
		if !ok {
			return Clip{}, fmt.Errorf("apply clip update: unmapped attribute %q", field.Name)
		}
		value, err := clipColumnValue(field, stamp)
		if err != nil {
			return Clip{}, fmt.Errorf("apply clip update: %s: %w", field.Name, err)
		}
		columns = append(columns, column)
		args = append(args, value)
		assignments = append(assignments, column+" = excluded."+column)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO clips (%s) VALUES (%s) ON CONFLICT(episode_id, clip_id) DO UPDATE SET %s",
		strings.Join(columns, ", "), placeholders, strings.Join(assignments, ", "),
	)
	if err := s.execWithRetry(ctx, query, args...); err != nil {
		return Clip{}, fmt.Errorf("apply clip update: %w", err)
	}
	return s.GetClip(ctx, update.EpisodeID, update.ClipID)
}

func clipColumnValue(field clipupdate.Field, stamp string) (any, error) {
	switch field.Name {
	case clipupdate.AttrProcessingMetadata, clipupdate.AttrErrorInfo:
		return nullableJSON(field.Value)
	case clipupdate.AttrUpdatedAt:
		return stamp, nil
	default:
		return field.Value, nil
	}
}

// GetClip fetches one clip record.
func (s *Store) GetClip(ctx context.Context, episodeID, clipID string) (Clip, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+clipColumns+` FROM clips WHERE episode_id = ? AND clip_id = ?`,
		episodeID, clipID)
	clip, err := scanClip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Clip{}, clipNotFound(episodeID, clipID)
	}
	if err != nil {
		return Clip{}, fmt.Errorf("get clip: %w", err)
	}
	return clip, nil
}

// ListClips returns every clip of an episode ordered by clip ID.
func (s *Store) ListClips(ctx context.Context, episodeID string) ([]Clip, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+clipColumns+` FROM clips WHERE episode_id = ? ORDER BY clip_id`, episodeID)
	if err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	defer rows.Close()

	var clips []Clip
	for rows.Next() {
		clip, err := scanClip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan clip: %w", err)
		}
		clips = append(clips, clip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clips: %w", err)
	}
	return clips, nil
}
