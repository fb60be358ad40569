package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"podclip/internal/episode"
	"podclip/internal/services"
	"podclip/internal/status"
)

const episodeColumns = "tenant_id, episode_id, title, episode_number, status, status_history_json, summary, air_date, platforms_json, themes_json, series_name, created_at, updated_at"

func scanEpisode(scanner rowScanner) (episode.Episode, error) {
	var (
		ep         episode.Episode
		legacy     sql.NullString
		historyRaw sql.NullString
		summary    sql.NullString
		airDate    sql.NullString
		platforms  sql.NullString
		themes     sql.NullString
		seriesName sql.NullString
		history    status.History
	)
	if err := scanner.Scan(
		&ep.TenantID,
		&ep.ID,
		&ep.Title,
		&ep.EpisodeNumber,
		&legacy,
		&historyRaw,
		&summary,
		&airDate,
		&platforms,
		&themes,
		&seriesName,
		&ep.CreatedAt,
		&ep.UpdatedAt,
	); err != nil {
		return episode.Episode{}, err
	}
	if err := decodeJSON(historyRaw, &history, "status_history_json"); err != nil {
		return episode.Episode{}, err
	}
	if err := decodeJSON(platforms, &ep.Platforms, "platforms_json"); err != nil {
		return episode.Episode{}, err
	}
	if err := decodeJSON(themes, &ep.Themes, "themes_json"); err != nil {
		return episode.Episode{}, err
	}
	ep.Status = episode.NewStatusRecord(history, status.Label(legacy.String))
	ep.Summary = summary.String
	ep.AirDate = airDate.String
	ep.SeriesName = seriesName.String
	return ep, nil
}

func episodeNotFound(tenantID, episodeID string) error {
	return services.Wrap(services.ErrNotFound, "store", "get episode",
		fmt.Sprintf("episode %q for tenant %q", episodeID, tenantID), nil)
}

// PutEpisode inserts or replaces an episode. CreatedAt is stamped on first
// write and preserved afterwards; UpdatedAt is always refreshed.
func (s *Store) PutEpisode(ctx context.Context, ep episode.Episode) (episode.Episode, error) {
	var missing []string
	if ep.TenantID == "" {
		missing = append(missing, "tenantId")
	}
	if ep.ID == "" {
		missing = append(missing, "episodeId")
	}
	if len(missing) > 0 {
		return episode.Episode{}, &services.MissingParametersError{Missing: missing}
	}

	now := s.now()
	if ep.CreatedAt == "" {
		ep.CreatedAt = now
	}
	ep.UpdatedAt = now

	history, err := nullableJSON(ep.Status.History())
	if err != nil {
		return episode.Episode{}, fmt.Errorf("encode status history: %w", err)
	}
	platforms, err := nullableJSON(ep.Platforms)
	if err != nil {
		return episode.Episode{}, fmt.Errorf("encode platforms: %w", err)
	}
	themes, err := nullableJSON(ep.Themes)
	if err != nil {
		return episode.Episode{}, fmt.Errorf("encode themes: %w", err)
	}

	if err := s.execWithRetry(ctx,
		`INSERT INTO episodes (`+episodeColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(tenant_id, episode_id) DO UPDATE SET
             title = excluded.title,
             episode_number = excluded.episode_number,
             status = excluded.status,
             status_history_json = excluded.status_history_json,
             summary = excluded.summary,
             air_date = excluded.air_date,
             platforms_json = excluded.platforms_json,
             themes_json = excluded.themes_json,
             series_name = excluded.series_name,
             updated_at = excluded.updated_at`,
		ep.TenantID,
		ep.ID,
		ep.Title,
		ep.EpisodeNumber,
		nullableString(string(ep.Status.Legacy())),
		history,
		nullableString(ep.Summary),
		nullableString(ep.AirDate),
		platforms,
		themes,
		nullableString(ep.SeriesName),
		ep.CreatedAt,
		ep.UpdatedAt,
	); err != nil {
		return episode.Episode{}, fmt.Errorf("put episode: %w", err)
	}
	return s.GetEpisode(ctx, ep.TenantID, ep.ID)
}

// GetEpisode fetches one episode owned by tenantID. It returns an error
// matching services.ErrNotFound when no such episode exists.
func (s *Store) GetEpisode(ctx context.Context, tenantID, episodeID string) (episode.Episode, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+episodeColumns+` FROM episodes WHERE tenant_id = ? AND episode_id = ?`,
		tenantID, episodeID)
	ep, err := scanEpisode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return episode.Episode{}, episodeNotFound(tenantID, episodeID)
	}
	if err != nil {
		return episode.Episode{}, fmt.Errorf("get episode: %w", err)
	}
	return ep, nil
}

// AppendEpisodeStatus records a lifecycle transition at ts and returns the
// updated episode. The read and write share one transaction so concurrent
// appends never drop an entry.
func (s *Store) AppendEpisodeStatus(ctx context.Context, tenantID, episodeID string, label status.Label, ts time.Time) (episode.Episode, error) {
	if label == "" {
		return episode.Episode{}, &services.MissingParametersError{Missing: []string{"status"}}
	}
	ctx = ensureContext(ctx)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT `+episodeColumns+` FROM episodes WHERE tenant_id = ? AND episode_id = ?`,
			tenantID, episodeID)
		ep, err := scanEpisode(row)
		if errors.Is(err, sql.ErrNoRows) {
			return episodeNotFound(tenantID, episodeID)
		}
		if err != nil {
			return fmt.Errorf("load episode: %w", err)
		}

		record := ep.Status.Append(label, ts)
		history, err := nullableJSON(record.History())
		if err != nil {
			return fmt.Errorf("encode status history: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE episodes SET status_history_json = ?, updated_at = ? WHERE tenant_id = ? AND episode_id = ?`,
			history, s.now(), tenantID, episodeID)
		if err != nil {
			return fmt.Errorf("update status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return episode.Episode{}, err
	}
	return s.GetEpisode(ctx, tenantID, episodeID)
}
