package logging

import (
	"context"
	"log/slog"

	"podclip/internal/services"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldTenantID is the structured logging key for the authenticated tenant.
	FieldTenantID = "tenant_id"
	// FieldEpisodeID is the structured logging key for episode identifiers.
	FieldEpisodeID = "episode_id"
	// FieldClipID is the structured logging key for clip identifiers.
	FieldClipID = "clip_id"
	// FieldCorrelationID is the structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if tenant, ok := services.TenantIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldTenantID, tenant))
	}
	if episode, ok := services.EpisodeIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldEpisodeID, episode))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
