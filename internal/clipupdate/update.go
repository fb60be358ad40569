package clipupdate

import (
	"log/slog"
	"math"
	"time"

	"podclip/internal/logging"
	"podclip/internal/services"
	"podclip/internal/status"
)

// ErrorInfo is the failure payload stored on a failed clip.
type ErrorInfo struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Code      any    `json:"code,omitempty"`
}

// Update is a sparse clip update. Nil and empty fields are omitted.
type Update struct {
	EpisodeID           string            `json:"episodeId"`
	ClipID              string            `json:"clipId"`
	Status              status.ClipStatus `json:"status"`
	ClipStorageKey      *string           `json:"clipStorageKey,omitempty"`
	FileSize            *int64            `json:"fileSize,omitempty"`
	Duration            *float64          `json:"duration,omitempty"`
	ProcessingStartedAt *string           `json:"processingStartedAt,omitempty"`
	ProcessingDuration  *int64            `json:"processingDuration,omitempty"`
	ProcessingMetadata  map[string]any    `json:"processingMetadata,omitempty"`
	ErrorInfo           *ErrorInfo        `json:"errorInfo,omitempty"`
	UpdatedAt           string            `json:"updatedAt"`
}

// Attribute names used by Fields.
const (
	AttrStatus              = "status"
	AttrClipStorageKey      = "clipStorageKey"
	AttrFileSize            = "fileSize"
	AttrDuration            = "duration"
	AttrProcessingStartedAt = "processingStartedAt"
	AttrProcessingDuration  = "processingDuration"
	AttrProcessingMetadata  = "processingMetadata"
	AttrErrorInfo           = "errorInfo"
	AttrUpdatedAt           = "updatedAt"
)

// Field is one attribute assignment of an Update.
type Field struct {
	Name  string
	Value any
}

// Fields lists the non-key attributes to write, in a stable order. Only
// attributes present on the update are included.
func (u Update) Fields() []Field {
	fields := []Field{{Name: AttrStatus, Value: string(u.Status)}}
	if u.ClipStorageKey != nil {
		fields = append(fields, Field{Name: AttrClipStorageKey, Value: *u.ClipStorageKey})
	}
	if u.FileSize != nil {
		fields = append(fields, Field{Name: AttrFileSize, Value: *u.FileSize})
	}
	if u.Duration != nil {
		fields = append(fields, Field{Name: AttrDuration, Value: *u.Duration})
	}
	if u.ProcessingStartedAt != nil {
		fields = append(fields, Field{Name: AttrProcessingStartedAt, Value: *u.ProcessingStartedAt})
	}
	if u.ProcessingDuration != nil {
		fields = append(fields, Field{Name: AttrProcessingDuration, Value: *u.ProcessingDuration})
	}
	if len(u.ProcessingMetadata) > 0 {
		fields = append(fields, Field{Name: AttrProcessingMetadata, Value: u.ProcessingMetadata})
	}
	if u.ErrorInfo != nil {
		fields = append(fields, Field{Name: AttrErrorInfo, Value: *u.ErrorInfo})
	}
	fields = append(fields, Field{Name: AttrUpdatedAt, Value: u.UpdatedAt})
	return fields
}

// Updater builds sparse updates from requests.
type Updater struct {
	clock         services.Clock
	defaultStatus status.ClipStatus
	logger        *slog.Logger
}

// Option customizes an Updater.
type Option func(*Updater)

// WithClock sets the time source; tests pin it with services.FixedClock.
func WithClock(clock services.Clock) Option {
	return func(u *Updater) {
		if clock != nil {
			u.clock = clock
		}
	}
}

// WithDefaultStatus overrides the status applied when a request omits one.
func WithDefaultStatus(s status.ClipStatus) Option {
	return func(u *Updater) {
		if s != "" {
			u.defaultStatus = s
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Updater) {
		u.logger = logging.NewComponentLogger(logger, "clip-updater")
	}
}

// NewUpdater constructs an Updater using the system clock and the processed
// default status unless overridden.
func NewUpdater(opts ...Option) *Updater {
	u := &Updater{
		clock:         services.SystemClock,
		defaultStatus: status.ClipProcessed,
		logger:        logging.NewComponentLogger(nil, "clip-updater"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Build validates req and derives the sparse update. The only failure is a
// *services.MissingParametersError naming the absent identifiers.
func (u *Updater) Build(req Request) (Update, error) {
	var missing []string
	if req.EpisodeID == "" {
		missing = append(missing, "episodeId")
	}
	if req.ClipID == "" {
		missing = append(missing, "clipId")
	}
	if len(missing) > 0 {
		return Update{}, &services.MissingParametersError{Missing: missing}
	}

	now := u.clock.Now()
	stamp := now.UTC().Format(status.TimestampLayout)

	clipStatus := status.ClipStatus(req.Status)
	if clipStatus == "" {
		clipStatus = u.defaultStatus
	} else if !clipStatus.Known() {
		u.logger.Warn("clip status outside the known set; storing as sent",
			logging.String("episode_id", req.EpisodeID),
			logging.String("clip_id", req.ClipID),
			logging.String("status", req.Status),
		)
	}

	update := Update{
		EpisodeID:           req.EpisodeID,
		ClipID:              req.ClipID,
		Status:              clipStatus,
		ClipStorageKey:      req.ClipStorageKey,
		FileSize:            req.FileSize,
		Duration:            req.Duration,
		ProcessingStartedAt: req.ProcessingStartedAt,
		UpdatedAt:           stamp,
	}

	if req.ProcessingStartedAt != nil {
		if elapsed, ok := u.processingDuration(*req.ProcessingStartedAt, now); ok {
			update.ProcessingDuration = &elapsed
		}
	}
	if len(req.ProcessingMetadata) > 0 {
		update.ProcessingMetadata = req.ProcessingMetadata
	}
	if clipStatus == status.ClipFailed && req.Error != nil {
		update.ErrorInfo = &ErrorInfo{
			Message:   req.Error.message(),
			Timestamp: stamp,
			Code:      req.Error.Code,
		}
	}
	return update, nil
}

// processingDuration returns whole seconds elapsed between the start time and
// now. Start times that do not parse as RFC 3339 yield no duration.
func (u *Updater) processingDuration(startedAt string, now time.Time) (int64, bool) {
	start, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		u.logger.Warn("processing start time not parseable; duration omitted",
			logging.String("processing_started_at", startedAt),
			logging.Error(err),
		)
		return 0, false
	}
	return int64(math.Floor(now.Sub(start).Seconds())), true
}
