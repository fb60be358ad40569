package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"podclip/internal/clipupdate"
	"podclip/internal/config"
	"podclip/internal/episode"
	"podclip/internal/logging"
	"podclip/internal/services"
	"podclip/internal/status"
	"podclip/internal/store"
)

// Store is the persistence the API reads and writes.
type Store interface {
	Ping(ctx context.Context) error
	GetEpisode(ctx context.Context, tenantID, episodeID string) (episode.Episode, error)
	AppendEpisodeStatus(ctx context.Context, tenantID, episodeID string, label status.Label, ts time.Time) (episode.Episode, error)
	ApplyClipUpdate(ctx context.Context, update clipupdate.Update) (store.Clip, error)
	ListClips(ctx context.Context, episodeID string) ([]store.Clip, error)
}

// Server routes API requests to the store.
type Server struct {
	bind         string
	readTimeout  time.Duration
	writeTimeout time.Duration
	origins      []string
	tokens       map[string]string

	store   Store
	updater *clipupdate.Updater
	clock   services.Clock
	logger  *slog.Logger

	handler http.Handler
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logging.NewComponentLogger(logger, "http")
	}
}

// WithClock sets the time source for status transitions and clip updates.
func WithClock(clock services.Clock) Option {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New builds a server for cfg backed by st.
func New(cfg *config.Config, st Store, opts ...Option) *Server {
	s := &Server{
		bind:         cfg.Paths.APIBind,
		readTimeout:  time.Duration(cfg.API.ReadTimeout) * time.Second,
		writeTimeout: time.Duration(cfg.API.WriteTimeout) * time.Second,
		origins:      cfg.API.AllowedOrigins,
		tokens:       cfg.API.Tokens,
		store:        st,
		clock:        services.SystemClock,
		logger:       logging.NewComponentLogger(nil, "http"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.updater = clipupdate.NewUpdater(
		clipupdate.WithClock(s.clock),
		clipupdate.WithDefaultStatus(status.ClipStatus(cfg.Clips.DefaultStatus)),
		clipupdate.WithLogger(s.logger),
	)
	s.handler = s.routes()
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: "route not found", Kind: services.KindNotFound})
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
	})

	r := mux.NewRouter()
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	episodes := r.PathPrefix("/episodes/{episodeId}").Subrouter()
	// A subrouter without its own handlers reports a method mismatch as 404.
	episodes.NotFoundHandler = notFound
	episodes.MethodNotAllowedHandler = methodNotAllowed
	episodes.Use(s.tenantMiddleware)
	episodes.HandleFunc("", s.handleGetEpisode).Methods(http.MethodGet)
	episodes.HandleFunc("/status", s.handleAppendStatus).Methods(http.MethodPost)
	episodes.HandleFunc("/clips", s.handleListClips).Methods(http.MethodGet)
	episodes.HandleFunc("/clips/{clipId}", s.handlePutClip).Methods(http.MethodPut)
	episodes.HandleFunc("/clips/{clipId}/plan", s.handlePlanClip).Methods(http.MethodPost)

	var h http.Handler = r
	h = handlers.CustomLoggingHandler(io.Discard, h, s.accessLog)
	h = s.requestIDMiddleware(h)
	if len(s.origins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(s.origins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", tenantHeader}),
			handlers.ExposedHeaders([]string{requestIDHeader}),
		)(h)
	}
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger: s.logger}),
		handlers.PrintRecoveryStack(false),
	)(h)
}

// Run listens on the configured bind address until ctx is cancelled, then
// drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve handles requests on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.readTimeout,
		WriteTimeout:      s.writeTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api shutdown: %w", err)
	}
	s.logger.Info("api server stopped")
	return nil
}

type recoveryLogger struct {
	logger *slog.Logger
}

func (l recoveryLogger) Println(args ...any) {
	l.logger.Error("recovered from panic", logging.String("panic", fmt.Sprint(args...)))
}
