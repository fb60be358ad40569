package httpapi

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"

	"podclip/internal/logging"
	"podclip/internal/services"
)

const (
	requestIDHeader = "X-Request-Id"
	tenantHeader    = "X-Tenant-Id"
)

// requestIDMiddleware assigns every request a correlation ID. A well-formed
// inbound X-Request-Id is kept so callers can trace across services.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := services.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tenantMiddleware attaches the resolved tenant to the request context.
// Requests without one still reach the handler so validation reports the
// failure consistently.
func (s *Server) tenantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := services.WithTenantID(r.Context(), s.resolveTenant(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) resolveTenant(r *http.Request) string {
	if len(s.tokens) == 0 {
		return strings.TrimSpace(r.Header.Get(tenantHeader))
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return s.tokens[strings.TrimSpace(token)]
}

func (s *Server) accessLog(_ io.Writer, params handlers.LogFormatterParams) {
	attrs := []logging.Attr{
		logging.String("method", params.Request.Method),
		logging.String("path", params.URL.Path),
		logging.Int("status", params.StatusCode),
		logging.Int("bytes", params.Size),
		logging.Duration("elapsed", time.Since(params.TimeStamp)),
	}
	logger := logging.WithContext(params.Request.Context(), s.logger)
	if params.StatusCode >= http.StatusInternalServerError {
		logger.Warn("request failed", logging.Args(attrs...)...)
		return
	}
	logger.Debug("request served", logging.Args(attrs...)...)
}
