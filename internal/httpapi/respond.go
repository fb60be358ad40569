package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"podclip/internal/logging"
	"podclip/internal/services"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error     string   `json:"error"`
	Kind      string   `json:"kind,omitempty"`
	Missing   []string `json:"missing,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
}

func statusForKind(kind string) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindUnauthenticated:
		return http.StatusUnauthorized
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

// writeError reports err with the status its kind maps to. Internal failures
// are logged and replaced with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := services.Kind(err)
	body := errorBody{Error: err.Error(), Kind: kind}
	if rid, ok := services.RequestIDFromContext(r.Context()); ok {
		body.RequestID = rid
	}
	var missing *services.MissingParametersError
	if errors.As(err, &missing) {
		body.Missing = missing.Missing
	}
	if kind == services.KindInternal {
		logging.WithContext(r.Context(), s.logger).Error("request failed",
			logging.String("path", r.URL.Path),
			logging.Error(err),
		)
		body.Error = "internal error"
	}
	s.writeJSON(w, statusForKind(kind), body)
}

// decodeBody reads a JSON request body into dest. An empty body leaves dest
// untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return services.Wrap(services.ErrInvalidRequest, "httpapi", "decode body", fmt.Sprint(err), nil)
	}
	return nil
}
