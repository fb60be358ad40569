package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFormat     = errors.New("invalid time code format")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrEmptySegmentList  = errors.New("segment list is empty")
	ErrMissingParameters = errors.New("missing required parameters")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrMissingEpisodeId  = errors.New("missing episode id")
	ErrNotFound          = errors.New("not found")
	ErrInvalidRequest    = errors.New("invalid request")
)

// Error kinds reported by Kind. The transport layer maps each kind to exactly
// one response class.
const (
	KindValidation      = "validation"
	KindUnauthenticated = "unauthenticated"
	KindNotFound        = "not_found"
	KindInternal        = "internal"
)

// MissingParametersError lists the required request parameters that were absent.
type MissingParametersError struct {
	Missing []string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingParameters, strings.Join(e.Missing, ", "))
}

// Is reports ErrMissingParameters so callers can match with errors.Is.
func (e *MissingParametersError) Is(target error) bool {
	return target == ErrMissingParameters
}

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		if err == nil {
			return errors.New(detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind classifies an error into one of the Kind* constants.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrInvalidDuration),
		errors.Is(err, ErrEmptySegmentList),
		errors.Is(err, ErrMissingParameters),
		errors.Is(err, ErrMissingEpisodeId),
		errors.Is(err, ErrInvalidRequest):
		return KindValidation
	default:
		return KindInternal
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
