// Package apperr defines the error taxonomy shared by services and maps it to
// HTTP responses at the edge.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ValidationError reports request payloads that fail domain validation.
// Fields maps each offending field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Validation builds a ValidationError for a single field.
func Validation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// NotFoundError reports a lookup by identifier that matched nothing.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports an operation rejected because of the current state of
// related records.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// Conflict builds a ConflictError.
func Conflict(msg string) *ConflictError {
	return &ConflictError{Msg: msg}
}

// PersistenceError wraps a storage failure. The wrapped cause is logged
// server-side and never surfaced to clients.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence builds a PersistenceError.
func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// HTTPErrorHandler converts service errors into JSON error responses.
// Validation and conflict errors map to 400, missing records to 404 and
// storage failures to 500 with the cause kept out of the response body.
func HTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := map[string]interface{}{"error": "error interno del servidor"}

		var ve *ValidationError
		var nf *NotFoundError
		var cf *ConflictError
		var pe *PersistenceError
		var he *echo.HTTPError

		switch {
		case errors.As(err, &ve):
			status = http.StatusBadRequest
			body = map[string]interface{}{"error": ve.Error(), "campos": ve.Fields}
		case errors.As(err, &nf):
			status = http.StatusNotFound
			body = map[string]interface{}{"error": nf.Error()}
		case errors.As(err, &cf):
			status = http.StatusBadRequest
			body = map[string]interface{}{"error": cf.Error()}
		case errors.As(err, &pe):
			log.Error().Err(pe).Str("op", pe.Op).Msg("persistence failure")
		case errors.As(err, &he):
			status = he.Code
			body = map[string]interface{}{"error": fmt.Sprintf("%v", he.Message)}
		default:
			log.Error().Err(err).Msg("unhandled error")
		}

		if rid, ok := c.Get("request_id").(string); ok && rid != "" {
			body["request_id"] = rid
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(status); err != nil {
				log.Error().Err(err).Msg("write error response")
			}
			return
		}
		if err := c.JSON(status, body); err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}
