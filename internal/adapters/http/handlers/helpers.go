package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/middleware"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/domain/timelog"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// parseID extracts a ULID path parameter from the chi URL params.
func parseID(r *http.Request, param string) (idx.ID, error) {
	id, err := idx.Parse(chi.URLParam(r, param))
	if err != nil {
		return idx.Zero, domain.NewValidationError(param, "must be a valid id")
	}
	return id, nil
}

// pathID parses param and writes a 400 response on failure.
func pathID(w http.ResponseWriter, r *http.Request, param string) (idx.ID, bool) {
	id, err := parseID(r, param)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return idx.Zero, false
	}
	return id, true
}

// executor returns the authenticated caller's id and writes a 401 response
// when the request carries none.
func executor(w http.ResponseWriter, r *http.Request) (idx.ID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
		return idx.Zero, false
	}
	return id, true
}

// parseRange reads the from and to query parameters as YYYY-MM-DD dates.
func parseRange(r *http.Request) (timelog.Range, error) {
	fields := domain.Fields{}
	q := r.URL.Query()

	parse := func(name string) time.Time {
		raw := q.Get(name)
		if raw == "" {
			fields.Add(name, domain.MsgRequired)
			return time.Time{}
		}
		t, err := dto.ParseDate(raw)
		if err != nil {
			fields.Add(name, "must be a date in YYYY-MM-DD format")
		}
		return t
	}

	rng := timelog.Range{From: parse("from"), To: parse("to")}
	if err := fields.Err(); err != nil {
		return timelog.Range{}, err
	}
	return rng, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
