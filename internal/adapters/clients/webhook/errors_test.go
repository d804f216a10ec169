package webhook

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
)

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"404 maps to ErrNotFound", http.StatusNotFound, domain.ErrNotFound},
		{"400 maps to ErrValidation", http.StatusBadRequest, domain.ErrValidation},
		{"422 maps to ErrValidation", http.StatusUnprocessableEntity, domain.ErrValidation},
		{"409 maps to ErrConflict", http.StatusConflict, domain.ErrConflict},
		{"401 maps to ErrUnavailable", http.StatusUnauthorized, domain.ErrUnavailable},
		{"403 maps to ErrUnavailable", http.StatusForbidden, domain.ErrUnavailable},
		{"429 maps to ErrUnavailable", http.StatusTooManyRequests, domain.ErrUnavailable},
		{"500 maps to ErrUnavailable", http.StatusInternalServerError, domain.ErrUnavailable},
		{"503 maps to ErrUnavailable", http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader("")),
			}
			err := TranslateHTTPError(resp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want %v", tt.statusCode, err, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_ProblemDetail(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
		Body:       io.NopCloser(strings.NewReader(`{"detail":"user_id is unknown"}`)),
	}

	err := TranslateHTTPError(resp)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("TranslateHTTPError() = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "user_id is unknown") {
		t.Errorf("error = %q, want it to contain the problem detail", err.Error())
	}
}

func TestTranslateHTTPError_IgnoresNonProblemBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTeapot,
		Header:     http.Header{"Content-Type": []string{"text/plain"}},
		Body:       io.NopCloser(strings.NewReader("short and stout")),
	}

	err := TranslateHTTPError(resp)
	if err == nil || strings.Contains(err.Error(), "short and stout") {
		t.Errorf("TranslateHTTPError() = %v, want generic unexpected-status error", err)
	}
}
