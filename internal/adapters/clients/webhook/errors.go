// Package webhook delivers notifications to an external HTTP channel. The
// channel is reached through httpclient.Client, so every call gets circuit
// breaking, retry, and tracing. Channel errors are mapped to domain errors
// here and never leak HTTP details to callers.
package webhook

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 16

// problemDetail is the subset of an RFC 9457 body the channel may return.
type problemDetail struct {
	Detail string `json:"detail"`
}

// TranslateHTTPError maps a non-success channel response to a domain error.
// A rejected payload is a validation error; an unknown recipient is not
// found; everything else, including auth failures against the channel,
// means the channel is unavailable to us.
func TranslateHTTPError(resp *http.Response) error {
	detail := parseDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func parseDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return ""
	}
	return pd.Detail
}
