package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/carolinafmacedo/workflowmanagement/internal/domain"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/httpclient"
)

// Requester posts JSON bodies through an httpclient.Client and maps the
// outcome to domain errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Post sends body as JSON to path under the client's base URL. A non-empty
// key is sent as Idempotency-Key, which lets the client retry the POST. Any
// 2xx status is success; the response body is discarded.
func (r *Requester) Post(ctx context.Context, path, key string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling body for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.client.BaseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating POST request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(httpclient.HeaderIdempotencyKey, key)
	}

	return r.execute(req)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func (r *Requester) execute(req *http.Request) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries exhausted on a retryable status still carry the response.
		if resp != nil && !isSuccess(resp.StatusCode) {
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}

	if !isSuccess(resp.StatusCode) {
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
