package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders are redacted before request headers reach the debug log.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
}

// RedactHeaders converts request headers into log attributes sorted by name.
// Sensitive values are replaced with "[REDACTED]". For Authorization the
// scheme is kept ("Bearer [REDACTED]") so a malformed header can be told
// apart from a missing one. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, slog.String(key, redactValue(key, headers[key])))
	}
	return attrs
}

func redactValue(key string, vals []string) string {
	lower := strings.ToLower(key)
	if !sensitiveHeaders[lower] {
		return strings.Join(vals, ",")
	}
	if lower == "authorization" && len(vals) == 1 {
		if scheme, _, ok := strings.Cut(vals[0], " "); ok {
			return scheme + " " + redacted
		}
	}
	return redacted
}
