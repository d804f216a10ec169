package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/dto"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/logging"
)

// limiterIdleAfter is how long a client's limiter may sit full before it is
// evicted.
const limiterIdleAfter = 5 * time.Minute

// clientLimiters holds one token bucket per client address.
type clientLimiters struct {
	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
}

func (c *clientLimiters) get(key string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.lastCleanup) >= limiterIdleAfter {
		for k, l := range c.limiters {
			if l.Tokens() >= float64(c.burst) {
				delete(c.limiters, k)
			}
		}
		c.lastCleanup = time.Now()
	}

	l, ok := c.limiters[key]
	if !ok {
		l = rate.NewLimiter(c.limit, c.burst)
		c.limiters[key] = l
	}
	return l
}

// RateLimit returns middleware that limits each client address to
// perSecond requests with the given burst. Exceeding the limit gets a 429
// problem response with Retry-After. A non-positive perSecond disables
// limiting.
//
// Clients are keyed by the connection's remote address. Forwarding headers
// are ignored since they are client-controlled.
func RateLimit(perSecond float64, burst int) func(http.Handler) http.Handler {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}

	limiters := &clientLimiters{
		limiters:    make(map[string]*rate.Limiter),
		limit:       rate.Limit(perSecond),
		burst:       burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			limiter := limiters.get(key)

			if !limiter.Allow() {
				retryAfter := int(math.Ceil(1 / perSecond))
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))

				ctx := r.Context()
				logging.FromContext(ctx).WarnContext(ctx, "rate limit exceeded",
					slog.String("client", key),
					slog.String("path", r.URL.Path),
				)
				dto.WriteProblem(w, r, http.StatusTooManyRequests, "too many requests, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
