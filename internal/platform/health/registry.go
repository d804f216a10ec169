// Package health runs the dependency checks behind the readiness endpoint.
// Checks run concurrently, each under its own deadline, so one hung
// dependency cannot stall the whole probe.
package health

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carolinafmacedo/workflowmanagement/internal/ports"
)

// DefaultCheckTimeout bounds a single dependency check.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

type entry struct {
	name     string
	checker  ports.HealthChecker
	critical bool
}

// Registry is the concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu           sync.RWMutex
	entries      []entry
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker, replacing any earlier checker with the same name.
func (r *Registry) Register(checker ports.HealthChecker, critical bool) {
	e := entry{name: checker.Name(), checker: checker, critical: critical}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := slices.IndexFunc(r.entries, func(x entry) bool { return x.name == e.name }); i >= 0 {
		r.entries[i] = e
		return
	}
	r.entries = append(r.entries, e)
}

// CheckAll runs every registered check concurrently and returns the results
// sorted by name. The entry list is copied under the read lock so checks run
// without holding it.
func (r *Registry) CheckAll(ctx context.Context) []ports.HealthResult {
	r.mu.RLock()
	entries := slices.Clone(r.entries)
	r.mu.RUnlock()

	results := make([]ports.HealthResult, len(entries))

	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.checkTimeout)
			defer cancel()

			start := time.Now()
			err := e.checker.HealthCheck(checkCtx)
			results[i] = ports.HealthResult{
				Name:     e.name,
				Critical: e.critical,
				Err:      err,
				Duration: time.Since(start),
			}
			return nil
		})
	}
	_ = g.Wait()

	slices.SortFunc(results, func(a, b ports.HealthResult) int {
		return strings.Compare(a.Name, b.Name)
	})
	return results
}
