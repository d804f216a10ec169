package ports

import (
	"context"
	"time"
)

// HealthChecker is implemented by the service's dependencies: the SQLite
// store ("database") and the notification webhook client ("notifier").
type HealthChecker interface {
	// Name identifies the dependency in readiness output.
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honor
	// ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthResult is the outcome of one dependency check.
type HealthResult struct {
	Name string

	// Critical dependencies take the service out of rotation when they fail.
	// The store is critical. The notifier is not: notifications are persisted
	// first and external delivery is best-effort.
	Critical bool

	Err      error
	Duration time.Duration
}

// Healthy reports whether the check passed.
func (r HealthResult) Healthy() bool { return r.Err == nil }

// HealthRegistry runs the registered dependency checks for /health/ready.
type HealthRegistry interface {
	// Register adds checker. A later registration under the same name
	// replaces the earlier one.
	Register(checker HealthChecker, critical bool)

	// CheckAll runs every check and returns the results sorted by name.
	CheckAll(ctx context.Context) []HealthResult
}
