package sqlite

import (
	"context"
	"fmt"
)

// Name returns the identifier used when the store is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}
