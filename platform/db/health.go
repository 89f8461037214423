package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthChecker reports whether the contact store is reachable.
type HealthChecker struct {
	pool *pgxpool.Pool
}

// NewHealthChecker wraps pool for readiness probes.
func NewHealthChecker(pool *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

// Ping checks database connectivity.
func (h *HealthChecker) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
