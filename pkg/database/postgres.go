package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunarium/arcana/pkg/config"
)

// DB wraps the pgxpool.Pool. Database connections are created in this
// package only.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a connection pool from config and verifies it with a
// ping before returning.
func New(cfg *config.Config) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Ping checks if the database is accessible.
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// HealthStatus reports database health for the health endpoint.
type HealthStatus struct {
	Healthy      bool          `json:"healthy"`
	ResponseTime time.Duration `json:"response_time"`
	Error        string        `json:"error,omitempty"`
	IdleConns    int32         `json:"idle_conns"`
	TotalConns   int32         `json:"total_conns"`
	MaxConns     int32         `json:"max_conns"`
}

// HealthCheck pings the database and snapshots pool statistics.
func (db *DB) HealthCheck(ctx context.Context) *HealthStatus {
	status := &HealthStatus{}

	start := time.Now()
	if err := db.Pool.Ping(ctx); err != nil {
		status.Error = err.Error()
		return status
	}
	status.ResponseTime = time.Since(start)

	stats := db.Pool.Stat()
	status.IdleConns = stats.IdleConns()
	status.TotalConns = stats.TotalConns()
	status.MaxConns = stats.MaxConns()
	status.Healthy = true
	return status
}
