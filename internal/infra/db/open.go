// Package db opens and migrates the optional PostgreSQL backend.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"newsdesk/internal/pkg/config"
)

// Open creates and configures a database connection pool for the given DSN.
// It verifies connectivity with a short ping before returning.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	maxOpen := config.GetEnvInt("DB_MAX_OPEN_CONNS", 25)
	maxIdle := config.GetEnvInt("DB_MAX_IDLE_CONNS", 10)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(config.GetEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour))
	db.SetConnMaxIdleTime(config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connection established",
		slog.Int("max_open_conns", maxOpen),
		slog.Int("max_idle_conns", maxIdle))
	return db, nil
}
