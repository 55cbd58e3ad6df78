package db

import (
	"context"
	"fmt"

	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Conn is the subset of *pgx.Conn the demo and the collector depend on.
// Tests substitute a scripted fake for it.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func DSN(settings config.Settings) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		settings.Host,
		settings.Port,
		settings.User,
		settings.Password,
		settings.Database,
	)
}

// Connect opens the single connection used for the lifetime of the run,
// pings it and verifies that the timescaledb extension is installed.
func Connect(ctx context.Context, settings config.Settings) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, DSN(settings))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%d: %w", settings.Host, settings.Port, err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping %s:%d: %w", settings.Host, settings.Port, err)
	}

	var installed bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_extension WHERE extname = 'timescaledb')").Scan(&installed)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to check for timescaledb extension: %w", err)
	}
	if !installed {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("timescaledb extension not installed in database %s", settings.Database)
	}

	log.Debug().Msgf("Connected to %s:%d/%s", settings.Host, settings.Port, settings.Database)

	return conn, nil
}
