// Package collector samples local CPU usage and appends it to the
// cpu_data hypertable, registering the host as a machines row on first
// use. It expects the schema created by the demo run to be in place.
package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/config"
	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/db"
	"github.com/cenkalti/backoff"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
)

type Collector struct {
	settings  config.Settings
	conn      *pgx.Conn
	machineID int
}

func New(settings config.Settings) *Collector {
	return &Collector{
		settings: settings,
	}
}

// Run samples CPU usage every interval until the context is cancelled.
// Unlike the demo run, a failed insert does not abort: the connection is
// re-established with exponential backoff and sampling continues.
func (c *Collector) Run(ctx context.Context) error {
	if err := c.connect(ctx); err != nil {
		return err
	}
	defer c.close(ctx)

	log.Info().Msgf("Collecting CPU usage every %s as machine %d.", c.settings.CollectInterval, c.machineID)

	ticker := time.NewTicker(c.settings.CollectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.sample(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Warn().Err(err).Msg("Failed to record sample, reconnecting...")
				if err := c.reconnect(ctx); err != nil {
					return err
				}
			}
		}
	}
}

func (c *Collector) connect(ctx context.Context) error {
	conn, err := db.Connect(ctx, c.settings)
	if err != nil {
		return err
	}

	hostname, err := os.Hostname()
	if err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("failed to resolve hostname: %w", err)
	}

	machineID, err := ensureMachine(ctx, conn, hostname)
	if err != nil {
		_ = conn.Close(ctx)
		return err
	}

	c.conn = conn
	c.machineID = machineID
	return nil
}

func (c *Collector) reconnect(ctx context.Context) error {
	c.close(ctx)

	operation := func() error {
		return c.connect(ctx)
	}
	return backoff.Retry(operation, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
}

func (c *Collector) close(ctx context.Context) {
	if c.conn != nil {
		_ = c.conn.Close(ctx)
		c.conn = nil
	}
}

func (c *Collector) sample(ctx context.Context) error {
	usage, err := collectCPUUsage()
	if err != nil {
		return err
	}

	return insertSample(ctx, c.conn, c.machineID, usage)
}

func collectCPUUsage() (float64, error) {
	usage, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(usage) == 0 {
		return 0, fmt.Errorf("no cpu usage data returned")
	}
	return usage[0], nil
}

// ensureMachine returns the machines row id for the given name,
// creating the row if it does not exist yet.
func ensureMachine(ctx context.Context, conn db.Conn, name string) (int, error) {
	var id int
	err := conn.QueryRow(ctx, `SELECT id FROM machines WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up machine %s: %w", name, err)
	}

	err = conn.QueryRow(ctx, `INSERT INTO machines (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to register machine %s: %w", name, err)
	}
	return id, nil
}

func insertSample(ctx context.Context, conn db.Conn, machineID int, usage float64) error {
	_, err := conn.Exec(ctx,
		`INSERT INTO cpu_data (time, machine_id, value) VALUES (now(), $1, $2)`,
		machineID, usage,
	)
	return err
}
