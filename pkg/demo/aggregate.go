package demo

import (
	"context"
	"fmt"
	"time"
)

// No IF NOT EXISTS here: a second run fails with "already exists".
// That matches the original workflow and is covered by a test.
const createAggregateSQL = `
	CREATE MATERIALIZED VIEW cpu_consommation_avg_daily
	WITH (timescaledb.continuous) AS
	    SELECT time_bucket('1 DAYS', time) AS bucket, avg(value) AS avg, machine_id
	    FROM cpu_data
	    GROUP BY bucket, machine_id
`

const queryAggregateSQL = `
	SELECT bucket, avg, name
	FROM cpu_consommation_avg_daily
	JOIN machines ON machines.id = cpu_consommation_avg_daily.machine_id
	ORDER BY avg DESC
	LIMIT 10
`

// createContinuousAggregate defines the incrementally maintained daily
// average view over cpu_data. The database keeps it up to date as new
// rows arrive.
func (r *Runner) createContinuousAggregate(ctx context.Context) error {
	_, err := r.conn.Exec(ctx, createAggregateSQL)
	return err
}

func (r *Runner) executeContinuousAggregate(ctx context.Context) error {
	fmt.Fprintln(r.out, "********* Exec continuous aggregate")

	rows, err := r.conn.Query(ctx, queryAggregateSQL)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket time.Time
		var avg float64
		var name string
		if err := rows.Scan(&bucket, &avg, &name); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%s: %f on %s\n", bucket.Format(time.RFC3339), avg, name)
	}

	return rows.Err()
}
