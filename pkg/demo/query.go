package demo

import (
	"context"
	"fmt"
	"time"
)

const topByAverageSQL = `
	SELECT time_bucket('1 DAYS', time) AS bucket, avg(value) AS avg, name
	FROM cpu_data
	JOIN machines ON machines.id = cpu_data.machine_id
	GROUP BY bucket, name
	ORDER BY avg DESC
	LIMIT 10
`

const firstLastSQL = `
	SELECT time_bucket('1 DAYS', time) AS bucket, first(value, time) AS first, last(value, time) as last, name
	FROM cpu_data
	JOIN machines ON machines.id = cpu_data.machine_id
	GROUP BY bucket, name
	ORDER BY bucket DESC
	LIMIT 10
`

// executeQueries runs the two read-only aggregations and prints result
// rows in arrival order.
func (r *Runner) executeQueries(ctx context.Context) error {
	if err := r.queryByAverage(ctx); err != nil {
		return err
	}
	return r.queryFirstLast(ctx)
}

func (r *Runner) queryByAverage(ctx context.Context) error {
	fmt.Fprintln(r.out, "********* Requesting by average")

	rows, err := r.conn.Query(ctx, topByAverageSQL)
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

func (r *Runner) queryFirstLast(ctx context.Context) error {
	fmt.Fprintln(r.out, "********* Requesting first and last values")

	rows, err := r.conn.Query(ctx, firstLastSQL)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket time.Time
		var first, last float64
		var name string
		if err := rows.Scan(&bucket, &first, &last, &name); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%s: %f, %f on %s\n", bucket.Format(time.RFC3339), first, last, name)
	}

	return rows.Err()
}
