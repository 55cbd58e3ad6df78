package demo

import (
	"context"

	"github.com/google/uuid"
)

// One year of one-minute samples per machine, expanded server side.
const insertSeriesSQL = `
	INSERT INTO cpu_data (time, machine_id, value)
	SELECT g.id,
	       $1,
	       random()
	FROM generate_series(now() - INTERVAL '1 YEARS', now(), INTERVAL '1 minutes') as g(id)
`

// insertData creates one machines row per synthetic machine, then bulk
// inserts a year of randomized samples for each. Machine ids are the
// serial values 1..N assigned in insertion order.
func (r *Runner) insertData(ctx context.Context) error {
	names := make([]string, 0, r.machines)
	for i := 0; i < r.machines; i++ {
		names = append(names, uuid.NewString())
	}

	for _, name := range names {
		if _, err := r.conn.Exec(ctx, `INSERT INTO machines (name) VALUES ($1)`, name); err != nil {
			return err
		}
	}

	for i := 0; i < r.machines; i++ {
		if _, err := r.conn.Exec(ctx, insertSeriesSQL, i+1); err != nil {
			return err
		}
	}

	return nil
}
