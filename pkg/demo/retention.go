package demo

import (
	"context"
	"fmt"
)

const countRowsSQL = `SELECT count(time) FROM cpu_data`

const retentionPolicySQL = `
	SELECT add_retention_policy('cpu_data', INTERVAL '1 MONTHS')
`

const dropChunksSQL = `
	SELECT drop_chunks('cpu_data', INTERVAL '1 MONTHS')
`

// deleteData reports the row count, registers the retention policy,
// drops all chunks older than one month and reports the count again.
func (r *Runner) deleteData(ctx context.Context) error {
	var count int64
	if err := r.conn.QueryRow(ctx, countRowsSQL).Scan(&count); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "before deleting data %d\n", count)

	if _, err := r.conn.Exec(ctx, retentionPolicySQL); err != nil {
		return err
	}
	if _, err := r.conn.Exec(ctx, dropChunksSQL); err != nil {
		return err
	}

	if err := r.conn.QueryRow(ctx, countRowsSQL).Scan(&count); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "after deleting data %d\n", count)

	return nil
}
