package demo

import (
	"context"
	"fmt"
)

const enableCompressionSQL = `
	ALTER TABLE cpu_data SET (
	        timescaledb.compress,
	        timescaledb.compress_orderby = 'time DESC',
	        timescaledb.compress_segmentby = 'machine_id'
	)
`

const compressionPolicySQL = `
	SELECT add_compression_policy('cpu_data', INTERVAL '2 weeks')
`

const compressChunksSQL = `
	SELECT compress_chunk(i, if_not_compressed=>true)
	FROM show_chunks('cpu_data', older_than => INTERVAL ' 2 weeks') i
`

const compressionStatsSQL = `
	SELECT pg_size_pretty(before_compression_total_bytes) as "before compression",
	pg_size_pretty(after_compression_total_bytes) as "after compression"
	FROM hypertable_compression_stats('cpu_data')
`

// compressData enables columnar compression on cpu_data, registers the
// automatic policy, compresses all currently eligible chunks and prints
// the before/after storage size.
func (r *Runner) compressData(ctx context.Context) error {
	fmt.Fprintln(r.out, "Activating compression")

	if _, err := r.conn.Exec(ctx, enableCompressionSQL); err != nil {
		return err
	}
	if _, err := r.conn.Exec(ctx, compressionPolicySQL); err != nil {
		return err
	}
	if _, err := r.conn.Exec(ctx, compressChunksSQL); err != nil {
		return err
	}

	rows, err := r.conn.Query(ctx, compressionStatsSQL)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var before, after string
		if err := rows.Scan(&before, &after); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "before %s: after %s\n", before, after)
	}

	return rows.Err()
}
