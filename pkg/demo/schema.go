package demo

import "context"

// createSchema drops and recreates the machines and cpu_data tables,
// then converts cpu_data into a hypertable partitioned by time and
// machine_id with daily chunks. Idempotent: drops use IF EXISTS and the
// hypertable conversion uses if_not_exists.
func (r *Runner) createSchema(ctx context.Context) error {
	statements := []string{
		`DROP TABLE IF EXISTS cpu_data CASCADE`,
		`DROP TABLE IF EXISTS machines CASCADE`,
		`CREATE TABLE machines (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE cpu_data (
			time TIMESTAMPTZ NOT NULL,
			machine_id INTEGER REFERENCES machines (id),
			value DOUBLE PRECISION
		)`,
		`SELECT create_hypertable('cpu_data', 'time', 'machine_id', 2, if_not_exists => TRUE)`,
		`SELECT set_chunk_time_interval('cpu_data', INTERVAL '1 day')`,
	}

	for _, statement := range statements {
		if _, err := r.conn.Exec(ctx, statement); err != nil {
			return err
		}
	}

	return nil
}
