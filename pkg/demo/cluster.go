package demo

import "context"

// scaleConnection registers the two remote data nodes with the access
// node. Both statements tolerate the node already existing, so the step
// is idempotent across repeated runs.
func (r *Runner) scaleConnection(ctx context.Context) error {
	_, err := r.conn.Exec(ctx, `
		SELECT add_data_node('datanode_1', 'timescaledb2', password =>'password', if_not_exists => TRUE)
	`)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, `
		SELECT add_data_node('datanode_2', 'timescaledb3', password =>'password', if_not_exists => TRUE)
	`)
	return err
}
