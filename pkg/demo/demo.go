// Package demo drives the TimescaleDB demonstration workflow: data node
// registration, schema creation, bulk insertion, analytical queries, a
// continuous aggregate, compression and retention. Each step is a direct
// sequence of SQL statements against one connection; the database does
// all the actual work.
package demo

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Katikatikou/P6-DATAARCHITECT/pkg/db"
	"github.com/rs/zerolog/log"
)

type Runner struct {
	conn     db.Conn
	machines int
	out      io.Writer
}

type step struct {
	name string
	fn   func(context.Context) error
}

func NewRunner(conn db.Conn, machines int) *Runner {
	return &Runner{
		conn:     conn,
		machines: machines,
		out:      os.Stdout,
	}
}

// Run executes the eight steps in declared order. The first failing
// statement aborts the run; there is no retry and no rollback of the
// side effects committed by earlier steps.
func (r *Runner) Run(ctx context.Context) error {
	steps := []step{
		{"scale connection", r.scaleConnection},
		{"create schema", r.createSchema},
		{"insert data", r.insertData},
		{"execute queries", r.executeQueries},
		{"create continuous aggregate", r.createContinuousAggregate},
		{"execute continuous aggregate", r.executeContinuousAggregate},
		{"compress data", r.compressData},
		{"delete data", r.deleteData},
	}

	for _, s := range steps {
		log.Debug().Msgf("Running step: %s", s.name)
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return nil
}
