package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeConn is a scripted stand-in for the pgx connection. It records
// every statement in execution order, fails statements matching failOn,
// and serves canned rows for queries matching a results key.
type statement struct {
	sql  string
	args []any
}

type fakeConn struct {
	stmts   []statement
	failOn  string
	results map[string][][]any
}

func (f *fakeConn) record(sql string, args []any) error {
	f.stmts = append(f.stmts, statement{sql: sql, args: args})
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return fmt.Errorf("forced failure on %q", f.failOn)
	}
	return nil
}

func (f *fakeConn) lookup(sql string) [][]any {
	for key, rows := range f.results {
		if strings.Contains(sql, key) {
			return rows
		}
	}
	return nil
}

func (f *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, f.record(sql, args)
}

func (f *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	if err := f.record(sql, args); err != nil {
		return nil, err
	}
	return &fakeRows{rows: f.lookup(sql)}, nil
}

func (f *fakeConn) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	if err := f.record(sql, args); err != nil {
		return &fakeRow{err: err}
	}
	rows := f.lookup(sql)
	if len(rows) == 0 {
		return &fakeRow{err: pgx.ErrNoRows}
	}
	return &fakeRow{values: rows[0]}
}

// sqlIndex returns the position of the first recorded statement
// containing the substring, or -1.
func (f *fakeConn) sqlIndex(substring string) int {
	for i, stmt := range f.stmts {
		if strings.Contains(stmt.sql, substring) {
			return i
		}
	}
	return -1
}

func (f *fakeConn) countStatements(substring string) int {
	count := 0
	for _, stmt := range f.stmts {
		if strings.Contains(stmt.sql, substring) {
			count++
		}
	}
	return count
}

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(dest, r.values)
}

type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.idx-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(dest, r.rows[r.idx-1])
}

func scanInto(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan expected %d destinations, got %d", len(values), len(dest))
	}
	for i, value := range values {
		switch d := dest[i].(type) {
		case *time.Time:
			d2, ok := value.(time.Time)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into *time.Time", i, value)
			}
			*d = d2
		case *float64:
			d2, ok := value.(float64)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into *float64", i, value)
			}
			*d = d2
		case *string:
			d2, ok := value.(string)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into *string", i, value)
			}
			*d = d2
		case *int64:
			d2, ok := value.(int64)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into *int64", i, value)
			}
			*d = d2
		case *int:
			d2, ok := value.(int)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into *int", i, value)
			}
			*d = d2
		case *bool:
			d2, ok := value.(bool)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into *bool", i, value)
			}
			*d = d2
		default:
			return fmt.Errorf("column %d: unsupported scan destination %T", i, dest[i])
		}
	}
	return nil
}
