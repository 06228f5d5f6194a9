package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter implements DBAdapter for sql.DB.
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter creates a new SQL adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// Query executes a query using the sql.DB and returns wrapped rows.
func (s *SQLAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &sqlRows{rows: rows}, nil
}

// Exec executes a query using the sql.DB and returns wrapped result.
func (s *SQLAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	result, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &sqlResult{result: result}, nil
}

// sqlRows wraps sql.Rows to implement the DBRows interface.
// Shared by SQLAdapter and SQLXAdapter, both drive database/sql underneath.
type sqlRows struct {
	rows *sql.Rows
}

// Next advances to the next row.
func (s *sqlRows) Next() bool {
	return s.rows.Next()
}

// Scan copies row values into provided destinations.
func (s *sqlRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

// Close closes the rows iterator.
func (s *sqlRows) Close() error {
	return s.rows.Close()
}

// sqlResult wraps sql.Result to implement the DBResult interface.
type sqlResult struct {
	result sql.Result
}

// RowsAffected returns the number of rows affected by the command.
func (s *sqlResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}
