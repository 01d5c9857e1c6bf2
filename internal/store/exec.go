package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Exec runs an arbitrary caller-supplied statement and returns any
// result rows uninterpreted, rendered as strings (NULL becomes "").
//
// This is the raw escape hatch: the statement text is executed
// verbatim, with no parameter binding and no safety guarantee. It
// exists for trusted input only - direct store manipulation by the
// operator. Structured operations must never go through here.
//
// Store-level failures (syntax errors, constraint violations) come
// back as *StoreError, never a crash. Statements without result rows
// return nil columns and no rows.
func (s *Store) Exec(ctx context.Context, statement string) (columns []string, rowValues [][]string, err error) {
	rows, err := s.db.QueryContext(ctx, statement)
	if err != nil {
		return nil, nil, classify("raw exec", "", err)
	}
	defer rows.Close()

	columns, err = rows.Columns()
	if err != nil {
		return nil, nil, classify("raw exec columns", "", err)
	}

	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, classify("raw exec scan", "", err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		rowValues = append(rowValues, row)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, classify("raw exec iterate", "", err)
	}

	if len(columns) == 0 {
		columns = nil
	}

	return columns, rowValues, nil
}

// CountRows reports SELECT COUNT(*) against one schema table, for
// tests and diagnostics.
//
// Table names cannot be bound as parameters, so the name is checked
// against the schema's table list before interpolation. Arbitrary
// statements belong in Exec.
func (s *Store) CountRows(ctx context.Context, table string) (int, error) {
	if !knownTable(table) {
		return 0, &StoreError{
			Code: ErrCodeQuery,
			Op:   "count rows",
			Err:  fmt.Errorf("unknown table %q", table),
		}
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, classify("count rows", "", err)
	}
	return count, nil
}

func knownTable(name string) bool {
	for _, t := range tables {
		if t == name {
			return true
		}
	}
	return false
}
