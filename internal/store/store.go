// Package store is the persistence adapter: generic bulk-insert and count /
// query operations keyed by collection (table) name. The generator never
// updates or deletes rows; each run writes a final snapshot into a freshly
// created database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type Store struct {
	DB *sql.DB
}

// BulkInsert writes all records into table inside one transaction, in the
// given column order. Every record must carry exactly those columns.
func (s Store) BulkInsert(ctx context.Context, table string, columns []string, records []map[string]any) error {
	if len(records) == 0 {
		return nil
	}
	if len(columns) == 0 {
		return fmt.Errorf("insert into %s: no columns", table)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ","), placeholders)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	args := make([]any, len(columns))
	for _, rec := range records {
		if len(rec) != len(columns) {
			return fmt.Errorf("insert into %s: record has %d columns, want %d", table, len(rec), len(columns))
		}
		for i, col := range columns {
			v, ok := rec[col]
			if !ok {
				return fmt.Errorf("insert into %s: record missing column %s", table, col)
			}
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of rows in table.
func (s Store) Count(ctx context.Context, table string) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
	return n, err
}

// Query runs a SELECT and returns rows as column-name maps.
func (s Store) Query(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(map[string]any, len(columns))
		for i, col := range columns {
			rec[col] = values[i]
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
