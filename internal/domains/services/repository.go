package services

import (
	"context"
	"database/sql"
	"fmt"
)

// Row is one services record keyed by column name. The table's columns are
// owned by the database, so rows are decoded generically.
type Row map[string]any

type Repository interface {
	ListServices(ctx context.Context) ([]Row, error)
}

// Querier is the subset of *sql.DB and *sql.Tx the repository needs.
type Querier interface {
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

const listServices = `SELECT * FROM services ORDER BY id ASC`

type repository struct {
	db Querier
}

func NewRepository(db Querier) Repository {
	return &repository{db: db}
}

func (r *repository) ListServices(ctx context.Context) ([]Row, error) {
	rows, err := r.db.QueryContext(ctx, listServices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows)
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	items := []Row{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalize(values[i])
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// normalize turns driver byte slices into strings so they encode as JSON text
// instead of base64.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
