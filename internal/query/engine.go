package query

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/jmoiron/sqlx"
)

// Row is one result row keyed by column name, holding the raw driver values.
type Row map[string]any

// Engine runs Select statements against a pool handed in at construction.
type Engine struct {
	DB *sqlx.DB
}

func NewEngine(db *sqlx.DB) *Engine {
	return &Engine{DB: db}
}

// Rows runs s in a single round trip. An empty result is an empty slice.
// The caller's context is passed to the driver, so a cancelled or expired
// context aborts the query and surfaces as an infrastructure error.
func (e *Engine) Rows(ctx context.Context, s *Select) ([]Row, error) {
	query, args, err := s.ToSQL()
	if err != nil {
		return nil, err
	}
	query = e.DB.Rebind(query)

	op := fmt.Sprintf("query %s", s.Table())

	rows, err := e.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, apperror.Infrastructure(op, err)
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		r := Row{}
		if err := rows.MapScan(r); err != nil {
			return nil, apperror.Infrastructure(op, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Infrastructure(op, err)
	}

	return out, nil
}

// Row runs s limited to one row and returns apperror.ErrNotFound when
// nothing matched.
func (e *Engine) Row(ctx context.Context, s *Select) (Row, error) {
	rows, err := e.Rows(ctx, s.Limit(1))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.ErrNotFound
	}
	return rows[0], nil
}
