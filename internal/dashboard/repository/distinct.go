package repository

import (
	"context"
	"fmt"

	"golang-trading-dashboard/internal/dashboard/query"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// distinctValues returns, per field, the distinct non-empty values of the
// whole table behind model. One query per field runs concurrently.
func distinctValues(ctx context.Context, db *gorm.DB, model interface{}, cols columnSet, fields []query.Field) (map[query.Field][]string, error) {
	results := make([][]string, len(fields))
	g, gctx := errgroup.WithContext(ctx)
	for i, field := range fields {
		col, err := cols.column(field)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			tx := db.WithContext(gctx).Model(model)
			quoted := tx.Statement.Quote(col)
			values := make([]string, 0)
			err := tx.Where(quoted+" IS NOT NULL AND "+quoted+" <> ''").
				Distinct(col).
				Order(col).
				Pluck(col, &values).Error
			if err != nil {
				return fmt.Errorf("distinct %s: %w", col, err)
			}
			results[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[query.Field][]string, len(fields))
	for i, field := range fields {
		out[field] = results[i]
	}
	return out, nil
}
