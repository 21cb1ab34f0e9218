package repository

import (
	"context"
	"fmt"

	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/entity"

	"gorm.io/gorm"
)

var positionColumns = columnSet{
	query.FieldID:           "id",
	query.FieldSymbol:       "symbol",
	query.FieldPositionType: "position_type",
	query.FieldStatus:       "status",
	query.FieldPnL:          "pnl",
	query.FieldCreatedAt:    "created_at",
}

// PnLAggregate is the result of one grouped aggregation over pnl.
type PnLAggregate struct {
	Count       int64   `gorm:"column:position_count"`
	MaxPnL      float64 `gorm:"column:max_pnl"`
	MinPnL      float64 `gorm:"column:min_pnl"`
	PositiveSum float64 `gorm:"column:positive_sum"`
	NegativeSum float64 `gorm:"column:negative_sum"`
	TotalPnL    float64 `gorm:"column:total_pnl"`
}

// PositionRepository defines the read operations over the position ledger.
type PositionRepository interface {
	FindPage(ctx context.Context, filter query.Filter, page query.Page) ([]entity.Position, int64, error)
	DistinctValues(ctx context.Context, fields ...query.Field) (map[query.Field][]string, error)
	AggregatePnL(ctx context.Context, filter query.Filter) (*PnLAggregate, error)
}

// NewPositionRepository creates a new GORM-based position repository.
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

type positionRepository struct {
	db *gorm.DB
}

// FindPage returns the page of positions matching filter, newest first, and
// the total number of matches.
func (r *positionRepository) FindPage(ctx context.Context, filter query.Filter, page query.Page) ([]entity.Position, int64, error) {
	tx, err := applyFilter(r.db.WithContext(ctx).Model(&entity.Position{}), positionColumns, filter)
	if err != nil {
		return nil, 0, err
	}

	positions := make([]entity.Position, 0)
	total, err := findPage(tx, positionColumns[query.FieldCreatedAt], page, &positions)
	if err != nil {
		return nil, 0, fmt.Errorf("positions: %w", err)
	}
	return positions, total, nil
}

// DistinctValues enumerates the distinct values of fields across the whole ledger.
func (r *positionRepository) DistinctValues(ctx context.Context, fields ...query.Field) (map[query.Field][]string, error) {
	return distinctValues(ctx, r.db, &entity.Position{}, positionColumns, fields)
}

// AggregatePnL computes count, extremes and signed sums of pnl over the
// positions matching filter in a single grouped query.
func (r *positionRepository) AggregatePnL(ctx context.Context, filter query.Filter) (*PnLAggregate, error) {
	tx, err := applyFilter(r.db.WithContext(ctx).Model(&entity.Position{}), positionColumns, filter)
	if err != nil {
		return nil, err
	}

	var agg PnLAggregate
	err = tx.Select(`COUNT(*) AS position_count,
		COALESCE(MAX(pnl), 0) AS max_pnl,
		COALESCE(MIN(pnl), 0) AS min_pnl,
		COALESCE(SUM(CASE WHEN pnl > 0 THEN pnl ELSE 0 END), 0) AS positive_sum,
		COALESCE(SUM(CASE WHEN pnl < 0 THEN pnl ELSE 0 END), 0) AS negative_sum,
		COALESCE(SUM(pnl), 0) AS total_pnl`).
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate pnl: %w", err)
	}
	return &agg, nil
}
