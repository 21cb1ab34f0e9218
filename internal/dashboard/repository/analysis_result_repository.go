package repository

import (
	"context"
	"fmt"

	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/entity"

	"gorm.io/gorm"
)

var analysisColumns = columnSet{
	query.FieldID:             "id",
	query.FieldSymbol:         "symbol",
	query.FieldSignal:         "consensus_signal",
	query.FieldTrend:          "current_trend",
	query.FieldRecommendation: "recommendation",
	query.FieldSummary:        "summary",
	query.FieldTimestamp:      "timestamp",
}

// AnalysisResultRepository defines the read operations over the analysis archive.
type AnalysisResultRepository interface {
	FindPage(ctx context.Context, filter query.Filter, page query.Page) ([]entity.AnalysisResult, int64, error)
	DistinctValues(ctx context.Context, fields ...query.Field) (map[query.Field][]string, error)
	Count(ctx context.Context) (int64, error)
}

// NewAnalysisResultRepository creates a new GORM-based analysis result repository.
func NewAnalysisResultRepository(db *gorm.DB) AnalysisResultRepository {
	return &analysisResultRepository{db: db}
}

type analysisResultRepository struct {
	db *gorm.DB
}

// FindPage returns the page of analyses matching filter, latest first, and
// the total number of matches.
func (r *analysisResultRepository) FindPage(ctx context.Context, filter query.Filter, page query.Page) ([]entity.AnalysisResult, int64, error) {
	tx, err := applyFilter(r.db.WithContext(ctx).Model(&entity.AnalysisResult{}), analysisColumns, filter)
	if err != nil {
		return nil, 0, err
	}

	results := make([]entity.AnalysisResult, 0)
	total, err := findPage(tx, analysisColumns[query.FieldTimestamp], page, &results)
	if err != nil {
		return nil, 0, fmt.Errorf("analysis results: %w", err)
	}
	return results, total, nil
}

// DistinctValues enumerates the distinct values of fields across the whole archive.
func (r *analysisResultRepository) DistinctValues(ctx context.Context, fields ...query.Field) (map[query.Field][]string, error) {
	return distinctValues(ctx, r.db, &entity.AnalysisResult{}, analysisColumns, fields)
}

// Count returns the number of archived analyses.
func (r *analysisResultRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.AnalysisResult{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count analysis results: %w", err)
	}
	return total, nil
}
