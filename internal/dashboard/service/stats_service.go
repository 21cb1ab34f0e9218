package service

import (
	"context"
	"math"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/dashboard/repository"
	"golang-trading-dashboard/pkg/common"
	"golang-trading-dashboard/pkg/logger"
)

// StatsService defines the interface for realized P&L statistics.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.Stats, error)
}

// NewStatsService creates a new stats service.
func NewStatsService(positionRepo repository.PositionRepository, logger *logger.Logger) StatsService {
	return &statsService{
		positionRepo: positionRepo,
		logger:       logger,
	}
}

type statsService struct {
	positionRepo repository.PositionRepository
	logger       *logger.Logger
}

// GetStats aggregates every closed position. MaxLoss is never positive;
// MaxProfit is the raw maximum and may be negative when every trade lost.
func (s *statsService) GetStats(ctx context.Context) (*dto.Stats, error) {
	stats, err := closedStats(ctx, s.positionRepo)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to aggregate closed positions", logger.ErrorField(err))
		return nil, err
	}
	return stats, nil
}

// closedStats does not log so that callers composing it report the failure once.
func closedStats(ctx context.Context, positionRepo repository.PositionRepository) (*dto.Stats, error) {
	closed := query.Filter{Predicates: []query.Predicate{
		query.ExactMatch{Field: query.FieldStatus, Value: common.PositionStatusClosed},
	}}

	agg, err := positionRepo.AggregatePnL(ctx, closed)
	if err != nil {
		return nil, err
	}

	return &dto.Stats{
		MaxProfit:        agg.MaxPnL,
		MaxLoss:          math.Min(agg.MinPnL, 0),
		TotalPositivePnl: agg.PositiveSum,
		TotalNegativePnl: agg.NegativeSum,
	}, nil
}
