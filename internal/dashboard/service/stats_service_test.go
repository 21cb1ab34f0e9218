package service

import (
	"context"
	"errors"
	"testing"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/dashboard/repository"
	"golang-trading-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var closedOnly = query.Filter{Predicates: []query.Predicate{
	query.ExactMatch{Field: query.FieldStatus, Value: "CLOSED"},
}}

func TestStatsService_GetStats(t *testing.T) {
	tests := []struct {
		name string
		agg  repository.PnLAggregate
		want dto.Stats
	}{
		{
			name: "mixed",
			agg:  repository.PnLAggregate{Count: 5, MaxPnL: 300, MinPnL: -40, PositiveSum: 450, NegativeSum: -50},
			want: dto.Stats{MaxProfit: 300, MaxLoss: -40, TotalPositivePnl: 450, TotalNegativePnl: -50},
		},
		{
			name: "empty",
			want: dto.Stats{},
		},
		{
			name: "all profitable clamps max loss",
			agg:  repository.PnLAggregate{Count: 2, MaxPnL: 20, MinPnL: 10, PositiveSum: 30},
			want: dto.Stats{MaxProfit: 20, MaxLoss: 0, TotalPositivePnl: 30},
		},
		{
			name: "all losing keeps negative max profit",
			agg:  repository.PnLAggregate{Count: 2, MaxPnL: -5, MinPnL: -20, NegativeSum: -25},
			want: dto.Stats{MaxProfit: -5, MaxLoss: -20, TotalNegativePnl: -25},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPositionRepository)
			repo.On("AggregatePnL", mock.Anything, closedOnly).Return(&tt.agg, nil)

			stats, err := NewStatsService(repo, logger.NewNop()).GetStats(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, *stats)
			repo.AssertExpectations(t)
		})
	}
}

func TestStatsService_GetStats_Error(t *testing.T) {
	repo := new(mockPositionRepository)
	repo.On("AggregatePnL", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	stats, err := NewStatsService(repo, logger.NewNop()).GetStats(context.Background())
	assert.EqualError(t, err, "timeout")
	assert.Nil(t, stats)
}
