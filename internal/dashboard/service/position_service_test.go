package service

import (
	"context"
	"errors"
	"testing"

	"golang-trading-dashboard/internal/dashboard/config"
	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/entity"
	"golang-trading-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLimits = config.Dashboard{
	ClosedPageLimit:   10,
	OpenPageLimit:     100,
	AnalysisPageLimit: 20,
	MaxPageLimit:      500,
}

func TestPositionService_QueryPositions(t *testing.T) {
	repo := new(mockPositionRepository)
	svc := NewPositionService(repo, testLimits, logger.NewNop())

	filters := map[string]interface{}{"symbol": "btc", "colour": "red"}
	wantFilter := query.BuildPositionFilter("CLOSED", filters)
	require.Equal(t, []string{"colour"}, wantFilter.Ignored)
	positions := []entity.Position{{ID: "a", Symbol: "BTCUSDT"}}
	repo.On("FindPage", mock.Anything, wantFilter, query.Page{Number: 2, Limit: 10}).Return(positions, int64(25), nil)
	repo.On("DistinctValues", mock.Anything, []query.Field{query.FieldSymbol, query.FieldPositionType}).
		Return(map[query.Field][]string{query.FieldSymbol: {"BTCUSDT"}}, nil)

	page, err := svc.QueryPositions(context.Background(), &dto.PositionQueryRequest{
		Page:    2,
		Status:  "CLOSED",
		Filters: filters,
	})
	require.NoError(t, err)

	assert.Equal(t, positions, page.Positions)
	assert.Equal(t, query.Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 25, Limit: 10}, page.Pagination)
	assert.Equal(t, []string{"BTCUSDT"}, page.UniqueValues.Symbols)
	assert.NotNil(t, page.UniqueValues.PositionTypes)
	assert.Empty(t, page.UniqueValues.PositionTypes)
	repo.AssertExpectations(t)
}

func TestPositionService_QueryPositions_OpenDefaultLimit(t *testing.T) {
	repo := new(mockPositionRepository)
	svc := NewPositionService(repo, testLimits, logger.NewNop())

	repo.On("FindPage", mock.Anything, mock.Anything, query.Page{Number: 1, Limit: 100}).Return(nil, int64(0), nil)
	repo.On("DistinctValues", mock.Anything, mock.Anything).Return(map[query.Field][]string{}, nil)

	page, err := svc.QueryPositions(context.Background(), &dto.PositionQueryRequest{Status: "open", Limit: -3})
	require.NoError(t, err)
	assert.NotNil(t, page.Positions)
	assert.Empty(t, page.Positions)
	assert.Equal(t, 0, page.Pagination.TotalPages)
	repo.AssertExpectations(t)
}

func TestPositionService_QueryPositions_LimitCapped(t *testing.T) {
	repo := new(mockPositionRepository)
	svc := NewPositionService(repo, testLimits, logger.NewNop())

	repo.On("FindPage", mock.Anything, mock.Anything, query.Page{Number: 1, Limit: 500}).Return(nil, int64(0), nil)
	repo.On("DistinctValues", mock.Anything, mock.Anything).Return(map[query.Field][]string{}, nil)

	_, err := svc.QueryPositions(context.Background(), &dto.PositionQueryRequest{Page: 0, Limit: 10000})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPositionService_QueryPositions_StoreError(t *testing.T) {
	repo := new(mockPositionRepository)
	svc := NewPositionService(repo, testLimits, logger.NewNop())

	storeErr := errors.New("connection refused")
	repo.On("FindPage", mock.Anything, mock.Anything, mock.Anything).Return(nil, int64(0), storeErr)
	repo.On("DistinctValues", mock.Anything, mock.Anything).Return(map[query.Field][]string{}, nil).Maybe()

	page, err := svc.QueryPositions(context.Background(), &dto.PositionQueryRequest{})
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, page)
}
