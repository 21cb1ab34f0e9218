package service

import (
	"context"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/dashboard/repository"
	"golang-trading-dashboard/internal/entity"

	"github.com/stretchr/testify/mock"
)

type mockPositionRepository struct {
	mock.Mock
}

func (m *mockPositionRepository) FindPage(ctx context.Context, filter query.Filter, page query.Page) ([]entity.Position, int64, error) {
	args := m.Called(ctx, filter, page)
	positions, _ := args.Get(0).([]entity.Position)
	return positions, args.Get(1).(int64), args.Error(2)
}

func (m *mockPositionRepository) DistinctValues(ctx context.Context, fields ...query.Field) (map[query.Field][]string, error) {
	args := m.Called(ctx, fields)
	values, _ := args.Get(0).(map[query.Field][]string)
	return values, args.Error(1)
}

func (m *mockPositionRepository) AggregatePnL(ctx context.Context, filter query.Filter) (*repository.PnLAggregate, error) {
	args := m.Called(ctx, filter)
	agg, _ := args.Get(0).(*repository.PnLAggregate)
	return agg, args.Error(1)
}

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindCurrent(ctx context.Context) (*entity.Account, error) {
	args := m.Called(ctx)
	account, _ := args.Get(0).(*entity.Account)
	return account, args.Error(1)
}

type mockAnalysisResultRepository struct {
	mock.Mock
}

func (m *mockAnalysisResultRepository) FindPage(ctx context.Context, filter query.Filter, page query.Page) ([]entity.AnalysisResult, int64, error) {
	args := m.Called(ctx, filter, page)
	results, _ := args.Get(0).([]entity.AnalysisResult)
	return results, args.Get(1).(int64), args.Error(2)
}

func (m *mockAnalysisResultRepository) DistinctValues(ctx context.Context, fields ...query.Field) (map[query.Field][]string, error) {
	args := m.Called(ctx, fields)
	values, _ := args.Get(0).(map[query.Field][]string)
	return values, args.Error(1)
}

func (m *mockAnalysisResultRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) FetchAll(ctx context.Context, req *dto.DashboardRequest) *dto.DashboardSnapshot {
	args := m.Called(ctx, req)
	return args.Get(0).(*dto.DashboardSnapshot)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendMarkdown(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

func (m *mockNotifier) SendText(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}
