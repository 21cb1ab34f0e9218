package http

import (
	"context"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/entity"

	"github.com/stretchr/testify/mock"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) GetAccount(ctx context.Context) (*entity.Account, error) {
	args := m.Called(ctx)
	account, _ := args.Get(0).(*entity.Account)
	return account, args.Error(1)
}

func (m *mockAccountService) GetSnapshot(ctx context.Context) (*dto.AccountSnapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*dto.AccountSnapshot)
	return snap, args.Error(1)
}

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) GetStats(ctx context.Context) (*dto.Stats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*dto.Stats)
	return stats, args.Error(1)
}

type mockPositionService struct {
	mock.Mock
}

func (m *mockPositionService) QueryPositions(ctx context.Context, req *dto.PositionQueryRequest) (*dto.PositionPage, error) {
	args := m.Called(ctx, req)
	page, _ := args.Get(0).(*dto.PositionPage)
	return page, args.Error(1)
}

type mockAnalysisService struct {
	mock.Mock
}

func (m *mockAnalysisService) QueryAnalysis(ctx context.Context, req *dto.AnalysisQueryRequest) (*dto.AnalysisPage, error) {
	args := m.Called(ctx, req)
	page, _ := args.Get(0).(*dto.AnalysisPage)
	return page, args.Error(1)
}

func (m *mockAnalysisService) Health(ctx context.Context) (*dto.AnalysisHealth, error) {
	args := m.Called(ctx)
	health, _ := args.Get(0).(*dto.AnalysisHealth)
	return health, args.Error(1)
}

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) FetchAll(ctx context.Context, req *dto.DashboardRequest) *dto.DashboardSnapshot {
	return m.Called(ctx, req).Get(0).(*dto.DashboardSnapshot)
}

type mockRefreshService struct {
	mock.Mock
}

func (m *mockRefreshService) Start() error { return m.Called().Error(0) }

func (m *mockRefreshService) Stop() { m.Called() }

func (m *mockRefreshService) Refresh(ctx context.Context) *dto.DashboardSnapshot {
	return m.Called(ctx).Get(0).(*dto.DashboardSnapshot)
}

func (m *mockRefreshService) Latest(ctx context.Context) (*dto.DashboardSnapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*dto.DashboardSnapshot)
	return snap, args.Error(1)
}

func (m *mockRefreshService) SendDigest(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
