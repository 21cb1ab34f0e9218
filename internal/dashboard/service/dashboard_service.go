package service

import (
	"context"

	"golang-trading-dashboard/internal/dashboard/config"
	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/pkg/common"
	"golang-trading-dashboard/pkg/logger"
	"golang-trading-dashboard/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// DashboardService defines the interface for loading every dashboard section at once.
type DashboardService interface {
	FetchAll(ctx context.Context, req *dto.DashboardRequest) *dto.DashboardSnapshot
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(accountService AccountService, positionService PositionService, statsService StatsService, limits config.Dashboard, logger *logger.Logger) DashboardService {
	return &dashboardService{
		accountService:  accountService,
		positionService: positionService,
		statsService:    statsService,
		limits:          limits,
		logger:          logger,
	}
}

type dashboardService struct {
	accountService  AccountService
	positionService PositionService
	statsService    StatsService
	limits          config.Dashboard
	logger          *logger.Logger
}

// FetchAll runs the account, open positions, closed positions and stats
// queries concurrently. A failing section records its error and leaves the
// others intact.
func (s *dashboardService) FetchAll(ctx context.Context, req *dto.DashboardRequest) *dto.DashboardSnapshot {
	if req == nil {
		req = &dto.DashboardRequest{}
	}
	snap := &dto.DashboardSnapshot{}

	var g errgroup.Group
	g.Go(func() error {
		account, err := s.accountService.GetSnapshot(ctx)
		if err != nil {
			snap.AccountError = err.Error()
			return nil
		}
		snap.Account = account
		return nil
	})
	g.Go(func() error {
		open, err := s.positionService.QueryPositions(ctx, &dto.PositionQueryRequest{
			Page:   1,
			Limit:  dto.LooseInt(s.limits.OpenPageLimit),
			Status: common.PositionStatusOpen,
		})
		if err != nil {
			snap.OpenPositionsError = err.Error()
			return nil
		}
		snap.OpenPositions = open
		return nil
	})
	g.Go(func() error {
		closed, err := s.positionService.QueryPositions(ctx, &dto.PositionQueryRequest{
			Page:    req.ClosedPage,
			Limit:   dto.LooseInt(s.limits.ClosedPageLimit),
			Status:  common.PositionStatusClosed,
			Filters: req.Filters,
		})
		if err != nil {
			snap.ClosedPositionsError = err.Error()
			return nil
		}
		snap.ClosedPositions = closed
		return nil
	})
	g.Go(func() error {
		stats, err := s.statsService.GetStats(ctx)
		if err != nil {
			snap.StatsError = err.Error()
			return nil
		}
		snap.Stats = stats
		return nil
	})
	_ = g.Wait()

	snap.RefreshedAt = utils.TimeNowUTC()
	if snap.Failed() {
		s.logger.InfoContext(ctx, "Dashboard fetched with failed sections",
			logger.StringField("account_error", snap.AccountError),
			logger.StringField("open_positions_error", snap.OpenPositionsError),
			logger.StringField("closed_positions_error", snap.ClosedPositionsError),
			logger.StringField("stats_error", snap.StatsError),
		)
	}
	return snap
}
