package service

import (
	"context"

	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/dashboard/repository"
	"golang-trading-dashboard/internal/entity"
	"golang-trading-dashboard/pkg/common"
	"golang-trading-dashboard/pkg/logger"
	"golang-trading-dashboard/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// AccountService defines the interface for the account views.
type AccountService interface {
	GetAccount(ctx context.Context) (*entity.Account, error)
	GetSnapshot(ctx context.Context) (*dto.AccountSnapshot, error)
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo repository.AccountRepository, positionRepo repository.PositionRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepo:  accountRepo,
		positionRepo: positionRepo,
		logger:       logger,
	}
}

type accountService struct {
	accountRepo  repository.AccountRepository
	positionRepo repository.PositionRepository
	logger       *logger.Logger
}

// GetAccount returns the account, or nil when none has been recorded.
func (s *accountService) GetAccount(ctx context.Context) (*entity.Account, error) {
	account, err := s.accountRepo.FindCurrent(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load account", logger.ErrorField(err))
		return nil, err
	}
	return account, nil
}

// GetSnapshot composes the account with live P&L figures from the ledger.
func (s *accountService) GetSnapshot(ctx context.Context) (*dto.AccountSnapshot, error) {
	var (
		account *entity.Account
		open    *repository.PnLAggregate
		stats   *dto.Stats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = s.accountRepo.FindCurrent(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		open, err = s.positionRepo.AggregatePnL(gctx, query.BuildPositionFilter(common.PositionStatusOpen, nil))
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = closedStats(gctx, s.positionRepo)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to build account snapshot", logger.ErrorField(err))
		return nil, err
	}

	snapshot := &dto.AccountSnapshot{
		Account:       account,
		UnrealizedPnl: open.TotalPnL,
		RealizedPnl:   stats.TotalPositivePnl + stats.TotalNegativePnl,
		OpenPositions: open.Count,
		MaxProfit:     stats.MaxProfit,
		MaxLoss:       stats.MaxLoss,
	}
	if account != nil {
		snapshot.AccountGrowth = utils.ToPointer(account.GrowthPercent())
		snapshot.TotalTrades = utils.ToPointer(account.TotalTrades)
	}
	return snapshot, nil
}
