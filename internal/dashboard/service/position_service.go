package service

import (
	"context"
	"strings"

	"golang-trading-dashboard/internal/dashboard/config"
	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/dashboard/repository"
	"golang-trading-dashboard/internal/entity"
	"golang-trading-dashboard/pkg/common"
	"golang-trading-dashboard/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// PositionService defines the interface for querying the position ledger.
type PositionService interface {
	QueryPositions(ctx context.Context, req *dto.PositionQueryRequest) (*dto.PositionPage, error)
}

// NewPositionService creates a new position service.
func NewPositionService(positionRepo repository.PositionRepository, limits config.Dashboard, logger *logger.Logger) PositionService {
	return &positionService{
		positionRepo: positionRepo,
		limits:       limits,
		logger:       logger,
	}
}

type positionService struct {
	positionRepo repository.PositionRepository
	limits       config.Dashboard
	logger       *logger.Logger
}

// QueryPositions returns one page of filtered positions together with the
// distinct symbols and position types of the whole ledger.
func (s *positionService) QueryPositions(ctx context.Context, req *dto.PositionQueryRequest) (*dto.PositionPage, error) {
	filter := query.BuildPositionFilter(req.Status, req.Filters)
	if len(filter.Ignored) > 0 {
		s.logger.DebugContext(ctx, "Ignoring unrecognized position filters", logger.Field("keys", filter.Ignored))
	}

	defaultLimit := s.limits.ClosedPageLimit
	if strings.EqualFold(strings.TrimSpace(req.Status), common.PositionStatusOpen) {
		defaultLimit = s.limits.OpenPageLimit
	}
	page := query.NewPage(req.Page.Int(), req.Limit.Int(), defaultLimit, s.limits.MaxPageLimit)

	var (
		positions []entity.Position
		total     int64
		distinct  map[query.Field][]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		positions, total, err = s.positionRepo.FindPage(gctx, filter, page)
		return err
	})
	g.Go(func() error {
		var err error
		distinct, err = s.positionRepo.DistinctValues(gctx, query.FieldSymbol, query.FieldPositionType)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to query positions", logger.ErrorField(err), logger.StringField("status", req.Status))
		return nil, err
	}

	if positions == nil {
		positions = make([]entity.Position, 0)
	}
	return &dto.PositionPage{
		Positions:  positions,
		Pagination: query.NewPagination(page, total),
		UniqueValues: dto.PositionUniqueValues{
			Symbols:       nonNil(distinct[query.FieldSymbol]),
			PositionTypes: nonNil(distinct[query.FieldPositionType]),
		},
	}, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return make([]string, 0)
	}
	return values
}
