package service

import (
	"context"

	"golang-trading-dashboard/internal/dashboard/config"
	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/internal/dashboard/repository"
	"golang-trading-dashboard/internal/entity"
	"golang-trading-dashboard/pkg/logger"
	"golang-trading-dashboard/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const analysisCollection = "analysis_results"

var analysisVocabulary = []query.Field{
	query.FieldSymbol,
	query.FieldSignal,
	query.FieldTrend,
	query.FieldRecommendation,
}

// AnalysisService defines the interface for querying the analysis archive.
type AnalysisService interface {
	QueryAnalysis(ctx context.Context, req *dto.AnalysisQueryRequest) (*dto.AnalysisPage, error)
	Health(ctx context.Context) (*dto.AnalysisHealth, error)
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(analysisRepo repository.AnalysisResultRepository, limits config.Dashboard, logger *logger.Logger) AnalysisService {
	return &analysisService{
		analysisRepo: analysisRepo,
		limits:       limits,
		logger:       logger,
	}
}

type analysisService struct {
	analysisRepo repository.AnalysisResultRepository
	limits       config.Dashboard
	logger       *logger.Logger
}

// QueryAnalysis returns one page of analyses, latest first, with the filter vocabularies.
func (s *analysisService) QueryAnalysis(ctx context.Context, req *dto.AnalysisQueryRequest) (*dto.AnalysisPage, error) {
	filter := query.BuildAnalysisFilter(req.SearchTerm, req.Filters)
	if len(filter.Ignored) > 0 {
		s.logger.DebugContext(ctx, "Ignoring unrecognized analysis filters", logger.Field("keys", filter.Ignored))
	}
	page := query.NewPage(req.Page.Int(), req.Limit.Int(), s.limits.AnalysisPageLimit, s.limits.MaxPageLimit)

	var (
		results  []entity.AnalysisResult
		total    int64
		distinct map[query.Field][]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, total, err = s.analysisRepo.FindPage(gctx, filter, page)
		return err
	})
	g.Go(func() error {
		var err error
		distinct, err = s.analysisRepo.DistinctValues(gctx, analysisVocabulary...)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to query analysis results", logger.ErrorField(err))
		return nil, err
	}

	if results == nil {
		results = make([]entity.AnalysisResult, 0)
	}
	pagination := query.NewPagination(page, total)
	return &dto.AnalysisPage{
		Data:        results,
		TotalCount:  pagination.TotalCount,
		TotalPages:  pagination.TotalPages,
		CurrentPage: pagination.CurrentPage,
		HasNextPage: pagination.HasNext(),
		HasPrevPage: pagination.HasPrev(),
		UniqueValues: dto.AnalysisUniqueValues{
			Symbols:         nonNil(distinct[query.FieldSymbol]),
			Signals:         nonNil(distinct[query.FieldSignal]),
			Trends:          nonNil(distinct[query.FieldTrend]),
			Recommendations: nonNil(distinct[query.FieldRecommendation]),
		},
	}, nil
}

// Health counts the archived analyses to prove the store is reachable.
func (s *analysisService) Health(ctx context.Context) (*dto.AnalysisHealth, error) {
	total, err := s.analysisRepo.Count(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Analysis store health check failed", logger.ErrorField(err))
		return nil, err
	}
	return &dto.AnalysisHealth{
		Status:         "connected",
		Collection:     analysisCollection,
		TotalDocuments: total,
		Timestamp:      utils.TimeNowUTC(),
	}, nil
}
