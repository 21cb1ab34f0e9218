package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang-trading-dashboard/internal/dashboard/config"
	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/pkg/common"
	"golang-trading-dashboard/pkg/logger"
	"golang-trading-dashboard/pkg/telegram"
	"golang-trading-dashboard/pkg/utils"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// ErrNoSnapshot is returned by Latest before the first refresh has completed.
var ErrNoSnapshot = errors.New("no dashboard snapshot available yet")

// RefreshService periodically re-runs the dashboard fetch-all and publishes
// the latest snapshot.
type RefreshService interface {
	Start() error
	Stop()
	Refresh(ctx context.Context) *dto.DashboardSnapshot
	Latest(ctx context.Context) (*dto.DashboardSnapshot, error)
	SendDigest(ctx context.Context) error
}

// NewRefreshService creates a new refresh service. redisClient and notifier are optional.
func NewRefreshService(
	dashboardService DashboardService,
	redisClient *redis.Client,
	notifier telegram.Notifier,
	refresherCfg config.Refresher,
	digestCfg config.Digest,
	logger *logger.Logger,
) RefreshService {
	return &refreshService{
		dashboardService: dashboardService,
		redisClient:      redisClient,
		notifier:         notifier,
		memCache:         cache.New(refresherCfg.SnapshotTTL, 2*refresherCfg.SnapshotTTL),
		refresherCfg:     refresherCfg,
		digestCfg:        digestCfg,
		logger:           logger,
	}
}

type refreshService struct {
	dashboardService DashboardService
	redisClient      *redis.Client
	notifier         telegram.Notifier
	memCache         *cache.Cache
	refresherCfg     config.Refresher
	digestCfg        config.Digest
	logger           *logger.Logger

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
	warmup sync.WaitGroup
}

// Start registers the refresh and digest jobs and starts the scheduler.
// Ticks are not serialized: a slow refresh may overlap the next one and the
// last to complete wins.
func (s *refreshService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return nil
	}

	c := cron.New()
	ctx, cancel := context.WithCancel(context.Background())

	if _, err := c.AddFunc(s.refresherCfg.Schedule, func() { s.Refresh(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("invalid refresher schedule %q: %w", s.refresherCfg.Schedule, err)
	}

	if s.digestCfg.Enabled && s.notifier != nil {
		_, err := c.AddFunc(s.digestCfg.Schedule, func() {
			if err := s.SendDigest(ctx); err != nil {
				s.logger.Error("Failed to send P&L digest", logger.ErrorField(err))
			}
		})
		if err != nil {
			cancel()
			return fmt.Errorf("invalid digest schedule %q: %w", s.digestCfg.Schedule, err)
		}
	}

	c.Start()
	s.cron, s.cancel = c, cancel
	s.logger.Info("Dashboard refresher started", logger.StringField("schedule", s.refresherCfg.Schedule))

	// Warm the snapshot so Latest has something to serve before the first tick.
	s.warmup.Add(1)
	utils.GoSafe(func() {
		defer s.warmup.Done()
		s.Refresh(ctx)
	})
	return nil
}

// Stop cancels in-flight refreshes and waits for running jobs and the
// warm-up refresh to return.
func (s *refreshService) Stop() {
	s.mu.Lock()
	c, cancel := s.cron, s.cancel
	s.cron, s.cancel = nil, nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
	s.warmup.Wait()
	s.logger.Info("Dashboard refresher stopped")
}

// Refresh runs one fetch-all with default parameters and publishes the result.
func (s *refreshService) Refresh(ctx context.Context) *dto.DashboardSnapshot {
	if s.refresherCfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.refresherCfg.Timeout)
		defer cancel()
	}

	snap := s.dashboardService.FetchAll(ctx, &dto.DashboardRequest{ClosedPage: 1})
	if err := ctx.Err(); err != nil {
		// An interrupted refresh must not replace the last complete snapshot.
		s.logger.Info("Dashboard refresh interrupted", logger.ErrorField(err))
		return snap
	}
	s.publish(ctx, snap)
	s.logger.Debug("Dashboard snapshot refreshed", logger.Field("refreshed_at", snap.RefreshedAt))
	return snap
}

func (s *refreshService) publish(ctx context.Context, snap *dto.DashboardSnapshot) {
	s.memCache.Set(common.CacheKeyDashboardSnapshot, snap, cache.DefaultExpiration)

	if s.redisClient == nil {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("Failed to encode dashboard snapshot", logger.ErrorField(err))
		return
	}
	if err := s.redisClient.Set(ctx, common.RedisKeyDashboardSnapshot, payload, s.refresherCfg.SnapshotTTL).Err(); err != nil {
		s.logger.Error("Failed to publish dashboard snapshot to redis", logger.ErrorField(err))
	}
}

// Latest returns the most recently published snapshot. Redis is preferred so
// that every replica serves the same snapshot; the in-process copy is the fallback.
func (s *refreshService) Latest(ctx context.Context) (*dto.DashboardSnapshot, error) {
	if s.redisClient != nil {
		payload, err := s.redisClient.Get(ctx, common.RedisKeyDashboardSnapshot).Bytes()
		switch {
		case err == nil:
			var snap dto.DashboardSnapshot
			decodeErr := json.Unmarshal(payload, &snap)
			if decodeErr == nil {
				return &snap, nil
			}
			s.logger.Error("Discarding undecodable dashboard snapshot", logger.ErrorField(decodeErr))
		case !errors.Is(err, redis.Nil):
			s.logger.Error("Failed to read dashboard snapshot from redis", logger.ErrorField(err))
		}
	}

	if cached, ok := s.memCache.Get(common.CacheKeyDashboardSnapshot); ok {
		if snap, ok := cached.(*dto.DashboardSnapshot); ok {
			return snap, nil
		}
	}
	return nil, ErrNoSnapshot
}

// SendDigest formats the latest snapshot and sends it through the notifier.
func (s *refreshService) SendDigest(ctx context.Context) error {
	if s.notifier == nil {
		return errors.New("telegram notifier is not configured")
	}
	snap, err := s.Latest(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		snap = s.Refresh(ctx)
	} else if err != nil {
		return err
	}
	return s.notifier.SendMarkdown(ctx, telegram.FormatDashboardDigest(snap))
}
