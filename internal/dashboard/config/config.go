package config

import (
	"time"

	"golang-trading-dashboard/internal/dashboard/query"
	"golang-trading-dashboard/pkg/config"
)

// Dashboard holds the query limits of the dashboard service.
type Dashboard struct {
	ClosedPageLimit   int           `mapstructure:"closed_page_limit"`
	OpenPageLimit     int           `mapstructure:"open_page_limit"`
	AnalysisPageLimit int           `mapstructure:"analysis_page_limit"`
	MaxPageLimit      int           `mapstructure:"max_page_limit"`
	QueryTimeout      time.Duration `mapstructure:"query_timeout"`
}

// Refresher holds the configuration of the periodic snapshot refresh.
type Refresher struct {
	Enabled     bool          `mapstructure:"enabled"`
	Schedule    string        `mapstructure:"schedule"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`
}

// Digest holds the configuration of the Telegram P&L digest.
type Digest struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// RateLimit holds the per-client request limits.
type RateLimit struct {
	Enabled           bool          `mapstructure:"enabled"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	IdleTTL           time.Duration `mapstructure:"idle_ttl"`
	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For. When
	// empty the client IP is always the connection's remote address.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Telegram  config.Telegram `mapstructure:"telegram"`
	Dashboard Dashboard       `mapstructure:"dashboard"`
	Refresher Refresher       `mapstructure:"refresher"`
	Digest    Digest          `mapstructure:"digest"`
	RateLimit RateLimit       `mapstructure:"rate_limit"`
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Dashboard.ClosedPageLimit <= 0 {
		c.Dashboard.ClosedPageLimit = 10
	}
	if c.Dashboard.OpenPageLimit <= 0 {
		c.Dashboard.OpenPageLimit = 100
	}
	if c.Dashboard.AnalysisPageLimit <= 0 {
		c.Dashboard.AnalysisPageLimit = 20
	}
	if c.Dashboard.MaxPageLimit <= 0 {
		c.Dashboard.MaxPageLimit = query.DefaultMaxLimit
	}
	if c.Dashboard.QueryTimeout <= 0 {
		c.Dashboard.QueryTimeout = 10 * time.Second
	}
	if c.Refresher.Schedule == "" {
		c.Refresher.Schedule = "@every 1m"
	}
	if c.Refresher.Timeout <= 0 {
		c.Refresher.Timeout = 30 * time.Second
	}
	if c.Refresher.SnapshotTTL <= 0 {
		c.Refresher.SnapshotTTL = 10 * time.Minute
	}
	if c.Digest.Schedule == "" {
		c.Digest.Schedule = "0 21 * * *"
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = 10
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 20
	}
	if c.RateLimit.IdleTTL <= 0 {
		c.RateLimit.IdleTTL = 5 * time.Minute
	}
}
