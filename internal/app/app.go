package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fipepulse/config"
	"github.com/guttosm/fipepulse/internal/api"
	"github.com/guttosm/fipepulse/internal/fipe"
	"github.com/guttosm/fipepulse/internal/history"
	"github.com/guttosm/fipepulse/internal/logger"
	"github.com/guttosm/fipepulse/internal/scheduler"
	"github.com/guttosm/fipepulse/internal/service"
	"github.com/guttosm/fipepulse/internal/storage"
)

// errPeriodsNotLoaded is reported by /readyz until the period list is cached.
var errPeriodsNotLoaded = errors.New("reference periods not loaded")

// Upstream holds the upstream clients shared by the server and the CLI.
type Upstream struct {
	Catalog *fipe.CatalogClient
	Periods *fipe.PeriodCache
	Fetcher *history.Fetcher
}

// NewUpstream builds the catalog and pricing clients, the period cache and
// the history fetcher from cfg. Both clients share one retrying HTTP client.
//
// Parameters:
//   - cfg (config.Config): Loaded application configuration.
//
// Returns:
//   - Upstream: The clients, ready to use; nothing is fetched yet.
func NewUpstream(cfg config.Config) Upstream {
	client := fipe.NewHTTPClient(fipe.HTTPOptions{
		Timeout:      cfg.HTTP.Timeout,
		RetryMax:     cfg.HTTP.RetryMax,
		RetryWaitMin: cfg.HTTP.RetryWaitMin,
		RetryWaitMax: cfg.HTTP.RetryWaitMax,
	})
	catalog := fipe.NewCatalogClient(cfg.Catalog.BaseURL, client)
	pricing := fipe.NewPricingClient(fipe.PricingOptions{
		BaseURL:       cfg.Pricing.BaseURL,
		APIKey:        cfg.Pricing.APIKey,
		RatePerSecond: cfg.Pricing.RatePerSecond,
		Burst:         cfg.Pricing.Burst,
	}, client)
	periods := fipe.NewPeriodCache(pricing, cfg.History.PeriodsTTL)
	fetcher := history.NewFetcher(catalog, periods, pricing, history.Options{Parallel: cfg.History.Parallel})
	return Upstream{Catalog: catalog, Periods: periods, Fetcher: fetcher}
}

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream clients and the shared period cache.
//   - Creates the in-memory session store and the comparison service.
//   - Configures the router, health and readiness probes.
//   - Starts the cron jobs and a first, non-blocking period load.
//
// The cleanup function stops the jobs and cancels every running fetch.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	up := NewUpstream(cfg)
	sessions := storage.NewSessionRepository()

	runCtx, cancelRuns := context.WithCancel(context.Background())
	svc := service.NewComparisonService(up.Catalog, up.Periods, up.Fetcher, sessions, service.Options{
		DefaultMonths: cfg.History.DefaultMonths,
		BaseContext:   runCtx,
	})

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		RequestTimeout:     cfg.Server.RequestTimeout,
	})

	api.NewHealthHandler(func() error {
		if !up.Periods.Loaded() {
			return errPeriodsNotLoaded
		}
		return nil
	}).Register(router)

	jobs := scheduler.New(runCtx, up.Periods, sessions, scheduler.Config{
		PeriodsRefreshCron: cfg.Scheduler.PeriodsRefreshCron,
		SessionSweepCron:   cfg.Scheduler.SessionSweepCron,
		SessionTTL:         cfg.Scheduler.SessionTTL,
	})
	if err := jobs.RegisterAll(); err != nil {
		cancelRuns()
		return nil, nil, fmt.Errorf("failed to initialize scheduler: %w", err)
	}
	jobs.Start()

	go warmUp(runCtx, up.Periods)

	cleanup := func() {
		jobs.Stop()
		cancelRuns()
	}
	return router, cleanup, nil
}

// warmUp loads the period list once so the first history request and the
// readiness probe do not wait for the cron schedule.
func warmUp(ctx context.Context, periods *fipe.PeriodCache) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := periods.Refresh(ctx); err != nil {
		logger.L().Warn().Err(err).Msg("initial period load failed, retrying on schedule")
	}
}
