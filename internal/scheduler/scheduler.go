// Package scheduler runs the periodic maintenance jobs of the server.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/guttosm/fipepulse/internal/logger"
)

// PeriodRefresher reloads the shared reference period list.
type PeriodRefresher interface {
	Refresh(ctx context.Context) error
}

// SessionSweeper drops sessions idle for longer than idleFor.
type SessionSweeper interface {
	Sweep(idleFor time.Duration) int
}

// Config holds the cron specs (with seconds field) and the session TTL.
type Config struct {
	PeriodsRefreshCron string
	SessionSweepCron   string
	SessionTTL         time.Duration
	// RefreshTimeout bounds one period refresh. <= 0 uses 30s.
	RefreshTimeout time.Duration
}

// Scheduler owns the cron runner and its jobs.
type Scheduler struct {
	cron     *cron.Cron
	ctx      context.Context
	periods  PeriodRefresher
	sessions SessionSweeper
	cfg      Config
	log      zerolog.Logger
}

// New creates a Scheduler. ctx bounds every job run.
func New(ctx context.Context, periods PeriodRefresher, sessions SessionSweeper, cfg Config) *Scheduler {
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = 30 * time.Second
	}
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		ctx:      ctx,
		periods:  periods,
		sessions: sessions,
		cfg:      cfg,
		log:      logger.With("scheduler"),
	}
}

// RegisterAll registers the period refresh and the session sweep jobs.
func (s *Scheduler) RegisterAll() error {
	if _, err := s.cron.AddFunc(s.cfg.PeriodsRefreshCron, s.RefreshPeriods); err != nil {
		return fmt.Errorf("register period refresh: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.SessionSweepCron, s.SweepSessions); err != nil {
		return fmt.Errorf("register session sweep: %w", err)
	}
	return nil
}

// Start starts the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().
		Str("periods_cron", s.cfg.PeriodsRefreshCron).
		Str("sweep_cron", s.cfg.SessionSweepCron).
		Msg("scheduler started")
}

// Stop stops the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RefreshPeriods reloads the reference periods. A failure keeps the previous list.
func (s *Scheduler) RefreshPeriods() {
	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.RefreshTimeout)
	defer cancel()
	start := time.Now()
	if err := s.periods.Refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("period refresh failed")
		return
	}
	s.log.Info().Dur("elapsed", time.Since(start)).Msg("period refresh done")
}

// SweepSessions drops idle sessions, cancelling their fetch runs.
func (s *Scheduler) SweepSessions() {
	n := s.sessions.Sweep(s.cfg.SessionTTL)
	if n > 0 {
		s.log.Info().Int("expired", n).Msg("idle sessions swept")
	}
}
