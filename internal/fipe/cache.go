package fipe

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/logger"
)

// PeriodCache keeps the shared reference period list in memory.
//
// The list changes once a month, so reads are served from memory until ttl
// elapses. Concurrent misses collapse into a single upstream call, which runs
// detached from any one caller: a caller giving up does not fail the others
// waiting on the same load. A failed refresh keeps serving the previous list
// when one exists.
type PeriodCache struct {
	src          PeriodSource
	ttl          time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	mu        sync.RWMutex
	periods   []models.ReferencePeriod
	fetchedAt time.Time

	group singleflight.Group
}

// defaultFetchTimeout bounds one shared upstream load.
const defaultFetchTimeout = 30 * time.Second

// NewPeriodCache wraps src. ttl <= 0 means entries never expire on their own
// and only Refresh replaces them.
func NewPeriodCache(src PeriodSource, ttl time.Duration) *PeriodCache {
	return &PeriodCache{src: src, ttl: ttl, fetchTimeout: defaultFetchTimeout, now: time.Now}
}

var _ PeriodSource = (*PeriodCache)(nil)

// ReferencePeriods returns a copy of the cached list, loading it if needed.
func (c *PeriodCache) ReferencePeriods(ctx context.Context) ([]models.ReferencePeriod, error) {
	c.mu.RLock()
	fresh := c.periods != nil && (c.ttl <= 0 || c.now().Sub(c.fetchedAt) < c.ttl)
	cached := clonePeriods(c.periods)
	c.mu.RUnlock()
	if fresh {
		return cached, nil
	}

	if err := c.Refresh(ctx); err != nil {
		if cached != nil {
			logger.L().Warn().Err(err).Msg("reference periods refresh failed, serving stale list")
			return cached, nil
		}
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return clonePeriods(c.periods), nil
}

// Refresh unconditionally reloads the list from the source.
//
// Callers arriving while a load is in flight join it. Each caller waits on its
// own ctx only; the shared load keeps ctx's values but not its cancellation
// and is bounded by its own timeout.
func (c *PeriodCache) Refresh(ctx context.Context) error {
	ch := c.group.DoChan("periods", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		periods, err := c.src.ReferencePeriods(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.periods = periods
		c.fetchedAt = c.now()
		c.mu.Unlock()
		logger.L().Info().Int("periods", len(periods)).Msg("reference periods loaded")
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

// Loaded reports whether the cache holds a list.
func (c *PeriodCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.periods != nil
}

func clonePeriods(in []models.ReferencePeriod) []models.ReferencePeriod {
	if in == nil {
		return nil
	}
	out := make([]models.ReferencePeriod, len(in))
	copy(out, in)
	return out
}
