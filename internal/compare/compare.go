package compare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/history"
	"github.com/guttosm/fipepulse/internal/logger"
	"github.com/guttosm/fipepulse/internal/series"
)

const (
	defaultMonths   = 24
	defaultParallel = 2
	maxParallel     = 8
)

// Runner is the history fetch the batch drives, one call per vehicle.
type Runner interface {
	FetchHistory(ctx context.Context, id models.VehicleIdentity, months int, onPoint history.PointFunc, onDone history.DoneFunc) error
}

// Result is the outcome of a plan run.
type Result struct {
	Chart   models.Chart         `json:"chart"`
	Entries []models.SeriesEntry `json:"entries"`
}

// Run fetches every vehicle of the plan, at most plan.Parallel at once, and
// aggregates the series in plan order.
//
// Behavior:
//   - A vehicle whose run fails is kept with status failed and the points it
//     got; the other vehicles keep going.
//   - Duplicate vehicles in the plan are rejected before any fetch starts.
//   - Cancelling ctx stops every run and returns ctx.Err().
func Run(ctx context.Context, runner Runner, plan Plan) (Result, error) {
	months := plan.Months
	if months == 0 {
		months = defaultMonths
	}
	parallel := plan.Parallel
	if parallel < 1 {
		parallel = defaultParallel
	}
	if parallel > maxParallel {
		parallel = maxParallel
	}

	agg := series.NewAggregator()
	ids := make([]models.VehicleIdentity, 0, len(plan.Vehicles))
	for i, v := range plan.Vehicles {
		id, err := v.Identity()
		if err != nil {
			return Result{}, fmt.Errorf("vehicle %d: %w", i+1, err)
		}
		name := v.Name
		if name == "" {
			name = id.Key()
		}
		if err := agg.AddVehicle(id, name, v.Color); err != nil {
			return Result{}, fmt.Errorf("vehicle %d (%s): %w", i+1, id.Key(), err)
		}
		ids = append(ids, id)
	}

	log := logger.With("compare")
	log.Info().Int("vehicles", len(ids)).Int("months", months).Int("max_parallel", parallel).Msg("comparison start")
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			err := runner.FetchHistory(gctx, id, months,
				func(p models.PricePoint) { agg.AppendPoint(id, p) },
				func(err error) {
					if err != nil {
						agg.SetStatus(id, models.StatusFailed, err)
						return
					}
					agg.SetStatus(id, models.StatusDone, nil)
				})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Warn().Str("vehicle", id.Key()).Err(err).Msg("vehicle failed")
			}
			// A single vehicle failing never cancels its siblings.
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	entries := agg.Snapshot()
	failed := 0
	for _, e := range entries {
		if e.Status == models.StatusFailed {
			failed++
		}
	}
	log.Info().Int("vehicles", len(entries)).Int("failed", failed).Dur("elapsed", time.Since(start)).Msg("comparison done")

	return Result{Chart: series.BuildChart(entries), Entries: entries}, nil
}
