// Package history drives the per-period price lookups that build one
// vehicle's price series.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/fipe"
	"github.com/guttosm/fipepulse/internal/logger"
)

// ErrInvalidMonthCount is returned when fewer than one month is requested.
var ErrInvalidMonthCount = errors.New("month count must be at least 1")

// AttributeResolver resolves the current catalog attributes of a vehicle.
type AttributeResolver interface {
	VehicleAttributes(ctx context.Context, id models.VehicleIdentity) (models.VehicleAttributes, error)
}

// PriceLookup returns the masked price of a vehicle at one reference period.
type PriceLookup interface {
	Price(ctx context.Context, q fipe.PriceQuery) (string, error)
}

// PointFunc receives each price point as soon as it is available.
type PointFunc func(models.PricePoint)

// DoneFunc is called exactly once when a run ends, with its final error.
type DoneFunc func(error)

// Options tunes a Fetcher.
type Options struct {
	// Parallel is the number of period lookups allowed in flight at once.
	// Values <= 1 mean strictly sequential lookups.
	Parallel int
}

// Fetcher acquires price histories. It is stateless between runs and safe for
// concurrent use; each FetchHistory call is an independent run.
type Fetcher struct {
	attrs    AttributeResolver
	periods  fipe.PeriodSource
	prices   PriceLookup
	parallel int
	log      zerolog.Logger
}

// NewFetcher wires a Fetcher from its three upstream collaborators.
func NewFetcher(attrs AttributeResolver, periods fipe.PeriodSource, prices PriceLookup, opts Options) *Fetcher {
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}
	return &Fetcher{
		attrs:    attrs,
		periods:  periods,
		prices:   prices,
		parallel: opts.Parallel,
		log:      logger.With("history"),
	}
}

// FetchHistory retrieves up to months price points for id, most recent period
// first, delivering each one to onPoint as it arrives.
//
// Behavior:
//   - Attributes and the period list are resolved first; if either fails the run
//     aborts before any point is emitted.
//   - The period list is truncated to min(months, available) without error.
//   - Points are emitted in period order, one at a time.
//   - The first failed period lookup stops the run; points already emitted stay.
//   - onDone (if non-nil) is called exactly once with the returned error.
//
// Cancelling ctx abandons pending lookups and returns ctx.Err().
func (f *Fetcher) FetchHistory(ctx context.Context, id models.VehicleIdentity, months int, onPoint PointFunc, onDone DoneFunc) (err error) {
	start := time.Now()
	defer func() {
		if onDone != nil {
			onDone(err)
		}
	}()
	if onPoint == nil {
		onPoint = func(models.PricePoint) {}
	}

	if months < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonthCount, months)
	}
	if verr := id.Validate(); verr != nil {
		return verr
	}
	log := f.log.With().Str("vehicle", id.Key()).Int("months", months).Logger()

	attrs, err := f.attrs.VehicleAttributes(ctx, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Error().Err(err).Msg("resolve vehicle attributes failed")
		return fmt.Errorf("resolve attributes: %w", err)
	}

	periods, err := f.periods.ReferencePeriods(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Error().Err(err).Msg("resolve reference periods failed")
		return fmt.Errorf("resolve reference periods: %w", err)
	}
	if len(periods) > months {
		periods = periods[:months]
	}

	query := fipe.PriceQuery{
		VehicleTypeCode: attrs.VehicleTypeCode,
		BrandCode:       id.BrandCode,
		Year:            id.YearCode,
		FuelTypeCode:    fipe.FuelTypeCode(attrs.Fuel),
		ModelYear:       attrs.ModelYear,
		ModelCode:       id.ModelCode,
	}

	emitted := 0
	emit := func(p models.PricePoint) {
		emitted++
		onPoint(p)
	}

	if f.parallel <= 1 {
		err = f.sequential(ctx, query, periods, emit)
	} else {
		err = f.windowed(ctx, query, periods, emit)
	}

	ev := log.Info()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Int("periods", len(periods)).
		Int("points", emitted).
		Dur("elapsed", time.Since(start)).
		Msg("price history run finished")
	return err
}

func (f *Fetcher) sequential(ctx context.Context, q fipe.PriceQuery, periods []models.ReferencePeriod, emit PointFunc) error {
	for _, p := range periods {
		if err := ctx.Err(); err != nil {
			return err
		}
		pt, err := f.lookup(ctx, q, p)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
		emit(pt)
	}
	return nil
}

// windowed keeps up to f.parallel lookups in flight while an ordered emitter
// hands points out strictly in period order. Results that arrive early wait in
// their slot; the first failure in order stops the emitter and cancels the rest.
func (f *Fetcher) windowed(parent context.Context, q fipe.PriceQuery, periods []models.ReferencePeriod, emit PointFunc) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type outcome struct {
		point models.PricePoint
		err   error
	}
	slots := make([]chan outcome, len(periods))
	for i := range slots {
		slots[i] = make(chan outcome, 1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.parallel)

	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, p := range periods {
			if gctx.Err() != nil {
				return
			}
			i, p := i, p
			g.Go(func() error {
				pt, err := f.lookup(gctx, q, p)
				slots[i] <- outcome{point: pt, err: err}
				return nil
			})
		}
	}()

	var runErr error
emitLoop:
	for i := range periods {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break emitLoop
		case o := <-slots[i]:
			if o.err != nil {
				runErr = o.err
				break emitLoop
			}
			emit(o.point)
		}
	}

	cancel()
	<-launched
	_ = g.Wait()

	if runErr != nil && parent.Err() != nil {
		return parent.Err()
	}
	return runErr
}

func (f *Fetcher) lookup(ctx context.Context, q fipe.PriceQuery, p models.ReferencePeriod) (models.PricePoint, error) {
	q.PeriodCode = p.Code
	masked, err := f.prices.Price(ctx, q)
	if err != nil {
		return models.PricePoint{}, err
	}
	v, err := fipe.NormalizePrice(masked)
	if err != nil {
		return models.PricePoint{}, fmt.Errorf("%w: period %d: %w", fipe.ErrPeriodLookupFailed, p.Code, err)
	}
	return models.PricePoint{Value: v, PeriodLabel: p.Label}, nil
}
