package compare

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/fipe"
	"github.com/guttosm/fipepulse/internal/history"
	"github.com/guttosm/fipepulse/internal/series"
)

// scriptedRunner answers per identity key.
type scriptedRunner struct {
	points   map[string][]models.PricePoint
	errs     map[string]error
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (r *scriptedRunner) FetchHistory(ctx context.Context, id models.VehicleIdentity, months int, onPoint history.PointFunc, onDone history.DoneFunc) (err error) {
	defer func() { onDone(err) }()
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	pts := r.points[id.Key()]
	if len(pts) > months {
		pts = pts[:months]
	}
	for _, p := range pts {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		onPoint(p)
	}
	return r.errs[id.Key()]
}

func vehicle(brand string) PlanVehicle {
	return PlanVehicle{Type: "cars", Brand: brand, Model: "100", Year: "2014-1"}
}

func TestRun(t *testing.T) {
	runner := &scriptedRunner{
		points: map[string][]models.PricePoint{
			"cars_1_100_2014-1": {{Value: 50000, PeriodLabel: "março/24"}, {Value: 49500, PeriodLabel: "fevereiro/24"}},
			"cars_2_100_2014-1": {{Value: 30000, PeriodLabel: "março/24"}},
		},
		errs: map[string]error{
			"cars_2_100_2014-1": fipe.ErrPeriodLookupFailed,
		},
	}
	plan := Plan{Months: 2, Parallel: 1, Vehicles: []PlanVehicle{vehicle("1"), vehicle("2")}}
	plan.Vehicles[0].Name = "Gol"

	res, err := Run(context.Background(), runner, plan)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("entries=%d", len(res.Entries))
	}
	first, second := res.Entries[0], res.Entries[1]
	if first.DisplayName != "Gol" || first.Status != models.StatusDone || len(first.Points) != 2 {
		t.Fatalf("first=%+v", first)
	}
	if second.DisplayName != "cars_2_100_2014-1" || second.Status != models.StatusFailed || len(second.Points) != 1 {
		t.Fatalf("second=%+v", second)
	}
	if first.Color != series.PaletteColor(0) || second.Color != series.PaletteColor(1) {
		t.Fatalf("colors %q %q", first.Color, second.Color)
	}
	if got := res.Chart.Labels; len(got) != 2 || got[0] != "fevereiro/24" || got[1] != "março/24" {
		t.Fatalf("labels=%v", got)
	}
	if runner.peak.Load() != 1 {
		t.Fatalf("parallel=1 but peak in flight was %d", runner.peak.Load())
	}
}

func TestRun_RejectsDuplicates(t *testing.T) {
	plan := Plan{Vehicles: []PlanVehicle{vehicle("1"), vehicle("1")}}
	_, err := Run(context.Background(), &scriptedRunner{}, plan)
	if !errors.Is(err, series.ErrDuplicateVehicle) {
		t.Fatalf("err=%v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, &scriptedRunner{}, Plan{Vehicles: []PlanVehicle{vehicle("1")}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}
