package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/series"
)

var gol = models.VehicleIdentity{VehicleType: models.Cars, BrandCode: "59", ModelCode: "5940", YearCode: "2014-3"}

func TestSession_SelectionDropsStaleOptions(t *testing.T) {
	s := newSession("s1", 12, time.Now())
	s.RememberOptions(LevelBrands, []models.CatalogEntry{{Code: "59", Name: "VW - VolksWagen"}})
	s.RememberOptions(LevelModels, []models.CatalogEntry{{Code: "5940", Name: "Gol 1.0"}})
	s.RememberOptions(LevelYears, []models.CatalogEntry{{Code: "2014-3", Name: "2014 Gasolina"}})
	s.SetSelection(models.VehicleSelection(gol))

	if got := s.OptionName(LevelYears, "2014-3"); got != "2014 Gasolina" {
		t.Fatalf("OptionName = %q", got)
	}

	s.SetSelection(models.VehicleSelection{VehicleType: models.Cars, BrandCode: "59"})
	if s.OptionName(LevelYears, "2014-3") != "" {
		t.Fatal("years should be forgotten once the model is cleared")
	}
	if s.OptionName(LevelModels, "5940") != "Gol 1.0" {
		t.Fatal("models of the kept brand should survive")
	}

	s.SetSelection(models.VehicleSelection{VehicleType: models.Trucks})
	if s.OptionName(LevelBrands, "59") != "" || s.OptionName(LevelModels, "5940") != "" {
		t.Fatal("changing the vehicle type should forget brands and models")
	}
	if s.Selection().VehicleType != models.Trucks {
		t.Fatalf("selection = %+v", s.Selection())
	}
}

func TestSession_Months(t *testing.T) {
	s := newSession("s1", 12, time.Now())
	if s.Months() != 12 {
		t.Fatalf("Months = %d", s.Months())
	}
	s.SetMonths(36)
	if s.Months() != 36 {
		t.Fatalf("Months = %d", s.Months())
	}
}

func TestSession_StartAndStopVehicle(t *testing.T) {
	s := newSession("s1", 12, time.Now())

	ctx1, cancel1 := context.WithCancel(context.Background())
	gen1, err := s.StartVehicle(gol, "Gol", cancel1)
	if err != nil {
		t.Fatalf("StartVehicle: %v", err)
	}
	if _, ok := s.Series.Entry(gol); !ok || s.ActiveRuns() != 1 {
		t.Fatal("series and run should both be registered")
	}

	// a duplicate neither replaces the series nor the running fetch
	ctxDup, cancelDup := context.WithCancel(context.Background())
	defer cancelDup()
	if _, err := s.StartVehicle(gol, "Gol again", cancelDup); !errors.Is(err, series.ErrDuplicateVehicle) {
		t.Fatalf("expected ErrDuplicateVehicle, got %v", err)
	}

	if !s.StopVehicle(gol) {
		t.Fatal("StopVehicle should find the series")
	}
	if ctx1.Err() == nil {
		t.Fatal("original run not cancelled")
	}
	if ctxDup.Err() != nil {
		t.Fatal("rejected duplicate's cancel func must not be registered")
	}
	if _, ok := s.Series.Entry(gol); ok || s.ActiveRuns() != 0 {
		t.Fatal("series and run should both be gone")
	}
	if s.StopVehicle(gol) {
		t.Fatal("second StopVehicle should report false")
	}

	// re-add: the old generation finishing must not forget the new run
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	gen2, err := s.StartVehicle(gol, "Gol", cancel2)
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if gen1 == gen2 {
		t.Fatal("generations must differ")
	}
	s.FinishRun(gol, gen1)
	if s.ActiveRuns() != 1 {
		t.Fatalf("stale FinishRun dropped the new run, ActiveRuns = %d", s.ActiveRuns())
	}
	s.FinishRun(gol, gen2)
	if s.ActiveRuns() != 0 {
		t.Fatalf("ActiveRuns = %d", s.ActiveRuns())
	}
}

func TestSession_StartStopInterleaved(t *testing.T) {
	s := newSession("s1", 12, time.Now())
	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := s.StartVehicle(gol, "Gol", cancel); err != nil {
				cancel()
			}
		}()
		go func() {
			defer wg.Done()
			s.StopVehicle(gol)
		}()
		wg.Wait()

		// either the stop came first and the run is live and tracked, or it
		// came second and the run is cancelled with its series gone
		_, inSet := s.Series.Entry(gol)
		if inSet == (ctx.Err() != nil) {
			t.Fatalf("iteration %d: in set=%v, cancelled=%v", i, inSet, ctx.Err() != nil)
		}
		s.StopVehicle(gol)
	}
}

func TestSession_CancelAll(t *testing.T) {
	s := newSession("s1", 12, time.Now())
	other := gol
	other.YearCode = "2015-1"

	ctxA, cancelA := context.WithCancel(context.Background())
	ctxB, cancelB := context.WithCancel(context.Background())
	if _, err := s.StartVehicle(gol, "Gol", cancelA); err != nil {
		t.Fatal(err)
	}
	if _, err := s.StartVehicle(other, "Gol 2015", cancelB); err != nil {
		t.Fatal(err)
	}

	s.CancelAll()
	if ctxA.Err() == nil || ctxB.Err() == nil {
		t.Fatal("all runs should be cancelled")
	}
	if s.ActiveRuns() != 0 {
		t.Fatalf("ActiveRuns = %d", s.ActiveRuns())
	}
}
