package storage

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/series"
)

// Option list levels remembered by a session, used to resolve display names.
const (
	LevelBrands = "brands"
	LevelModels = "models"
	LevelYears  = "years"
)

// Session is one user's comparison workspace: the in-progress selection, the
// requested month count, the comparison set, and the cancel functions of the
// fetch runs still feeding it.
type Session struct {
	ID        string
	CreatedAt time.Time
	Series    *series.Aggregator

	mu        sync.Mutex
	lastSeen  time.Time
	selection models.VehicleSelection
	months    int
	options   map[string][]models.CatalogEntry
	runs      map[models.VehicleIdentity]run
	runSeq    uint64
}

type run struct {
	gen    uint64
	cancel context.CancelFunc
}

func newSession(id string, months int, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		Series:    series.NewAggregator(),
		lastSeen:  now,
		months:    months,
		options:   make(map[string][]models.CatalogEntry),
		runs:      make(map[models.VehicleIdentity]run),
	}
}

// Selection returns the current selection (a value copy).
func (s *Session) Selection() models.VehicleSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SetSelection replaces the selection. Levels cleared by the change also drop
// their remembered option lists.
func (s *Session) SetSelection(sel models.VehicleSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sel.BrandCode == "" {
		delete(s.options, LevelModels)
	}
	if sel.ModelCode == "" {
		delete(s.options, LevelYears)
	}
	if sel.VehicleType != s.selection.VehicleType {
		delete(s.options, LevelBrands)
	}
	s.selection = sel
}

// Months returns the month count used for new vehicles.
func (s *Session) Months() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.months
}

// SetMonths changes the month count used for new vehicles.
func (s *Session) SetMonths(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.months = n
}

// RememberOptions stores the option list shown for a taxonomy level.
func (s *Session) RememberOptions(level string, entries []models.CatalogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options[level] = entries
}

// OptionName resolves code to its display name within a remembered level.
func (s *Session) OptionName(level, code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.FindName(s.options[level], code)
}

// Touch marks the session as used at now.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

// LastSeen returns the last Touch time.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// StartVehicle adds id to the comparison set and registers cancel as its fetch
// run in one step, so a concurrent StopVehicle sees both or neither. On error
// (a duplicate identity) nothing is registered and the existing run is kept.
func (s *Session) StartVehicle(id models.VehicleIdentity, displayName string, cancel context.CancelFunc) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Series.AddVehicle(id, displayName, ""); err != nil {
		return 0, err
	}
	s.runSeq++
	s.runs[id] = run{gen: s.runSeq, cancel: cancel}
	return s.runSeq, nil
}

// StopVehicle cancels id's fetch run and removes its series in one step. It
// reports whether the series existed.
func (s *Session) StopVehicle(id models.VehicleIdentity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.runs[id]; ok {
		delete(s.runs, id)
		r.cancel()
	}
	return s.Series.RemoveVehicle(id)
}

// FinishRun forgets id's fetch run of the given generation. A newer run for
// the same identity is left in place.
func (s *Session) FinishRun(id models.VehicleIdentity, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.runs[id]; ok && r.gen == gen {
		delete(s.runs, id)
	}
}

// ActiveRuns returns the number of fetch runs still in flight.
func (s *Session) ActiveRuns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

// CancelAll cancels every in-flight fetch run.
func (s *Session) CancelAll() {
	s.mu.Lock()
	runs := s.runs
	s.runs = make(map[models.VehicleIdentity]run)
	s.mu.Unlock()
	for _, r := range runs {
		r.cancel()
	}
}
