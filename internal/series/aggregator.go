// Package series owns the comparison set: one price series per vehicle,
// keyed by identity, in insertion order.
package series

import (
	"context"
	"errors"
	"sync"

	"github.com/guttosm/fipepulse/internal/domain/models"
)

// ErrDuplicateVehicle is returned when an identity is already in the set.
var ErrDuplicateVehicle = errors.New("vehicle already in comparison")

// Aggregator maps vehicle identities to their accumulated series.
//
// All operations are atomic, so independent fetch runs may add, remove and
// append concurrently. Appends for an identity that is not in the set are
// dropped: a removed entry is never resurrected by late points.
type Aggregator struct {
	mu      sync.RWMutex
	order   []models.VehicleIdentity
	entries map[models.VehicleIdentity]*models.SeriesEntry
	added   int
}

// NewAggregator returns an empty comparison set.
func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[models.VehicleIdentity]*models.SeriesEntry)}
}

// AddVehicle inserts an empty, loading series for id. Duplicates are rejected
// with ErrDuplicateVehicle and leave the existing entry untouched. An empty
// color picks the next palette color.
func (a *Aggregator) AddVehicle(id models.VehicleIdentity, displayName, color string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.entries[id]; ok {
		return ErrDuplicateVehicle
	}
	if color == "" {
		color = PaletteColor(a.added)
	}
	a.added++
	a.entries[id] = &models.SeriesEntry{
		Identity:    id,
		DisplayName: displayName,
		Color:       color,
		Points:      []models.PricePoint{},
		Status:      models.StatusLoading,
	}
	a.order = append(a.order, id)
	return nil
}

// RemoveVehicle discards the series for id. It reports whether one existed.
func (a *Aggregator) RemoveVehicle(id models.VehicleIdentity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.entries[id]; !ok {
		return false
	}
	delete(a.entries, id)
	for i, o := range a.order {
		if o == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// AppendPoint adds p to the end of id's series. It reports whether the point
// was kept; points for absent identities are dropped.
func (a *Aggregator) AppendPoint(id models.VehicleIdentity, p models.PricePoint) bool {
	return a.AppendPointLive(context.Background(), id, p)
}

// AppendPointLive is AppendPoint for a fetch run bound to ctx. The point is
// dropped once ctx is done; the check happens under the set's lock, so a run
// cancelled before its vehicle was removed can never write into an entry
// re-added for the same identity.
func (a *Aggregator) AppendPointLive(ctx context.Context, id models.VehicleIdentity, p models.PricePoint) bool {
	return a.update(ctx, id, func(e *models.SeriesEntry) {
		e.Points = append(e.Points, p)
	})
}

// SetStatus records the fetch outcome of id's series. err may be nil.
func (a *Aggregator) SetStatus(id models.VehicleIdentity, status models.SeriesStatus, err error) bool {
	return a.SetStatusLive(context.Background(), id, status, err)
}

// SetStatusLive is SetStatus guarded by ctx, like AppendPointLive.
func (a *Aggregator) SetStatusLive(ctx context.Context, id models.VehicleIdentity, status models.SeriesStatus, err error) bool {
	return a.update(ctx, id, func(e *models.SeriesEntry) {
		e.Status = status
		e.Error = ""
		if err != nil {
			e.Error = err.Error()
		}
	})
}

func (a *Aggregator) update(ctx context.Context, id models.VehicleIdentity, fn func(*models.SeriesEntry)) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}
	e, ok := a.entries[id]
	if !ok {
		return false
	}
	fn(e)
	return true
}

// Entry returns a copy of id's series.
func (a *Aggregator) Entry(id models.VehicleIdentity) (models.SeriesEntry, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	e, ok := a.entries[id]
	if !ok {
		return models.SeriesEntry{}, false
	}
	return cloneEntry(e), true
}

// Snapshot returns deep copies of all series in insertion order.
func (a *Aggregator) Snapshot() []models.SeriesEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.SeriesEntry, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, cloneEntry(a.entries[id]))
	}
	return out
}

// Len returns the number of series in the set.
func (a *Aggregator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.order)
}

func cloneEntry(e *models.SeriesEntry) models.SeriesEntry {
	c := *e
	c.Points = make([]models.PricePoint, len(e.Points))
	copy(c.Points, e.Points)
	return c
}
