package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestRepo(now *time.Time) *memorySessionRepository {
	r := NewSessionRepository().(*memorySessionRepository)
	r.now = func() time.Time { return *now }
	return r
}

func TestSessionRepository_CRUD(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := newTestRepo(&now)

	s := r.Create(24)
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", s.ID, err)
	}
	if s.Months() != 24 || !s.CreatedAt.Equal(now) {
		t.Fatalf("unexpected session %+v", s)
	}
	if r.Count() != 1 {
		t.Fatalf("Count = %d", r.Count())
	}

	got, ok := r.Get(s.ID)
	if !ok || got != s {
		t.Fatal("Get did not return the created session")
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatal("Get found an unknown id")
	}

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := s.StartVehicle(gol, "Gol", cancel); err != nil {
		t.Fatal(err)
	}
	if !r.Delete(s.ID) {
		t.Fatal("Delete reported missing session")
	}
	if ctx.Err() == nil {
		t.Fatal("Delete should cancel in-flight runs")
	}
	if r.Delete(s.ID) {
		t.Fatal("second Delete should report false")
	}
	if r.Count() != 0 {
		t.Fatalf("Count = %d", r.Count())
	}
}

func TestSessionRepository_Sweep(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := newTestRepo(&now)

	idle := r.Create(12)
	active := r.Create(12)
	ctx, cancel := context.WithCancel(context.Background())
	if _, err := idle.StartVehicle(gol, "Gol", cancel); err != nil {
		t.Fatal(err)
	}

	now = now.Add(45 * time.Minute)
	if _, ok := r.Get(active.ID); !ok {
		t.Fatal("active session missing")
	}

	now = now.Add(30 * time.Minute)
	if n := r.Sweep(time.Hour); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if _, ok := r.Get(idle.ID); ok {
		t.Fatal("idle session should be gone")
	}
	if ctx.Err() == nil {
		t.Fatal("sweeping should cancel the idle session's runs")
	}
	if _, ok := r.Get(active.ID); !ok {
		t.Fatal("recently used session should survive")
	}
}
