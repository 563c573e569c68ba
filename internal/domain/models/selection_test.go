package models

import (
	"errors"
	"testing"
)

func TestVehicleSelection_CascadeClearsFollowingLevels(t *testing.T) {
	s, err := VehicleSelection{}.WithVehicleType(Cars)
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	s, _ = s.WithBrand("59")
	s, _ = s.WithModel("5940")
	full, err := s.WithYear("2014-3")
	if err != nil {
		t.Fatalf("year: %v", err)
	}

	// changing the brand clears model and year but leaves the original untouched
	changed, err := full.WithBrand("21")
	if err != nil {
		t.Fatalf("brand: %v", err)
	}
	if changed.ModelCode != "" || changed.YearCode != "" || changed.BrandCode != "21" {
		t.Fatalf("unexpected cascade result: %+v", changed)
	}
	if full.ModelCode != "5940" || full.YearCode != "2014-3" {
		t.Fatalf("receiver mutated: %+v", full)
	}

	changed, _ = full.WithModel("6000")
	if changed.YearCode != "" || changed.BrandCode != "59" {
		t.Fatalf("model change: %+v", changed)
	}

	changed, _ = full.WithVehicleType(Trucks)
	if changed != (VehicleSelection{VehicleType: Trucks}) {
		t.Fatalf("type change: %+v", changed)
	}
}

func TestVehicleSelection_OutOfOrder(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
	}{
		{"brand without type", func() error { _, err := VehicleSelection{}.WithBrand("1"); return err }},
		{"model without brand", func() error {
			_, err := VehicleSelection{VehicleType: Cars}.WithModel("1")
			return err
		}},
		{"year without model", func() error {
			_, err := VehicleSelection{VehicleType: Cars, BrandCode: "1"}.WithYear("2020-1")
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, ErrSelectionOrder) {
				t.Fatalf("want ErrSelectionOrder, got %v", err)
			}
		})
	}

	if _, err := (VehicleSelection{}).WithVehicleType("boats"); !errors.Is(err, ErrInvalidVehicleType) {
		t.Fatalf("want ErrInvalidVehicleType, got %v", err)
	}
}

func TestVehicleSelection_Identity(t *testing.T) {
	if _, err := (VehicleSelection{VehicleType: Cars, BrandCode: "1"}).Identity(); !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("want ErrIncompleteSelection, got %v", err)
	}
	id, err := VehicleSelection{VehicleType: Cars, BrandCode: "59", ModelCode: "5940", YearCode: "2014-3"}.Identity()
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if id.Key() != "cars_59_5940_2014-3" {
		t.Fatalf("key=%q", id.Key())
	}
	back, err := ParseIdentityKey(id.Key())
	if err != nil || back != id {
		t.Fatalf("round trip: %+v err=%v", back, err)
	}
	if _, err := ParseIdentityKey("cars_59"); err == nil {
		t.Fatalf("expected malformed key error")
	}
}
