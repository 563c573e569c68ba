package compare

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/fipepulse/internal/domain/models"
)

func TestParsePlan(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, p Plan)
	}{
		{
			name: "valid",
			yaml: `
months: 12
parallel: 3
vehicles:
  - type: cars
    brand: "59"
    model: "5940"
    year: "2014-1"
    name: Gol 1.0 2014
  - type: motorcycles
    brand: "77"
    model: "3030"
    year: "2020-1"
`,
			check: func(t *testing.T, p Plan) {
				if p.Months != 12 || p.Parallel != 3 || len(p.Vehicles) != 2 {
					t.Fatalf("plan=%+v", p)
				}
				id, _ := p.Vehicles[1].Identity()
				if id.VehicleType != models.Motorcycles {
					t.Fatalf("type=%q", id.VehicleType)
				}
			},
		},
		{name: "no vehicles", yaml: "months: 3\n", wantErr: ErrEmptyPlan},
		{
			name:    "bad type",
			yaml:    "vehicles:\n  - {type: boats, brand: '1', model: '2', year: '3'}\n",
			wantErr: models.ErrInvalidVehicleType,
		},
		{
			name:    "incomplete vehicle",
			yaml:    "vehicles:\n  - {type: cars, brand: '1'}\n",
			wantErr: models.ErrIncompleteSelection,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePlan([]byte(tc.yaml))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err=%v want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, p)
		})
	}
}

func TestParsePlan_RejectsUnknownKeys(t *testing.T) {
	_, err := ParsePlan([]byte("monthz: 3\nvehicles:\n  - {type: cars, brand: '1', model: '2', year: '3'}\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	if err := os.WriteFile(path, []byte("vehicles:\n  - {type: cars, brand: '59', model: '5940', year: '2014-1'}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPlan(path)
	if err != nil || len(p.Vehicles) != 1 {
		t.Fatalf("plan=%+v err=%v", p, err)
	}
	if _, err := LoadPlan(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
