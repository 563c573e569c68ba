// Package compare runs a batch comparison described by a YAML plan and
// produces the same chart dataset the API serves.
package compare

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/fipepulse/internal/domain/models"
)

// ErrEmptyPlan is returned for a plan without vehicles.
var ErrEmptyPlan = errors.New("plan has no vehicles")

// Plan is a comparison described in YAML:
//
//	months: 12
//	parallel: 2
//	vehicles:
//	  - type: cars
//	    brand: "59"
//	    model: "5940"
//	    year: "2014-1"
//	    name: Gol 1.0 2014
type Plan struct {
	Months   int           `yaml:"months"`
	Parallel int           `yaml:"parallel"`
	Vehicles []PlanVehicle `yaml:"vehicles"`
}

// PlanVehicle is one vehicle of a Plan. Name and Color are optional.
type PlanVehicle struct {
	Type  string `yaml:"type"`
	Brand string `yaml:"brand"`
	Model string `yaml:"model"`
	Year  string `yaml:"year"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Identity validates the vehicle and returns its identity.
func (v PlanVehicle) Identity() (models.VehicleIdentity, error) {
	vt, err := models.ParseVehicleType(v.Type)
	if err != nil {
		return models.VehicleIdentity{}, err
	}
	id := models.VehicleIdentity{VehicleType: vt, BrandCode: v.Brand, ModelCode: v.Model, YearCode: v.Year}
	return id, id.Validate()
}

// LoadPlan reads and validates a plan file.
func LoadPlan(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan %s: %w", path, err)
	}
	return ParsePlan(raw)
}

// ParsePlan decodes and validates a YAML plan. Unknown keys are rejected.
func ParsePlan(raw []byte) (Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Plan{}, fmt.Errorf("decode plan: %w", err)
	}
	if len(p.Vehicles) == 0 {
		return Plan{}, ErrEmptyPlan
	}
	if p.Months < 0 {
		return Plan{}, fmt.Errorf("decode plan: months must not be negative, got %d", p.Months)
	}
	for i, v := range p.Vehicles {
		if _, err := v.Identity(); err != nil {
			return Plan{}, fmt.Errorf("vehicle %d: %w", i+1, err)
		}
	}
	return p, nil
}
