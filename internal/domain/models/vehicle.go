package models

import (
	"errors"
	"fmt"
	"strings"
)

// VehicleType is the top level of the FIPE taxonomy.
type VehicleType string

const (
	Cars        VehicleType = "cars"
	Motorcycles VehicleType = "motorcycles"
	Trucks      VehicleType = "trucks"
)

var (
	// ErrInvalidVehicleType is returned when a string does not name a known VehicleType.
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	// ErrMalformedKey is returned by ParseIdentityKey for keys without four parts.
	ErrMalformedKey = errors.New("malformed vehicle key")
)

// ParseVehicleType validates s against the supported vehicle types.
func ParseVehicleType(s string) (VehicleType, error) {
	switch t := VehicleType(strings.ToLower(strings.TrimSpace(s))); t {
	case Cars, Motorcycles, Trucks:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVehicleType, s)
	}
}

// VehicleIdentity is a fully resolved selection. It is comparable and is used
// as the aggregation key, so equality is structural over the four fields.
type VehicleIdentity struct {
	VehicleType VehicleType `json:"vehicle_type" example:"cars"`
	BrandCode   string      `json:"brand_code" example:"59"`
	ModelCode   string      `json:"model_code" example:"5940"`
	YearCode    string      `json:"year_code" example:"2014-3"`
}

// Key renders the identity as "type_brand_model_year", safe for URL paths.
func (id VehicleIdentity) Key() string {
	return strings.Join([]string{string(id.VehicleType), id.BrandCode, id.ModelCode, id.YearCode}, "_")
}

// Validate reports whether every field of the identity is set.
func (id VehicleIdentity) Validate() error {
	if _, err := ParseVehicleType(string(id.VehicleType)); err != nil {
		return err
	}
	if id.BrandCode == "" || id.ModelCode == "" || id.YearCode == "" {
		return ErrIncompleteSelection
	}
	return nil
}

// ParseIdentityKey is the inverse of VehicleIdentity.Key.
func ParseIdentityKey(key string) (VehicleIdentity, error) {
	parts := strings.SplitN(key, "_", 4)
	if len(parts) != 4 {
		return VehicleIdentity{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	vt, err := ParseVehicleType(parts[0])
	if err != nil {
		return VehicleIdentity{}, err
	}
	id := VehicleIdentity{VehicleType: vt, BrandCode: parts[1], ModelCode: parts[2], YearCode: parts[3]}
	return id, id.Validate()
}

// CatalogEntry is a selectable option at any level of the taxonomy.
type CatalogEntry struct {
	Code string `json:"code" example:"59"`
	Name string `json:"name" example:"VW - VolksWagen"`
}

// FindName returns the name of the entry with the given code, or "" if absent.
func FindName(entries []CatalogEntry, code string) string {
	for _, e := range entries {
		if e.Code == code {
			return e.Name
		}
	}
	return ""
}

// VehicleAttributes is the catalog snapshot of a vehicle at the current
// reference period.
type VehicleAttributes struct {
	PriceLabel      string `json:"price" example:"R$ 50.000,00"`
	BrandName       string `json:"brand" example:"VW - VolksWagen"`
	ModelName       string `json:"model" example:"Gol 1.0"`
	ModelYear       int    `json:"model_year" example:"2014"`
	Fuel            string `json:"fuel" example:"Gasolina"`
	VehicleTypeCode int    `json:"vehicle_type_code" example:"1"`
	FipeCode        string `json:"fipe_code" example:"005340-6"`
	ReferenceMonth  string `json:"reference_month" example:"março de 2024"`
}
