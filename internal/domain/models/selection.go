package models

import "errors"

var (
	// ErrIncompleteSelection means a vehicle is not fully resolved yet.
	ErrIncompleteSelection = errors.New("vehicle selection is incomplete")
	// ErrSelectionOrder means a level was set before the levels that precede it.
	ErrSelectionOrder = errors.New("selection level set out of order")
)

// VehicleSelection is the in-progress taxonomy choice of a user.
//
// Taxonomy order is vehicle type → brand → model → year. A level can only be set
// once every level before it is set, and setting a level clears every level
// after it. All setters return a new value; the receiver is never modified.
type VehicleSelection struct {
	VehicleType VehicleType `json:"vehicle_type,omitempty"`
	BrandCode   string      `json:"brand_code,omitempty"`
	ModelCode   string      `json:"model_code,omitempty"`
	YearCode    string      `json:"year_code,omitempty"`
}

// WithVehicleType sets the vehicle type and clears brand, model and year.
func (s VehicleSelection) WithVehicleType(t VehicleType) (VehicleSelection, error) {
	if _, err := ParseVehicleType(string(t)); err != nil {
		return s, err
	}
	return VehicleSelection{VehicleType: t}, nil
}

// WithBrand sets the brand and clears model and year.
func (s VehicleSelection) WithBrand(code string) (VehicleSelection, error) {
	if s.VehicleType == "" || code == "" {
		return s, ErrSelectionOrder
	}
	return VehicleSelection{VehicleType: s.VehicleType, BrandCode: code}, nil
}

// WithModel sets the model and clears year.
func (s VehicleSelection) WithModel(code string) (VehicleSelection, error) {
	if s.BrandCode == "" || code == "" {
		return s, ErrSelectionOrder
	}
	next := s
	next.ModelCode = code
	next.YearCode = ""
	return next, nil
}

// WithYear sets the year, completing the selection.
func (s VehicleSelection) WithYear(code string) (VehicleSelection, error) {
	if s.ModelCode == "" || code == "" {
		return s, ErrSelectionOrder
	}
	next := s
	next.YearCode = code
	return next, nil
}

// Identity returns the resolved identity, or ErrIncompleteSelection.
func (s VehicleSelection) Identity() (VehicleIdentity, error) {
	id := VehicleIdentity(s)
	if err := id.Validate(); err != nil {
		return VehicleIdentity{}, err
	}
	return id, nil
}
