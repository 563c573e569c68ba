package models

// ReferencePeriod is one month of the pricing catalog's reference table.
// Code is the catalog's opaque table code, unrelated to the calendar month.
type ReferencePeriod struct {
	Code  int    `json:"code" example:"310"`
	Label string `json:"label" example:"março/2024"`
}

// PricePoint is one normalised historical observation.
type PricePoint struct {
	Value       float64 `json:"value" example:"50000.00"`
	PeriodLabel string  `json:"period" example:"março/2024"`
}

// SeriesStatus tracks the fetch lifecycle of a SeriesEntry.
type SeriesStatus string

const (
	StatusLoading SeriesStatus = "loading"
	StatusDone    SeriesStatus = "done"
	StatusFailed  SeriesStatus = "failed"
)

// SeriesEntry is one vehicle of a comparison together with its accumulated
// price points. Points are in arrival order, which is newest period first.
type SeriesEntry struct {
	Identity    VehicleIdentity `json:"identity"`
	DisplayName string          `json:"display_name"`
	Color       string          `json:"color" example:"#0382a8"`
	Points      []PricePoint    `json:"points"`
	Status      SeriesStatus    `json:"status"`
	Error       string          `json:"error,omitempty"`
}
