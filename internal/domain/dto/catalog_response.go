package dto

import "github.com/guttosm/fipepulse/internal/domain/models"

// OptionsResponse lists the choices of one taxonomy level.
type OptionsResponse struct {
	Level   string                `json:"level" example:"brands"`
	Options []models.CatalogEntry `json:"options"`
}

// PeriodsResponse lists the reference periods, most recent first.
type PeriodsResponse struct {
	Periods []models.ReferencePeriod `json:"periods"`
}

// HistoryResponse is the result of a one-shot history request. Error is set
// when the run stopped early; Points then holds what was fetched before it.
type HistoryResponse struct {
	Vehicle models.VehicleIdentity `json:"vehicle"`
	Points  []models.PricePoint    `json:"points"`
	Error   string                 `json:"error,omitempty"`
}
