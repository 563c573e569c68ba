package dto

import (
	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/fipe"
)

// SessionResponse describes a comparison session.
type SessionResponse struct {
	ID        string                  `json:"id" example:"7b0e2f9c-0c55-4d43-9b59-0c3f1f1f2a10"`
	Selection models.VehicleSelection `json:"selection"`
	Months    int                     `json:"months" example:"24"`
	Vehicles  []TableRow              `json:"vehicles"`
}

// SelectionResponse is returned after a taxonomy level changes.
type SelectionResponse struct {
	Selection models.VehicleSelection `json:"selection"`
	NextLevel string                  `json:"next_level,omitempty" example:"model"`
	Options   []models.CatalogEntry   `json:"options,omitempty"`
}

// TableRow is one line of the comparison table.
type TableRow struct {
	Key        string              `json:"key" example:"cars_59_5940_2014-1"`
	Name       string              `json:"name" example:"VW - VolksWagen Gol 1.0 2014 Gasolina"`
	Color      string              `json:"color" example:"#0382a8"`
	Status     models.SeriesStatus `json:"status" example:"done"`
	Error      string              `json:"error,omitempty"`
	Points     int                 `json:"points" example:"24"`
	LastPeriod string              `json:"last_period,omitempty" example:"março/2024"`
	LastPrice  *float64            `json:"last_price,omitempty" example:"50000"`
	LastLabel  string              `json:"last_price_label,omitempty" example:"R$ 50.000,00"`
}

// NewTableRow summarises a series entry. The most recent point is the first
// one, since points arrive newest period first.
func NewTableRow(e models.SeriesEntry) TableRow {
	row := TableRow{
		Key:    e.Identity.Key(),
		Name:   e.DisplayName,
		Color:  e.Color,
		Status: e.Status,
		Error:  e.Error,
		Points: len(e.Points),
	}
	if len(e.Points) > 0 {
		latest := e.Points[0]
		v := latest.Value
		row.LastPeriod = latest.PeriodLabel
		row.LastPrice = &v
		row.LastLabel = fipe.FormatBRL(v)
	}
	return row
}

// NewTableRows maps entries in order.
func NewTableRows(entries []models.SeriesEntry) []TableRow {
	rows := make([]TableRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, NewTableRow(e))
	}
	return rows
}
