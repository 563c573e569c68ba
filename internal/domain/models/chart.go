package models

// Chart is the data contract consumed by chart renderers: ordered datasets
// sharing one label axis.
type Chart struct {
	Labels   []string  `json:"labels" example:"fevereiro/2024,março/2024"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one vehicle's series on the shared axis. Data is aligned with
// Chart.Labels; a nil entry means the vehicle has no point for that label.
type Dataset struct {
	Label  string       `json:"label" example:"VW - VolksWagen Gol 1.0 2014"`
	Color  string       `json:"color" example:"#0382a8"`
	Points []PricePoint `json:"points"`
	Data   []*float64   `json:"data"`
}
