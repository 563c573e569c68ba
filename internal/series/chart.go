package series

import "github.com/guttosm/fipepulse/internal/domain/models"

// BuildChart lays the given series out on a shared label axis.
//
// Series are stored newest period first; the chart runs oldest to newest, so
// every series is reversed. The label axis is taken from the first series and
// the other series are aligned to it by period label.
func BuildChart(entries []models.SeriesEntry) models.Chart {
	chart := models.Chart{Labels: []string{}, Datasets: make([]models.Dataset, 0, len(entries))}
	if len(entries) == 0 {
		return chart
	}

	for _, p := range reversed(entries[0].Points) {
		chart.Labels = append(chart.Labels, p.PeriodLabel)
	}

	for _, e := range entries {
		points := reversed(e.Points)
		byLabel := make(map[string]float64, len(points))
		for _, p := range points {
			byLabel[p.PeriodLabel] = p.Value
		}
		data := make([]*float64, len(chart.Labels))
		for i, label := range chart.Labels {
			if v, ok := byLabel[label]; ok {
				data[i] = &v
			}
		}
		chart.Datasets = append(chart.Datasets, models.Dataset{
			Label:  e.DisplayName,
			Color:  e.Color,
			Points: points,
			Data:   data,
		})
	}
	return chart
}

func reversed(in []models.PricePoint) []models.PricePoint {
	out := make([]models.PricePoint, len(in))
	for i, p := range in {
		out[len(in)-1-i] = p
	}
	return out
}
