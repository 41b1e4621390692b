package charts

import "droughtwatch/internal/core"

// TrendPoint is one year's value within a category series.
type TrendPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// TrendSeries is one category's values over all years.
type TrendSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points []TrendPoint `json:"points"`
}

// TrendSpec is the six-category line chart over the full dataset.
type TrendSpec struct {
	Title      string        `json:"title"`
	XAxisTitle string        `json:"xAxisTitle"`
	YAxisTitle string        `json:"yAxisTitle"`
	Series     []TrendSeries `json:"series"`
}

// Trend builds the per-category trend lines across every year in the
// dataset, one series per category in canonical order.
func Trend(ds *core.Dataset) TrendSpec {
	spec := TrendSpec{
		Title:      "Drought Categories Trend Over Time",
		XAxisTitle: "Year",
		YAxisTitle: "Area (sq km)",
	}

	records := ds.Records()
	for _, c := range core.Categories() {
		series := TrendSeries{
			Name:   c.String(),
			Color:  CategoryColor(c),
			Points: make([]TrendPoint, 0, len(records)),
		}
		for _, rec := range records {
			series.Points = append(series.Points, TrendPoint{Year: rec.Year, Value: rec.Areas[c]})
		}
		spec.Series = append(spec.Series, series)
	}
	return spec
}
