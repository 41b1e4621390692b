package charts

import (
	"fmt"

	"droughtwatch/internal/core"
)

// BarSeries is one year's values over the three grouped buckets.
type BarSeries struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// BarSpec describes the grouped two-year bucket comparison chart.
type BarSpec struct {
	Title      string      `json:"title"`
	XAxisTitle string      `json:"xAxisTitle"`
	YAxisTitle string      `json:"yAxisTitle"`
	Buckets    []string    `json:"buckets"`
	Colors     []string    `json:"bucketColors"`
	Series     []BarSeries `json:"series"`
}

// GroupedBar builds the three-bucket comparison chart for two years.
func GroupedBar(left, right core.Record) BarSpec {
	lg := left.GroupedTotals()
	rg := right.GroupedTotals()

	return BarSpec{
		Title:      fmt.Sprintf("Comparison of Climate Conditions: %d vs %d", left.Year, right.Year),
		XAxisTitle: "Climate Category",
		YAxisTitle: "Area (sq km)",
		Buckets:    []string{"Drought", "Near Normal", "Wet"},
		Colors:     []string{droughtGroupColor, nearNormalGroupColor, wetGroupColor},
		Series: []BarSeries{
			{
				Name:   fmt.Sprintf("%d", left.Year),
				Color:  leftYearColor,
				Values: []float64{lg.Drought, lg.NearNormal, lg.Wet},
			},
			{
				Name:   fmt.Sprintf("%d", right.Year),
				Color:  rightYearColor,
				Values: []float64{rg.Drought, rg.NearNormal, rg.Wet},
			},
		},
	}
}
