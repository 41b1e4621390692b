package charts

import (
	"fmt"

	"droughtwatch/internal/core"
)

// PieSlice is one labeled value of a distribution pie.
type PieSlice struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// PieSpec describes one year's distribution donut.
type PieSpec struct {
	Title  string     `json:"title"`
	Hole   float64    `json:"hole"`
	NoData bool       `json:"noData"`
	Slices []PieSlice `json:"slices"`
}

// Pie builds the distribution pie for one year. Zero-valued categories are
// omitted; a year with no data at all gets a single unit "No Data" slice
// instead of an empty chart.
func Pie(rec core.Record) PieSpec {
	spec := PieSpec{
		Title: fmt.Sprintf("%d Drought Distribution", rec.Year),
		Hole:  0.3,
	}

	nonZero := rec.NonZeroCategories()
	if len(nonZero) == 0 {
		spec.NoData = true
		spec.Slices = []PieSlice{{Label: "No Data", Value: 1, Percent: 100, Color: noDataColor}}
		return spec
	}

	total := rec.Total()
	for _, cv := range nonZero {
		spec.Slices = append(spec.Slices, PieSlice{
			Label:   cv.Category.String(),
			Value:   cv.Value,
			Percent: cv.Value / total * 100,
			Color:   CategoryColor(cv.Category),
		})
	}
	return spec
}
