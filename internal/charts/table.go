package charts

import "droughtwatch/internal/core"

// TableRow is one rendered row of the year comparison table.
type TableRow struct {
	Icon       string         `json:"icon"`
	Label      string         `json:"label"`
	Left       float64        `json:"left"`
	Right      float64        `json:"right"`
	Delta      float64        `json:"delta"`
	Direction  core.Direction `json:"direction"`
	DeltaColor string         `json:"deltaColor"`
}

// ComparisonTable maps a comparison onto display rows, one per category in
// canonical order, with delta colors by direction.
func ComparisonTable(cmp core.Comparison) []TableRow {
	rows := make([]TableRow, 0, len(cmp.Rows))
	for _, r := range cmp.Rows {
		rows = append(rows, TableRow{
			Icon:       CategoryIcon(r.Category),
			Label:      r.Category.String(),
			Left:       r.Left,
			Right:      r.Right,
			Delta:      r.Delta,
			Direction:  r.Direction,
			DeltaColor: DeltaColor(r.Direction),
		})
	}
	return rows
}
