package http

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"droughtwatch/internal/charts"
	"droughtwatch/internal/core"
	applog "droughtwatch/internal/log"
)

// groupedJSON is the wire shape of the three-bucket totals.
type groupedJSON struct {
	Drought    float64 `json:"drought"`
	NearNormal float64 `json:"nearNormal"`
	Wet        float64 `json:"wet"`
}

// percentJSON is one category's share of a year total.
type percentJSON struct {
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

func toGroupedJSON(g core.GroupedTotals) groupedJSON {
	return groupedJSON{Drought: g.Drought, NearNormal: g.NearNormal, Wet: g.Wet}
}

func toPercentJSON(rec core.Record) []percentJSON {
	pct := rec.Percentages()
	out := make([]percentJSON, 0, core.NumCategories)
	for _, c := range core.Categories() {
		out = append(out, percentJSON{
			Label:   c.String(),
			Color:   charts.CategoryColor(c),
			Percent: pct[c].Value,
		})
	}
	return out
}

// handleYears lists the selectable years and the resolved defaults.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	left, right := s.parseComparisonYears(r)
	writeJSON(w, r, struct {
		Years        []int    `json:"years"`
		DefaultLeft  int      `json:"defaultLeft"`
		DefaultRight int      `json:"defaultRight"`
		Themes       []string `json:"themes"`
	}{
		Years:        s.ds.Years(),
		DefaultLeft:  left,
		DefaultRight: right,
		Themes:       charts.ThemeNames(),
	})
}

// handleCompareJSON serves the chart specs for one two-year comparison.
func (s *Server) handleCompareJSON(w http.ResponseWriter, r *http.Request) {
	left, right := s.parseComparisonYears(r)

	leftRec, err := s.ds.Lookup(left)
	if err != nil {
		slog.ErrorContext(r.Context(), "Compare lookup failed",
			applog.FieldError, err, applog.FieldYear, left)
		http.Error(w, "unknown year", http.StatusNotFound)
		return
	}
	rightRec, err := s.ds.Lookup(right)
	if err != nil {
		slog.ErrorContext(r.Context(), "Compare lookup failed",
			applog.FieldError, err, applog.FieldYear, right)
		http.Error(w, "unknown year", http.StatusNotFound)
		return
	}

	writeJSON(w, r, struct {
		LeftYear      int               `json:"leftYear"`
		RightYear     int               `json:"rightYear"`
		Theme         charts.Theme      `json:"theme"`
		LeftPie       charts.PieSpec    `json:"leftPie"`
		RightPie      charts.PieSpec    `json:"rightPie"`
		Bar           charts.BarSpec    `json:"bar"`
		Table         []charts.TableRow `json:"table"`
		LeftGrouped   groupedJSON       `json:"leftGrouped"`
		RightGrouped  groupedJSON       `json:"rightGrouped"`
		LeftPercents  []percentJSON     `json:"leftPercents"`
		RightPercents []percentJSON     `json:"rightPercents"`
	}{
		LeftYear:      left,
		RightYear:     right,
		Theme:         s.parseTheme(r),
		LeftPie:       charts.Pie(leftRec),
		RightPie:      charts.Pie(rightRec),
		Bar:           charts.GroupedBar(leftRec, rightRec),
		Table:         charts.ComparisonTable(core.Compare(leftRec, rightRec)),
		LeftGrouped:   toGroupedJSON(leftRec.GroupedTotals()),
		RightGrouped:  toGroupedJSON(rightRec.GroupedTotals()),
		LeftPercents:  toPercentJSON(leftRec),
		RightPercents: toPercentJSON(rightRec),
	})
}

// handleTrend serves the six-category trend chart over every loaded year.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, charts.Trend(s.ds))
}

// handleExport streams the current comparison as a CSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	left, right := s.parseComparisonYears(r)
	leftRec, err := s.ds.Lookup(left)
	if err != nil {
		http.Error(w, "unknown year", http.StatusNotFound)
		return
	}
	rightRec, err := s.ds.Lookup(right)
	if err != nil {
		http.Error(w, "unknown year", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("drought_comparison_%d_vs_%d.csv", left, right)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	header := []string{
		"Category",
		fmt.Sprintf("%d Area (sq km)", left),
		fmt.Sprintf("%d Area (sq km)", right),
		"Delta",
		"Direction",
	}
	if err := cw.Write(header); err != nil {
		slog.ErrorContext(r.Context(), "CSV export write failed", applog.FieldError, err)
		return
	}
	for _, row := range core.Compare(leftRec, rightRec).Rows {
		record := []string{
			row.Category.String(),
			strconv.FormatFloat(row.Left, 'f', -1, 64),
			strconv.FormatFloat(row.Right, 'f', -1, 64),
			strconv.FormatFloat(row.Delta, 'f', -1, 64),
			string(row.Direction),
		}
		if err := cw.Write(record); err != nil {
			slog.ErrorContext(r.Context(), "CSV export write failed", applog.FieldError, err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.ErrorContext(r.Context(), "CSV export flush failed", applog.FieldError, err)
		return
	}

	if s.notifier != nil {
		if err := s.notifier.PublishExported(r.Context(), left, right); err != nil {
			slog.WarnContext(r.Context(), "Export event publish failed",
				applog.FieldError, err,
				applog.FieldLeftYear, left,
				applog.FieldRightYear, right)
		}
	}
}
