package charts

import (
	"math"
	"testing"

	"droughtwatch/internal/core"
)

func record(year int, areas [core.NumCategories]float64) core.Record {
	return core.Record{Year: year, Areas: areas}
}

func TestPieSkipsZeroSlices(t *testing.T) {
	rec := record(1984, [core.NumCategories]float64{10, 0, 5, 0, 0, 5})
	spec := Pie(rec)
	if spec.NoData {
		t.Fatalf("unexpected no-data flag")
	}
	if len(spec.Slices) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(spec.Slices))
	}
	wantLabels := []string{"Extreme Drought", "Moderate Drought", "Extremely Wet"}
	var pctSum float64
	for i, s := range spec.Slices {
		if s.Label != wantLabels[i] {
			t.Fatalf("slice %d label %q, expected %q", i, s.Label, wantLabels[i])
		}
		if s.Color == "" {
			t.Fatalf("slice %d missing color", i)
		}
		pctSum += s.Percent
	}
	if math.Abs(pctSum-100) > 1e-9 {
		t.Fatalf("slice percents sum to %v", pctSum)
	}
}

func TestPieNoDataPlaceholder(t *testing.T) {
	spec := Pie(record(1990, [core.NumCategories]float64{}))
	if !spec.NoData {
		t.Fatalf("expected no-data flag")
	}
	if len(spec.Slices) != 1 {
		t.Fatalf("expected single placeholder slice, got %d", len(spec.Slices))
	}
	s := spec.Slices[0]
	if s.Label != "No Data" || s.Value != 1 {
		t.Fatalf("unexpected placeholder slice: %+v", s)
	}
}

func TestGroupedBar(t *testing.T) {
	left := record(1984, [core.NumCategories]float64{10, 5, 5, 20, 8, 2})
	right := record(1981, [core.NumCategories]float64{12, 6, 4, 15, 9, 2})
	spec := GroupedBar(left, right)

	if len(spec.Buckets) != 3 || spec.Buckets[0] != "Drought" || spec.Buckets[2] != "Wet" {
		t.Fatalf("unexpected buckets: %v", spec.Buckets)
	}
	if len(spec.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(spec.Series))
	}
	l := spec.Series[0]
	if l.Name != "1984" || l.Values[0] != 20 || l.Values[1] != 20 || l.Values[2] != 10 {
		t.Fatalf("unexpected left series: %+v", l)
	}
	r := spec.Series[1]
	if r.Name != "1981" || r.Values[0] != 22 || r.Values[1] != 15 || r.Values[2] != 11 {
		t.Fatalf("unexpected right series: %+v", r)
	}
	if l.Color == r.Color {
		t.Fatalf("year series must have distinct colors")
	}
}

func TestTrend(t *testing.T) {
	ds, err := core.NewDataset([]core.Record{
		record(1981, [core.NumCategories]float64{1, 2, 3, 4, 5, 6}),
		record(1984, [core.NumCategories]float64{6, 5, 4, 3, 2, 1}),
	})
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	spec := Trend(ds)
	if len(spec.Series) != core.NumCategories {
		t.Fatalf("expected %d series, got %d", core.NumCategories, len(spec.Series))
	}
	first := spec.Series[0]
	if first.Name != "Extreme Drought" {
		t.Fatalf("series order must be canonical, got %q first", first.Name)
	}
	if len(first.Points) != 2 || first.Points[0].Year != 1981 || first.Points[0].Value != 1 || first.Points[1].Value != 6 {
		t.Fatalf("unexpected points: %+v", first.Points)
	}
}

func TestComparisonTable(t *testing.T) {
	left := record(1981, [core.NumCategories]float64{12, 5, 5, 15, 8, 2})
	right := record(1984, [core.NumCategories]float64{10, 5, 5, 20, 8, 2})
	rows := ComparisonTable(core.Compare(left, right))
	if len(rows) != core.NumCategories {
		t.Fatalf("expected %d rows, got %d", core.NumCategories, len(rows))
	}

	ed := rows[core.ExtremeDrought]
	if ed.Delta != -2 || ed.Direction != core.Decrease || ed.DeltaColor != decreaseColor {
		t.Fatalf("unexpected extreme drought row: %+v", ed)
	}
	nn := rows[core.NearNormal]
	if nn.Delta != 5 || nn.Direction != core.Increase || nn.DeltaColor != increaseColor {
		t.Fatalf("unexpected near normal row: %+v", nn)
	}
	mw := rows[core.ModeratelyWet]
	if mw.Delta != 0 || mw.Direction != core.Unchanged || mw.DeltaColor != unchangedColor {
		t.Fatalf("unexpected moderately wet row: %+v", mw)
	}
	if rows[0].Icon == "" || rows[0].Label != "Extreme Drought" {
		t.Fatalf("row labels/icons missing: %+v", rows[0])
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "dark", "ocean", "forest"} {
		th := ThemeByName(name)
		if th.Name != name {
			t.Fatalf("theme %q resolved to %q", name, th.Name)
		}
		if !KnownTheme(name) {
			t.Fatalf("expected %q known", name)
		}
	}
	if th := ThemeByName("neon"); th.Name != DefaultThemeName {
		t.Fatalf("unknown theme must fall back to default, got %q", th.Name)
	}
	if KnownTheme("neon") {
		t.Fatalf("neon should not be known")
	}
	names := ThemeNames()
	if len(names) != 4 {
		t.Fatalf("expected 4 themes, got %v", names)
	}
}
