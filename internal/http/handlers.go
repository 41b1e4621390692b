package http

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"droughtwatch/internal/charts"
	"droughtwatch/internal/core"
	applog "droughtwatch/internal/log"
	"droughtwatch/internal/mapimage"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded",
			applog.FieldPath, r.URL.Path,
			applog.FieldComponent, applog.ComponentTemplate,
			"error_type", applog.ErrorTypeConfiguration)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	left, right := s.parseComparisonYears(r)
	theme := s.parseTheme(r)

	data := struct {
		Theme     charts.Theme
		Themes    []string
		Years     []int
		LeftYear  int
		RightYear int
		Origin    string
		LoadedAt  string
	}{
		Theme:     theme,
		Themes:    charts.ThemeNames(),
		Years:     s.ds.Years(),
		LeftYear:  left,
		RightYear: right,
		Origin:    string(s.origin),
		LoadedAt:  s.loadedAt.UTC().Format("2006-01-02 15:04 MST"),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed",
			applog.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// mapView wraps a resolved map image for templating. The data URI must be
// template.URL or html/template would reject the data: scheme.
type mapView struct {
	Status  mapimage.Status
	DataURI template.URL
}

func toMapView(img mapimage.Image) mapView {
	return mapView{Status: img.Status, DataURI: template.URL(img.DataURI)}
}

// categoryCard is one vertical category summary on the comparison partial.
type categoryCard struct {
	Icon         string
	Label        string
	Color        string
	Left         float64
	Right        float64
	LeftPercent  float64
	RightPercent float64
}

// handleComparePartial renders the two-year comparison partial: both map
// images, the per-category cards and the delta table. Rendered partials
// are cached by year pair and theme.
func (s *Server) handleComparePartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	left, right := s.parseComparisonYears(r)
	theme := s.parseTheme(r)

	key := fmt.Sprintf("%d-%d-%s", left, right, theme.Name)
	if html, found := s.partialCache.Get(key); found {
		slog.DebugContext(r.Context(), "Compare partial cache hit",
			applog.FieldLeftYear, left, applog.FieldRightYear, right)
		_, _ = w.Write([]byte(html))
		return
	}

	html, err := s.renderComparePartial(r, left, right, theme)
	if err != nil {
		slog.ErrorContext(r.Context(), "Compare partial render failed",
			applog.FieldError, err,
			applog.FieldLeftYear, left,
			applog.FieldRightYear, right)
		_, _ = w.Write([]byte(`<section id="compare" class="compare"><div class="placeholder">Failed to render comparison</div></section>`))
		return
	}

	s.partialCache.Set(key, html)
	_, _ = w.Write([]byte(html))
}

func (s *Server) renderComparePartial(r *http.Request, left, right int, theme charts.Theme) (string, error) {
	if s.templates == nil {
		return "", fmt.Errorf("templates not loaded")
	}

	leftRec, err := s.ds.Lookup(left)
	if err != nil {
		return "", err
	}
	rightRec, err := s.ds.Lookup(right)
	if err != nil {
		return "", err
	}

	var leftMap, rightMap mapimage.Image
	if s.resolver != nil {
		leftMap, rightMap = s.resolver.ResolvePair(r.Context(), leftRec.MapImageURL, rightRec.MapImageURL)
	}

	leftPct := leftRec.Percentages()
	rightPct := rightRec.Percentages()
	cards := make([]categoryCard, 0, core.NumCategories)
	for _, c := range core.Categories() {
		cards = append(cards, categoryCard{
			Icon:         charts.CategoryIcon(c),
			Label:        c.String(),
			Color:        charts.CategoryColor(c),
			Left:         leftRec.Value(c),
			Right:        rightRec.Value(c),
			LeftPercent:  leftPct[c].Value,
			RightPercent: rightPct[c].Value,
		})
	}

	data := struct {
		Theme        charts.Theme
		LeftYear     int
		RightYear    int
		LeftMap      mapView
		RightMap     mapView
		Cards        []categoryCard
		Rows         []charts.TableRow
		LeftGrouped  core.GroupedTotals
		RightGrouped core.GroupedTotals
	}{
		Theme:        theme,
		LeftYear:     left,
		RightYear:    right,
		LeftMap:      toMapView(leftMap),
		RightMap:     toMapView(rightMap),
		Cards:        cards,
		Rows:         charts.ComparisonTable(core.Compare(leftRec, rightRec)),
		LeftGrouped:  leftRec.GroupedTotals(),
		RightGrouped: rightRec.GroupedTotals(),
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "compare.html", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// handleLastUpdated renders the small status partial the page polls every
// 30 seconds. The dataset never changes while the server runs, so only the
// checked-at time moves.
func (s *Server) handleLastUpdated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if s.templates == nil {
		_, _ = fmt.Fprintf(w, `<span id="last-updated">%d years loaded</span>`, s.ds.Len())
		return
	}

	data := struct {
		Origin    string
		LoadedAt  string
		Years     int
		CheckedAt string
	}{
		Origin:    string(s.origin),
		LoadedAt:  s.loadedAt.UTC().Format("2006-01-02 15:04 MST"),
		Years:     s.ds.Len(),
		CheckedAt: time.Now().UTC().Format("15:04:05 MST"),
	}

	if err := s.templates.ExecuteTemplate(w, "last_updated.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Last-updated template execution failed",
			applog.FieldError, err, "template", "last_updated.html")
	}
}
