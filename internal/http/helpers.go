package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"droughtwatch/internal/charts"
	applog "droughtwatch/internal/log"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// pickYear resolves a year query parameter against the dataset. Unknown or
// malformed values fall back to the configured default; a default outside
// the dataset clamps to the given boundary year.
func (s *Server) pickYear(raw string, def, boundary int) int {
	if v := strings.TrimSpace(raw); v != "" {
		if y, err := strconv.Atoi(v); err == nil && s.ds.Contains(y) {
			return y
		}
	}
	if s.ds.Contains(def) {
		return def
	}
	return boundary
}

// parseComparisonYears extracts the left and right comparison years from
// query parameters, clamped so both always resolve to dataset years.
func (s *Server) parseComparisonYears(r *http.Request) (left, right int) {
	left = s.pickYear(r.URL.Query().Get("left"), s.defaultLeftYear, s.ds.LastYear())
	right = s.pickYear(r.URL.Query().Get("right"), s.defaultRightYear, s.ds.FirstYear())
	return left, right
}

// parseTheme resolves the theme query parameter, falling back to the
// configured default and then to the built-in default for unknown names.
func (s *Server) parseTheme(r *http.Request) charts.Theme {
	name := strings.TrimSpace(r.URL.Query().Get("theme"))
	if name == "" || !charts.KnownTheme(name) {
		name = s.defaultTheme
	}
	return charts.ThemeByName(name)
}

// writeJSON marshals v and writes it with the appropriate content type.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "JSON encode error",
			applog.FieldError, err,
			applog.FieldPath, r.URL.Path)
	}
}

// templateFuncs returns the helper functions available to all templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"fmtArea":  formatArea,
		"fmtDelta": formatDelta,
	}
}

// formatArea renders a square-kilometer value with a single decimal,
// dropping the fraction when it is zero.
func formatArea(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// formatDelta renders a signed delta, keeping an explicit plus sign for
// increases so table rows scan at a glance.
func formatDelta(v float64) string {
	if v > 0 {
		return "+" + formatArea(v)
	}
	if v < 0 {
		return "-" + formatArea(-v)
	}
	return "0"
}
