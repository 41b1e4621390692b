package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"droughtwatch/internal/config"
	"droughtwatch/internal/core"
)

// Origin names the source that actually served the dataset. It can differ
// from the configured source when the sqlite path falls back to CSV.
type Origin string

const (
	OriginCSV    Origin = "csv"
	OriginSQLite Origin = "sqlite"
	OriginSheet  Origin = "sheet"
)

// Result is the typed outcome of a dataset load. FallbackCause is non-nil
// only when the configured source failed and CSV served instead, so the
// intended "database unavailable" case stays distinguishable from silent
// breakage in logs and tests.
type Result struct {
	Dataset       *core.Dataset
	Origin        Origin
	FallbackCause error
}

// Open loads the dataset according to config. The sqlite source degrades to
// the CSV file on any open or read failure; csv and sheet sources fail hard.
func Open(ctx context.Context, cfg *config.Config) (Result, error) {
	switch cfg.DataSource {
	case "sqlite":
		ds, err := LoadSQLite(ctx, cfg.SQLiteDBPath)
		if err == nil {
			return Result{Dataset: ds, Origin: OriginSQLite}, nil
		}
		slog.WarnContext(ctx, "SQLite source failed, falling back to CSV",
			"db_path", cfg.SQLiteDBPath, "csv_path", cfg.CSVPath, "error", err)
		ds, csvErr := LoadCSV(cfg.CSVPath)
		if csvErr != nil {
			return Result{}, fmt.Errorf("sqlite source failed (%v) and csv fallback failed: %w", err, csvErr)
		}
		return Result{Dataset: ds, Origin: OriginCSV, FallbackCause: err}, nil

	case "sheet":
		ds, err := LoadSheet(ctx, SheetConfig{
			SpreadsheetID: cfg.GoogleSpreadsheetID,
			ReadRange:     cfg.GoogleSheetRange,
		})
		if err != nil {
			return Result{}, fmt.Errorf("sheet source: %w", err)
		}
		return Result{Dataset: ds, Origin: OriginSheet}, nil

	case "csv":
		ds, err := LoadCSV(cfg.CSVPath)
		if err != nil {
			return Result{}, fmt.Errorf("csv source: %w", err)
		}
		return Result{Dataset: ds, Origin: OriginCSV}, nil

	default:
		return Result{}, fmt.Errorf("unsupported data source: %s", cfg.DataSource)
	}
}
