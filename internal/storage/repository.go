package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"droughtwatch/internal/core"

	_ "modernc.org/sqlite"
)

// Repository reads and writes the drought_data table. The dashboard only
// reads it; the import binary owns the write path.
type Repository struct {
	db *sql.DB
}

func Open(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadRecords reads every yearly record in year order.
func (r *Repository) LoadRecords(ctx context.Context) ([]core.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT year, extreme_drought, severe_drought, moderate_drought,
		       near_normal, moderately_wet, extremely_wet, map_image_url
		FROM drought_data
		ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("query drought_data: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var rec core.Record
		err := rows.Scan(
			&rec.Year,
			&rec.Areas[core.ExtremeDrought],
			&rec.Areas[core.SevereDrought],
			&rec.Areas[core.ModerateDrought],
			&rec.Areas[core.NearNormal],
			&rec.Areas[core.ModeratelyWet],
			&rec.Areas[core.ExtremelyWet],
			&rec.MapImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan drought_data row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drought_data rows: %w", err)
	}

	return records, nil
}

// ReplaceRecords swaps the table contents for the given records in one
// transaction. Used by the importer.
func (r *Repository) ReplaceRecords(ctx context.Context, records []core.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM drought_data`); err != nil {
		return fmt.Errorf("clear drought_data: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO drought_data (
			year, extreme_drought, severe_drought, moderate_drought,
			near_normal, moderately_wet, extremely_wet, map_image_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.Year,
			rec.Areas[core.ExtremeDrought],
			rec.Areas[core.SevereDrought],
			rec.Areas[core.ModerateDrought],
			rec.Areas[core.NearNormal],
			rec.Areas[core.ModeratelyWet],
			rec.Areas[core.ExtremelyWet],
			rec.MapImageURL,
		)
		if err != nil {
			return fmt.Errorf("insert year %d: %w", rec.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "Replaced drought records", "count", len(records))
	return nil
}
