package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"droughtwatch/internal/config"
	"droughtwatch/internal/dataset"
	applog "droughtwatch/internal/log"
	"droughtwatch/internal/storage"
)

// droughtwatch-import seeds the SQLite database from a CSV file so the
// server can run with DATA_SOURCE=sqlite. The import replaces all rows.
func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: applog.ComponentImporter})
	applog.SetDefault(logger)

	cfg := config.Load()
	csvPath := flag.String("csv", cfg.CSVPath, "CSV file to import")
	dbPath := flag.String("db", cfg.SQLiteDBPath, "SQLite database to write")
	flag.Parse()

	ds, err := dataset.LoadCSV(*csvPath)
	if err != nil {
		logger.Error("CSV load failed", applog.FieldError, err, "csv_path", *csvPath)
		os.Exit(1)
	}
	logger.Info("CSV loaded",
		"csv_path", *csvPath,
		"years", ds.Len(),
		"first_year", ds.FirstYear(),
		"last_year", ds.LastYear())

	repo, err := storage.Open(*dbPath)
	if err != nil {
		logger.Error("Database open failed", applog.FieldError, err, "db_path", *dbPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := repo.ReplaceRecords(ctx, ds.Records()); err != nil {
		logger.Error("Import failed", applog.FieldError, err, "db_path", *dbPath)
		os.Exit(1)
	}

	logger.Info("Import complete", "db_path", *dbPath, "years", ds.Len())
}
