package dataset

import (
	"context"
	"fmt"

	"droughtwatch/internal/core"
	"droughtwatch/internal/storage"
)

// LoadSQLite reads the yearly table from the drought_data SQLite database.
func LoadSQLite(ctx context.Context, dbPath string) (*core.Dataset, error) {
	repo, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite source: %w", err)
	}
	defer repo.Close()

	records, err := repo.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sqlite records: %w", err)
	}
	return core.NewDataset(records)
}
