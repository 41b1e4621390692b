package storage

import (
	"context"
	"path/filepath"
	"testing"

	"droughtwatch/internal/core"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "drought.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoadRecordsEmpty(t *testing.T) {
	repo := openTestRepo(t)

	records, err := repo.LoadRecords(context.Background())
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty table, got %d records", len(records))
	}
}

func TestReplaceAndLoadRecords(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	want := []core.Record{
		{Year: 1981, Areas: [core.NumCategories]float64{12, 6, 4, 15, 9, 2}, MapImageURL: "https://example.com/1981.png"},
		{Year: 1984, Areas: [core.NumCategories]float64{10, 5, 5, 20, 8, 2}},
	}
	if err := repo.ReplaceRecords(ctx, want); err != nil {
		t.Fatalf("replace records: %v", err)
	}

	got, err := repo.LoadRecords(ctx)
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Year != 1981 || got[1].Year != 1984 {
		t.Fatalf("expected year order 1981,1984; got %d,%d", got[0].Year, got[1].Year)
	}
	if got[0].Areas != want[0].Areas {
		t.Fatalf("area mismatch for 1981: got %v", got[0].Areas)
	}
	if got[0].MapImageURL != "https://example.com/1981.png" {
		t.Fatalf("unexpected image url: %s", got[0].MapImageURL)
	}
	if got[1].MapImageURL != "" {
		t.Fatalf("expected empty image url, got %s", got[1].MapImageURL)
	}
}

func TestReplaceRecordsOverwrites(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := []core.Record{
		{Year: 1990, Areas: [core.NumCategories]float64{1, 2, 3, 4, 5, 6}},
		{Year: 1991, Areas: [core.NumCategories]float64{6, 5, 4, 3, 2, 1}},
	}
	if err := repo.ReplaceRecords(ctx, first); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	second := []core.Record{
		{Year: 2000, Areas: [core.NumCategories]float64{7, 7, 7, 7, 7, 7}},
	}
	if err := repo.ReplaceRecords(ctx, second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := repo.LoadRecords(ctx)
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if len(got) != 1 || got[0].Year != 2000 {
		t.Fatalf("expected only year 2000 after replace, got %v", got)
	}
}
