package core

import (
	"errors"
	"testing"
)

func TestNewDatasetSortsAndIndexes(t *testing.T) {
	ds, err := NewDataset([]Record{rec1984(), rec1981()})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	years := ds.Years()
	if len(years) != 2 || years[0] != 1981 || years[1] != 1984 {
		t.Fatalf("expected sorted years [1981 1984], got %v", years)
	}
	if ds.FirstYear() != 1981 || ds.LastYear() != 1984 {
		t.Fatalf("first/last year wrong: %d %d", ds.FirstYear(), ds.LastYear())
	}
	r, err := ds.Lookup(1984)
	if err != nil {
		t.Fatalf("lookup 1984: %v", err)
	}
	if r.Areas[NearNormal] != 20 {
		t.Fatalf("lookup returned wrong record: %+v", r)
	}
}

func TestLookupMissingYear(t *testing.T) {
	ds, err := NewDataset([]Record{rec1984(), rec1981()})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	_, err = ds.Lookup(1899)
	if !errors.Is(err, ErrYearNotFound) {
		t.Fatalf("expected ErrYearNotFound, got %v", err)
	}
	if ds.Contains(1899) {
		t.Fatalf("Contains(1899) should be false")
	}
}

func TestNewDatasetRejectsDuplicateYear(t *testing.T) {
	_, err := NewDataset([]Record{rec1984(), rec1984()})
	if !errors.Is(err, ErrDuplicateYear) {
		t.Fatalf("expected ErrDuplicateYear, got %v", err)
	}
}

func TestNewDatasetRejectsBadRecords(t *testing.T) {
	if _, err := NewDataset(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
	bad := rec1984()
	bad.Areas[ModeratelyWet] = -1
	if _, err := NewDataset([]Record{bad}); !errors.Is(err, ErrNegativeArea) {
		t.Fatalf("expected ErrNegativeArea, got %v", err)
	}
	if _, err := NewDataset([]Record{{Year: 0}}); !errors.Is(err, ErrInvalidYear) {
		t.Fatalf("expected ErrInvalidYear, got %v", err)
	}
}

func TestDatasetCopiesAreIndependent(t *testing.T) {
	ds, err := NewDataset([]Record{rec1981(), rec1984()})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	years := ds.Years()
	years[0] = 1
	if ds.Years()[0] != 1981 {
		t.Fatalf("Years() must return a copy")
	}
	recs := ds.Records()
	recs[0].Areas[ExtremeDrought] = 999
	if r, _ := ds.Lookup(1981); r.Areas[ExtremeDrought] == 999 {
		t.Fatalf("Records() must return a copy")
	}
}

func TestCategoryByColumn(t *testing.T) {
	for _, c := range Categories() {
		got, ok := CategoryByColumn(c.Column())
		if !ok || got != c {
			t.Fatalf("round trip failed for %s", c)
		}
	}
	if _, ok := CategoryByColumn("Bogus"); ok {
		t.Fatalf("unknown column must not resolve")
	}
}
