package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"droughtwatch/internal/core"
)

const sampleCSV = `year,Extreme_Drought,Severe_Drought,Moderate_Drought,Near_Normal,Moderately_Wet,Extremely_Wet,Map Images Left
1984,10,5,5,20,8,2,https://example.com/1984.png
1981,12,6,4,15,9,2,https://example.com/1981.png
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	ds, err := LoadCSV(writeTempCSV(t, sampleCSV))
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", ds.Len())
	}
	years := ds.Years()
	if years[0] != 1981 || years[1] != 1984 {
		t.Fatalf("expected sorted years, got %v", years)
	}
	r, err := ds.Lookup(1984)
	if err != nil {
		t.Fatalf("lookup 1984: %v", err)
	}
	if r.Areas[core.ExtremeDrought] != 10 || r.Areas[core.NearNormal] != 20 {
		t.Fatalf("wrong values: %+v", r.Areas)
	}
	if r.MapImageURL != "https://example.com/1984.png" {
		t.Fatalf("wrong image url: %q", r.MapImageURL)
	}
}

func TestLoadCSVMissingCategoryColumn(t *testing.T) {
	noWet := strings.ReplaceAll(sampleCSV, "Extremely_Wet", "Extremly_Wet")
	_, err := LoadCSV(writeTempCSV(t, noWet))
	if !errors.Is(err, ErrMissingCategory) {
		t.Fatalf("expected ErrMissingCategory, got %v", err)
	}
	if !strings.Contains(err.Error(), "Extremely_Wet") {
		t.Fatalf("error should name the missing column, got %v", err)
	}
}

func TestLoadCSVMissingImageColumnTolerated(t *testing.T) {
	lines := []string{
		"year,Extreme_Drought,Severe_Drought,Moderate_Drought,Near_Normal,Moderately_Wet,Extremely_Wet",
		"1984,10,5,5,20,8,2",
	}
	ds, err := LoadCSV(writeTempCSV(t, strings.Join(lines, "\n")+"\n"))
	if err != nil {
		t.Fatalf("expected ok without image column, got %v", err)
	}
	r, _ := ds.Lookup(1984)
	if r.MapImageURL != "" {
		t.Fatalf("expected empty image url, got %q", r.MapImageURL)
	}
}

func TestLoadCSVBadValue(t *testing.T) {
	bad := strings.ReplaceAll(sampleCSV, "20,8,2", "20,wet,2")
	_, err := LoadCSV(writeTempCSV(t, bad))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "Moderately_Wet") {
		t.Fatalf("error should name the bad column, got %v", err)
	}
}

func TestLoadCSVDuplicateYear(t *testing.T) {
	dup := sampleCSV + "1984,1,1,1,1,1,1,x\n"
	_, err := LoadCSV(writeTempCSV(t, dup))
	if !errors.Is(err, core.ErrDuplicateYear) {
		t.Fatalf("expected ErrDuplicateYear, got %v", err)
	}
}

func TestLoadCSVEmptyValueDefaultsToZero(t *testing.T) {
	blank := strings.ReplaceAll(sampleCSV, "15,9,2", "15,,2")
	ds, err := LoadCSV(writeTempCSV(t, blank))
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	r, _ := ds.Lookup(1981)
	if r.Areas[core.ModeratelyWet] != 0 {
		t.Fatalf("expected blank cell parsed as 0, got %v", r.Areas[core.ModeratelyWet])
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
