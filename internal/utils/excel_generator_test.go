package utils

import (
	"bytes"
	"testing"

	"structura/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestReadingsToExcel(t *testing.T) {
	thresholds := models.Thresholds{Strain: 1000, Vibration: 500, Displacement: 100, Acceleration: 200}
	readings := []models.Reading{
		{ID: "3", Timestamp: "2026-08-26 12:30:02", Strain: 1200, Vibration: 3, Displacement: 4, Acceleration: 5},
		{ID: "2", Timestamp: "2026-08-26 12:30:01", Strain: 20, Vibration: 30, Displacement: 40, Acceleration: 50},
		{ID: "1", Timestamp: "2026-08-26 12:30:00", Strain: 2, Vibration: 0, Displacement: 0, Acceleration: 0},
	}

	data, err := ReadingsToExcel(readings, thresholds)
	if err != nil {
		t.Fatalf("ReadingsToExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open document: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Readings")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("rows=%d want 4 (header + 3 data)", len(rows))
	}

	wantHeader := []string{"Timestamp", "Strain", "Vibration", "Displacement", "Acceleration", "ID"}
	if len(rows[0]) != len(wantHeader) {
		t.Fatalf("header columns=%d want %d", len(rows[0]), len(wantHeader))
	}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Fatalf("header[%d]=%q want %q", i, rows[0][i], want)
		}
	}

	// Порядок строк — как в переданном срезе (новые сверху)
	if rows[1][5] != "3" || rows[3][5] != "1" {
		t.Fatalf("row order broken: first ID=%q last ID=%q", rows[1][5], rows[3][5])
	}
	if rows[2][0] != "2026-08-26 12:30:01" {
		t.Fatalf("timestamp cell=%q", rows[2][0])
	}
}

func TestReadingsToExcel_Empty(t *testing.T) {
	data, err := ReadingsToExcel(nil, models.Thresholds{})
	if err != nil {
		t.Fatalf("ReadingsToExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open document: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Readings")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows=%d want 1 (header only)", len(rows))
	}
}
