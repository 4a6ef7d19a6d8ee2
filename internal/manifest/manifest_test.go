package manifest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shelfproof/stocksheet/internal/row"
)

func TestWriteAndRead(t *testing.T) {
	rows := []row.Row{
		{
			Path:         "/photos/chair_01.jpg",
			Name:         "chair 01",
			Status:       row.StatusOK,
			SourceWidth:  400,
			SourceHeight: 400,
			Captured:     time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			Path:     "/photos/broken.webp",
			Name:     "broken",
			Status:   row.StatusError,
			ErrorMsg: "unreadable image",
		},
	}

	path := filepath.Join(t.TempDir(), "rows.parquet")
	if err := Write(rows, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	ok := records[0]
	if ok.Path != "/photos/chair_01.jpg" || ok.Name != "chair 01" {
		t.Errorf("Unexpected first record: %+v", ok)
	}
	if ok.Status != "ok" || ok.Error != "" {
		t.Errorf("Expected clean ok record, got %+v", ok)
	}
	if ok.Width != 400 || ok.Height != 400 {
		t.Errorf("Expected 400x400, got %dx%d", ok.Width, ok.Height)
	}
	if ok.Captured != "2024-06-01 10:30:00" {
		t.Errorf("Unexpected captured value: %q", ok.Captured)
	}

	bad := records[1]
	if bad.Status != "error" || bad.Error != "unreadable image" {
		t.Errorf("Unexpected error record: %+v", bad)
	}
	if bad.Captured != "" {
		t.Errorf("Error record should have no captured value, got %q", bad.Captured)
	}
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	if err := Write(nil, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestWriteUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing_dir", "rows.parquet")
	if err := Write(nil, path); err == nil {
		t.Error("Expected error for unwritable manifest path")
	}
}
