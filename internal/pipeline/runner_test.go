package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shelfproof/stocksheet/internal/config"
	"github.com/shelfproof/stocksheet/internal/manifest"
	"github.com/shelfproof/stocksheet/internal/row"
	"github.com/xuri/excelize/v2"
)

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

// auditFixture builds the canonical mixed input folder: two good images, one
// zero-byte file with a supported extension, one ignored text file.
func auditFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "chair_01.jpg"), 400, 400)
	writeTestImage(t, filepath.Join(dir, "table-02.png"), 800, 600)
	if err := os.WriteFile(filepath.Join(dir, "broken.webp"), nil, 0644); err != nil {
		t.Fatalf("Failed to write broken file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatalf("Failed to write notes file: %v", err)
	}
	return dir
}

func TestRunMixedFolder(t *testing.T) {
	input := auditFixture(t)
	output := filepath.Join(t.TempDir(), "audit.xlsx")

	stats, err := Run(config.Options{
		Input:     input,
		Output:    output,
		ThumbSize: 160,
		Workers:   1,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Collected != 3 || stats.Succeeded != 2 || stats.Failed != 1 {
		t.Errorf("Expected stats 3/2/1, got %d/%d/%d", stats.Collected, stats.Succeeded, stats.Failed)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected header + 3 data rows, got %d", len(rows))
	}

	// Lexical collection order: broken.webp, chair_01.jpg, table-02.png.
	checks := []struct {
		cell     string
		expected string
	}{
		{"A2", "ERROR: unreadable image"},
		{"B2", "broken"},
		{"B3", "chair 01"},
		{"C3", "400x400"},
		{"B4", "table 02"},
		{"C4", "800x600"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue("Inventory", c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", c.cell, err)
		}
		if got != c.expected {
			t.Errorf("Cell %s = %q, want %q", c.cell, got, c.expected)
		}
	}

	for _, cell := range []string{"A3", "A4"} {
		pics, err := f.GetPictures("Inventory", cell)
		if err != nil {
			t.Fatalf("GetPictures(%s) failed: %v", cell, err)
		}
		if len(pics) != 1 {
			t.Errorf("Expected a thumbnail at %s, got %d pictures", cell, len(pics))
		}
	}
}

func TestRunEmptyFolder(t *testing.T) {
	output := filepath.Join(t.TempDir(), "audit.xlsx")

	stats, err := Run(config.Options{
		Input:     t.TempDir(),
		Output:    output,
		ThumbSize: 160,
		Workers:   1,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Collected != 0 {
		t.Errorf("Expected 0 collected, got %d", stats.Collected)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("Zero-file run should still produce a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header-only workbook, got %d rows", len(rows))
	}
}

func TestRunMissingInputIsFatal(t *testing.T) {
	_, err := Run(config.Options{
		Input:     filepath.Join(t.TempDir(), "nope"),
		Output:    filepath.Join(t.TempDir(), "audit.xlsx"),
		ThumbSize: 160,
		Workers:   1,
	})
	if err == nil {
		t.Error("Expected fatal error for missing input directory")
	}
}

func TestRunWorkersPreserveOrder(t *testing.T) {
	input := t.TempDir()
	var expected []string
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("item_%02d.png", i)
		writeTestImage(t, filepath.Join(input, name), 100+i, 80)
		expected = append(expected, fmt.Sprintf("item %02d", i))
	}

	output := filepath.Join(t.TempDir(), "audit.xlsx")
	stats, err := Run(config.Options{
		Input:     input,
		Output:    output,
		ThumbSize: 64,
		Workers:   4,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Succeeded != 12 {
		t.Fatalf("Expected 12 succeeded, got %d", stats.Succeeded)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	for i, want := range expected {
		cell, _ := excelize.CoordinatesToCellName(2, i+2)
		got, err := f.GetCellValue("Inventory", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("Row %d name = %q, want %q (parallel decode must not reorder rows)", i+2, got, want)
		}
	}
}

func TestRunWritesManifest(t *testing.T) {
	input := auditFixture(t)
	outDir := t.TempDir()
	manifestPath := filepath.Join(outDir, "rows.parquet")

	_, err := Run(config.Options{
		Input:     input,
		Output:    filepath.Join(outDir, "audit.xlsx"),
		ThumbSize: 160,
		Workers:   1,
		Manifest:  manifestPath,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	records, err := manifest.Read(manifestPath)
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 manifest records, got %d", len(records))
	}
	if records[0].Status != string(row.StatusError) {
		t.Errorf("Expected first record (broken.webp) marked error, got %q", records[0].Status)
	}
	if records[1].Name != "chair 01" || records[2].Name != "table 02" {
		t.Errorf("Manifest order should match collection order, got %q then %q", records[1].Name, records[2].Name)
	}
}

func TestTally(t *testing.T) {
	rows := []row.Row{
		{Status: row.StatusOK},
		{Status: row.StatusError},
		{Status: row.StatusOK},
	}
	stats := Tally(rows)
	if stats.Collected != 3 || stats.Succeeded != 2 || stats.Failed != 1 {
		t.Errorf("Expected 3/2/1, got %d/%d/%d", stats.Collected, stats.Succeeded, stats.Failed)
	}
}
