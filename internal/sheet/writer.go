// Package sheet writes the inventory workbook: one sheet, a frozen header
// row, one data row per collected image with its thumbnail embedded, and
// empty audit columns for the human pass.
package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shelfproof/stocksheet/internal/row"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Inventory"

// Header labels, in column order. Quantity through Notes are left empty for
// the auditor to fill in.
var headers = []string{"Photo", "Item Name", "Dimensions", "Captured", "Quantity", "SKU", "Condition", "Notes"}

// timestampLayout is the token inserted before the output extension when the
// timestamped option is set.
const timestampLayout = "20060102_150405"

// OutputPath resolves the final workbook path. With timestamped set, a
// generation timestamp is inserted before the extension:
// inventory_audit.xlsx -> inventory_audit_20250102_150405.xlsx.
func OutputPath(path string, timestamped bool, now time.Time) string {
	if !timestamped {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%s%s", stem, now.Format(timestampLayout), ext)
}

// PhotoColWidth returns the Photo column width in Excel character units for
// a given thumbnail pixel size, using Excel's ~7px-per-unit rule plus a
// little padding.
func PhotoColWidth(thumbSize int) float64 {
	return float64(thumbSize)/7.0 + 2
}

// RowHeightPoints returns the data row height in points for a given
// thumbnail pixel size (px * 0.75, floored at 80pt).
func RowHeightPoints(thumbSize int) float64 {
	h := float64(thumbSize) * 0.75
	if h < 80 {
		h = 80
	}
	return h
}

// Write builds the workbook from rows (in order) and saves it to path. The
// file is written to a temp file in the destination directory and renamed
// into place, so a failed run never leaves a half-written workbook behind.
// Any failure here is fatal to the run.
func Write(rows []row.Row, path string, thumbSize int) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return err
	}
	if err := setLayout(f, thumbSize); err != nil {
		return err
	}

	for i, r := range rows {
		if err := writeRow(f, i+2, r, thumbSize); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.Path, err)
		}
	}

	return save(f, path)
}

func writeHeader(f *excelize.File) error {
	for i, label := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	// Keep the header visible while the operator scrolls the rows.
	err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}
	return nil
}

func setLayout(f *excelize.File, thumbSize int) error {
	widths := map[string]float64{
		"A": PhotoColWidth(thumbSize),
		"B": 40,
		"C": 14,
		"D": 20,
		"E": 10,
		"F": 16,
		"G": 14,
		"H": 40,
	}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, r row.Row, thumbSize int) error {
	setString := func(col int, value string) error {
		if value == "" {
			return nil
		}
		cell, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheetName, cell, value)
	}

	if err := setString(2, r.Name); err != nil {
		return err
	}

	if r.Status == row.StatusError {
		return setString(1, "ERROR: "+r.ErrorMsg)
	}

	if err := setString(3, fmt.Sprintf("%dx%d", r.SourceWidth, r.SourceHeight)); err != nil {
		return err
	}
	if !r.Captured.IsZero() {
		if err := setString(4, r.Captured.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
	}

	if err := f.SetRowHeight(sheetName, rowNum, RowHeightPoints(thumbSize)); err != nil {
		return err
	}

	anchor, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.AddPictureFromBytes(sheetName, anchor, &excelize.Picture{
		Extension: ".png",
		File:      r.Thumbnail,
		Format: &excelize.GraphicOptions{
			OffsetX:     2,
			OffsetY:     2,
			Positioning: "oneCell",
		},
	})
}

// save writes the workbook atomically: temp file in the target directory,
// then rename over the destination.
func save(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".stocksheet-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create workbook in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush workbook: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move workbook into place: %w", err)
	}
	return nil
}
