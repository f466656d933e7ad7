package report

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"toplist/internal/rank"
	"toplist/internal/table"
	"toplist/internal/traits"
)

// Sheet layout: the trait's display name sits in the first row, the first
// breed label two rows below it. Each breed block is a label row, the table
// header directly underneath, then the data rows, then one blank row before
// the next label.
const (
	headingRow    = 1
	firstLabelRow = 3
)

// Write renders the aggregate into an xlsx workbook, one sheet per trait in
// trait order, sheet name = trait abbreviation. Breeds without data for a
// trait are skipped and consume no layout space. The workbook is staged next
// to the destination and renamed into place on success, so a failed save
// never leaves a partial file.
func Write(agg *rank.Aggregate, names *traits.NameMap, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, trait := range agg.Traits {
		if i == 0 {
			// Reuse the default sheet excelize creates.
			if err := f.SetSheetName("Sheet1", trait); err != nil {
				return fmt.Errorf("name sheet %s: %w", trait, err)
			}
		} else {
			if _, err := f.NewSheet(trait); err != nil {
				return fmt.Errorf("create sheet %s: %w", trait, err)
			}
		}
		if err := writeSheet(f, trait, agg, names); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	// SaveAs rejects extensions other than xlsx/xlsm/xltx/xltm, so the staging
	// file must keep an xlsx suffix.
	tmp := path + ".tmp.xlsx"
	if err := f.SaveAs(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	slog.Info("workbook written",
		slog.String("path", path),
		slog.Int("sheets", len(agg.Traits)))
	return nil
}

// writeSheet lays out one trait's sheet: heading, then a stacked block per
// breed that has data for this trait.
func writeSheet(f *excelize.File, trait string, agg *rank.Aggregate, names *traits.NameMap) error {
	if err := setCell(f, trait, 1, headingRow, names.Lookup(trait)); err != nil {
		return err
	}

	row := firstLabelRow
	for _, breed := range agg.Breeds {
		res := agg.Result(breed, trait)
		if !res.Present {
			continue
		}
		if err := setCell(f, trait, 1, row, breed); err != nil {
			return err
		}
		if err := writeBlock(f, trait, row+1, res.Table); err != nil {
			return err
		}
		row += len(res.Table.Rows) + 3
	}
	return nil
}

// writeBlock writes a result table (header + rows) starting at the given row.
// The rank and trait columns are written as numbers when they parse, so the
// workbook stays sortable.
func writeBlock(f *excelize.File, sheet string, start int, t rank.Table) error {
	for c, name := range t.Columns {
		if err := setCell(f, sheet, c+1, start, name); err != nil {
			return err
		}
	}
	traitCol := len(t.Columns) - 1
	for r, data := range t.Rows {
		for c, v := range data {
			var val any = v
			if c == 0 || c == traitCol {
				if n, ok := table.Numeric(v); ok {
					val = n
				}
			}
			if err := setCell(f, sheet, c+1, start+1+r, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d) on %s: %w", col, row, sheet, err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("set %s on %s: %w", cell, sheet, err)
	}
	return nil
}
