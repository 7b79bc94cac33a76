package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/weiihann/ycsbplot/results"
)

// SheetName is the worksheet holding the exported table.
const SheetName = results.Benchmark

// WriteXLSX stores table as a single-sheet workbook at path.
func WriteXLSX(path string, table results.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := results.Columns()
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range table {
		row := i + 2

		cells := []struct {
			col int
			set func(cell string) error
		}{
			{1, func(cell string) error { return f.SetCellStr(SheetName, cell, r.X) }},
			{2, func(cell string) error { return f.SetCellFloat(SheetName, cell, r.Y, -1, 64) }},
			{3, func(cell string) error { return f.SetCellStr(SheetName, cell, r.Label) }},
			{4, func(cell string) error { return f.SetCellStr(SheetName, cell, r.Benchmark) }},
		}

		for _, c := range cells {
			cell, err := excelize.CoordinatesToCellName(c.col, row)
			if err != nil {
				return err
			}

			if err := c.set(cell); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "C", "C", 16); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// ReadXLSX loads a table written by WriteXLSX.
func ReadXLSX(path string) (results.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("read sheet %s: missing header", SheetName)
	}

	return fromRecords(rows[1:])
}
