package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"eisview/domain/eis"
	"eisview/internal/errors"
)

const sheetName = "Sheet1"

// WriteXLSX writes the wide table as a single-sheet workbook with the same
// column order and absent-cell semantics as the CSV sink: nil cells are
// simply never set.
func WriteXLSX(w io.Writer, table eis.WideTable) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range table.Columns {
		cellRef, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrap(err, "failed to address header cell")
		}
		if err := f.SetCellStr(sheetName, cellRef, name); err != nil {
			return errors.Wrap(err, "failed to write header cell")
		}
	}

	for rowIdx, row := range table.Rows {
		for col, cell := range row {
			if cell == nil {
				continue
			}
			cellRef, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return errors.Wrap(err, "failed to address data cell")
			}
			if err := f.SetCellFloat(sheetName, cellRef, *cell, -1, 64); err != nil {
				return errors.Wrap(err, "failed to write data cell")
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}
