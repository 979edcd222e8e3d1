package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"eisview/domain/eis"
	"eisview/internal/errors"
)

// WriteCSV writes the wide table: a header row of composite column names,
// then one row per measurement index. Absent cells become empty fields. The
// row index itself is not written out.
func WriteCSV(w io.Writer, table eis.WideTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, cell := range row {
			if cell == nil {
				record[i] = ""
				continue
			}
			record[i] = strconv.FormatFloat(*cell, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV output")
}
