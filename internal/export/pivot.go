// Package export transforms the plotted long-format table into the wide
// spreadsheet layout and writes it as CSV or XLSX.
package export

import (
	"fmt"
	"sort"
	"time"

	"eisview/domain/eis"
)

// Pivot transforms a long table into the wide export layout. Within each
// source cell, rows get a zero-based sequential index in their existing order
// (sweeps are already time-ordered, so the index is the row key). Each
// (value kind, cell) pair becomes a column named "{valueKind}_{cellName}";
// columns are sorted lexicographically by the full composite name so output
// is deterministic regardless of plotting order. The row count equals the
// longest series' length and shorter series leave nil cells, never zeros.
//
// An empty input yields a zero-value WideTable; callers must not produce a
// download from that.
func Pivot(table eis.LongTable) eis.WideTable {
	if table.Empty() {
		return eis.WideTable{}
	}

	// Group rows per cell, preserving row order within each group.
	groups := make(map[string][]eis.LongRow)
	for _, row := range table.Rows {
		groups[row.CellName] = append(groups[row.CellName], row)
	}

	columns := make([]string, 0, 2*len(groups))
	maxLen := 0
	for cellName, rows := range groups {
		columns = append(columns,
			eis.ValueKindReZ+"_"+cellName,
			eis.ValueKindNegImZ+"_"+cellName)
		if len(rows) > maxLen {
			maxLen = len(rows)
		}
	}
	sort.Strings(columns)

	colIdx := make(map[string]int, len(columns))
	for i, name := range columns {
		colIdx[name] = i
	}

	rows := make([][]*float64, maxLen)
	for i := range rows {
		rows[i] = make([]*float64, len(columns))
	}
	for cellName, group := range groups {
		reCol := colIdx[eis.ValueKindReZ+"_"+cellName]
		imCol := colIdx[eis.ValueKindNegImZ+"_"+cellName]
		for i, row := range group {
			re, im := row.ReZOhm, row.NegImZOhm
			rows[i][reCol] = &re
			rows[i][imCol] = &im
		}
	}

	return eis.WideTable{Columns: columns, Rows: rows}
}

const filenameTimeLayout = "20060102_150405"

// Filename returns the timestamped CSV artifact name for an export generated
// at the given instant. The timestamp keeps repeated exports from colliding.
func Filename(now time.Time) string {
	return fmt.Sprintf("nyquist_data_wide_%s.csv", now.Format(filenameTimeLayout))
}

// XLSXFilename is the workbook counterpart of Filename.
func XLSXFilename(now time.Time) string {
	return fmt.Sprintf("nyquist_data_wide_%s.xlsx", now.Format(filenameTimeLayout))
}
