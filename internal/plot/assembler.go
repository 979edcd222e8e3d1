// Package plot resolves a query's identifier set against the cell index and
// produces the chart series and long-format table for one view.
package plot

import (
	"sort"

	"eisview/domain/eis"
)

// Assemble produces one PlotSeries per matched cell and the combined
// long-format table. Identifiers are visited in ascending numeric order and
// cells matched by the same identifier in name order, so legend ordering is
// deterministic. A cell matches when its leading underscore-delimited token
// equals the identifier exactly, which lets one id pull in every
// channel-suffixed replicate. Point order mirrors the source record.
//
// An empty identifier set, or a set matching nothing, yields empty results;
// the rendering layer shows a "no data" annotation for that, it is not an
// error.
func Assemble(ids eis.IdentifierSet, index eis.CellIndex) ([]eis.PlotSeries, eis.LongTable) {
	var series []eis.PlotSeries
	var long eis.LongTable

	for _, id := range ids.SortedNumeric() {
		for _, record := range matchLeadingID(id, index) {
			series = append(series, eis.PlotSeries{
				LegendGroup: eis.LegendName(record.Name),
				CellName:    record.Name,
				Points:      record.Points,
			})
			for _, p := range record.Points {
				long.Rows = append(long.Rows, eis.LongRow{
					CellName:  record.Name,
					ReZOhm:    p.ReZOhm,
					NegImZOhm: p.NegImZOhm,
				})
			}
		}
	}

	return series, long
}

// matchLeadingID returns the records whose leading id equals id, sorted by
// cell name.
func matchLeadingID(id string, index eis.CellIndex) []*eis.CellRecord {
	var matched []*eis.CellRecord
	for _, record := range index {
		if record.LeadingID == id {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	return matched
}
