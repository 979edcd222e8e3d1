package eis

import (
	"sort"
	"strconv"
	"strings"
)

// Required column headers in the instrument export. A file that lacks either
// one does not produce a CellRecord.
const (
	ColumnReZ    = "Re(Z)/Ohm"
	ColumnNegImZ = "-Im(Z)/Ohm"
)

// Value-kind labels used for long-format tagging and wide-format column names.
const (
	ValueKindReZ    = "re_z_ohm"
	ValueKindNegImZ = "neg_im_z_ohm"
)

// MeasurementPoint is one impedance sample from a frequency sweep. Points keep
// the row order of the source file; a sweep is already time-ordered.
type MeasurementPoint struct {
	ReZOhm    float64 `json:"re_z_ohm"`
	NegImZOhm float64 `json:"neg_im_z_ohm"`
}

// CellRecord holds the parsed measurements for one cell. Name is the source
// filename stem; LeadingID is the token before the first underscore and is the
// primary query key. Records are built once at startup and never mutated.
type CellRecord struct {
	Name      string             `json:"name"`
	LeadingID string             `json:"leading_id"`
	Points    []MeasurementPoint `json:"points"`
}

// NewCellRecord derives identity fields from the filename stem.
func NewCellRecord(name string, points []MeasurementPoint) *CellRecord {
	return &CellRecord{
		Name:      name,
		LeadingID: LeadingID(name),
		Points:    points,
	}
}

// LeadingID returns the token before the first underscore of a cell name. A
// name without underscores is its own leading id.
func LeadingID(name string) string {
	if idx := strings.Index(name, "_"); idx >= 0 {
		return name[:idx]
	}
	return name
}

// CellIndex maps cell name to its record. Built once at startup, read-only
// afterward, shared across requests without copying or locking.
type CellIndex map[string]*CellRecord

// Names returns the indexed cell names, unsorted.
func (ci CellIndex) Names() []string {
	names := make([]string, 0, len(ci))
	for name := range ci {
		names = append(names, name)
	}
	return names
}

// IdentifierSet is the set of leading ids selected by one query.
type IdentifierSet map[string]struct{}

// Add inserts an identifier.
func (s IdentifierSet) Add(id string) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set.
func (s IdentifierSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// SortedNumeric returns the identifiers in ascending numeric order. Ids that
// do not parse as integers sort after numeric ones, in string order.
func (s IdentifierSet) SortedNumeric() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sortIdentifiers(ids)
	return ids
}

func sortIdentifiers(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		switch {
		case errA == nil && errB == nil:
			if na != nb {
				return na < nb
			}
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return a < b
		}
	})
}

// PlotSeries is one renderable Nyquist trace. LegendGroup may be shared by
// several channel-replicate cells; CellName is unique.
type PlotSeries struct {
	LegendGroup string             `json:"legend_group"`
	CellName    string             `json:"cell_name"`
	Points      []MeasurementPoint `json:"points"`
}

// LongRow is one long-format row: a measurement tagged with its source cell.
type LongRow struct {
	CellName  string  `json:"cell_name"`
	ReZOhm    float64 `json:"re_z_ohm"`
	NegImZOhm float64 `json:"neg_im_z_ohm"`
}

// LongTable is the concatenation of all plotted records' points, in series
// order. It is transient view state, consumed by at most one export.
type LongTable struct {
	Rows []LongRow `json:"rows"`
}

// Empty reports whether the table has no rows.
func (t LongTable) Empty() bool {
	return len(t.Rows) == 0
}

// WideTable is the export layout: one row per sequential measurement index,
// one column per (value kind, cell) pair. A nil cell is absent, not zero —
// shorter series leave their tail unpopulated.
type WideTable struct {
	Columns []string
	Rows    [][]*float64
}
