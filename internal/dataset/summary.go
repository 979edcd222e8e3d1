package dataset

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"eisview/domain/eis"
)

// CellSummary holds per-cell descriptive statistics for the status surface.
type CellSummary struct {
	Name        string  `json:"name"`
	LegendGroup string  `json:"legend_group"`
	Points      int     `json:"points"`
	ReZMin      float64 `json:"re_z_min"`
	ReZMax      float64 `json:"re_z_max"`
	ReZMean     float64 `json:"re_z_mean"`
	NegImZMin   float64 `json:"neg_im_z_min"`
	NegImZMax   float64 `json:"neg_im_z_max"`
	NegImZMean  float64 `json:"neg_im_z_mean"`
}

// Summarize computes the summary for one record. Records always carry at
// least one point, so the min/max/mean are defined.
func Summarize(record *eis.CellRecord) CellSummary {
	re := make([]float64, len(record.Points))
	im := make([]float64, len(record.Points))
	for i, p := range record.Points {
		re[i] = p.ReZOhm
		im[i] = p.NegImZOhm
	}

	reMean, _ := stats.Mean(re)
	imMean, _ := stats.Mean(im)

	return CellSummary{
		Name:        record.Name,
		LegendGroup: eis.LegendName(record.Name),
		Points:      len(record.Points),
		ReZMin:      floats.Min(re),
		ReZMax:      floats.Max(re),
		ReZMean:     reMean,
		NegImZMin:   floats.Min(im),
		NegImZMax:   floats.Max(im),
		NegImZMean:  imMean,
	}
}

// Summaries returns one summary per indexed cell, sorted by cell name.
func (idx *Index) Summaries() []CellSummary {
	summaries := make([]CellSummary, 0, len(idx.Cells))
	for _, record := range idx.Cells {
		summaries = append(summaries, Summarize(record))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}
