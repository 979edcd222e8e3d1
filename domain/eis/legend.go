package eis

import "regexp"

// channelSuffix matches the per-channel replicate token, e.g. "C01" in
// "17153_trial_C01".
var channelSuffix = regexp.MustCompile(`^C[0-9]+$`)

// LegendName derives the display group for a cell. If the segment after the
// last underscore is a channel token ("C" plus digits), it is stripped so all
// replicates of one trial share a legend entry; otherwise the full cell name
// is the legend name.
func LegendName(cellName string) string {
	idx := -1
	for i := len(cellName) - 1; i >= 0; i-- {
		if cellName[i] == '_' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cellName
	}
	if channelSuffix.MatchString(cellName[idx+1:]) {
		return cellName[:idx]
	}
	return cellName
}
