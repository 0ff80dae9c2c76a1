package tags

import "strings"

// Contaminant is the adapter motif; any tag containing it is discarded.
const Contaminant = "AGATCGGAAGAGC"

// Filter decides which tag records enter clustering.
type Filter struct {
	Threshold   int    // minimum Metric count; records below are dropped
	Metric      Metric // reads or fragments
	Contaminant string // empty disables the motif check
}

// NewFilter returns a Filter with the fixed contaminant motif.
func NewFilter(threshold int, m Metric) Filter {
	return Filter{Threshold: threshold, Metric: m, Contaminant: Contaminant}
}

type rejection int

const (
	keep rejection = iota
	rejectContaminant
	rejectThreshold
)

func (f Filter) check(r Record) rejection {
	if f.Contaminant != "" && strings.Contains(r.Seq, f.Contaminant) {
		return rejectContaminant
	}
	if f.Metric.Count(r.Obs) < f.Threshold {
		return rejectThreshold
	}
	return keep
}
