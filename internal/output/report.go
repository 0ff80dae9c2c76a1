// internal/output/report.go
package output

import (
	"radmarkers-core/segregation"
	"radmarkers-core/tags"
)

// Report is everything a writer needs to render one run.
type Report struct {
	RunID         string
	Individuals   []tags.Individual
	Summary       *segregation.Summary
	Metric        tags.Metric
	SNPs          bool // per-base SNP rows (legacy, json, yaml)
	Qualities     bool // quality glyph rows (legacy) or raw best quality (json, yaml)
	QualityOffset int
}

// Names returns the individual names in pools order.
func (r Report) Names() []string {
	out := make([]string, len(r.Individuals))
	for i, ind := range r.Individuals {
		out[i] = ind.Name
	}
	return out
}

// Numbered is a locus with its 1-based emission number.
type Numbered struct {
	Number int
	Bucket int // tag count
	segregation.Locus
}

// Loci numbers the summary's loci in emission order.
func (r Report) Loci() []Numbered {
	if r.Summary == nil {
		return nil
	}
	var out []Numbered
	for _, l := range r.Summary.Loci() {
		out = append(out, Numbered{Number: len(out) + 1, Bucket: len(l.Alleles), Locus: l})
	}
	return out
}
