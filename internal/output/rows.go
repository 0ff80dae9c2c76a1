// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"radmarkers-core/segregation"
	"radmarkers-core/snp"
	"radmarkers-core/tags"
)

// CountCells returns one cell per individual: the selected count, or NA.
func CountCells(a segregation.Allele, n int, m tags.Metric) []string {
	out := make([]string, n)
	for i := range out {
		o, ok := a.Obs[i]
		if !ok {
			out[i] = NA
			continue
		}
		out[i] = strconv.Itoa(m.Count(o))
	}
	return out
}

// Counts is CountCells with nil in place of NA.
func Counts(a segregation.Allele, n int, m tags.Metric) []*int {
	out := make([]*int, n)
	for i := range out {
		if o, ok := a.Obs[i]; ok {
			c := m.Count(o)
			out[i] = &c
		}
	}
	return out
}

// BestQuality merges the quality strings of every individual that observed a.
func BestQuality(a segregation.Allele, n int) string {
	var qs []string
	for i := 0; i < n; i++ {
		if o, ok := a.Obs[i]; ok {
			qs = append(qs, o.Quality)
		}
	}
	return snp.BestQuality(qs)
}

// Sites returns the variable positions across the alleles of l.
func Sites(l segregation.Locus) []snp.Site {
	seqs := make([]string, len(l.Alleles))
	for i, a := range l.Alleles {
		seqs[i] = a.Seq
	}
	return snp.Sites(seqs)
}

func joinTSV(cells ...[]string) string {
	var all []string
	for _, c := range cells {
		all = append(all, c...)
	}
	return strings.Join(all, "\t")
}
