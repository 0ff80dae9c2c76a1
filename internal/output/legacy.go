// internal/output/legacy.go
package output

import (
	"fmt"
	"io"
	"strings"

	"radmarkers-core/snp"
)

// errWriter keeps the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

// WriteLegacy prints the nested report: one "<n> tags" block per bucket, one
// pattern line per joint pattern (locus count, " M" when mirrored), then each
// locus and its alleles. SNP and quality rows follow when enabled.
func WriteLegacy(w io.Writer, r Report) error {
	if r.Summary == nil {
		return nil
	}
	n := len(r.Individuals)
	ew := &errWriter{w: w}
	ew.printf("#\t%s\n", strings.Join(r.Names(), "\t"))

	number := 0
	for _, b := range r.Summary.Buckets {
		ew.printf("\n%d tags\n", b.TagCount)
		for _, g := range b.Groups {
			mirror := ""
			if g.Mirrored {
				mirror = " M"
			}
			ew.printf("%s\t%d%s\n", g.Joint, len(g.Loci), mirror)
			for _, l := range g.Loci {
				number++
				ew.printf("Cluster %d (id %d)\n", number, l.ID)
				for _, a := range l.Alleles {
					ew.printf("\t%s\t%s\t%s\n", a.Pattern, a.Seq, strings.Join(CountCells(a, n, r.Metric), "\t"))
					if r.Qualities {
						ew.printf("\tqual\t|%s|\n", snp.Glyphs(BestQuality(a, n), r.QualityOffset))
					}
				}
				if r.SNPs {
					for _, s := range Sites(l) {
						ew.printf("\tSNP\t%d\t%s\n", s.Pos+1, s.Bases)
					}
				}
			}
		}
	}
	return ew.err
}
