// internal/output/json.go
package output

import (
	"io"

	"radmarkers/internal/jsonutil"
	"radmarkers/pkg/api"
)

// ToAPIReport converts a Report to the stable wire schema (v1).
func ToAPIReport(r Report) api.ReportV1 {
	n := len(r.Individuals)
	v := api.ReportV1{
		RunID:       r.RunID,
		Metric:      r.Metric.String(),
		Individuals: r.Names(),
		Loci:        []api.LocusV1{},
	}
	for _, l := range r.Loci() {
		lv := api.LocusV1{
			Number:       l.Number,
			ClusterID:    int(l.ID),
			TagCount:     l.Bucket,
			JointPattern: l.Joint,
			Mirrored:     l.Mirrored,
			Alleles:      make([]api.AlleleV1, 0, len(l.Alleles)),
		}
		for _, a := range l.Alleles {
			av := api.AlleleV1{Sequence: a.Seq, Pattern: a.Pattern, Counts: Counts(a, n, r.Metric)}
			if r.Qualities {
				av.Quality = BestQuality(a, n)
			}
			lv.Alleles = append(lv.Alleles, av)
		}
		if r.SNPs {
			for _, s := range Sites(l.Locus) {
				lv.SNPs = append(lv.SNPs, api.SNPV1{Position: s.Pos + 1, Bases: string(s.Bases)})
			}
		}
		v.Loci = append(v.Loci, lv)
	}
	return v
}

// WriteJSON writes the v1 report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	return jsonutil.EncodePretty(w, ToAPIReport(r))
}
