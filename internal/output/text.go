// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
)

// WriteTSV prints the header row and one row per allele. Clusters are
// numbered 1.. in emission order.
func WriteTSV(w io.Writer, r Report) error {
	names := r.Names()
	if _, err := fmt.Fprintln(w, joinTSV([]string{TSVHeader}, names)); err != nil {
		return err
	}
	for _, l := range r.Loci() {
		lead := []string{strconv.Itoa(l.Number), strconv.Itoa(len(l.Alleles))}
		for _, a := range l.Alleles {
			row := joinTSV(lead, []string{a.Pattern, a.Seq}, CountCells(a, len(names), r.Metric))
			if _, err := fmt.Fprintln(w, row); err != nil {
				return err
			}
		}
	}
	return nil
}
