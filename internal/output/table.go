package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"radmarkers-core/segregation"
)

// WriteSummaryTable renders one row per tag-count bucket: distinct joint
// patterns, loci, and how many of those patterns are mirrored.
func WriteSummaryTable(w io.Writer, s *segregation.Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Tags", "Patterns", "Loci", "Mirrored")
	for _, b := range s.Buckets {
		loci, mirrored := 0, 0
		for _, g := range b.Groups {
			loci += len(g.Loci)
			if g.Mirrored {
				mirrored++
			}
		}
		if err := table.Append([]string{
			strconv.Itoa(b.TagCount),
			strconv.Itoa(len(b.Groups)),
			strconv.Itoa(loci),
			strconv.Itoa(mirrored),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
