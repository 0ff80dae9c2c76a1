// internal/writers/jsonl.go
package writers

import (
	"io"

	"radmarkers/internal/jsonlutil"
	"radmarkers/internal/output"
	"radmarkers/pkg/api"
)

// WriteLociJSONL streams each reported locus as one api.LocusV1 line.
func WriteLociJSONL(w io.Writer, r output.Report) error {
	in, done := jsonlutil.Start[api.LocusV1](w, 64, IsBrokenPipe)
	for _, l := range output.ToAPIReport(r).Loci {
		in <- l
	}
	close(in)
	return <-done
}

func init() {
	Register(output.FormatJSONL, WriteLociJSONL)
}
