// internal/writers/report.go
package writers

import "radmarkers/internal/output"

func init() {
	Register(output.FormatTSV, output.WriteTSV)
	Register(output.FormatLegacy, output.WriteLegacy)
	Register(output.FormatJSON, output.WriteJSON)
	Register(output.FormatYAML, output.WriteYAML)
}
