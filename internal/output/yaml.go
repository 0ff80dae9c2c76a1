package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes the v1 report as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPIReport(r)); err != nil {
		return err
	}
	return enc.Close()
}
