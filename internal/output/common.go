package output

// Report formats.
const (
	FormatTSV    = "tsv"
	FormatLegacy = "legacy"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl" // one locus per line
	FormatYAML   = "yaml"
)

// TSVHeader is the fixed prefix of the TSV header row; individual names
// follow it, one column each.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "ClusterID\tClusterTags\tSegPattern\tTag"

// NA marks an individual without an observation.
const NA = "NA"
