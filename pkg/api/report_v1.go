// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/YAML schema of a run report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	Metric      string    `json:"metric" yaml:"metric"` // "reads" | "fragments"
	Individuals []string  `json:"individuals" yaml:"individuals"`
	Loci        []LocusV1 `json:"loci" yaml:"loci"`
}

// LocusV1 is one reported cluster. Number is its 1-based emission position.
type LocusV1 struct {
	Number       int        `json:"number" yaml:"number"`
	ClusterID    int        `json:"cluster_id" yaml:"cluster_id"`
	TagCount     int        `json:"tag_count" yaml:"tag_count"`
	JointPattern string     `json:"joint_pattern" yaml:"joint_pattern"`
	Mirrored     bool       `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`
	Alleles      []AlleleV1 `json:"alleles" yaml:"alleles"`
	SNPs         []SNPV1    `json:"snps,omitempty" yaml:"snps,omitempty"`
}

// AlleleV1 carries one count per individual, in Individuals order; null
// where the individual has no observation.
type AlleleV1 struct {
	Sequence string `json:"sequence" yaml:"sequence"`
	Pattern  string `json:"pattern" yaml:"pattern"`
	Counts   []*int `json:"counts" yaml:"counts"`
	Quality  string `json:"quality,omitempty" yaml:"quality,omitempty"`
}

// SNPV1 is a variable site; Bases follows Alleles order.
type SNPV1 struct {
	Position int    `json:"position" yaml:"position"` // 1-based
	Bases    string `json:"bases" yaml:"bases"`
}
