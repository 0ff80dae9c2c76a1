// core/tags/types.go
package tags

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord reports a tag line that cannot be parsed into a Record.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMalformedPools reports a pools line without a name and MID.
	ErrMalformedPools = errors.New("malformed pools record")
)

// Observation is what one individual contributed for one sequence.
type Observation struct {
	Reads     int
	Fragments int
	Quality   string
}

// Record is a single tag line of a tag file.
type Record struct {
	Seq string
	Obs Observation
}

// LocalCluster is a group of candidate alleles pre-clustered within one individual.
type LocalCluster struct {
	Records []Record
}

// Individual is a pools entry. Index is its position in the pools list and
// fixes its column in every segregation pattern.
type Individual struct {
	Index int
	Name  string
	MID   string
}

// Metric selects which count a threshold and a report use.
type Metric int

const (
	Reads Metric = iota
	Fragments
)

// MetricFor maps the fragment-mode toggle to a Metric.
func MetricFor(fragments bool) Metric {
	if fragments {
		return Fragments
	}
	return Reads
}

// Count returns the selected count of o.
func (m Metric) Count(o Observation) int {
	if m == Fragments {
		return o.Fragments
	}
	return o.Reads
}

func (m Metric) String() string {
	switch m {
	case Reads:
		return "reads"
	case Fragments:
		return "fragments"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}
