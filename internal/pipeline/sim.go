// internal/pipeline/sim.go
package pipeline

import (
	"radmarkers-core/engine"
	"radmarkers-core/registry"
	"radmarkers-core/tags"
)

// Clusterer is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Clusterer interface {
	Process(individual int, lc tags.LocalCluster) registry.ClusterID
	Stats() engine.Stats
}
