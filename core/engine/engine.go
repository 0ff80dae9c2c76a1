// core/engine/engine.go
package engine

import (
	"radmarkers-core/registry"
	"radmarkers-core/tags"
)

// Config holds clustering parameters.
type Config struct {
	Hamming int // max mismatches for similarity matching (0 = exact only)
}

// Stats counts what the engine did over a run.
type Stats struct {
	LocalClusters  int // local clusters processed
	Tags           int // (sequence, individual) observations adopted
	Created        int // clusters allocated with no prior match
	Merges         int // Process calls that joined two or more clusters
	Absorbed       int // clusters deleted by merging
	HammingMatches int // clusters matched only through similarity
}

// Engine merges local clusters into global clusters. It owns no state of its
// own beyond the union-find accelerator; Tags and Clusters are passed in.
type Engine struct {
	cfg      Config
	tags     *registry.Tags
	clusters *registry.Clusters
	sets     *disjointSet
	stats    Stats
}

// New creates an Engine working on the given tables.
func New(c Config, t *registry.Tags, cs *registry.Clusters) *Engine {
	return &Engine{cfg: c, tags: t, clusters: cs, sets: newDisjointSet()}
}

// Tags returns the tag registry the engine mutates.
func (e *Engine) Tags() *registry.Tags { return e.tags }

// Clusters returns the cluster table the engine mutates.
func (e *Engine) Clusters() *registry.Clusters { return e.clusters }

// Stats returns counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// Process runs Match, MergeOrCreate and Adopt for one local cluster of the
// given individual and returns the cluster it ended up in.
func (e *Engine) Process(individual int, lc tags.LocalCluster) registry.ClusterID {
	e.stats.LocalClusters++
	matched := e.Match(lc)
	canonical := e.MergeOrCreate(matched)
	e.Adopt(canonical, individual, lc)
	return canonical
}

// Resolve maps any id ever allocated (including ids deleted by merges) to the
// live cluster that now holds its members.
func (e *Engine) Resolve(id registry.ClusterID) registry.ClusterID {
	return e.sets.find(id)
}
