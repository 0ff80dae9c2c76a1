package engine

import (
	"sort"

	"radmarkers-core/registry"
	"radmarkers-core/tags"
)

// Match returns, in ascending order, the distinct global clusters lc touches.
// A sequence already assigned contributes its own cluster and nothing else.
// Otherwise, when a Hamming threshold is set, every other registered sequence
// is compared; sequences in a cluster already found are skipped.
func (e *Engine) Match(lc tags.LocalCluster) []registry.ClusterID {
	found := make(map[registry.ClusterID]struct{})
	for _, rec := range lc.Records {
		if id, ok := e.tags.Cluster(rec.Seq); ok {
			found[e.sets.find(id)] = struct{}{}
			continue
		}
		if e.cfg.Hamming <= 0 {
			continue
		}
		e.tags.Range(func(t *registry.Tag) bool {
			if t.Seq == rec.Seq || t.Cluster == 0 {
				return true
			}
			root := e.sets.find(t.Cluster)
			if _, dup := found[root]; dup {
				return true
			}
			if WithinHamming(rec.Seq, t.Seq, e.cfg.Hamming) {
				found[root] = struct{}{}
				e.stats.HammingMatches++
			}
			return true
		})
	}

	out := make([]registry.ClusterID, 0, len(found))
	for id := range found {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WithinHamming reports whether a and b have equal length and differ in at
// most limit positions. Sequences of different length never match.
func WithinHamming(a, b string, limit int) bool {
	if len(a) != len(b) {
		return false
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
			if d > limit {
				return false
			}
		}
	}
	return true
}
