// Package registry holds the two tables clustering mutates: Tags (sequence ->
// observations and owning cluster) and Clusters (id -> member observations).
// Neither table validates against the other; the engine keeps them in step.
package registry

import "radmarkers-core/tags"

// ClusterID identifies a global cluster. Zero means unassigned.
type ClusterID int

// Observations maps an individual's pools index to what it contributed.
type Observations map[int]tags.Observation

// Clone returns a shallow copy of o.
func (o Observations) Clone() Observations {
	out := make(Observations, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Tag is a sequence with its per-individual observations.
type Tag struct {
	Seq     string
	Obs     Observations
	Cluster ClusterID

	pos int // index into Tags.order
}

// Tags is the tag registry. Range visits tags in first-insertion order.
type Tags struct {
	bySeq map[string]*Tag
	order []string
}

// NewTags returns an empty registry.
func NewTags() *Tags {
	return &Tags{bySeq: make(map[string]*Tag)}
}

// RecordObservation inserts or overwrites the observation of (seq, individual).
func (r *Tags) RecordObservation(seq string, individual int, obs tags.Observation) *Tag {
	t, ok := r.bySeq[seq]
	if !ok {
		t = &Tag{Seq: seq, Obs: make(Observations, 1), pos: len(r.order)}
		r.bySeq[seq] = t
		r.order = append(r.order, seq)
	}
	t.Obs[individual] = obs
	return t
}

// Cluster returns the cluster currently owning seq.
func (r *Tags) Cluster(seq string) (ClusterID, bool) {
	t, ok := r.bySeq[seq]
	if !ok || t.Cluster == 0 {
		return 0, false
	}
	return t.Cluster, true
}

// AssignCluster sets the owning cluster of seq; unknown sequences are ignored.
func (r *Tags) AssignCluster(seq string, id ClusterID) {
	if t, ok := r.bySeq[seq]; ok {
		t.Cluster = id
	}
}

// Get returns the tag for seq, or nil.
func (r *Tags) Get(seq string) *Tag { return r.bySeq[seq] }

// Remove drops seq from the registry.
func (r *Tags) Remove(seq string) {
	delete(r.bySeq, seq)
}

// Len is the number of live tags.
func (r *Tags) Len() int { return len(r.bySeq) }

// Range calls fn for each live tag in insertion order until fn returns false.
func (r *Tags) Range(fn func(*Tag) bool) {
	for i, seq := range r.order {
		t, ok := r.bySeq[seq]
		if !ok || t.pos != i {
			// removed, or removed and re-recorded later in the order
			continue
		}
		if !fn(t) {
			return
		}
	}
}
