package registry

import (
	"sort"

	"radmarkers-core/tags"
)

// Cluster is a global cluster: every sequence it owns with the observations
// of every individual that contributed it.
type Cluster struct {
	ID      ClusterID
	members map[string]Observations
}

// Add copies obs for (seq, individual) into c, overwriting an existing entry.
func (c *Cluster) Add(seq string, individual int, obs tags.Observation) {
	m, ok := c.members[seq]
	if !ok {
		m = make(Observations, 1)
		c.members[seq] = m
	}
	m[individual] = obs
}

// Remove drops seq from c.
func (c *Cluster) Remove(seq string) { delete(c.members, seq) }

// Has reports whether c owns seq.
func (c *Cluster) Has(seq string) bool {
	_, ok := c.members[seq]
	return ok
}

// Observations returns the observations c holds for seq (nil if absent).
func (c *Cluster) Observations(seq string) Observations { return c.members[seq] }

// Len is the number of sequences c owns.
func (c *Cluster) Len() int { return len(c.members) }

// Sequences returns the owned sequences in lexicographic order.
func (c *Cluster) Sequences() []string {
	out := make([]string, 0, len(c.members))
	for s := range c.members {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Clusters is the cluster table. Ids come from a counter and are never reused.
type Clusters struct {
	byID map[ClusterID]*Cluster
	last ClusterID
}

// NewClusters returns an empty table whose first id is 1.
func NewClusters() *Clusters {
	return &Clusters{byID: make(map[ClusterID]*Cluster)}
}

// New allocates the next id and an empty cluster for it.
func (cs *Clusters) New() *Cluster {
	cs.last++
	c := &Cluster{ID: cs.last, members: make(map[string]Observations)}
	cs.byID[c.ID] = c
	return c
}

// Get returns the live cluster id, or nil.
func (cs *Clusters) Get(id ClusterID) *Cluster { return cs.byID[id] }

// Delete removes id. The id is not handed out again.
func (cs *Clusters) Delete(id ClusterID) { delete(cs.byID, id) }

// Len is the number of live clusters.
func (cs *Clusters) Len() int { return len(cs.byID) }

// Allocated is the highest id ever handed out.
func (cs *Clusters) Allocated() ClusterID { return cs.last }

// IDs returns live ids in ascending order.
func (cs *Clusters) IDs() []ClusterID {
	out := make([]ClusterID, 0, len(cs.byID))
	for id := range cs.byID {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
