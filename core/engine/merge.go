package engine

import (
	"radmarkers-core/registry"
	"radmarkers-core/tags"
)

// MergeOrCreate collapses ids (ascending, as returned by Match) into one
// canonical cluster and returns it. With no ids a new cluster is allocated.
// The canonical id is the smallest; every member of every matched cluster is
// relabeled to it and the other clusters are deleted.
func (e *Engine) MergeOrCreate(ids []registry.ClusterID) registry.ClusterID {
	if len(ids) == 0 {
		c := e.clusters.New()
		e.sets.add(c.ID)
		e.stats.Created++
		return c.ID
	}

	canonical := ids[0]
	for _, id := range ids[1:] {
		if id < canonical {
			canonical = id
		}
	}
	dst := e.clusters.Get(canonical)

	for _, id := range ids {
		src := e.clusters.Get(id)
		if src == nil {
			continue
		}
		for _, seq := range src.Sequences() {
			e.tags.AssignCluster(seq, canonical)
			if id == canonical {
				continue
			}
			for ind, obs := range src.Observations(seq) {
				dst.Add(seq, ind, obs)
			}
		}
		if id != canonical {
			e.clusters.Delete(id)
			e.sets.union(canonical, id)
			e.stats.Absorbed++
		}
	}
	if len(ids) > 1 {
		e.stats.Merges++
	}
	return canonical
}

// Adopt records lc's observations for individual and places every sequence
// of lc in the canonical cluster.
func (e *Engine) Adopt(canonical registry.ClusterID, individual int, lc tags.LocalCluster) {
	dst := e.clusters.Get(canonical)
	for _, rec := range lc.Records {
		e.tags.RecordObservation(rec.Seq, individual, rec.Obs)
		dst.Add(rec.Seq, individual, rec.Obs)
		e.tags.AssignCluster(rec.Seq, canonical)
		e.stats.Tags++
	}
}
