package engine

import "radmarkers-core/registry"

// disjointSet tracks which allocated cluster ids have been merged. The root of
// every set is its smallest id, which is the live canonical cluster.
type disjointSet struct {
	parent map[registry.ClusterID]registry.ClusterID
}

func newDisjointSet() *disjointSet {
	return &disjointSet{parent: make(map[registry.ClusterID]registry.ClusterID)}
}

func (d *disjointSet) add(id registry.ClusterID) {
	if _, ok := d.parent[id]; !ok {
		d.parent[id] = id
	}
}

// find returns the root of id with path compression. Unknown ids are their
// own root.
func (d *disjointSet) find(id registry.ClusterID) registry.ClusterID {
	root := id
	for {
		p, ok := d.parent[root]
		if !ok || p == root {
			break
		}
		root = p
	}
	for id != root {
		next := d.parent[id]
		d.parent[id] = root
		id = next
	}
	return root
}

// union attaches b's set under a's root, keeping the smaller root on top.
func (d *disjointSet) union(a, b registry.ClusterID) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
}
