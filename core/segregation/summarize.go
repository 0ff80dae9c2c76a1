package segregation

import (
	"sort"

	"radmarkers-core/registry"
)

// Options controls summarization.
type Options struct {
	KeepSingletons bool // keep sequences seen in exactly one individual
}

// Allele is one surviving sequence of a locus.
type Allele struct {
	Seq     string
	Pattern string
	Obs     registry.Observations
}

// Locus is a surviving cluster with its alleles sorted by pattern.
type Locus struct {
	ID       registry.ClusterID
	Alleles  []Allele
	Joint    string
	Mirrored bool
}

// Group collects the loci of one bucket that share a joint pattern.
type Group struct {
	Joint    string
	Mirrored bool
	Loci     []Locus
}

// Bucket holds every group whose loci have TagCount alleles, in the order the
// groups were first encountered.
type Bucket struct {
	TagCount int
	Groups   []*Group
}

// Summary is the reportable result of a run.
type Summary struct {
	Individuals       int
	Buckets           []*Bucket // ascending TagCount
	SingletonsRemoved int
	ClustersRemoved   int
}

// Summarize walks live clusters in ascending id order, drops singleton
// sequences from both tables unless opt.KeepSingletons, deletes clusters left
// empty, and groups the rest by (tag count, joint pattern).
func Summarize(t *registry.Tags, cs *registry.Clusters, n int, opt Options) *Summary {
	s := &Summary{Individuals: n}
	buckets := make(map[int]*Bucket)
	groups := make(map[int]map[string]*Group)

	for _, id := range cs.IDs() {
		c := cs.Get(id)
		var alleles []Allele
		for _, seq := range c.Sequences() {
			obs := c.Observations(seq)
			if tag := t.Get(seq); tag != nil {
				obs = tag.Obs
			}
			p := Pattern(obs, n)
			if !opt.KeepSingletons && Carriers(p) == 1 {
				t.Remove(seq)
				c.Remove(seq)
				s.SingletonsRemoved++
				continue
			}
			alleles = append(alleles, Allele{Seq: seq, Pattern: p, Obs: obs.Clone()})
		}
		if c.Len() == 0 {
			cs.Delete(id)
			s.ClustersRemoved++
			continue
		}

		// sequences arrive sorted, so a stable sort leaves ties in sequence order
		sort.SliceStable(alleles, func(i, j int) bool { return alleles[i].Pattern < alleles[j].Pattern })
		patterns := make([]string, len(alleles))
		for i, a := range alleles {
			patterns[i] = a.Pattern
		}
		joint := JointKey(patterns)
		loc := Locus{ID: id, Alleles: alleles, Joint: joint, Mirrored: IsMirrored(joint)}

		k := len(alleles)
		b, ok := buckets[k]
		if !ok {
			b = &Bucket{TagCount: k}
			buckets[k] = b
			groups[k] = make(map[string]*Group)
		}
		g, ok := groups[k][joint]
		if !ok {
			g = &Group{Joint: joint, Mirrored: loc.Mirrored}
			groups[k][joint] = g
			b.Groups = append(b.Groups, g)
		}
		g.Loci = append(g.Loci, loc)
	}

	for _, b := range buckets {
		s.Buckets = append(s.Buckets, b)
	}
	sort.Slice(s.Buckets, func(i, j int) bool { return s.Buckets[i].TagCount < s.Buckets[j].TagCount })
	return s
}

// Loci returns every locus in emission order: bucket, then group, then
// cluster id.
func (s *Summary) Loci() []Locus {
	var out []Locus
	for _, b := range s.Buckets {
		for _, g := range b.Groups {
			out = append(out, g.Loci...)
		}
	}
	return out
}

// Counts returns the number of loci and alleles reported.
func (s *Summary) Counts() (loci, alleles int) {
	for _, l := range s.Loci() {
		loci++
		alleles += len(l.Alleles)
	}
	return loci, alleles
}
