package segregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radmarkers-core/engine"
	"radmarkers-core/registry"
	"radmarkers-core/tags"
)

func rec(seq string, reads int) tags.Record {
	return tags.Record{Seq: seq, Obs: tags.Observation{Reads: reads, Fragments: reads}}
}

// run feeds per-individual local clusters through a fresh engine.
func run(t *testing.T, perIndividual [][][]string) (*registry.Tags, *registry.Clusters) {
	t.Helper()
	tg, cs := registry.NewTags(), registry.NewClusters()
	e := engine.New(engine.Config{}, tg, cs)
	for ind, clusters := range perIndividual {
		for _, seqs := range clusters {
			var lc tags.LocalCluster
			for _, s := range seqs {
				lc.Records = append(lc.Records, rec(s, 5))
			}
			e.Process(ind, lc)
		}
	}
	return tg, cs
}

func TestPattern(t *testing.T) {
	obs := registry.Observations{0: {}, 2: {}}
	assert.Equal(t, "1-1-", Pattern(obs, 4))
	assert.Equal(t, 2, Carriers("1-1-"))
}

func TestJointKey(t *testing.T) {
	assert.Equal(t, "1011 1100", JointKey([]string{"1100", "1011"}))
	assert.Equal(t, "-1 1-", JointKey([]string{"1-", "-1"}))
}

func TestIsMirrored(t *testing.T) {
	tests := []struct {
		joint string
		want  bool
	}{
		{"10 01", true},
		{"10 10", false},
		{"-1 1-", true},
		{"1-1 -1-", true},
		{"11 1-", false},
		{"1-- -1- --1", false},
		{"1-", false},
	}
	for _, tt := range tests {
		t.Run(tt.joint, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMirrored(tt.joint))
		})
	}
}

func TestSummarize_Scenario(t *testing.T) {
	tg, cs := run(t, [][][]string{
		{{"AAAA"}}, // John
		{{"AAAA"}}, // Paul
	})
	s := Summarize(tg, cs, 2, Options{})

	require.Len(t, s.Buckets, 1)
	assert.Equal(t, 1, s.Buckets[0].TagCount)
	require.Len(t, s.Buckets[0].Groups, 1)
	g := s.Buckets[0].Groups[0]
	assert.Equal(t, "11", g.Joint)
	require.Len(t, g.Loci, 1)
	assert.Equal(t, "AAAA", g.Loci[0].Alleles[0].Seq)
}

func TestSummarize_SingletonRemoval(t *testing.T) {
	build := func() (*registry.Tags, *registry.Clusters) {
		return run(t, [][][]string{
			{{"AAAA", "AAAT"}, {"CCCC"}},
			{{"AAAA"}},
		})
	}

	tg, cs := build()
	s := Summarize(tg, cs, 2, Options{})
	assert.Equal(t, 2, s.SingletonsRemoved) // AAAT and CCCC
	assert.Equal(t, 1, s.ClustersRemoved)   // CCCC's cluster emptied
	assert.Equal(t, []registry.ClusterID{1}, cs.IDs())
	assert.Nil(t, tg.Get("AAAT"))
	assert.Nil(t, tg.Get("CCCC"))
	loci, alleles := s.Counts()
	assert.Equal(t, 1, loci)
	assert.Equal(t, 1, alleles)

	tg, cs = build()
	s = Summarize(tg, cs, 2, Options{KeepSingletons: true})
	assert.Zero(t, s.SingletonsRemoved)
	loci, alleles = s.Counts()
	assert.Equal(t, 2, loci)
	assert.Equal(t, 3, alleles)
	assert.NotNil(t, tg.Get("CCCC"))
}

func TestSummarize_GroupingAndOrder(t *testing.T) {
	// Four individuals A B C D.
	tg, cs := run(t, [][][]string{
		{{"AC", "AG"}, {"TT"}, {"GA"}},   // A
		{{"AC"}, {"TT"}, {"GA", "GC"}},   // B
		{{"AG"}, {"CC", "CA"}, {"GC"}},   // C
		{{"AG"}, {"CC"}, {"CA"}, {"GC"}}, // D
	})
	s := Summarize(tg, cs, 4, Options{KeepSingletons: true})

	require.Len(t, s.Buckets, 2)
	assert.Equal(t, 1, s.Buckets[0].TagCount)
	assert.Equal(t, 2, s.Buckets[1].TagCount)

	// TT alone: pattern 11--
	require.Len(t, s.Buckets[0].Groups, 1)
	assert.Equal(t, "11--", s.Buckets[0].Groups[0].Joint)

	two := s.Buckets[1]
	require.Len(t, two.Groups, 3)
	// cluster 1: AC=11--, AG=1-11
	assert.Equal(t, "1-11 11--", two.Groups[0].Joint)
	// cluster 3: GA=11--, GC=-111
	assert.Equal(t, "-111 11--", two.Groups[1].Joint)
	// cluster 4: CA=--11, CC=--11
	assert.Equal(t, "--11 --11", two.Groups[2].Joint)

	first := two.Groups[0].Loci[0]
	assert.Equal(t, registry.ClusterID(1), first.ID)
	assert.Equal(t, []string{"AG", "AC"}, []string{first.Alleles[0].Seq, first.Alleles[1].Seq}, "alleles sorted by pattern")

	// ties on pattern fall back to sequence order
	last := two.Groups[2].Loci[0]
	assert.Equal(t, "CA", last.Alleles[0].Seq)
	assert.Equal(t, "CC", last.Alleles[1].Seq)

	var ids []registry.ClusterID
	for _, l := range s.Loci() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []registry.ClusterID{2, 1, 3, 4}, ids)
}

func TestSummarize_SameJointCounted(t *testing.T) {
	tg, cs := run(t, [][][]string{
		{{"AAAA", "AAAC"}, {"GGGG", "GGGC"}},
		{{"AAAA"}, {"GGGG"}},
		{{"AAAC"}, {"GGGC"}},
	})
	s := Summarize(tg, cs, 3, Options{})
	require.Len(t, s.Buckets, 1)
	require.Len(t, s.Buckets[0].Groups, 1)
	g := s.Buckets[0].Groups[0]
	assert.Equal(t, "1-1 11-", g.Joint)
	assert.Len(t, g.Loci, 2)
	assert.False(t, g.Mirrored)
}
