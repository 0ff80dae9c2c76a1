package output

import (
	"testing"

	"radmarkers-core/engine"
	"radmarkers-core/registry"
	"radmarkers-core/segregation"
	"radmarkers-core/tags"
)

type rec struct {
	seq     string
	reads   int
	frags   int
	quality string
}

// build clusters per-individual local clusters and summarizes them.
func build(t *testing.T, names []string, perInd [][][]rec, keepSingletons bool) Report {
	t.Helper()
	tg, cs := registry.NewTags(), registry.NewClusters()
	e := engine.New(engine.Config{}, tg, cs)
	inds := make([]tags.Individual, len(names))
	for i, n := range names {
		inds[i] = tags.Individual{Index: i, Name: n}
	}
	for i, lcs := range perInd {
		for _, recs := range lcs {
			var lc tags.LocalCluster
			for _, r := range recs {
				lc.Records = append(lc.Records, tags.Record{
					Seq: r.seq,
					Obs: tags.Observation{Reads: r.reads, Fragments: r.frags, Quality: r.quality},
				})
			}
			e.Process(i, lc)
		}
	}
	s := segregation.Summarize(tg, cs, len(names), segregation.Options{KeepSingletons: keepSingletons})
	return Report{RunID: "run-1", Individuals: inds, Summary: s, Metric: tags.Reads, QualityOffset: 33}
}

func johnPaul(t *testing.T) Report {
	return build(t, []string{"John", "Paul"}, [][][]rec{
		{{{"AAAA", 10, 5, "IIII"}}},
		{{{"AAAA", 8, 4, "IIII"}}},
	}, false)
}

// threeWay has one locus with alleles AACGA (A, C) and AACGT (A, B).
func threeWay(t *testing.T) Report {
	return build(t, []string{"A", "B", "C"}, [][][]rec{
		{{{"AACGT", 10, 2, "IIIII"}, {"AACGA", 3, 1, "II#+5"}}},
		{{{"AACGT", 7, 3, "IIIII"}}},
		{{{"AACGA", 4, 4, "#I+#5"}}},
	}, false)
}
