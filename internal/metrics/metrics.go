// Package metrics records run counters on a private Prometheus registry and
// dumps them in the text exposition format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"radmarkers-core/engine"
	"radmarkers-core/segregation"
	"radmarkers-core/tags"
)

const namespace = "radmarkers"

// Recorder owns the run's collectors.
type Recorder struct {
	reg *prometheus.Registry

	localClusters     prometheus.Counter
	tagsKept          prometheus.Counter
	tagsFiltered      *prometheus.CounterVec
	clustersCreated   prometheus.Counter
	clustersAbsorbed  prometheus.Counter
	hammingMatches    prometheus.Counter
	singletonsRemoved prometheus.Counter
	loci              prometheus.Gauge
}

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() *Recorder {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}
	r := &Recorder{
		reg:               prometheus.NewRegistry(),
		localClusters:     counter("local_clusters_total", "Local clusters fed to the engine."),
		tagsKept:          counter("tags_total", "Tag records kept after filtering."),
		clustersCreated:   counter("clusters_created_total", "Cluster ids allocated."),
		clustersAbsorbed:  counter("clusters_absorbed_total", "Clusters deleted by merges."),
		hammingMatches:    counter("hamming_matches_total", "Clusters matched only by Hamming distance."),
		singletonsRemoved: counter("singletons_removed_total", "Single-individual tags dropped from the report."),
		tagsFiltered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tags_filtered_total",
			Help:      "Tag records dropped by the input filter.",
		}, []string{"reason"}),
		loci: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loci",
			Help:      "Loci in the report.",
		}),
	}
	r.reg.MustRegister(
		r.localClusters, r.tagsKept, r.tagsFiltered,
		r.clustersCreated, r.clustersAbsorbed, r.hammingMatches,
		r.singletonsRemoved, r.loci,
	)
	return r
}

// Observe adds one run's numbers.
func (r *Recorder) Observe(read tags.ReadStats, eng engine.Stats, s *segregation.Summary) {
	r.localClusters.Add(float64(eng.LocalClusters))
	r.tagsKept.Add(float64(read.Kept))
	r.tagsFiltered.WithLabelValues("contaminant").Add(float64(read.Contaminated))
	r.tagsFiltered.WithLabelValues("threshold").Add(float64(read.BelowThreshold))
	r.clustersCreated.Add(float64(eng.Created))
	r.clustersAbsorbed.Add(float64(eng.Absorbed))
	r.hammingMatches.Add(float64(eng.HammingMatches))
	if s != nil {
		r.singletonsRemoved.Add(float64(s.SingletonsRemoved))
		loci, _ := s.Counts()
		r.loci.Set(float64(loci))
	}
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
