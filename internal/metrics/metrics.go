// Package metrics defines the Prometheus collectors for store and similarity
// activity. Collectors live in a private registry owned by the session, so
// several sessions (and tests) never collide on registration.
package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all collectors for one session.
type Metrics struct {
	registry *prometheus.Registry

	SongsStored      *prometheus.CounterVec
	SongsRemoved     prometheus.Counter
	ComparisonsTotal prometheus.Counter
	MatchesTotal     prometheus.Counter
	DetectionsTotal  prometheus.Counter
	VocabularySize   prometheus.Gauge
	StoreSize        prometheus.Gauge
	SimilarityScore  prometheus.Histogram
}

// New creates and registers all collectors in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SongsStored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "songsim_songs_stored_total",
				Help: "Songs written to the store, by outcome (added, replaced).",
			},
			[]string{"outcome"},
		),
		SongsRemoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "songsim_songs_removed_total",
				Help: "Songs removed from the store.",
			},
		),
		ComparisonsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "songsim_comparisons_total",
				Help: "Pairwise cosine comparisons performed.",
			},
		),
		MatchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "songsim_matches_total",
				Help: "Comparisons that met the similarity threshold.",
			},
		),
		DetectionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "songsim_detections_total",
				Help: "Similarity checks run against the store.",
			},
		),
		VocabularySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "songsim_vocabulary_size",
				Help: "Distinct words known to the session vocabulary.",
			},
		),
		StoreSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "songsim_store_size",
				Help: "Songs currently held in the store.",
			},
		),
		SimilarityScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "songsim_similarity_score",
				Help:    "Distribution of cosine similarity scores.",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
			},
		),
	}

	m.registry.MustRegister(
		m.SongsStored,
		m.SongsRemoved,
		m.ComparisonsTotal,
		m.MatchesTotal,
		m.DetectionsTotal,
		m.VocabularySize,
		m.StoreSize,
		m.SimilarityScore,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers every collector and flattens it into samples sorted by name.
// Histograms contribute a _count and a _sum sample.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		name := mf.GetName()
		for _, metric := range mf.GetMetric() {
			labels := formatLabels(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{Name: name, Labels: labels, Value: metric.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{Name: name, Labels: labels, Value: metric.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				out = append(out,
					Sample{Name: name + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: name + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
