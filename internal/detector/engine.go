// Package detector ranks stored songs by their similarity to a probe song.
package detector

import (
	"log/slog"
	"sort"
	"time"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/logging"
	"github.com/gdql/songsim/internal/metrics"
	"github.com/gdql/songsim/internal/vector"
	"github.com/gdql/songsim/internal/vocab"
)

// DefaultThreshold is the similarity score a stored song must reach to be reported.
const DefaultThreshold = 0.6

// Match is a stored song whose similarity to the probe met the threshold.
type Match struct {
	Song  *data.Song
	Score float64
}

// Detect compares probe against every song in store, in title order, and returns
// those scoring at least threshold, best first. Songs titled exactly like the probe
// are skipped. Equal scores keep title order.
//
// Every compared song is vectorized through v, so the vocabulary grows with any
// word it has not seen yet, whether or not the song ends up matching.
func Detect(probe *data.Song, store data.Store, v *vocab.Vocabulary, threshold float64) []Match {
	matches, _ := detect(probe, store, v, threshold, nil)
	return matches
}

func detect(probe *data.Song, store data.Store, v *vocab.Vocabulary, threshold float64, observe func(float64)) ([]Match, int) {
	pv := vector.Build(probe, v)

	var found []Match
	compared := 0
	for _, other := range store.All() {
		if other.Title() == probe.Title() {
			continue
		}
		score := vector.Cosine(pv, vector.Build(other, v))
		compared++
		if observe != nil {
			observe(score)
		}
		if score >= threshold {
			found = append(found, Match{Song: other, Score: score})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Score > found[j].Score
	})
	return found, compared
}

// Result is the outcome of one Detector run.
type Result struct {
	Probe     string
	Threshold float64
	Matches   []Match
	Compared  int
	Duration  time.Duration
}

// Detector runs similarity checks against a store with a shared vocabulary.
type Detector interface {
	Detect(probe *data.Song, threshold float64) *Result
}

type detector struct {
	store   data.Store
	vocab   *vocab.Vocabulary
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Detector.
type Option func(*detector)

// WithLogger sets the logger used for per-check debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(d *detector) { d.logger = logger }
}

// WithMetrics records comparisons, matches and scores in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *detector) { d.metrics = m }
}

// New builds a Detector over store that vectorizes through v.
func New(store data.Store, v *vocab.Vocabulary, opts ...Option) Detector {
	d := &detector{store: store, vocab: v, logger: logging.Discard()}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = logging.WithComponent(d.logger, "detector")
	return d
}

// Detect runs Detect and wraps the matches with timing and bookkeeping.
func (d *detector) Detect(probe *data.Song, threshold float64) *Result {
	start := time.Now()
	vocabBefore := d.vocab.Len()

	var observe func(float64)
	if d.metrics != nil {
		observe = d.metrics.SimilarityScore.Observe
	}
	matches, compared := detect(probe, d.store, d.vocab, threshold, observe)

	out := &Result{
		Probe:     probe.Title(),
		Threshold: threshold,
		Matches:   matches,
		Compared:  compared,
		Duration:  time.Since(start),
	}
	if d.metrics != nil {
		d.metrics.DetectionsTotal.Inc()
		d.metrics.ComparisonsTotal.Add(float64(compared))
		d.metrics.MatchesTotal.Add(float64(len(matches)))
		d.metrics.VocabularySize.Set(float64(d.vocab.Len()))
	}
	d.logger.Debug("similarity check",
		"probe", out.Probe,
		"threshold", threshold,
		"compared", compared,
		"matches", len(matches),
		"vocabulary_added", d.vocab.Len()-vocabBefore,
		"duration", out.Duration,
	)
	return out
}
