package formatter

import (
	"encoding/json"
	"math"
)

type jsonSong struct {
	Title        string `json:"title"`
	Text         string `json:"text"`
	IndexedWords int    `json:"indexed_words"`
}

type jsonMatch struct {
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
}

type jsonDetection struct {
	Probe     string      `json:"probe"`
	Threshold float64     `json:"threshold"`
	Compared  int         `json:"compared"`
	Matches   []jsonMatch `json:"matches"`
	Duration  string      `json:"duration"`
}

func formatJSON(r *Result) (string, error) {
	out := map[string]any{
		"type": r.Type.String(),
	}
	switch r.Type {
	case ResultTitles:
		titles := r.Titles
		if titles == nil {
			titles = []string{}
		}
		out["titles"] = titles
	case ResultSong:
		if r.Song != nil {
			out["song"] = jsonSong{Title: r.Song.Title(), Text: r.Song.Text(), IndexedWords: r.Song.UniqueWords()}
		}
	case ResultMatches:
		if d := r.Detection; d != nil {
			jd := jsonDetection{
				Probe:     d.Probe,
				Threshold: d.Threshold,
				Compared:  d.Compared,
				Matches:   make([]jsonMatch, 0, len(d.Matches)),
				Duration:  d.Duration.String(),
			}
			for _, m := range d.Matches {
				jd.Matches = append(jd.Matches, jsonMatch{Title: m.Song.Title(), Similarity: round3(m.Score)})
			}
			out["detection"] = jd
		}
	case ResultCounts:
		counts := r.Counts
		if counts == nil {
			counts = map[string]int{}
		}
		out["counts"] = counts
	case ResultStats:
		stats := make(map[string]string, len(r.Stats))
		for _, s := range r.Stats {
			stats[s.Name] = s.Value
		}
		out["stats"] = stats
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
