package formatter

import (
	"encoding/csv"
	"strconv"
	"strings"
)

func formatCSV(r *Result) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	switch r.Type {
	case ResultTitles:
		w.Write([]string{"title"})
		for _, t := range r.Titles {
			w.Write([]string{t})
		}
	case ResultSong:
		w.Write([]string{"title", "text", "indexed_words"})
		if r.Song != nil {
			w.Write([]string{r.Song.Title(), r.Song.Text(), strconv.Itoa(r.Song.UniqueWords())})
		}
	case ResultMatches:
		w.Write([]string{"rank", "title", "similarity"})
		if r.Detection != nil {
			for i, m := range r.Detection.Matches {
				w.Write([]string{strconv.Itoa(i + 1), m.Song.Title(), Score(m.Score)})
			}
		}
	case ResultCounts:
		w.Write([]string{countKey(r), "count"})
		for _, k := range sortedCounts(r.Counts) {
			w.Write([]string{k, strconv.Itoa(r.Counts[k])})
		}
	case ResultStats:
		w.Write([]string{"stat", "value"})
		for _, s := range r.Stats {
			w.Write([]string{s.Name, s.Value})
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
