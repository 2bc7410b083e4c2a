package formatter

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

func (f *formatter) formatPlain(r *Result) string {
	var b strings.Builder
	switch r.Type {
	case ResultTitles:
		if len(r.Titles) == 0 {
			return "No songs stored.\n"
		}
		for _, t := range r.Titles {
			fmt.Fprintf(&b, "%s\n", t)
		}
	case ResultSong:
		if r.Song == nil {
			return "No song.\n"
		}
		fmt.Fprintf(&b, "%s\n", f.paint("--- "+r.Song.Title()+" ---", text.Colors{text.Bold}))
		fmt.Fprintf(&b, "%s\n", r.Song.Text())
		fmt.Fprintf(&b, "(indexed words: %d)\n", r.Song.UniqueWords())
	case ResultMatches:
		d := r.Detection
		if d == nil || len(d.Matches) == 0 {
			threshold := 0.0
			if d != nil {
				threshold = d.Threshold
			}
			return fmt.Sprintf("No similar songs found (threshold=%s)\n", Score(threshold))
		}
		b.WriteString("Similar songs:\n")
		for _, m := range d.Matches {
			fmt.Fprintf(&b, " - %s (sim=%s)\n", m.Song.Title(), f.paint(Score(m.Score), scoreColors(m.Score)))
		}
	case ResultCounts:
		if len(r.Counts) == 0 {
			return "No words.\n"
		}
		for _, k := range sortedCounts(r.Counts) {
			fmt.Fprintf(&b, "%s: %d\n", k, r.Counts[k])
		}
	case ResultStats:
		for _, s := range r.Stats {
			fmt.Fprintf(&b, "%s: %s\n", s.Name, s.Value)
		}
	}
	return b.String()
}
