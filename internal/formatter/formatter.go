// Package formatter renders session and CLI results as plain text, tables, JSON or CSV.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/detector"
)

// OutputFormat selects output style.
type OutputFormat int

const (
	FormatPlain OutputFormat = iota
	FormatTable
	FormatJSON
	FormatCSV
)

func (f OutputFormat) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "plain"
	}
}

// ParseFormat maps a format name (case-insensitive) to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "text":
		return FormatPlain, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	}
	return FormatPlain, fmt.Errorf("unknown output format %q (want plain, table, json or csv)", s)
}

// ResultType says which field of a Result is populated.
type ResultType int

const (
	ResultTitles ResultType = iota
	ResultSong
	ResultMatches
	ResultCounts
	ResultStats
)

func (t ResultType) String() string {
	switch t {
	case ResultTitles:
		return "titles"
	case ResultSong:
		return "song"
	case ResultMatches:
		return "matches"
	case ResultCounts:
		return "counts"
	case ResultStats:
		return "stats"
	}
	return ""
}

// Stat is one named value in a statistics view.
type Stat struct {
	Name  string
	Value string
}

// Result is anything the formatter can render.
type Result struct {
	Type      ResultType
	Titles    []string
	Song      *data.Song
	Detection *detector.Result
	Counts    map[string]int
	CountKey  string // column name for Counts keys; "word" when empty
	Stats     []Stat
}

// Formatter renders a Result as a string.
type Formatter interface {
	Format(result *Result, format OutputFormat) (string, error)
}

type formatter struct {
	color bool
}

// Option configures a Formatter.
type Option func(*formatter)

// WithColor enables ANSI colors in plain and table output.
func WithColor(on bool) Option {
	return func(f *formatter) { f.color = on }
}

// New returns a Formatter.
func New(opts ...Option) Formatter {
	f := &formatter{}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Format dispatches to the appropriate formatter by format.
func (f *formatter) Format(result *Result, format OutputFormat) (string, error) {
	if result == nil {
		return "", fmt.Errorf("nil result")
	}
	switch format {
	case FormatJSON:
		return formatJSON(result)
	case FormatCSV:
		return formatCSV(result)
	case FormatTable:
		return f.formatTable(result), nil
	default:
		return f.formatPlain(result), nil
	}
}

// Score renders a similarity score with three decimals.
func Score(s float64) string {
	return fmt.Sprintf("%.3f", s)
}

func countKey(r *Result) string {
	if r.CountKey == "" {
		return "word"
	}
	return r.CountKey
}

// sortedCounts returns the keys of counts in ascending order.
func sortedCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
