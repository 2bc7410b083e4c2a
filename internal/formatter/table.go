package formatter

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func (f *formatter) formatTable(r *Result) string {
	switch r.Type {
	case ResultTitles:
		if len(r.Titles) == 0 {
			return "No songs stored.\n"
		}
		rows := make([][]string, 0, len(r.Titles))
		for i, t := range r.Titles {
			rows = append(rows, []string{strconv.Itoa(i + 1), t})
		}
		return f.renderTable([]string{"#", "Title"}, rows, []columnAlignment{alignRight, alignLeft})
	case ResultSong:
		if r.Song == nil {
			return "No song.\n"
		}
		rows := [][]string{
			{"Title", r.Song.Title()},
			{"Text", r.Song.Text()},
			{"Indexed words", strconv.Itoa(r.Song.UniqueWords())},
		}
		return f.renderTable([]string{"Field", "Value"}, rows, nil)
	case ResultMatches:
		d := r.Detection
		if d == nil || len(d.Matches) == 0 {
			return f.formatPlain(r)
		}
		rows := make([][]string, 0, len(d.Matches))
		for i, m := range d.Matches {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				m.Song.Title(),
				f.paint(Score(m.Score), scoreColors(m.Score)),
			})
		}
		return f.renderTable([]string{"#", "Title", "Similarity"}, rows, []columnAlignment{alignRight, alignLeft, alignRight})
	case ResultCounts:
		if len(r.Counts) == 0 {
			return "No words.\n"
		}
		keys := sortedCounts(r.Counts)
		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []string{k, strconv.Itoa(r.Counts[k])})
		}
		return f.renderTable([]string{countKey(r), "Count"}, rows, []columnAlignment{alignLeft, alignRight})
	case ResultStats:
		rows := make([][]string, 0, len(r.Stats))
		for _, s := range r.Stats {
			rows = append(rows, []string{s.Name, s.Value})
		}
		return f.renderTable([]string{"Stat", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
	}
	return ""
}

func (f *formatter) renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if f.color {
		tw.Style().Color.Header = text.Colors{text.Bold}
	}

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render() + "\n"
}
