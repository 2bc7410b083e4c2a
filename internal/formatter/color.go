package formatter

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/gdql/songsim/internal/detector"
)

// Color modes accepted by ShouldColorize.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ShouldColorize reports whether output to writer should carry ANSI colors.
// "auto" colors only terminals and honors NO_COLOR.
func ShouldColorize(mode string, writer io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// scoreColors picks a color for a similarity score: red for near copies.
func scoreColors(score float64) text.Colors {
	switch {
	case score >= 0.9:
		return text.Colors{text.FgRed, text.Bold}
	case score >= detector.DefaultThreshold:
		return text.Colors{text.FgYellow}
	default:
		return text.Colors{text.FgGreen}
	}
}

func (f *formatter) paint(s string, c text.Colors) string {
	if !f.color {
		return s
	}
	return c.Sprint(s)
}
