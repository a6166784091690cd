// Package renderer turns generated mazes into text.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/i18n"
)

// Dump is the numeric debug dump: one line of cell values per x, each value
// padded with spaces, lines separated by a blank line.
type Dump struct{}

// Name returns the name of this renderer
func (Dump) Name() string {
	return "dump"
}

// Render writes the debug dump of m to w
func (Dump) Render(w io.Writer, m *generator.Maze) error {
	_, err := io.WriteString(w, m.String())
	return err
}

// Summary returns a one-line translated description of m
func Summary(m *generator.Maze) string {
	return i18n.T("SUMMARY", m.Width(), m.Height(), m.Seed(), m.Start(), m.End(), len(m.Path()))
}

// LegendEntries returns "symbol label" pairs for every cell value
func LegendEntries() []string {
	cells := world.AllCells()
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, fmt.Sprintf("%c %s", c.Symbol(), i18n.CellName(c)))
	}
	return out
}

// Legend returns the translated legend on a single line
func Legend() string {
	return i18n.T("LEGEND") + ": " + strings.Join(LegendEntries(), "  ")
}
