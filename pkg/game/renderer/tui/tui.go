// Package tui renders mazes as coloured maps for a terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/renderer"
)

// Icon constants
const (
	IconWall     = "▒"
	IconPath     = "·"
	IconStart    = "@"
	IconEnd      = "▲"
	IconTreasure = "$"
	IconEnemy    = "!"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	styles map[world.Cell]color.Style

	// NoColor prints plain icons without escape codes
	NoColor bool

	// Width is the terminal width used to decide between wide and compact
	// cells; zero means ask the terminal
	Width int
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.styles = map[world.Cell]color.Style{
		world.Empty:    {color.FgGray},
		world.Path:     {color.FgWhite},
		world.Start:    {color.FgGreen, color.OpBold},
		world.End:      {color.FgCyan, color.OpBold},
		world.Treasure: {color.FgYellow, color.OpBold},
		world.Enemy:    {color.FgRed, color.OpBold},
	}
}

// Name returns the name of this renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Icon returns the map icon for a cell value
func Icon(c world.Cell) string {
	switch c {
	case world.Path:
		return IconPath
	case world.Start:
		return IconStart
	case world.End:
		return IconEnd
	case world.Treasure:
		return IconTreasure
	case world.Enemy:
		return IconEnemy
	default:
		return IconWall
	}
}

// cellWidth returns how many columns each cell takes. Wide cells repeat the
// wall icon or pad other icons with a space, which keeps the map roughly square.
func (t *TUIRenderer) cellWidth(m *generator.Maze) int {
	width := t.Width
	if width <= 0 {
		width = terminal.GetWidth()
	}
	if m.Height()*2 <= width {
		return 2
	}
	return 1
}

// RenderCell returns the styled string for one cell
func (t *TUIRenderer) RenderCell(c world.Cell, wide bool) string {
	icon := Icon(c)
	if wide {
		if c == world.Empty {
			icon += icon
		} else {
			icon += " "
		}
	}
	if t.NoColor {
		return icon
	}
	style, ok := t.styles[c]
	if !ok {
		return icon
	}
	return style.Sprint(icon)
}

// Render writes the coloured map of m followed by the legend to w.
// Lines run along y, one line per x, matching the debug dump.
func (t *TUIRenderer) Render(w io.Writer, m *generator.Maze) error {
	if t.styles == nil {
		t.Init()
	}
	wide := t.cellWidth(m) == 2

	var b strings.Builder
	b.WriteString(renderer.Summary(m))
	b.WriteString("\n\n")
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			b.WriteString(t.RenderCell(m.At(x, y), wide))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	entries := make([]string, 0, len(world.AllCells()))
	for _, c := range world.AllCells() {
		entries = append(entries, fmt.Sprintf("%s %s", t.RenderCell(c, false), i18n.CellName(c)))
	}
	b.WriteString(strings.Join(entries, "  "))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
