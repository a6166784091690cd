package tui

import (
	"bytes"
	"strings"
	"testing"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
)

func TestRender_PlainIcons(t *testing.T) {
	g, err := generator.New(generator.Config{Width: 6, Height: 10, Seed: 4})
	if err != nil {
		t.Fatal(err)
	}
	m, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}

	r := New()
	r.NoColor = true
	r.Width = 80

	var buf bytes.Buffer
	if err := r.Render(&buf, m); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Error("NoColor output contains escape codes")
	}

	lines := strings.Split(out, "\n")
	// summary, blank, then one line per x
	row := lines[2+m.Start().X]
	icons := []rune(row)
	if got := string(icons[m.Start().Y*2]); got != IconStart {
		t.Errorf("start icon = %q, want %q (row %q)", got, IconStart, row)
	}
	if n := len([]rune(lines[2])); n != m.Height()*2 {
		t.Errorf("wide row has %d columns, want %d", n, m.Height()*2)
	}
}

func TestRenderCell_CompactWhenNarrow(t *testing.T) {
	r := New()
	r.NoColor = true
	if got := r.RenderCell(world.Enemy, false); got != IconEnemy {
		t.Errorf("RenderCell(Enemy, compact) = %q", got)
	}
	if got := r.RenderCell(world.Empty, true); got != IconWall+IconWall {
		t.Errorf("RenderCell(Empty, wide) = %q", got)
	}
}

func TestIcon_Distinct(t *testing.T) {
	seen := map[string]world.Cell{}
	for _, c := range world.AllCells() {
		if prev, dup := seen[Icon(c)]; dup {
			t.Errorf("%v and %v share icon %q", prev, c, Icon(c))
		}
		seen[Icon(c)] = c
	}
}
