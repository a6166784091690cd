package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"darkmaze/pkg/game/generator"
)

func generate(t *testing.T) *generator.Maze {
	t.Helper()
	g, err := generator.New(generator.Config{Width: 6, Height: 5, TreasureChance: 0.2, EnemyChance: 0.2, Seed: 42})
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}
	m, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m
}

// section returns the lines between a header line and the next blank line
func section(t *testing.T, dump, header string) []string {
	t.Helper()
	_, rest, ok := strings.Cut(dump, header+"\n")
	if !ok {
		t.Fatalf("dump has no %q section", header)
	}
	body, _, _ := strings.Cut(rest, "\n\n")
	return strings.Split(body, "\n")
}

func TestWriteMapDump_Metadata(t *testing.T) {
	m := generate(t)

	var buf bytes.Buffer
	if err := WriteMapDump(&buf, m); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"seed: 42\n",
		"width: 6\n",
		"height: 5\n",
		"start: " + m.Start().String() + "\n",
		"end: " + m.End().String() + "\n",
		"# = empty (0)",
		"! = enemy (5)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
}

func TestWriteMapDump_SymbolMap(t *testing.T) {
	m := generate(t)

	var buf bytes.Buffer
	if err := WriteMapDump(&buf, m); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}

	rows := section(t, buf.String(), "--- Map (symbols) ---")
	if len(rows) != m.Width() {
		t.Fatalf("map has %d rows, want %d", len(rows), m.Width())
	}
	for x, row := range rows {
		if len(row) != m.Height() {
			t.Fatalf("row %d = %q, want %d symbols", x, row, m.Height())
		}
		for y, r := range row {
			if want := m.At(x, y).Symbol(); r != want {
				t.Errorf("symbol at %d,%d = %c, want %c", x, y, r, want)
			}
		}
	}
}

func TestWriteMapDump_MainPath(t *testing.T) {
	m := generate(t)

	var buf bytes.Buffer
	if err := WriteMapDump(&buf, m); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}

	steps := section(t, buf.String(), "--- Main path (start to end) ---")
	// the path section is last, so its body ends with a trailing newline
	if steps[len(steps)-1] == "" {
		steps = steps[:len(steps)-1]
	}
	if len(steps) != len(m.Path()) {
		t.Fatalf("dump lists %d steps, want %d", len(steps), len(m.Path()))
	}
	if !strings.Contains(steps[0], "value: start") {
		t.Errorf("first step = %q, want the start cell", steps[0])
	}
	if !strings.Contains(steps[len(steps)-1], "value: end") {
		t.Errorf("last step = %q, want the end cell", steps[len(steps)-1])
	}
}

// failingWriter accepts limit bytes and then fails every write
type failingWriter struct {
	limit int
}

var errShortWrite = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) <= f.limit {
		f.limit -= len(p)
		return len(p), nil
	}
	n := f.limit
	f.limit = 0
	return n, errShortWrite
}

func TestWriteMapDump_ReportsWriteErrors(t *testing.T) {
	m := generate(t)
	for _, limit := range []int{0, 100} {
		if err := WriteMapDump(&failingWriter{limit: limit}, m); !errors.Is(err, errShortWrite) {
			t.Errorf("WriteMapDump with %d writable bytes = %v, want %v", limit, err, errShortWrite)
		}
	}
}

func TestWriteMazeHTML_ReportsWriteErrors(t *testing.T) {
	if err := WriteMazeHTML(&failingWriter{limit: 10}, generate(t)); !errors.Is(err, errShortWrite) {
		t.Errorf("WriteMazeHTML = %v, want %v", err, errShortWrite)
	}
}

func TestWriteMapDump_NilMaze(t *testing.T) {
	if err := WriteMapDump(&bytes.Buffer{}, nil); err == nil {
		t.Error("WriteMapDump(nil) should fail")
	}
}

func TestDumpMazeToFile(t *testing.T) {
	m := generate(t)
	target := filepath.Join(t.TempDir(), "dump.txt")

	path, err := DumpMazeToFile(target, m)
	if err != nil {
		t.Fatalf("DumpMazeToFile: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("returned path %q is not absolute", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteMapDump(&buf, m); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}
	if string(data) != buf.String() {
		t.Error("file content differs from WriteMapDump output")
	}
}

func TestDumpMazeToFile_NilMaze(t *testing.T) {
	if _, err := DumpMazeToFile(filepath.Join(t.TempDir(), "x.txt"), nil); err == nil {
		t.Error("DumpMazeToFile(nil) should fail")
	}
}

func TestWriteMazeHTML(t *testing.T) {
	m := generate(t)

	var buf bytes.Buffer
	if err := WriteMazeHTML(&buf, m); err != nil {
		t.Fatalf("WriteMazeHTML: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output should start with a doctype")
	}
	if n := strings.Count(out, `<div class="map-row">`); n != m.Width() {
		t.Errorf("html has %d map rows, want %d", n, m.Width())
	}
	// one span per cell plus one per legend entry
	if n := strings.Count(out, `<span class="start">`); n != 2 {
		t.Errorf("start spans = %d, want 2", n)
	}
	if n := strings.Count(out, `<span class="end">`); n != 2 {
		t.Errorf("end spans = %d, want 2", n)
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	m := generate(t)
	dir := t.TempDir()

	path, err := SaveScreenshotHTML(dir, m)
	if err != nil {
		t.Fatalf("SaveScreenshotHTML: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("screenshot written to %q, want a file in %q", path, dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "maze-42-") {
		t.Errorf("filename %q should carry the seed", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot missing: %v", err)
	}
}
