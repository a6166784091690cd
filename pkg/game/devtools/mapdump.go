// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "map.txt"

// writeMapGrid writes one line per x index using cell symbols
func writeMapGrid(w io.Writer, m *generator.Maze) {
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			fmt.Fprintf(w, "%c", m.At(x, y).Symbol())
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes a full debug dump of m: metadata, legend, symbol map,
// the raw numeric grid and the main path.
// Format is human- and machine-readable (sections, key: value, consistent structure).
// Output is buffered; the first write error is returned.
func WriteMapDump(out io.Writer, m *generator.Maze) error {
	if m == nil {
		return fmt.Errorf("no maze")
	}
	w := bufio.NewWriter(out)

	start, end := m.Start(), m.End()
	path := m.Path()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAZE DUMP DEBUG (layout, main path, markers) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", m.Seed())
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, one map line per x)\n")
	fmt.Fprintf(w, "start: %s\n", start)
	fmt.Fprintf(w, "end: %s\n", end)
	fmt.Fprintf(w, "main_path_length: %d\n", len(path))
	for _, c := range world.AllCells() {
		fmt.Fprintf(w, "count_%s: %d\n", lowerName(c), m.Count(c))
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	for i, c := range world.AllCells() {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintf(w, "%c = %s (%d)", c.Symbol(), lowerName(c), int(c))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map (symbols) ---")
	writeMapGrid(w, m)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Grid (numeric) ---")
	fmt.Fprint(w, m.String())

	// --- Main path ---
	fmt.Fprintln(w, "--- Main path (start to end) ---")
	for i, c := range path {
		fmt.Fprintf(w, "  step: %d cell: %s value: %s\n", i, c, lowerName(m.At(c.X, c.Y)))
	}
	return w.Flush()
}

// DumpMazeToFile writes the debug dump of m to path (map.txt when empty)
// and returns the absolute path written.
func DumpMazeToFile(path string, m *generator.Maze) (string, error) {
	if m == nil {
		return "", fmt.Errorf("no maze")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}

	if err := WriteMapDump(f, m); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return absPath, nil
}
