package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/renderer/tui"
)

const screenshotStyle = `    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .summary {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .empty { color: #666; }
        .path { color: #aaa; }
        .start { color: #00ff00; font-weight: bold; }
        .end { color: #4444ff; font-weight: bold; }
        .treasure { color: #ffff00; font-weight: bold; }
        .enemy { color: #ff4444; font-weight: bold; }
        .legend { margin-top: 20px; color: #888; }
    </style>
`

// lowerName returns the lower-case name of a cell value, used as CSS class and dump label
func lowerName(c world.Cell) string {
	return strings.ToLower(c.String())
}

// WriteMazeHTML writes m as a standalone HTML page, one row per x index
func WriteMazeHTML(w io.Writer, m *generator.Maze) error {
	if m == nil {
		return fmt.Errorf("no maze")
	}

	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
`)
	html.WriteString(fmt.Sprintf("    <title>%s</title>\n", i18n.T("TITLE")))
	html.WriteString(screenshotStyle)
	html.WriteString("</head>\n<body>\n")

	// Header
	html.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", i18n.T("TITLE")))
	html.WriteString(fmt.Sprintf(`    <div class="summary">%s</div>`+"\n", i18n.T("SUMMARY",
		m.Width(), m.Height(), m.Seed(), m.Start(), m.End(), len(m.Path()))))

	// Map container
	html.WriteString(`    <div class="map-container">` + "\n")
	for x := 0; x < m.Width(); x++ {
		html.WriteString(`        <div class="map-row">`)
		for y := 0; y < m.Height(); y++ {
			c := m.At(x, y)
			html.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, lowerName(c), tui.Icon(c)))
		}
		html.WriteString("</div>\n")
	}
	html.WriteString(`    </div>` + "\n")

	// Legend
	html.WriteString(`    <div class="legend">`)
	for i, c := range world.AllCells() {
		if i > 0 {
			html.WriteString(", ")
		}
		html.WriteString(fmt.Sprintf(`<span class="%s">%s</span> %s`, lowerName(c), tui.Icon(c), i18n.CellName(c)))
	}
	html.WriteString(`</div>` + "\n")

	html.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, html.String())
	return err
}

// SaveScreenshotHTML saves m as a timestamped HTML file in dir (the working
// directory when empty) and returns the filename written.
func SaveScreenshotHTML(dir string, m *generator.Maze) (string, error) {
	if m == nil {
		return "", fmt.Errorf("no maze")
	}
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("maze-%d-%s.html", m.Seed(), timestamp))

	var b strings.Builder
	if err := WriteMazeHTML(&b, m); err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return filename, nil
}
