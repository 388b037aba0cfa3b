package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rpgame/pkg/engine/world"
	"rpgame/pkg/game/renderer"
)

// SaveScreenshotHTML writes the whole map as a standalone HTML page, using the
// glyphs of the given renderer. An empty path gets a timestamped name.
// Returns the absolute path written.
func SaveScreenshotHTML(grid *world.Grid, r renderer.Renderer, seed int64, path string) (string, error) {
	if grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, []byte(screenshotHTML(grid, r, seed)), 0644); err != nil {
		return "", err
	}
	return absPath, nil
}

func screenshotHTML(grid *world.Grid, r renderer.Renderer, seed int64) string {
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Dungeon map</title>
<style>
body { background: #101014; color: #ddd; font-family: monospace; margin: 24px; }
.header { color: #c9a0ff; font-size: 18px; }
.stats { color: #888; margin: 6px 0 18px; }
.map { background: #08080c; padding: 16px; display: inline-block; }
.map-row { white-space: pre; font-size: 15px; line-height: 1.15; }
.wall { color: #555; }
.room { color: #ddd; }
.corridor { color: #7a9cff; }
.stairs { color: #3f3; font-weight: bold; }
.door { color: #fd3; font-weight: bold; }
</style>
</head>
<body>
`)

	fmt.Fprintf(&html, `<div class="header">Seed %d</div>`+"\n", seed)
	fmt.Fprintf(&html, `<div class="stats">%dx%d, %d%% filled, %d rooms, %d corridors</div>`+"\n",
		grid.Rows(), grid.Cols(), grid.FillRate(),
		grid.CountKind(world.KindRoom), grid.CountKind(world.KindCorridor))

	html.WriteString(`<div class="map">` + "\n")
	for row := 0; row < grid.Rows(); row++ {
		html.WriteString(`<div class="map-row">`)
		for col := 0; col < grid.Cols(); col++ {
			tile := grid.TileAt(row, col)
			fmt.Fprintf(&html, `<span class="%s">%s</span>`, tileClass(tile), r.Glyph(tile))
		}
		html.WriteString("</div>\n")
	}
	html.WriteString("</div>\n</body>\n</html>\n")
	return html.String()
}

// tileClass returns the CSS class for a tile
func tileClass(tile world.TileType) string {
	switch {
	case tile == world.TileRoom:
		return "room"
	case tile == world.TileCorridor:
		return "corridor"
	case tile.IsStairs():
		return "stairs"
	case tile == world.TileDoorClosed || tile == world.TileDoorOpen:
		return "door"
	default:
		return "wall"
	}
}
