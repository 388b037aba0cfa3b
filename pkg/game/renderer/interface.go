package renderer

import (
	"io"

	"rpgame/pkg/engine/world"
)

// Renderer defines the interface for dungeon rendering backends.
// Renderers only read finished tile values; they never change the grid.
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// RenderGrid writes the full map, one line per grid row
	RenderGrid(w io.Writer, grid *world.Grid)

	// RenderSummary writes the statistics shown below the map
	RenderSummary(w io.Writer, grid *world.Grid, seed int64)

	// Glyph returns the symbol used for a tile type
	Glyph(tile world.TileType) string
}

// Current holds the active renderer instance
var Current Renderer
