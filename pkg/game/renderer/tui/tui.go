package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"rpgame/pkg/engine/world"
	"rpgame/pkg/game/renderer"
)

// Icon constants for the console map
const (
	IconWall       = "#"
	IconFloor      = "."
	IconStairsUp   = "<"
	IconStairsDown = ">"
	IconDoorClosed = "+"
	IconDoorOpen   = "/"
	IconDoorSecret = "#" // Secret doors look like wall
)

// SummaryLines is the number of lines RenderSummary writes
const SummaryLines = 5

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	useColor bool

	colorWall     color.Style
	colorRoom     color.Style
	colorCorridor color.Style
	colorStairs   color.Style
	colorDoor     color.Style
	colorSubtle   color.Style
	colorHeading  color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer. With useColor false only plain glyphs are written.
func New(useColor bool) *TUIRenderer {
	return &TUIRenderer{useColor: useColor}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorRoom = color.Style{color.FgWhite}
	t.colorCorridor = color.Style{color.FgBlue}
	t.colorStairs = color.Style{color.FgGreen, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
}

// Glyph returns the symbol for a tile type
func (t *TUIRenderer) Glyph(tile world.TileType) string {
	switch tile {
	case world.TileWall:
		return IconWall
	case world.TileRoom, world.TileCorridor:
		return IconFloor
	case world.TileStairsUp:
		return IconStairsUp
	case world.TileStairsDown:
		return IconStairsDown
	case world.TileDoorClosed:
		return IconDoorClosed
	case world.TileDoorOpen:
		return IconDoorOpen
	case world.TileDoorSecret:
		return IconDoorSecret
	default:
		panic(fmt.Sprintf("tui: no glyph for tile %v", tile))
	}
}

// styleFor returns the colour style of a tile type
func (t *TUIRenderer) styleFor(tile world.TileType) color.Style {
	switch {
	case tile == world.TileRoom:
		return t.colorRoom
	case tile == world.TileCorridor:
		return t.colorCorridor
	case tile.IsStairs():
		return t.colorStairs
	case tile == world.TileDoorClosed || tile == world.TileDoorOpen:
		return t.colorDoor
	default:
		return t.colorWall
	}
}

// RenderTile returns the (possibly coloured) string for one tile
func (t *TUIRenderer) RenderTile(tile world.TileType) string {
	glyph := t.Glyph(tile)
	if !t.useColor {
		return glyph
	}
	return t.styleFor(tile).Sprint(glyph)
}

// RenderGrid writes the map, one line per row
func (t *TUIRenderer) RenderGrid(w io.Writer, grid *world.Grid) {
	var line strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		line.Reset()
		for col := 0; col < grid.Cols(); col++ {
			line.WriteString(t.RenderTile(grid.TileAt(row, col)))
		}
		fmt.Fprintln(w, line.String())
	}
}

// RenderSummary writes fill rate, element counts, stairs and the legend
func (t *TUIRenderer) RenderSummary(w io.Writer, grid *world.Grid, seed int64) {
	fmt.Fprintln(w, t.heading(gotext.Get("%d%% of map filled", grid.FillRate())))

	fmt.Fprintln(w, gotext.Get("%d rooms, %d corridors, %d doors, %d connected regions",
		grid.CountKind(world.KindRoom),
		grid.CountKind(world.KindCorridor),
		grid.CountTiles(world.TileDoorClosed),
		len(grid.Regions())))

	start, hasStart := grid.Start()
	end, hasEnd := grid.End()
	if hasStart && hasEnd {
		fmt.Fprintln(w, gotext.Get("Stairs up at %v, stairs down at %v", start, end))
	} else {
		fmt.Fprintln(w, gotext.Get("No stairs placed"))
	}

	fmt.Fprintln(w, t.subtle(gotext.Get("Seed: %d", seed)))
	fmt.Fprintln(w, t.subtle(t.legend()))
}

func (t *TUIRenderer) legend() string {
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		IconWall, gotext.Get("wall"),
		IconFloor, gotext.Get("floor"),
		IconStairsUp, gotext.Get("stairs up"),
		IconStairsDown, gotext.Get("stairs down"),
		IconDoorClosed, gotext.Get("door"))
}

func (t *TUIRenderer) heading(s string) string {
	if !t.useColor {
		return s
	}
	return t.colorHeading.Sprint(s)
}

func (t *TUIRenderer) subtle(s string) string {
	if !t.useColor {
		return s
	}
	return t.colorSubtle.Sprint(s)
}
