// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rpgame/pkg/engine/world"
	"rpgame/pkg/game/generator"
)

// DefaultDumpFilename is used when no path is given
const DefaultDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile. Unlike the
// console renderer, every tile type gets its own symbol.
func tileSymbol(tile world.TileType) rune {
	switch tile {
	case world.TileWall:
		return '#'
	case world.TileRoom:
		return '.'
	case world.TileCorridor:
		return ','
	case world.TileStairsUp:
		return '<'
	case world.TileStairsDown:
		return '>'
	case world.TileDoorClosed:
		return '+'
	case world.TileDoorOpen:
		return '/'
	case world.TileDoorSecret:
		return 's'
	default:
		return '?'
	}
}

// writeMapGrid writes the grid, one line per row
func writeMapGrid(w io.Writer, grid *world.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", tileSymbol(grid.TileAt(row, col)))
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump: metadata, legend, map, elements and regions.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, grid *world.Grid, cfg generator.Config) {
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, elements, regions) ===")
	fmt.Fprintln(w, "")

	// --- Metadata ---
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", cfg.Seed)
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "fill_target: %d\n", cfg.FillTarget)
	fmt.Fprintf(w, "fill_rate: %d\n", grid.FillRate())
	fmt.Fprintf(w, "batch_size: %d\n", cfg.BatchSize)
	fmt.Fprintf(w, "rooms: %d\n", grid.CountKind(world.KindRoom))
	fmt.Fprintf(w, "corridors: %d\n", grid.CountKind(world.KindCorridor))
	fmt.Fprintf(w, "doors: %d\n", grid.CountTiles(world.TileDoorClosed))
	if start, ok := grid.Start(); ok {
		fmt.Fprintf(w, "start: %d,%d\n", start.X, start.Y)
	} else {
		fmt.Fprintln(w, "start: none")
	}
	if end, ok := grid.End(); ok {
		fmt.Fprintf(w, "end: %d,%d\n", end.X, end.Y)
	} else {
		fmt.Fprintln(w, "end: none")
	}
	if err := grid.CheckInvariants(); err != nil {
		fmt.Fprintf(w, "invariants: %v\n", err)
	} else {
		fmt.Fprintln(w, "invariants: ok")
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	for _, tile := range world.AllTileTypes() {
		fmt.Fprintf(w, "  %c = %s\n", tileSymbol(tile), tile)
	}
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, grid)
	fmt.Fprintln(w, "")

	// --- Elements ---
	fmt.Fprintln(w, "--- Elements (commit order) ---")
	for _, e := range grid.Elements() {
		minX, minY, maxX, maxY := e.Bounds()
		fmt.Fprintf(w, "  id: %d kind: %s tiles: %d bounds: %d,%d-%d,%d first: %d,%d last: %d,%d\n",
			e.ID(), e.Kind(), e.Len(), minX, minY, maxX, maxY,
			e.First().X, e.First().Y, e.Last().X, e.Last().Y)
	}
	fmt.Fprintln(w, "")

	// --- Regions ---
	fmt.Fprintln(w, "--- Regions (elements touching edge to edge) ---")
	for i, region := range grid.Regions() {
		rooms, corridors := 0, 0
		for _, id := range region.Elements {
			if grid.Element(id).IsRoom() {
				rooms++
			} else {
				corridors++
			}
		}
		fmt.Fprintf(w, "  region: %d rooms: %d corridors: %d elements: %v\n", i, rooms, corridors, region.Elements)
	}
}

// DumpMapToFile writes WriteDump output to path (DefaultDumpFilename when
// empty) and returns the absolute path written.
func DumpMapToFile(grid *world.Grid, cfg generator.Config, path string) (string, error) {
	if grid == nil {
		return "", fmt.Errorf("no grid")
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
	defer f.Close()

	WriteDump(f, grid, cfg)

	return absPath, nil
}
