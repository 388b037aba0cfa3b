package generator

import (
	"rpgame/pkg/engine/world"
)

// GenerateRoom builds a random rectangular room candidate and validates it
// against the grid. The anchor is never on the border and both sides are
// between minRoomSize and maxRoomSize tiles. Cells are enumerated row by row.
// On success the caller commits the returned room. Grids smaller than
// minGridSize on either side cannot hold a room and always fail.
func (g *Generator) GenerateRoom(grid *world.Grid) (*world.Element, bool) {
	if grid.Rows() < minGridSize || grid.Cols() < minGridSize {
		return nil, false
	}

	startCol := g.intRange(1, grid.Cols()-2)
	startRow := g.intRange(1, grid.Rows()-2)

	roomWidth := g.intRange(minRoomSize, maxRoomSize)
	roomHeight := g.intRange(minRoomSize, maxRoomSize)

	room := grid.NewElement(world.KindRoom)
	for row := startRow; row < startRow+roomHeight; row++ {
		for col := startCol; col < startCol+roomWidth; col++ {
			room.Add(world.At(col, row, world.TileRoom))
		}
	}

	if !grid.ValidateElement(room) {
		return nil, false
	}
	return room, true
}
