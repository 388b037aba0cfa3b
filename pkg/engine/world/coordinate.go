package world

import "fmt"

// Coordinate is a grid position (X = column, Y = row) together with the tile
// it stamps when its element is committed.
type Coordinate struct {
	X    int
	Y    int
	Tile TileType
}

// At creates a coordinate
func At(x, y int, tile TileType) Coordinate {
	return Coordinate{X: x, Y: y, Tile: tile}
}

// Step returns the coordinate one tile away in the given direction, keeping the tile type
func (c Coordinate) Step(dir Direction) Coordinate {
	rowDelta, colDelta := dir.Delta()
	return Coordinate{X: c.X + colDelta, Y: c.Y + rowDelta, Tile: c.Tile}
}

// SamePosition reports whether both coordinates address the same tile, ignoring tile type
func (c Coordinate) SamePosition(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// ManhattanDistance returns |dx| + |dy| between two coordinates
func (c Coordinate) ManhattanDistance(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// orthogonalOffsets are the (dx, dy) offsets of the four edge neighbours
var orthogonalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// diagonalOffsets are the (dx, dy) offsets of the four corner neighbours
var diagonalOffsets = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
