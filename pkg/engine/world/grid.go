package world

import (
	"fmt"
)

// noOwner marks a tile not covered by any committed element in the owner index
const noOwner = -1

// Grid represents a dungeon level: a fixed rectangle of tiles and the
// elements committed onto it
type Grid struct {
	tiles [][]TileType
	owner [][]int // index into elements, or noOwner
	rows  int
	cols  int

	elements []*Element
	nextID   ElementID

	start *Coordinate
	end   *Coordinate
}

// NewGrid creates a new grid with the given dimensions, every tile a wall
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions, discarding any
// previous content
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols

	g.tiles = make([][]TileType, rows)
	g.owner = make([][]int, rows)
	for row := 0; row < rows; row++ {
		g.tiles[row] = make([]TileType, cols)
		g.owner[row] = make([]int, cols)
		for col := 0; col < cols; col++ {
			g.owner[row][col] = noOwner
		}
	}

	g.elements = nil
	g.nextID = 0
	g.start = nil
	g.end = nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter).
// Elements may only ever cover playable positions.
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// TileAt returns the tile at the given position. Positions outside the grid read as wall.
func (g *Grid) TileAt(row, col int) TileType {
	if !g.IsValidPosition(row, col) {
		return TileWall
	}
	return g.tiles[row][col]
}

// SetTileAt overwrites a single tile of a committed element, e.g. to place a door.
// Returns false if out of bounds or the tile is not covered by any element.
func (g *Grid) SetTileAt(row, col int, tile TileType) bool {
	if !g.IsValidPosition(row, col) || g.owner[row][col] == noOwner {
		return false
	}
	g.tiles[row][col] = tile
	return true
}

// FillRate returns the percentage of non-wall tiles, rounded up
func (g *Grid) FillRate() int {
	total := g.rows * g.cols
	filled := 0
	g.ForEachTile(func(row, col int, tile TileType) {
		if !tile.IsWall() {
			filled++
		}
	})
	return (filled*100 + total - 1) / total
}

// NewElement creates an empty candidate element with a fresh handle.
// Candidates that are never committed simply leave a gap in the handles.
func (g *Grid) NewElement(kind ElementKind) *Element {
	e := newElement(g.nextID, kind)
	g.nextID++
	return e
}

// Commit stamps every coordinate of the element onto the grid and appends it
// to the committed elements. Callers must validate the element first.
func (g *Grid) Commit(e *Element) {
	if e.committed {
		panic(fmt.Sprintf("world: element %d committed twice", e.id))
	}

	index := len(g.elements)
	for _, c := range e.coords {
		g.tiles[c.Y][c.X] = c.Tile
		g.owner[c.Y][c.X] = index
	}

	e.committed = true
	g.elements = append(g.elements, e)
}

// Elements returns the committed elements in commit order
func (g *Grid) Elements() []*Element {
	out := make([]*Element, len(g.elements))
	copy(out, g.elements)
	return out
}

// Rooms returns the committed rooms in commit order
func (g *Grid) Rooms() []*Element {
	return g.elementsOfKind(KindRoom)
}

// Corridors returns the committed corridors in commit order
func (g *Grid) Corridors() []*Element {
	return g.elementsOfKind(KindCorridor)
}

func (g *Grid) elementsOfKind(kind ElementKind) []*Element {
	var out []*Element
	for _, e := range g.elements {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// CountKind returns the number of committed elements of the given kind
func (g *Grid) CountKind(kind ElementKind) int {
	count := 0
	for _, e := range g.elements {
		if e.kind == kind {
			count++
		}
	}
	return count
}

// LastElement returns the most recently committed element, or nil
func (g *Grid) LastElement() *Element {
	if len(g.elements) == 0 {
		return nil
	}
	return g.elements[len(g.elements)-1]
}

// Element returns the committed element with the given handle, or nil
func (g *Grid) Element(id ElementID) *Element {
	for _, e := range g.elements {
		if e.id == id {
			return e
		}
	}
	return nil
}

// ElementAt returns the committed element covering (x, y), or nil
func (g *Grid) ElementAt(x, y int) *Element {
	if !g.IsValidPosition(y, x) {
		return nil
	}
	index := g.owner[y][x]
	if index == noOwner {
		return nil
	}
	return g.elements[index]
}

// IsOccupied returns true if a committed element covers (x, y)
func (g *Grid) IsOccupied(x, y int) bool {
	return g.ElementAt(x, y) != nil
}

// Start returns the up staircase, if placed
func (g *Grid) Start() (Coordinate, bool) {
	if g.start == nil {
		return Coordinate{}, false
	}
	return *g.start, true
}

// End returns the down staircase, if placed
func (g *Grid) End() (Coordinate, bool) {
	if g.end == nil {
		return Coordinate{}, false
	}
	return *g.end, true
}

// SetStart places the up staircase on a room tile. Returns false if the start
// is already set or (x, y) is not a room tile.
func (g *Grid) SetStart(x, y int) bool {
	if g.start != nil || g.TileAt(y, x) != TileRoom {
		return false
	}
	c := At(x, y, TileStairsUp)
	g.tiles[y][x] = TileStairsUp
	g.start = &c
	return true
}

// SetEnd places the down staircase on a room tile. Returns false if the end
// is already set or (x, y) is not a room tile.
func (g *Grid) SetEnd(x, y int) bool {
	if g.end != nil || g.TileAt(y, x) != TileRoom {
		return false
	}
	c := At(x, y, TileStairsDown)
	g.tiles[y][x] = TileStairsDown
	g.end = &c
	return true
}

// ForEachTile iterates over all tiles in row-major order
func (g *Grid) ForEachTile(fn func(row, col int, tile TileType)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.tiles[row][col])
		}
	}
}

// CountTiles returns the number of tiles of the given type
func (g *Grid) CountTiles(tile TileType) int {
	count := 0
	g.ForEachTile(func(row, col int, t TileType) {
		if t == tile {
			count++
		}
	})
	return count
}
