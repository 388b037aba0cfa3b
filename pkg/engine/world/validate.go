package world

// ValidateElement decides whether a candidate element can be committed.
//
// Every coordinate must lie inside the playable area on a wall tile. Rooms
// additionally need all eight neighbours of every cell to be wall, which
// keeps a one tile moat between a room and anything placed before it.
// Corridors may touch other elements, but only one tile at a time: the
// first run of two consecutive touching coordinates cuts the corridor just
// before the second of them. A corridor whose first tile sits diagonally
// next to another corridor is rejected outright.
//
// The candidate may be truncated in place. It is rejected if one coordinate
// or fewer remains. The grid itself is never modified.
func (g *Grid) ValidateElement(e *Element) bool {
	if e == nil || len(e.coords) == 0 {
		return false
	}

	if e.kind == KindCorridor && g.hasDiagonalCorridor(e.coords[0]) {
		return false
	}

	truncateAt := -1
	previousAdjacent := false

	for i, c := range e.coords {
		if !g.IsPlayablePosition(c.Y, c.X) {
			return false
		}

		if g.tiles[c.Y][c.X] != TileWall {
			return false
		}

		switch e.kind {
		case KindRoom:
			if !g.surroundedByWall(c) {
				return false
			}
		case KindCorridor:
			if i == 0 {
				continue
			}
			adjacent := g.touchesOrthogonally(c)
			if adjacent && previousAdjacent && truncateAt < 0 {
				truncateAt = i
			}
			previousAdjacent = adjacent
		}
	}

	if truncateAt >= 0 {
		e.truncate(truncateAt)
	}

	return len(e.coords) > 1
}

// surroundedByWall returns true if all eight neighbours of c are wall
func (g *Grid) surroundedByWall(c Coordinate) bool {
	for _, off := range orthogonalOffsets {
		if g.TileAt(c.Y+off[1], c.X+off[0]) != TileWall {
			return false
		}
	}
	for _, off := range diagonalOffsets {
		if g.TileAt(c.Y+off[1], c.X+off[0]) != TileWall {
			return false
		}
	}
	return true
}

// touchesOrthogonally returns true if any of the four edge neighbours of c is not wall
func (g *Grid) touchesOrthogonally(c Coordinate) bool {
	for _, off := range orthogonalOffsets {
		if g.TileAt(c.Y+off[1], c.X+off[0]) != TileWall {
			return true
		}
	}
	return false
}

// hasDiagonalCorridor returns true if any corner neighbour of c is a corridor tile
func (g *Grid) hasDiagonalCorridor(c Coordinate) bool {
	for _, off := range diagonalOffsets {
		if g.TileAt(c.Y+off[1], c.X+off[0]) == TileCorridor {
			return true
		}
	}
	return false
}
