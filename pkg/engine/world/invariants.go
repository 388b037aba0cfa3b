package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvariant is wrapped by every error returned from CheckInvariants
var ErrInvariant = errors.New("grid invariant violated")

// CheckInvariants verifies the structural rules of a grid:
// uncovered tiles are wall and covered tiles are not, committed elements do
// not share tiles, no room sits inside another room's 8-neighbourhood, no
// corridor has two consecutive tiles after its first touching an earlier
// element, and start and end (once set) lie in two different rooms.
func (g *Grid) CheckInvariants() error {
	covered := mapset.New[[2]int]()
	for _, e := range g.elements {
		for _, c := range e.coords {
			key := [2]int{c.X, c.Y}
			if covered.Has(key) {
				return fmt.Errorf("%w: tile %v covered twice (element %d)", ErrInvariant, c, e.id)
			}
			covered.Put(key)
			if !g.IsPlayablePosition(c.Y, c.X) {
				return fmt.Errorf("%w: element %d touches the border at %v", ErrInvariant, e.id, c)
			}
		}
	}

	var err error
	g.ForEachTile(func(row, col int, tile TileType) {
		if err != nil {
			return
		}
		isCovered := covered.Has([2]int{col, row})
		switch {
		case isCovered && tile.IsWall():
			err = fmt.Errorf("%w: covered tile (%d,%d) is wall", ErrInvariant, col, row)
		case !isCovered && !tile.IsWall():
			err = fmt.Errorf("%w: uncovered tile (%d,%d) is %v", ErrInvariant, col, row, tile)
		}
	})
	if err != nil {
		return err
	}

	if err := g.checkRoomMoats(); err != nil {
		return err
	}

	if err := g.checkCorridorRuns(); err != nil {
		return err
	}

	return g.checkStairs()
}

// checkRoomMoats verifies that no cell of one room neighbours a cell of another
func (g *Grid) checkRoomMoats() error {
	for _, room := range g.Rooms() {
		for _, c := range room.coords {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					other := g.ElementAt(c.X+dx, c.Y+dy)
					if other == nil || other.id == room.id || !other.IsRoom() {
						continue
					}
					return fmt.Errorf("%w: rooms %d and %d touch at %v", ErrInvariant, room.id, other.id, c)
				}
			}
		}
	}
	return nil
}

// checkCorridorRuns verifies that no corridor has two consecutive tiles,
// not counting its first, edge-adjacent to elements committed before it
func (g *Grid) checkCorridorRuns() error {
	for index, e := range g.elements {
		if !e.IsCorridor() {
			continue
		}
		previous := false
		for i, c := range e.coords {
			if i == 0 {
				continue
			}
			touching := g.touchesEarlier(c, index)
			if touching && previous {
				return fmt.Errorf("%w: corridor %d touches earlier elements at %v and %v",
					ErrInvariant, e.id, e.coords[i-1], c)
			}
			previous = touching
		}
	}
	return nil
}

// touchesEarlier returns true if an edge neighbour of c belongs to an element
// committed before the element at index
func (g *Grid) touchesEarlier(c Coordinate, index int) bool {
	for _, off := range orthogonalOffsets {
		x, y := c.X+off[0], c.Y+off[1]
		if !g.IsValidPosition(y, x) {
			continue
		}
		if owner := g.owner[y][x]; owner != noOwner && owner < index {
			return true
		}
	}
	return false
}

func (g *Grid) checkStairs() error {
	if g.start != nil {
		if room := g.ElementAt(g.start.X, g.start.Y); room == nil || !room.IsRoom() {
			return fmt.Errorf("%w: start %v is not inside a room", ErrInvariant, *g.start)
		}
	}
	if g.end != nil {
		if room := g.ElementAt(g.end.X, g.end.Y); room == nil || !room.IsRoom() {
			return fmt.Errorf("%w: end %v is not inside a room", ErrInvariant, *g.end)
		}
	}
	if g.start != nil && g.end != nil {
		if g.start.SamePosition(*g.end) {
			return fmt.Errorf("%w: start and end share tile %v", ErrInvariant, *g.start)
		}
		if g.ElementAt(g.start.X, g.start.Y) == g.ElementAt(g.end.X, g.end.Y) {
			return fmt.Errorf("%w: start and end are in the same room", ErrInvariant)
		}
	}
	return nil
}
