package generator

import (
	"fmt"

	"rpgame/pkg/engine/world"
)

// PlaceStairs puts the up staircase at the centre of a random room and the
// down staircase at the centre of a different room.
func (g *Generator) PlaceStairs(grid *world.Grid) error {
	if _, ok := grid.Start(); ok {
		return ErrStairsPlaced
	}

	rooms := grid.Rooms()
	switch len(rooms) {
	case 0:
		return ErrNoRooms
	case 1:
		return fmt.Errorf("%w: only room %d exists", ErrNotEnoughRooms, rooms[0].ID())
	}

	upIndex := g.rng.Intn(len(rooms))
	up := g.roomCenter(rooms[upIndex])

	// Draw among the other rooms only; distinct rooms never share a centre.
	downIndex := g.rng.Intn(len(rooms) - 1)
	if downIndex >= upIndex {
		downIndex++
	}
	down := g.roomCenter(rooms[downIndex])

	if !grid.SetStart(up.X, up.Y) {
		return fmt.Errorf("%w: cannot place up stairs at %v", ErrStairsPlaced, up)
	}
	if !grid.SetEnd(down.X, down.Y) {
		return fmt.Errorf("%w: cannot place down stairs at %v", ErrStairsPlaced, down)
	}

	g.log.Printf("stairs up at %v in room %d, down at %v in room %d",
		up, rooms[upIndex].ID(), down, rooms[downIndex].ID())
	return nil
}

// roomCenter returns the centre of the room's bounding box. A centre that
// falls between two tiles is rounded up or down at random, per axis.
func (g *Generator) roomCenter(room *world.Element) world.Coordinate {
	minX, minY, maxX, maxY := room.Bounds()
	return world.At(g.centerOf(minX, maxX), g.centerOf(minY, maxY), world.TileRoom)
}

func (g *Generator) centerOf(lo, hi int) int {
	center := lo + (hi-lo)/2
	if (hi-lo)%2 == 1 && g.rng.Intn(2) == 1 {
		center++
	}
	return center
}

// PlaceDoors closes both ends of every corridor with a door where the end
// sits in a one tile gap of a wall. Returns the number of doors placed.
func (g *Generator) PlaceDoors(grid *world.Grid) int {
	placed := 0
	for _, corridor := range grid.Corridors() {
		for _, end := range []world.Coordinate{corridor.First(), corridor.Last()} {
			if !doorFits(grid, end) {
				continue
			}
			if grid.SetTileAt(end.Y, end.X, world.TileDoorClosed) {
				placed++
			}
		}
	}
	return placed
}

// doorFits returns true if a corridor tile can take a door: no closed door
// next to it, and walls on exactly one axis (above and below, or left and
// right, but not both).
func doorFits(grid *world.Grid, c world.Coordinate) bool {
	if grid.TileAt(c.Y, c.X) != world.TileCorridor {
		return false
	}

	walls := make(map[world.Direction]bool, 4)
	for _, dir := range world.AllDirections() {
		n := c.Step(dir)
		tile := grid.TileAt(n.Y, n.X)
		if tile == world.TileDoorClosed {
			return false
		}
		walls[dir] = tile.IsWall()
	}

	vertical := walls[world.Up] && walls[world.Down]
	horizontal := walls[world.Left] && walls[world.Right]
	return vertical != horizontal
}
