package generator

import (
	"fmt"

	"rpgame/pkg/engine/world"
)

// edgeRunsAlong gives, per carving direction, the direction in which the
// room's facing edge runs away from its end point. The corridor start is
// offset along it.
var edgeRunsAlong = map[world.Direction]world.Direction{
	world.Left:  world.Down,
	world.Right: world.Down,
	world.Up:    world.Right,
	world.Down:  world.Right,
}

// CorridorFromRoom carves a corridor out of the room towards whatever lies
// beyond it. The four directions are tried in turn, starting from a random
// one, until a corridor is committed.
func (g *Generator) CorridorFromRoom(grid *world.Grid, room *world.Element) error {
	if !room.IsRoom() {
		panic(fmt.Sprintf("generator: element %d is a %v, corridors start from rooms", room.ID(), room.Kind()))
	}

	directions := world.AllDirections()
	dir := directions[g.rng.Intn(len(directions))]
	for attempt := 0; attempt < len(directions); attempt++ {
		if g.CorridorFromRoomInDirection(grid, room, dir) {
			return nil
		}
		dir = dir.Next()
	}

	return fmt.Errorf("%w from room %d", ErrNoCorridor, room.ID())
}

// CorridorFromRoomInDirection walks a corridor out of the room, heading in
// dir at first. At every step the walk looks along its row and column: it
// keeps going while something lies straight ahead, otherwise turns towards
// a randomly chosen element found to the side. Once turned, that element
// lies straight ahead, so a walk turns at most once and never crosses its
// own path. The walk ends when it runs into a committed element, in which
// case the path is validated and committed, or when it leaves the grid.
func (g *Generator) CorridorFromRoomInDirection(grid *world.Grid, room *world.Element, dir world.Direction) bool {
	pos := g.corridorStart(room, dir)
	corridor := grid.NewElement(world.KindCorridor)

	for {
		corridor.Add(pos)

		pos = pos.Step(dir)

		if pos.X <= 0 || pos.Y <= 0 || pos.X >= grid.Cols() || pos.Y >= grid.Rows() {
			return false
		}

		if grid.IsOccupied(pos.X, pos.Y) {
			if !grid.ValidateElement(corridor) {
				return false
			}
			grid.Commit(corridor)
			return true
		}

		dir = g.nextHeading(grid, pos, dir)
	}
}

// corridorStart returns the first corridor tile: one step outside the room's
// wall facing dir, at a random offset along that wall
func (g *Generator) corridorStart(room *world.Element, dir world.Direction) world.Coordinate {
	along, ok := edgeRunsAlong[dir]
	if !ok {
		panic(fmt.Sprintf("generator: unknown direction %v", dir))
	}

	span := room.Height()
	if along == world.Right {
		span = room.Width()
	}
	offset := g.intRange(0, span)

	anchor := room.EndPoint(dir)
	start := world.At(anchor.X, anchor.Y, world.TileCorridor).Step(dir)

	rowDelta, colDelta := along.Delta()
	start.X += colDelta * offset
	start.Y += rowDelta * offset
	return start
}

// nextHeading decides the heading after reaching pos
func (g *Generator) nextHeading(grid *world.Grid, pos world.Coordinate, dir world.Direction) world.Direction {
	onRow := grid.DirectionsOnRow(pos.X, pos.Y)
	onColumn := grid.DirectionsOnColumn(pos.X, pos.Y)

	ahead, across := onColumn, onRow
	if !dir.IsVertical() {
		ahead, across = onRow, onColumn
	}

	if ahead.Has(dir) {
		return dir
	}

	options := world.SortedDirections(across)
	if len(options) == 0 {
		return dir
	}
	return options[g.rng.Intn(len(options))]
}
