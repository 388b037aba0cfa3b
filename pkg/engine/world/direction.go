package world

import "fmt"

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	Left Direction = iota
	Right
	Up
	Down
)

// directionCount is the number of valid directions (for cycling).
const directionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Left && d <= Down
}

// mustBeValid panics on a direction outside the closed set. Callers passing
// an unknown direction have a bug; there is no sensible default.
func (d Direction) mustBeValid() {
	if !d.IsValid() {
		panic(fmt.Sprintf("world: unknown direction %v", d))
	}
}

// IsVertical reports whether the direction moves along a column (Up/Down)
func (d Direction) IsVertical() bool {
	d.mustBeValid()
	return d == Up || d == Down
}

// Next returns the direction following d when cycling through AllDirections
func (d Direction) Next() Direction {
	d.mustBeValid()
	return Direction((int(d) + 1) % directionCount)
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	}
	d.mustBeValid()
	return 0, 0
}
