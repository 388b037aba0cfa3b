package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ElementID is the stable handle of an element. It is only used for
// identity and exclusion, never for ordering.
type ElementID int

// ElementKind tells rooms and corridors apart
type ElementKind int

// Element kinds
const (
	KindRoom ElementKind = iota
	KindCorridor
)

// String returns the string representation of an element kind
func (k ElementKind) String() string {
	switch k {
	case KindRoom:
		return "Room"
	case KindCorridor:
		return "Corridor"
	default:
		return "Unknown"
	}
}

// Element is a room or corridor: an ordered sequence of coordinates.
// For a corridor the order is the path from one end to the other; for a
// room it is only an enumeration order.
type Element struct {
	id        ElementID
	kind      ElementKind
	coords    []Coordinate
	committed bool
}

// newElement creates an empty candidate element. Grids hand out ids, see Grid.NewElement.
func newElement(id ElementID, kind ElementKind) *Element {
	return &Element{id: id, kind: kind}
}

// ID returns the element's handle
func (e *Element) ID() ElementID {
	return e.id
}

// Kind returns whether the element is a room or a corridor
func (e *Element) Kind() ElementKind {
	return e.kind
}

// IsRoom returns true if the element is a room
func (e *Element) IsRoom() bool {
	return e.kind == KindRoom
}

// IsCorridor returns true if the element is a corridor
func (e *Element) IsCorridor() bool {
	return e.kind == KindCorridor
}

// Committed returns true once the element has been stamped onto a grid
func (e *Element) Committed() bool {
	return e.committed
}

// Len returns the number of coordinates
func (e *Element) Len() int {
	return len(e.coords)
}

// Coordinates returns a copy of the element's coordinates in order
func (e *Element) Coordinates() []Coordinate {
	out := make([]Coordinate, len(e.coords))
	copy(out, e.coords)
	return out
}

// First returns the first coordinate. The element must not be empty.
func (e *Element) First() Coordinate {
	return e.coords[0]
}

// Last returns the last coordinate. The element must not be empty.
func (e *Element) Last() Coordinate {
	return e.coords[len(e.coords)-1]
}

// Add appends a coordinate to a candidate element
func (e *Element) Add(c Coordinate) {
	if e.committed {
		panic(fmt.Sprintf("world: element %d is committed and can no longer change", e.id))
	}
	e.coords = append(e.coords, c)
}

// truncate drops the coordinate at index and everything after it
func (e *Element) truncate(index int) {
	if index < 0 || index >= len(e.coords) {
		return
	}
	e.coords = e.coords[:index]
}

// Contains checks if the element covers the given position
func (e *Element) Contains(x, y int) bool {
	for _, c := range e.coords {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// OnRow returns true if any coordinate lies on row y
func (e *Element) OnRow(y int) bool {
	for _, c := range e.coords {
		if c.Y == y {
			return true
		}
	}
	return false
}

// OnColumn returns true if any coordinate lies on column x
func (e *Element) OnColumn(x int) bool {
	for _, c := range e.coords {
		if c.X == x {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of the element. An empty element returns zeros.
func (e *Element) Bounds() (minX, minY, maxX, maxY int) {
	for i, c := range e.coords {
		if i == 0 {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}

// Width returns max x - min x. A 3-wide room has width 2.
func (e *Element) Width() int {
	minX, _, maxX, _ := e.Bounds()
	return maxX - minX
}

// Height returns max y - min y
func (e *Element) Height() int {
	_, minY, _, maxY := e.Bounds()
	return maxY - minY
}

// EndPoint returns the coordinate of the element facing the given direction,
// used as an anchor for carving and searching. For rectangles this is the
// top-left corner for Left and Up, the top-right corner for Right and the
// bottom-left corner for Down. The first coordinate in enumeration order wins ties.
func (e *Element) EndPoint(dir Direction) Coordinate {
	dir.mustBeValid()
	if len(e.coords) == 0 {
		panic(fmt.Sprintf("world: element %d has no coordinates", e.id))
	}

	best := e.coords[0]
	for _, c := range e.coords[1:] {
		if endPointBetter(dir, c, best) {
			best = c
		}
	}
	return best
}

// endPointBetter orders candidates by x first and y second: Left and Up
// take minimal x then minimal y, Right maximal x then minimal y, Down
// minimal x then maximal y.
func endPointBetter(dir Direction, c, best Coordinate) bool {
	switch dir {
	case Left, Up:
		return c.X < best.X || (c.X == best.X && c.Y < best.Y)
	case Right:
		return c.X > best.X || (c.X == best.X && c.Y < best.Y)
	default:
		return c.X < best.X || (c.X == best.X && c.Y > best.Y)
	}
}

// DirectionsFrom returns the set of directions in which the element lies
// entirely when seen from (x, y). An element lies Left only if every
// coordinate has x strictly less than the probe; an element straddling the
// probe on an axis contributes nothing on that axis.
func (e *Element) DirectionsFrom(x, y int) mapset.Set[Direction] {
	dirs := mapset.New[Direction]()
	if len(e.coords) == 0 {
		return dirs
	}

	minX, minY, maxX, maxY := e.Bounds()
	if maxX < x {
		dirs.Put(Left)
	}
	if minX > x {
		dirs.Put(Right)
	}
	if maxY < y {
		dirs.Put(Up)
	}
	if minY > y {
		dirs.Put(Down)
	}
	return dirs
}

// Distance returns the minimum Manhattan distance over all coordinate pairs
// of the two elements. It is symmetric. Empty elements are at distance -1.
func Distance(a, b *Element) int {
	best := -1
	for _, ca := range a.coords {
		for _, cb := range b.coords {
			d := ca.ManhattanDistance(cb)
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}
