package world

import "testing"

// elementOf builds a candidate element from (x, y) points
func elementOf(g *Grid, kind ElementKind, points ...[2]int) *Element {
	tile := TileRoom
	if kind == KindCorridor {
		tile = TileCorridor
	}
	e := g.NewElement(kind)
	for _, p := range points {
		e.Add(At(p[0], p[1], tile))
	}
	return e
}

// rect returns the points of the rectangle [x0,x1] x [y0,y1] in row-major order
func rect(x0, y0, x1, y1 int) [][2]int {
	var points [][2]int
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			points = append(points, [2]int{x, y})
		}
	}
	return points
}

// mustCommit validates and commits an element, failing the test if it is rejected
func mustCommit(t *testing.T, g *Grid, e *Element) *Element {
	t.Helper()
	if !g.ValidateElement(e) {
		t.Fatalf("ValidateElement(%v %v) = false, want true", e.Kind(), e.Coordinates())
	}
	g.Commit(e)
	return e
}

// commitRoom validates and commits the rectangle [x0,x1] x [y0,y1] as a room
func commitRoom(t *testing.T, g *Grid, x0, y0, x1, y1 int) *Element {
	t.Helper()
	return mustCommit(t, g, elementOf(g, KindRoom, rect(x0, y0, x1, y1)...))
}
