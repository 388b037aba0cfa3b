package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FindNearestElement looks for the closest committed element in the given
// direction. Starting next to the element's end point it scans whole rows
// (Up/Down) or columns (Left/Right) outward; the first row or column holding
// any other element decides. Among the elements found there the one with
// the smallest Distance wins, ties going to the earliest committed. Elements
// further out are never considered, even when they would be closer.
// Returns nil if nothing is found before the edge of the grid.
//
// Every row visited costs a pass over all elements; fine at dungeon scale.
func (g *Grid) FindNearestElement(e *Element, dir Direction) *Element {
	start := e.EndPoint(dir)
	rowDelta, colDelta := dir.Delta()

	x, y := start.X+colDelta, start.Y+rowDelta
	for g.lineInRange(dir, x, y) {
		var found *Element
		bestDistance := 0

		for _, candidate := range g.elements {
			if candidate.id == e.id {
				continue
			}

			var hit bool
			if dir.IsVertical() {
				hit = candidate.OnRow(y)
			} else {
				hit = candidate.OnColumn(x)
			}
			if !hit {
				continue
			}

			d := Distance(e, candidate)
			if found == nil || d < bestDistance {
				found = candidate
				bestDistance = d
			}
		}

		if found != nil {
			return found
		}

		x += colDelta
		y += rowDelta
	}

	return nil
}

// lineInRange reports whether the row (Up/Down) or column (Left/Right) being scanned exists
func (g *Grid) lineInRange(dir Direction, x, y int) bool {
	if dir.IsVertical() {
		return y >= 0 && y < g.rows
	}
	return x >= 0 && x < g.cols
}

// DirectionsOnRow collects, over all committed elements sharing row y, the
// horizontal directions (Left/Right) in which they lie entirely relative to (x, y)
func (g *Grid) DirectionsOnRow(x, y int) mapset.Set[Direction] {
	dirs := mapset.New[Direction]()
	for _, e := range g.elements {
		if !e.OnRow(y) {
			continue
		}
		rel := e.DirectionsFrom(x, y)
		for _, d := range []Direction{Left, Right} {
			if rel.Has(d) {
				dirs.Put(d)
			}
		}
	}
	return dirs
}

// DirectionsOnColumn collects, over all committed elements sharing column x,
// the vertical directions (Up/Down) in which they lie entirely relative to (x, y)
func (g *Grid) DirectionsOnColumn(x, y int) mapset.Set[Direction] {
	dirs := mapset.New[Direction]()
	for _, e := range g.elements {
		if !e.OnColumn(x) {
			continue
		}
		rel := e.DirectionsFrom(x, y)
		for _, d := range []Direction{Up, Down} {
			if rel.Has(d) {
				dirs.Put(d)
			}
		}
	}
	return dirs
}

// SortedDirections returns the members of a direction set in AllDirections
// order, so random picks from a set stay reproducible.
func SortedDirections(set mapset.Set[Direction]) []Direction {
	var out []Direction
	for _, d := range AllDirections() {
		if set.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
