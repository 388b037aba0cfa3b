package world

import "testing"

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir      Direction
		row, col int
	}{
		{Left, 0, -1},
		{Right, 0, 1},
		{Up, -1, 0},
		{Down, 1, 0},
	}
	for _, tt := range tests {
		row, col := tt.dir.Delta()
		if row != tt.row || col != tt.col {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, row, col, tt.row, tt.col)
		}
	}
}

func TestDirection_NextCycles(t *testing.T) {
	seen := map[Direction]bool{}
	d := Left
	for i := 0; i < len(AllDirections()); i++ {
		seen[d] = true
		d = d.Next()
	}
	if d != Left {
		t.Errorf("after a full cycle got %v, want Left", d)
	}
	if len(seen) != len(AllDirections()) {
		t.Errorf("Next visited %d directions, want %d", len(seen), len(AllDirections()))
	}
}

func TestDirection_Invalid(t *testing.T) {
	d := Direction(7)
	if d.IsValid() {
		t.Error("Direction(7).IsValid() = true, want false")
	}
	if got := d.String(); got != "Direction(7)" {
		t.Errorf("String() = %q, want %q", got, "Direction(7)")
	}

	defer func() {
		if recover() == nil {
			t.Error("Delta on invalid direction did not panic")
		}
	}()
	d.Delta()
}

func TestCoordinate_Step(t *testing.T) {
	c := At(3, 3, TileCorridor)
	if got := c.Step(Up); got.X != 3 || got.Y != 2 || got.Tile != TileCorridor {
		t.Errorf("Step(Up) = %v (%v), want (3,2) corridor", got, got.Tile)
	}
	if got := c.Step(Right); got.X != 4 || got.Y != 3 {
		t.Errorf("Step(Right) = %v, want (4,3)", got)
	}
}
