package world

import "testing"

func TestTileType_Classes(t *testing.T) {
	for _, tile := range AllTileTypes() {
		if tile.String() == "" {
			t.Errorf("TileType(%d).String() is empty", int(tile))
		}

		classes := 0
		for _, is := range []bool{tile.IsWall(), tile.IsDoor(), tile.IsStairs()} {
			if is {
				classes++
			}
		}
		if classes > 1 {
			t.Errorf("%v belongs to %d tile classes, want at most 1", tile, classes)
		}
	}

	var zero TileType
	if !zero.IsWall() {
		t.Error("zero TileType is not a wall")
	}
	if !TileDoorSecret.IsDoor() {
		t.Error("TileDoorSecret.IsDoor() = false, want true")
	}
}
