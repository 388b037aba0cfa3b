// Package world provides the tile grid primitives of a dungeon level:
// tiles, coordinates, placed elements (rooms and corridors) and the rules
// deciding whether a candidate element may be committed to the grid.
package world

// TileType is the content of a single grid cell
type TileType int

// Tile types. The zero value is TileWall so a fresh grid is solid rock.
const (
	TileWall TileType = iota
	TileRoom
	TileCorridor
	TileStairsUp
	TileStairsDown
	TileDoorClosed
	TileDoorOpen
	TileDoorSecret
)

// AllTileTypes returns every tile type in declaration order
func AllTileTypes() []TileType {
	return []TileType{
		TileWall,
		TileRoom,
		TileCorridor,
		TileStairsUp,
		TileStairsDown,
		TileDoorClosed,
		TileDoorOpen,
		TileDoorSecret,
	}
}

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileRoom:
		return "Room"
	case TileCorridor:
		return "Corridor"
	case TileStairsUp:
		return "StairsUp"
	case TileStairsDown:
		return "StairsDown"
	case TileDoorClosed:
		return "DoorClosed"
	case TileDoorOpen:
		return "DoorOpen"
	case TileDoorSecret:
		return "DoorSecret"
	default:
		return "Unknown"
	}
}

// IsWall returns true for solid tiles
func (t TileType) IsWall() bool {
	return t == TileWall
}

// IsDoor returns true for any of the door tiles
func (t TileType) IsDoor() bool {
	return t == TileDoorClosed || t == TileDoorOpen || t == TileDoorSecret
}

// IsStairs returns true for either staircase
func (t TileType) IsStairs() bool {
	return t == TileStairsUp || t == TileStairsDown
}
