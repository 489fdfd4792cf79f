// Package world provides cave generation and map management.
package world

// Tile represents the state of a single cave cell.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Coordinate identifies one grid cell.
type Coordinate struct {
	X, Y int
}

// neighbor4 lists orthogonal offsets in N, E, S, W order.
var neighbor4 = [4]Coordinate{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbors4 returns the four orthogonal neighbours of c.
// The result may contain coordinates outside any grid.
func (c Coordinate) Neighbors4() [4]Coordinate {
	var out [4]Coordinate
	for i, d := range neighbor4 {
		out[i] = Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
	}
	return out
}
