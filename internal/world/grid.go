package world

import "strings"

// Grid is a square map of tiles addressed by (x, y).
// Cells are stored x-major so that index order matches the scan order
// used by noise filling, smoothing and region search.
type Grid struct {
	size  int
	cells []Tile
}

// NewGrid creates a size x size grid filled with walls.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	cells := make([]Tile, size*size)
	for i := range cells {
		cells[i] = TileWall
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) index(x, y int) int {
	return x*g.size + y
}

// At returns the tile at (x, y). Positions outside the grid read as walls.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.cells[g.index(x, y)]
}

// Set stores t at (x, y). Positions outside the grid are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = t
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.At(x, y).IsPassable()
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// SetNoise fills every cell from rng: a draw in [0,100) above density
// yields floor, anything else a wall.
func (g *Grid) SetNoise(density int, rng *RandomSource) {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if rng.Range(0, 100) > density {
				g.cells[g.index(x, y)] = TileFloor
			} else {
				g.cells[g.index(x, y)] = TileWall
			}
		}
	}
}

// ForceBorder turns the outermost rows and columns into walls.
func (g *Grid) ForceBorder() {
	last := g.size - 1
	for i := 0; i < g.size; i++ {
		g.cells[g.index(0, i)] = TileWall
		g.cells[g.index(last, i)] = TileWall
		g.cells[g.index(i, 0)] = TileWall
		g.cells[g.index(i, last)] = TileWall
	}
}

// CountNeighborWalls counts walls in the 3x3 window centred on (x, y).
// Neighbours outside the grid are skipped rather than treated as walls.
func (g *Grid) CountNeighborWalls(x, y int, nb Neighborhood) int {
	return countWalls(g.cells, g.size, x, y, nb)
}

func countWalls(cells []Tile, size, x, y int, nb Neighborhood) int {
	walls := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 && nb == NeighborhoodMoore {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= size || ny < 0 || ny >= size {
				continue
			}
			if cells[nx*size+ny] == TileWall {
				walls++
			}
		}
	}
	return walls
}

// String renders the grid as text, one line per row (y), one rune per column (x).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.size; x++ {
			b.WriteRune(g.At(x, y).Rune())
		}
	}
	return b.String()
}

// Rows returns the grid rendered as one string per row.
func (g *Grid) Rows() []string {
	if g.size == 0 {
		return nil
	}
	return strings.Split(g.String(), "\n")
}
