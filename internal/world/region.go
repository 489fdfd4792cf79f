package world

// Region is a maximal 4-connected set of cells sharing one tile state.
// Cells[0] is the cell the search started from.
type Region struct {
	Tile  Tile
	Cells []Coordinate
}

// Size returns the number of cells in the region.
func (r Region) Size() int {
	return len(r.Cells)
}

// Contains returns true if c belongs to the region.
func (r Region) Contains(c Coordinate) bool {
	for _, cell := range r.Cells {
		if cell == c {
			return true
		}
	}
	return false
}

// FindRegions labels every region of target tiles in g.
// Regions are returned in the order their first cell is met by an
// x-major scan; every target cell belongs to exactly one region.
func FindRegions(g *Grid, target Tile) []Region {
	visited := make([]bool, len(g.cells))
	var regions []Region
	var queue []Coordinate

	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			i := g.index(x, y)
			if visited[i] || g.cells[i] != target {
				continue
			}
			visited[i] = true
			queue = append(queue[:0], Coordinate{X: x, Y: y})

			// BFS over orthogonal neighbours; the queue doubles as the cell list.
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range queue[qi].Neighbors4() {
					if !g.InBounds(n.X, n.Y) {
						continue
					}
					ni := g.index(n.X, n.Y)
					if visited[ni] || g.cells[ni] != target {
						continue
					}
					visited[ni] = true
					queue = append(queue, n)
				}
			}

			cells := make([]Coordinate, len(queue))
			copy(cells, queue)
			regions = append(regions, Region{Tile: target, Cells: cells})
		}
	}
	return regions
}

// RemoveUndersized turns every region smaller than threshold into walls.
// It works on the given snapshot and never re-runs region detection.
// It returns the regions left intact and the number of cells converted.
func RemoveUndersized(g *Grid, regions []Region, threshold int) (kept []Region, removed int) {
	for _, r := range regions {
		if r.Size() >= threshold {
			kept = append(kept, r)
			continue
		}
		for _, c := range r.Cells {
			if g.At(c.X, c.Y) != TileWall {
				removed++
			}
			g.Set(c.X, c.Y, TileWall)
		}
	}
	return kept, removed
}

// LargestRegion returns the index of the biggest region, preferring the
// earliest on ties, or -1 if regions is empty.
func LargestRegion(regions []Region) int {
	best := -1
	for i, r := range regions {
		if best < 0 || r.Size() > regions[best].Size() {
			best = i
		}
	}
	return best
}
