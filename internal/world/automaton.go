package world

// Automaton applies the cave smoothing rule: a cell becomes a wall when
// its neighborhood holds at least Allowance walls, floor otherwise.
type Automaton struct {
	Allowance    int
	Mode         SmoothingMode
	Neighborhood Neighborhood
}

// NewAutomaton builds the automaton described by params.
func NewAutomaton(params Parameters) Automaton {
	return Automaton{
		Allowance:    params.BorderingWallsAllowance,
		Mode:         params.Smoothing,
		Neighborhood: params.Neighborhood,
	}
}

// Run applies the given number of generations to g. Zero generations is a no-op.
func (a Automaton) Run(g *Grid, generations int) {
	if generations <= 0 {
		return
	}
	var scratch []Tile
	if a.Mode == SmoothingDoubleBuffered {
		scratch = make([]Tile, len(g.cells))
	}
	for i := 0; i < generations; i++ {
		scratch = a.step(g, scratch)
	}
}

// Step applies a single generation to g.
func (a Automaton) Step(g *Grid) {
	a.Run(g, 1)
}

// step runs one generation and returns the spare buffer for reuse.
func (a Automaton) step(g *Grid, scratch []Tile) []Tile {
	src := g.cells
	dst := g.cells
	if a.Mode == SmoothingDoubleBuffered {
		dst = scratch
	}
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if countWalls(src, g.size, x, y, a.Neighborhood) >= a.Allowance {
				dst[x*g.size+y] = TileWall
			} else {
				dst[x*g.size+y] = TileFloor
			}
		}
	}
	if a.Mode == SmoothingDoubleBuffered {
		g.cells, scratch = dst, src
	}
	return scratch
}
