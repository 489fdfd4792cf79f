package world

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
)

const (
	// Default cave dimensions
	DefaultSize = 100
	// DefaultSeed is the fixed demo seed.
	DefaultSeed = 1337
)

// Cave is the result of one generation run.
type Cave struct {
	Grid *Grid
	// Spawn is the player start cell; only meaningful when HasSpawn is set.
	Spawn    Coordinate
	HasSpawn bool
	// Seed is the effective seed, including one derived from the clock.
	Seed   int64
	Params Parameters
	// Regions are the floor regions that survived filtering.
	Regions []Region
	// Removed counts floor cells walled in by region filtering.
	Removed int

	regionIndex map[Coordinate]int
}

// Size returns the edge length of the cave grid.
func (c *Cave) Size() int {
	return c.Grid.Size()
}

// RegionIndexAt returns the index into Regions of the region containing
// the position, or -1.
func (c *Cave) RegionIndexAt(x, y int) int {
	if i, ok := c.regionIndex[Coordinate{X: x, Y: y}]; ok {
		return i
	}
	return -1
}

func indexRegions(regions []Region) map[Coordinate]int {
	index := make(map[Coordinate]int)
	for i, r := range regions {
		for _, c := range r.Cells {
			index[c] = i
		}
	}
	return index
}

// Generate builds a cave of size x size cells. A seed of 0 picks one from
// the clock; the seed actually used is reported in Cave.Seed. The context
// only carries tracing; generation always runs to completion.
func Generate(ctx context.Context, size int, seed int64, params Parameters) (*Cave, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d must be > 0", ErrInvalidArgument, size)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "cave.generate")
	defer span.End()

	startTime := time.Now()

	rng := NewRandomSource(seed)
	logger.Log.WithFields(logrus.Fields{
		"seed": rng.Seed(),
		"size": size,
	}).Info("Current generated cave seed")

	grid := NewGrid(size)
	stage(ctx, tracer, "cave.noise", func() {
		grid.SetNoise(params.PercentageOfWalls, rng)
	})
	stage(ctx, tracer, "cave.smooth", func() {
		NewAutomaton(params).Run(grid, params.GenerationalSmoothing)
	})
	grid.ForceBorder()

	var regions, kept []Region
	removed := 0
	stage(ctx, tracer, "cave.regions", func() {
		regions = FindRegions(grid, TileFloor)
		kept, removed = RemoveUndersized(grid, regions, params.WallThresholdSize)
	})

	cave := &Cave{
		Grid:    grid,
		Seed:    rng.Seed(),
		Params:  params,
		Regions: kept,
		Removed: removed,

		regionIndex: indexRegions(kept),
	}
	cave.Spawn, cave.HasSpawn = pickSpawn(grid, kept, params.Spawn)

	span.SetAttributes(
		attribute.Int("cave.size", size),
		attribute.Int64("cave.seed", cave.Seed),
		attribute.Int("cave.smoothing", params.GenerationalSmoothing),
		attribute.Int("cave.wall_allowance", params.BorderingWallsAllowance),
		attribute.Int("cave.wall_percent", params.PercentageOfWalls),
		attribute.Int("cave.region_threshold", params.WallThresholdSize),
		attribute.String("cave.smoothing_mode", params.Smoothing.String()),
		attribute.Int("cave.floor_cells", grid.Count(TileFloor)),
		attribute.Int("cave.region_count", len(regions)),
		attribute.Int("cave.regions_kept", len(kept)),
		attribute.Int("cave.cells_removed", removed),
		attribute.Int64("cave.generation_ms", time.Since(startTime).Milliseconds()),
	)

	logger.Log.WithFields(logrus.Fields{
		"seed":    cave.Seed,
		"regions": len(kept),
		"removed": removed,
		"spawn":   cave.Spawn,
	}).Debug("cave generated")

	return cave, nil
}

// stage wraps one pipeline step in a child span.
func stage(ctx context.Context, tracer trace.Tracer, name string, fn func()) {
	_, span := tracer.Start(ctx, name)
	defer span.End()
	fn()
}

func pickSpawn(g *Grid, kept []Region, strategy SpawnStrategy) (Coordinate, bool) {
	if strategy == SpawnLastFloor {
		var spawn Coordinate
		found := false
		for x := 0; x < g.size; x++ {
			for y := 0; y < g.size; y++ {
				if g.cells[g.index(x, y)] == TileFloor {
					spawn, found = Coordinate{X: x, Y: y}, true
				}
			}
		}
		return spawn, found
	}

	best := LargestRegion(kept)
	if best < 0 || kept[best].Size() == 0 {
		return Coordinate{}, false
	}
	return kept[best].Cells[0], true
}
