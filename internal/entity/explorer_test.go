package entity

import (
	"context"
	"testing"

	"github.com/samdwyer/cavern/internal/world"
)

func TestExplorerTryMove(t *testing.T) {
	g := world.NewGrid(4)
	g.Set(1, 1, world.TileFloor)
	g.Set(2, 1, world.TileFloor)

	e := NewExplorer(1, 1)

	if !e.TryMove(g, 1, 0) {
		t.Fatal("Move onto floor should succeed")
	}
	if x, y := e.Position(); x != 2 || y != 1 {
		t.Errorf("Position = (%d,%d), want (2,1)", x, y)
	}

	if e.TryMove(g, 0, 1) {
		t.Error("Move into a wall should fail")
	}
	if e.TryMove(g, 5, 0) {
		t.Error("Move off the grid should fail")
	}
	if x, y := e.Position(); x != 2 || y != 1 {
		t.Errorf("Failed moves changed position to (%d,%d)", x, y)
	}
}

func TestSpawnIn(t *testing.T) {
	cave, err := world.Generate(context.Background(), 10, 42, world.Parameters{
		GenerationalSmoothing:   5,
		BorderingWallsAllowance: 5,
		PercentageOfWalls:       48,
		WallThresholdSize:       5,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	e := SpawnIn(cave)
	if e.X != cave.Spawn.X || e.Y != cave.Spawn.Y {
		t.Errorf("Explorer at (%d,%d), want spawn %v", e.X, e.Y, cave.Spawn)
	}
	if !cave.Grid.IsPassable(e.X, e.Y) {
		t.Error("Explorer should start on floor")
	}

	empty := &world.Cave{Grid: world.NewGrid(8)}
	e = SpawnIn(empty)
	if e.X != 4 || e.Y != 4 {
		t.Errorf("Fallback position = (%d,%d), want (4,4)", e.X, e.Y)
	}
}
