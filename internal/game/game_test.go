package game

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/ui"
	"github.com/samdwyer/cavern/internal/world"
)

type nopCanvas struct{}

func (nopCanvas) Clear() {}
func (nopCanvas) SetContent(int, int, rune, tcell.Style) {}
func (nopCanvas) Size() (int, int) { return 80, 24 }
func (nopCanvas) Show() {}

func testPresets(t *testing.T) *gamedata.PresetRegistry {
	t.Helper()
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		t.Fatalf("LoadPresetRegistry failed: %v", err)
	}
	return presets
}

// scenarioConfig yields the 10x10 seed 42 cave with 5/5/48/5 tuning.
func scenarioConfig(t *testing.T) Config {
	smoothing, threshold := 5, 5
	cfg := DefaultConfig()
	cfg.Size = 10
	cfg.Seed = 42
	cfg.ExportDir = t.TempDir()
	cfg.Smoothing = &smoothing
	cfg.RegionThreshold = &threshold
	return cfg
}

func testGame(t *testing.T) *Game {
	t.Helper()
	g, err := newGame(scenarioConfig(t), testPresets(t), nopCanvas{})
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	if err := g.regenerate(context.Background(), 42); err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	return g
}

func TestNewGameRejectsUnknownPreset(t *testing.T) {
	cfg := scenarioConfig(t)
	cfg.Preset = "labyrinth"
	if _, err := newGame(cfg, testPresets(t), nopCanvas{}); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestGameSpawnsExplorer(t *testing.T) {
	g := testGame(t)

	if x, y := g.explorer.Position(); x != 1 || y != 1 {
		t.Errorf("Explorer at (%d,%d), want (1,1)", x, y)
	}
	if !strings.Contains(g.status, "seed 42") {
		t.Errorf("Status %q should mention the seed", g.status)
	}
}

func TestGameMovement(t *testing.T) {
	g := testGame(t)

	g.tryMove(-1, 0) // wall at (0,1)
	if x, y := g.explorer.Position(); x != 1 || y != 1 {
		t.Errorf("Walked into a wall: now at (%d,%d)", x, y)
	}

	g.tryMove(1, 0)
	if x, y := g.explorer.Position(); x != 2 || y != 1 {
		t.Errorf("Move right failed: now at (%d,%d)", x, y)
	}
}

func TestGameRegenerateReplacesCave(t *testing.T) {
	g := testGame(t)
	first := g.cave

	if err := g.regenerate(context.Background(), 7); err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	if g.cave == first {
		t.Error("Regenerating should replace the cave")
	}
	if g.cave.Seed != 7 {
		t.Errorf("Seed = %d, want 7", g.cave.Seed)
	}
}

func TestGameRegenerateInvalidSize(t *testing.T) {
	g := testGame(t)
	g.cfg.Size = 0
	if err := g.regenerate(context.Background(), 1); err == nil {
		t.Error("Expected error for zero size")
	}
}

func TestGameToggleView(t *testing.T) {
	g := testGame(t)

	g.toggleView()
	if g.mode != ModeRegions {
		t.Errorf("Mode = %v, want regions", g.mode)
	}
	g.toggleView()
	if g.mode != ModeExplore {
		t.Errorf("Mode = %v, want explore", g.mode)
	}
}

func TestGameNextPreset(t *testing.T) {
	g := testGame(t)
	presets := testPresets(t).All()

	g.nextPreset(context.Background())

	if g.preset.ID != presets[1].ID {
		t.Fatalf("Preset = %q, want %q", g.preset.ID, presets[1].ID)
	}
	if g.cave.Seed != 42 {
		t.Errorf("Seed = %d, want the seed to carry over", g.cave.Seed)
	}
	// Config overrides still apply on top of the new preset.
	if g.params.GenerationalSmoothing != 5 || g.params.WallThresholdSize != 5 {
		t.Errorf("Overrides lost: %+v", g.params)
	}
	if g.params.PercentageOfWalls != presets[1].PercentageOfWalls {
		t.Errorf("Wall percent = %d, want %d", g.params.PercentageOfWalls, presets[1].PercentageOfWalls)
	}
	wall, floor := presets[1].Theme()
	if g.theme != (ui.Theme{Wall: wall, Floor: floor}) {
		t.Errorf("Theme = %+v, want preset colors", g.theme)
	}

	for range presets {
		g.nextPreset(context.Background())
	}
	if g.preset.ID != presets[1].ID {
		t.Errorf("Cycling should wrap around, got %q", g.preset.ID)
	}
}

func TestThemeFallbackMatchesDefaultTheme(t *testing.T) {
	bad := &gamedata.PresetDef{WallColor: "nope", FloorColor: "nope"}
	if got := themeFor(bad); got != ui.DefaultTheme {
		t.Errorf("Fallback theme = %+v, want %+v", got, ui.DefaultTheme)
	}
	if got := themeFor(nil); got != ui.DefaultTheme {
		t.Errorf("Nil preset theme = %+v, want default", got)
	}
}

func TestGameSave(t *testing.T) {
	g := testGame(t)

	g.save()

	if !strings.HasPrefix(g.status, "saved ") {
		t.Fatalf("Status = %q, want saved message", g.status)
	}
	path := strings.TrimPrefix(g.status, "saved ")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Saved file missing: %v", err)
	}
}

func TestGameRunHandlesKeys(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := ui.Attach(sim)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	sim.SetSize(40, 12)

	g, err := newGame(scenarioConfig(t), testPresets(t), screen)
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	g.screen = screen

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'v', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if g.running {
		t.Error("Viewer should stop after q")
	}
	if x, y := g.explorer.Position(); x != 2 || y != 1 {
		t.Errorf("Explorer at (%d,%d), want (2,1)", x, y)
	}
	if g.mode != ModeRegions {
		t.Errorf("Mode = %v, want regions", g.mode)
	}
	if g.cave.Grid.Count(world.TileFloor) != 54 {
		t.Errorf("Floor cells = %d, want 54", g.cave.Grid.Count(world.TileFloor))
	}
}
