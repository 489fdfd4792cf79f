package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/export"
	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
	"github.com/samdwyer/cavern/internal/ui"
	"github.com/samdwyer/cavern/internal/world"
)

// Game holds the viewer state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	exporter *export.Exporter
	presets  *gamedata.PresetRegistry

	cfg      Config
	params   world.Parameters
	preset   *gamedata.PresetDef
	theme    ui.Theme
	cave     *world.Cave
	explorer *entity.Explorer
	mode     Mode
	status   string
	running  bool
}

// New creates a viewer drawing to the terminal.
func New(cfg Config, presets *gamedata.PresetRegistry) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(cfg, presets, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	g.screen = screen
	return g, nil
}

// newGame resolves the configured preset and draws to canvas.
func newGame(cfg Config, presets *gamedata.PresetRegistry, canvas ui.Canvas) (*Game, error) {
	params, preset, err := cfg.Parameters(presets)
	if err != nil {
		return nil, err
	}
	theme := themeFor(preset)
	return &Game{
		renderer: ui.NewRenderer(canvas, theme),
		exporter: export.NewExporter(cfg.ExportDir),
		presets:  presets,
		cfg:      cfg,
		params:   params,
		preset:   preset,
		theme:    theme,
		mode:     ModeExplore,
		running:  true,
	}, nil
}

func themeFor(preset *gamedata.PresetDef) ui.Theme {
	if preset == nil {
		return ui.DefaultTheme
	}
	wall, floor := preset.Theme()
	return ui.Theme{Wall: wall, Floor: floor}
}

// Run executes the main viewer loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.regenerate(ctx, g.cfg.Seed); err != nil {
		return err
	}

	for g.running {
		g.draw()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) draw() {
	g.renderer.Render(ui.View{
		Cave:        g.cave,
		Explorer:    g.explorer,
		ShowRegions: g.mode == ModeRegions,
		Status:      g.status,
	})
}

// regenerate discards the current cave and builds a new one.
func (g *Game) regenerate(ctx context.Context, seed int64) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.regenerate")
	defer span.End()

	cave, err := world.Generate(ctx, g.cfg.Size, seed, g.params)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("generate cave: %w", err)
	}

	g.cave = cave
	g.explorer = entity.SpawnIn(cave)
	g.status = g.describe()

	x, y := g.explorer.Position()
	span.SetAttributes(
		attribute.String("cave.preset", g.preset.ID),
		attribute.Int64("cave.seed", cave.Seed),
		attribute.Bool("cave.has_spawn", cave.HasSpawn),
		attribute.Int("explorer.start_x", x),
		attribute.Int("explorer.start_y", y),
	)
	if !cave.HasSpawn {
		span.SetAttributes(attribute.String("warning", "no floor left, using fallback position"))
	}
	return nil
}

func (g *Game) describe() string {
	return fmt.Sprintf("%s | seed %d | %d regions | %s | arrows move, r regen, p preset, v view, s save, q quit",
		g.preset.Name, g.cave.Seed, len(g.cave.Regions), g.mode)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			if err := g.regenerate(ctx, 0); err != nil {
				g.status = err.Error()
			}
		case 'p', 'P':
			g.nextPreset(ctx)
		case 'v', 'V':
			g.toggleView()
		case 's', 'S':
			g.save()
		}
	}
}

// tryMove attempts to move the explorer by the given delta.
func (g *Game) tryMove(dx, dy int) {
	g.explorer.TryMove(g.cave.Grid, dx, dy)
}

func (g *Game) toggleView() {
	g.mode = g.mode.Toggle()
	g.status = g.describe()
}

// nextPreset switches to the following preset in file order and rebuilds
// the cave from the same seed with its parameters and colors.
func (g *Game) nextPreset(ctx context.Context) {
	all := g.presets.All()
	i := slices.IndexFunc(all, func(p gamedata.PresetDef) bool { return p.ID == g.preset.ID })
	next := all[(i+1)%len(all)]

	cfg := g.cfg
	cfg.Preset = next.ID
	params, preset, err := cfg.Parameters(g.presets)
	if err != nil {
		g.status = err.Error()
		return
	}

	g.cfg, g.params, g.preset = cfg, params, preset
	g.theme = themeFor(preset)
	g.renderer.SetTheme(g.theme)
	if err := g.regenerate(ctx, g.cave.Seed); err != nil {
		g.status = err.Error()
	}
}

// save writes the current cave through the exporter.
func (g *Game) save() {
	path, err := g.exporter.Save(g.cave)
	if err != nil {
		logger.Log.WithError(err).Error("save failed")
		g.status = "save failed: " + err.Error()
		return
	}
	g.status = "saved " + path
}
