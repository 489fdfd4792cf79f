// Package main is the entry point for cavern.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/samdwyer/cavern/internal/export"
	"github.com/samdwyer/cavern/internal/game"
	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
	"github.com/samdwyer/cavern/internal/world"
)

const viewerLogPath = "cavern.log"

type options struct {
	envFile   string
	size      int
	seed      int64
	preset    string
	printCave bool
	saveCave  bool
	set       map[string]bool
}

func main() {
	var opts options
	flag.StringVar(&opts.envFile, "env", ".env", "dotenv file with CAVERN_* settings")
	flag.IntVar(&opts.size, "size", 0, "cave edge length (overrides CAVERN_SIZE)")
	flag.Int64Var(&opts.seed, "seed", 0, "generation seed, 0 for random (overrides CAVERN_SEED)")
	flag.StringVar(&opts.preset, "preset", "", "parameter preset (overrides CAVERN_PRESET)")
	flag.BoolVar(&opts.printCave, "print", false, "print the cave as text and exit")
	flag.BoolVar(&opts.saveCave, "save", false, "save the cave as a JSON snapshot and exit")
	flag.Parse()

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if err := run(context.Background(), opts); err != nil {
		logger.Log.SetOutput(os.Stderr)
		logger.Log.Fatal(err)
	}
}

func run(ctx context.Context, opts options) error {
	// Values already in the environment win over the dotenv file.
	cfg, err := game.LoadConfig(opts.envFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Init()

	if opts.set["size"] {
		cfg.Size = opts.size
	}
	if opts.set["seed"] {
		cfg.Seed = opts.seed
	}
	if opts.set["preset"] {
		cfg.Preset = opts.preset
	}

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.OptionsFromEnv(os.Getenv))
		if err != nil {
			logger.Log.Warnf("telemetry setup failed, continuing without it: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.Errorf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}

	if opts.printCave || opts.saveCave {
		params, _, err := cfg.Parameters(presets)
		if err != nil {
			return fmt.Errorf("invalid parameters: %w", err)
		}
		return runBatch(ctx, cfg, params, opts.printCave, opts.saveCave)
	}

	// The viewer owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(viewerLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", viewerLogPath, err)
	}
	defer logFile.Close()
	logger.Log.SetOutput(logFile)

	g, err := game.New(cfg, presets)
	if err != nil {
		return fmt.Errorf("initialize viewer: %w", err)
	}
	return g.Run(ctx)
}

// runBatch generates one cave and prints and/or saves it.
func runBatch(ctx context.Context, cfg game.Config, params world.Parameters, asText, asJSON bool) error {
	cave, err := world.Generate(ctx, cfg.Size, cfg.Seed, params)
	if err != nil {
		return err
	}

	if asText {
		if err := export.EncodeText(os.Stdout, cave); err != nil {
			return fmt.Errorf("print cave: %w", err)
		}
	}
	if asJSON {
		path, err := export.NewExporter(cfg.ExportDir).Save(cave)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, path)
	}
	return nil
}
