package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/world"
)

// ErrConfig is returned for malformed configuration values.
var ErrConfig = errors.New("invalid configuration")

// Environment keys read by ConfigFromEnv.
const (
	EnvSize            = "CAVERN_SIZE"
	EnvSeed            = "CAVERN_SEED"
	EnvPreset          = "CAVERN_PRESET"
	EnvSmoothing       = "CAVERN_SMOOTHING"
	EnvWallAllowance   = "CAVERN_WALL_ALLOWANCE"
	EnvWallPercent     = "CAVERN_WALL_PERCENT"
	EnvRegionThreshold = "CAVERN_REGION_THRESHOLD"
	EnvSmoothingMode   = "CAVERN_SMOOTHING_MODE"
	EnvNeighborhood    = "CAVERN_NEIGHBORHOOD"
	EnvSpawn           = "CAVERN_SPAWN"
	EnvExportDir       = "CAVERN_EXPORT_DIR"
	EnvTelemetry       = "CAVERN_TELEMETRY"
)

// Config holds cave generation and viewer options.
type Config struct {
	// Size is the edge length of the square cave.
	Size int
	// Seed for random number generation. Used for reproducible cave generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Preset names the parameter set from presets.json; empty means the default.
	Preset string
	// ExportDir is where saved caves are written.
	ExportDir string
	// Telemetry enables the OTLP trace exporter.
	Telemetry bool

	// Overrides applied on top of the preset; nil keeps the preset value.
	Smoothing       *int
	WallAllowance   *int
	WallPercent     *int
	RegionThreshold *int

	SmoothingMode world.SmoothingMode
	Neighborhood  world.Neighborhood
	Spawn         world.SpawnStrategy
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Size:      world.DefaultSize,
		Seed:      0,
		Preset:    gamedata.DefaultPresetID,
		ExportDir: "caves",
	}
}

// LoadConfig loads the dotenv file at path into the process environment
// and builds a Config from it. Variables already set in the environment take
// precedence over the file, and a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return ConfigFromEnv(env)
}

// ConfigFromEnv builds a Config from key/value pairs, starting from DefaultConfig.
func ConfigFromEnv(env map[string]string) (Config, error) {
	cfg := DefaultConfig()
	var err error

	if v, ok := env[EnvSize]; ok {
		if cfg.Size, err = parseInt(EnvSize, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := env[EnvSeed]; ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrConfig, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v, ok := env[EnvPreset]; ok && v != "" {
		cfg.Preset = v
	}
	if v, ok := env[EnvExportDir]; ok && v != "" {
		cfg.ExportDir = v
	}
	if v, ok := env[EnvTelemetry]; ok && v != "" {
		if cfg.Telemetry, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrConfig, EnvTelemetry, v, err)
		}
	}

	overrides := []struct {
		key string
		dst **int
	}{
		{EnvSmoothing, &cfg.Smoothing},
		{EnvWallAllowance, &cfg.WallAllowance},
		{EnvWallPercent, &cfg.WallPercent},
		{EnvRegionThreshold, &cfg.RegionThreshold},
	}
	for _, o := range overrides {
		v, ok := env[o.key]
		if !ok || v == "" {
			continue
		}
		n, err := parseInt(o.key, v)
		if err != nil {
			return Config{}, err
		}
		*o.dst = &n
	}

	if cfg.SmoothingMode, err = world.ParseSmoothingMode(env[EnvSmoothingMode]); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvSmoothingMode, err)
	}
	if cfg.Neighborhood, err = world.ParseNeighborhood(env[EnvNeighborhood]); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvNeighborhood, err)
	}
	if cfg.Spawn, err = world.ParseSpawnStrategy(env[EnvSpawn]); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvSpawn, err)
	}

	return cfg, nil
}

// Parameters resolves the configured preset and applies overrides.
// The result is validated.
func (c Config) Parameters(presets *gamedata.PresetRegistry) (world.Parameters, *gamedata.PresetDef, error) {
	preset, err := presets.Resolve(c.Preset)
	if err != nil {
		return world.Parameters{}, nil, err
	}

	params := preset.Parameters()
	if c.Smoothing != nil {
		params.GenerationalSmoothing = *c.Smoothing
	}
	if c.WallAllowance != nil {
		params.BorderingWallsAllowance = *c.WallAllowance
	}
	if c.WallPercent != nil {
		params.PercentageOfWalls = *c.WallPercent
	}
	if c.RegionThreshold != nil {
		params.WallThresholdSize = *c.RegionThreshold
	}
	params.Smoothing = c.SmoothingMode
	params.Neighborhood = c.Neighborhood
	params.Spawn = c.Spawn

	if err := params.Validate(); err != nil {
		return world.Parameters{}, nil, err
	}
	return params, preset, nil
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrConfig, key, v, err)
	}
	return n, nil
}
