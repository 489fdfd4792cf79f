package world

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when generation inputs are out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// Neighborhood window size is 3x3, so at most 8 surrounding walls.
const maxWallAllowance = 8

// SmoothingMode selects how each automaton generation is applied.
type SmoothingMode int

const (
	// SmoothingDoubleBuffered computes every cell of a generation from the previous one.
	SmoothingDoubleBuffered SmoothingMode = iota
	// SmoothingInPlace writes results back while scanning, so later cells
	// see neighbours already updated in the same generation.
	SmoothingInPlace
)

// String returns the config name of the mode.
func (m SmoothingMode) String() string {
	switch m {
	case SmoothingDoubleBuffered:
		return "double"
	case SmoothingInPlace:
		return "inplace"
	default:
		return "unknown"
	}
}

// Neighborhood selects which cells of the 3x3 window are counted.
type Neighborhood int

const (
	// NeighborhoodInclusive counts the centre cell along with its eight neighbours.
	NeighborhoodInclusive Neighborhood = iota
	// NeighborhoodMoore counts only the eight surrounding cells.
	NeighborhoodMoore
)

// String returns the config name of the neighborhood.
func (n Neighborhood) String() string {
	switch n {
	case NeighborhoodInclusive:
		return "inclusive"
	case NeighborhoodMoore:
		return "moore"
	default:
		return "unknown"
	}
}

// SpawnStrategy selects the spawn coordinate reported with a cave.
type SpawnStrategy int

const (
	// SpawnLargestRegion picks the seed cell of the largest surviving floor region.
	SpawnLargestRegion SpawnStrategy = iota
	// SpawnLastFloor picks the last floor cell in scan order.
	SpawnLastFloor
)

// String returns the config name of the strategy.
func (s SpawnStrategy) String() string {
	switch s {
	case SpawnLargestRegion:
		return "largest"
	case SpawnLastFloor:
		return "last"
	default:
		return "unknown"
	}
}

// Parameters tune a single cave generation. The zero value of the mode
// fields selects double-buffered smoothing, the inclusive neighborhood and
// largest-region spawning.
type Parameters struct {
	// GenerationalSmoothing is the number of automaton generations to run.
	GenerationalSmoothing int
	// BorderingWallsAllowance is the wall count at which a cell becomes a wall.
	BorderingWallsAllowance int
	// PercentageOfWalls is the initial noise density, 0-100.
	PercentageOfWalls int
	// WallThresholdSize is the minimum floor region size that survives filtering.
	WallThresholdSize int

	Smoothing    SmoothingMode
	Neighborhood Neighborhood
	Spawn        SpawnStrategy
}

// DefaultParameters returns the classic cavern tuning.
func DefaultParameters() Parameters {
	return Parameters{
		GenerationalSmoothing:   10,
		BorderingWallsAllowance: 5,
		PercentageOfWalls:       48,
		WallThresholdSize:       100,
	}
}

// Validate reports an ErrInvalidArgument for out-of-range values.
func (p Parameters) Validate() error {
	switch {
	case p.GenerationalSmoothing < 0:
		return fmt.Errorf("%w: generational smoothing %d must be >= 0", ErrInvalidArgument, p.GenerationalSmoothing)
	case p.BorderingWallsAllowance < 0 || p.BorderingWallsAllowance > maxWallAllowance:
		return fmt.Errorf("%w: bordering walls allowance %d must be in [0, %d]", ErrInvalidArgument, p.BorderingWallsAllowance, maxWallAllowance)
	case p.PercentageOfWalls < 0 || p.PercentageOfWalls > 100:
		return fmt.Errorf("%w: percentage of walls %d must be in [0, 100]", ErrInvalidArgument, p.PercentageOfWalls)
	case p.WallThresholdSize < 0:
		return fmt.Errorf("%w: wall threshold size %d must be >= 0", ErrInvalidArgument, p.WallThresholdSize)
	case p.Smoothing != SmoothingDoubleBuffered && p.Smoothing != SmoothingInPlace:
		return fmt.Errorf("%w: unknown smoothing mode %d", ErrInvalidArgument, p.Smoothing)
	case p.Neighborhood != NeighborhoodInclusive && p.Neighborhood != NeighborhoodMoore:
		return fmt.Errorf("%w: unknown neighborhood %d", ErrInvalidArgument, p.Neighborhood)
	case p.Spawn != SpawnLargestRegion && p.Spawn != SpawnLastFloor:
		return fmt.Errorf("%w: unknown spawn strategy %d", ErrInvalidArgument, p.Spawn)
	}
	return nil
}

// ParseSmoothingMode converts a config name into a SmoothingMode.
func ParseSmoothingMode(s string) (SmoothingMode, error) {
	switch s {
	case "double", "":
		return SmoothingDoubleBuffered, nil
	case "inplace":
		return SmoothingInPlace, nil
	}
	return 0, fmt.Errorf("%w: unknown smoothing mode %q", ErrInvalidArgument, s)
}

// ParseNeighborhood converts a config name into a Neighborhood.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch s {
	case "inclusive", "":
		return NeighborhoodInclusive, nil
	case "moore":
		return NeighborhoodMoore, nil
	}
	return 0, fmt.Errorf("%w: unknown neighborhood %q", ErrInvalidArgument, s)
}

// ParseSpawnStrategy converts a config name into a SpawnStrategy.
func ParseSpawnStrategy(s string) (SpawnStrategy, error) {
	switch s {
	case "largest", "":
		return SpawnLargestRegion, nil
	case "last":
		return SpawnLastFloor, nil
	}
	return 0, fmt.Errorf("%w: unknown spawn strategy %q", ErrInvalidArgument, s)
}
