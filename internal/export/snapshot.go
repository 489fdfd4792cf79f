// Package export saves generated caves as standalone assets.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/samdwyer/cavern/internal/world"
)

// ErrMalformedSnapshot is returned when a decoded snapshot cannot describe a grid.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Point is a JSON-friendly coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ParamsDoc records the parameters a cave was generated with.
type ParamsDoc struct {
	GenerationalSmoothing   int    `json:"generationalSmoothing"`
	BorderingWallsAllowance int    `json:"borderingWallsAllowance"`
	PercentageOfWalls       int    `json:"percentageOfWalls"`
	WallThresholdSize       int    `json:"wallThresholdSize"`
	Smoothing               string `json:"smoothing"`
	Neighborhood            string `json:"neighborhood"`
	Spawn                   string `json:"spawn"`
}

// Snapshot is the persisted form of a cave.
type Snapshot struct {
	ID      uuid.UUID `json:"id"`
	Seed    int64     `json:"seed"`
	Size    int       `json:"size"`
	Spawn   *Point    `json:"spawn,omitempty"`
	Params  ParamsDoc `json:"params"`
	Rows    []string  `json:"rows"`
	Regions int       `json:"regions"`
	Floor   int       `json:"floor"`
	Removed int       `json:"removed"`
}

// NewSnapshot captures cave under a fresh random ID.
func NewSnapshot(cave *world.Cave) *Snapshot {
	s := &Snapshot{
		ID:   uuid.New(),
		Seed: cave.Seed,
		Size: cave.Size(),
		Params: ParamsDoc{
			GenerationalSmoothing:   cave.Params.GenerationalSmoothing,
			BorderingWallsAllowance: cave.Params.BorderingWallsAllowance,
			PercentageOfWalls:       cave.Params.PercentageOfWalls,
			WallThresholdSize:       cave.Params.WallThresholdSize,
			Smoothing:               cave.Params.Smoothing.String(),
			Neighborhood:            cave.Params.Neighborhood.String(),
			Spawn:                   cave.Params.Spawn.String(),
		},
		Rows:    cave.Grid.Rows(),
		Regions: len(cave.Regions),
		Floor:   cave.Grid.Count(world.TileFloor),
		Removed: cave.Removed,
	}
	if cave.HasSpawn {
		s.Spawn = &Point{X: cave.Spawn.X, Y: cave.Spawn.Y}
	}
	return s
}

// Grid rebuilds the tile grid stored in the snapshot.
func (s *Snapshot) Grid() (*world.Grid, error) {
	if s.Size <= 0 || len(s.Rows) != s.Size {
		return nil, fmt.Errorf("%w: %d rows for size %d", ErrMalformedSnapshot, len(s.Rows), s.Size)
	}
	g := world.NewGrid(s.Size)
	for y, row := range s.Rows {
		if len(row) != s.Size {
			return nil, fmt.Errorf("%w: row %d has length %d", ErrMalformedSnapshot, y, len(row))
		}
		for x := 0; x < len(row); x++ {
			switch t := world.Tile(row[x]); t {
			case world.TileWall, world.TileFloor:
				g.Set(x, y, t)
			default:
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrMalformedSnapshot, row[x], x, y)
			}
		}
	}
	return g, nil
}

// EncodeJSON writes s as indented JSON.
func EncodeJSON(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// DecodeJSON reads a snapshot and checks that its rows form a grid.
func DecodeJSON(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if _, err := s.Grid(); err != nil {
		return nil, err
	}
	return &s, nil
}

// EncodeText writes the cave as ASCII rows, marking the spawn with '@'.
func EncodeText(w io.Writer, cave *world.Cave) error {
	for y, row := range cave.Grid.Rows() {
		if cave.HasSpawn && y == cave.Spawn.Y {
			b := []byte(row)
			b[cave.Spawn.X] = '@'
			row = string(b)
		}
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return err
		}
	}
	return nil
}
