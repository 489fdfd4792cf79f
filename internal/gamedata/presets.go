package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/world"
)

// DefaultPresetID names the preset used when none is configured.
const DefaultPresetID = "classic"

const presetsFileName = "presets.json"

// PresetDef is a named parameter set for cave generation loaded from JSON.
type PresetDef struct {
	ID                      string `json:"id"`                      // Unique identifier (e.g., "classic")
	Name                    string `json:"name"`                    // Display name
	GenerationalSmoothing   int    `json:"generationalSmoothing"`   // Automaton generations
	BorderingWallsAllowance int    `json:"borderingWallsAllowance"` // Wall count that turns a cell into wall
	PercentageOfWalls       int    `json:"percentageOfWalls"`       // Initial noise density, 0-100
	WallThresholdSize       int    `json:"wallThresholdSize"`       // Minimum surviving floor region
	WallColor               string `json:"wallColor"`               // Hex color for walls
	FloorColor              string `json:"floorColor"`              // Hex color for floors
}

// Parameters converts the preset into generation parameters with default modes.
func (p *PresetDef) Parameters() world.Parameters {
	return world.Parameters{
		GenerationalSmoothing:   p.GenerationalSmoothing,
		BorderingWallsAllowance: p.BorderingWallsAllowance,
		PercentageOfWalls:       p.PercentageOfWalls,
		WallThresholdSize:       p.WallThresholdSize,
	}
}

// Theme returns the wall and floor colors. Unparseable colors fall back to
// dark gray walls and gray floors, both visible on a black background.
func (p *PresetDef) Theme() (wall, floor tcell.Color) {
	wall, err := ParseHexColor(p.WallColor)
	if err != nil {
		wall = tcell.ColorDarkGray
	}
	floor, err = ParseHexColor(p.FloorColor)
	if err != nil {
		floor = tcell.ColorGray
	}
	return wall, floor
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	return LoadPresetsFS(dataFS)
}

// LoadPresetsFS loads preset definitions from presets.json in fsys.
func LoadPresetsFS(fsys fs.FS) ([]PresetDef, error) {
	file, err := readJSON[PresetsFile](fsys, presetsFileName)
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("no presets in %s", presetsFileName)
	}
	return file.Presets, nil
}
