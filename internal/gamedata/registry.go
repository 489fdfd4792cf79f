package gamedata

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPreset is returned when a preset ID is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetRegistry holds loaded preset definitions and provides lookup utilities.
type PresetRegistry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewPresetRegistry creates a registry from loaded preset definitions.
// Presets whose parameters fail validation are rejected. The registry keeps
// its own copy of presets.
func NewPresetRegistry(presets []PresetDef) (*PresetRegistry, error) {
	registry := &PresetRegistry{
		presets: make(map[string]*PresetDef, len(presets)),
		all:     slices.Clone(presets),
	}
	for i := range registry.all {
		p := &registry.all[i]
		if err := p.Parameters().Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.ID, err)
		}
		if _, dup := registry.presets[p.ID]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.ID)
		}
		registry.presets[p.ID] = p
	}
	return registry, nil
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	return NewPresetRegistry(presets)
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Resolve returns the preset with the given ID; an empty ID selects the default.
func (r *PresetRegistry) Resolve(id string) (*PresetDef, error) {
	if id == "" {
		id = DefaultPresetID
	}
	p := r.presets[id]
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	return p, nil
}

// All returns a copy of the preset definitions in file order.
func (r *PresetRegistry) All() []PresetDef {
	return slices.Clone(r.all)
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}
