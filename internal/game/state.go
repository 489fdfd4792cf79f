// Package game provides the interactive cave viewer and its configuration.
package game

// Mode represents what the viewer is currently showing.
type Mode int

const (
	// ModeExplore draws the cave with theme colors and the explorer on top.
	ModeExplore Mode = iota
	// ModeRegions tints each surviving floor region with its own color.
	ModeRegions
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeRegions:
		return "regions"
	default:
		return "unknown"
	}
}

// Toggle switches between explore and region view.
func (m Mode) Toggle() Mode {
	if m == ModeExplore {
		return ModeRegions
	}
	return ModeExplore
}
