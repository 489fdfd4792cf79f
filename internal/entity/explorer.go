// Package entity provides the player-controlled explorer.
package entity

import "github.com/samdwyer/cavern/internal/world"

// Walkable is satisfied by anything that can answer passability queries.
type Walkable interface {
	IsPassable(x, y int) bool
}

// Explorer is the player-controlled entity placed at a cave's spawn point.
type Explorer struct {
	X, Y   int  // Current position in the cave
	Symbol rune // Display symbol
}

// NewExplorer creates an explorer at the given position.
func NewExplorer(x, y int) *Explorer {
	return &Explorer{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// SpawnIn places a new explorer at the cave's spawn point, or the grid
// centre when the cave has no floor at all.
func SpawnIn(cave *world.Cave) *Explorer {
	if cave.HasSpawn {
		return NewExplorer(cave.Spawn.X, cave.Spawn.Y)
	}
	return NewExplorer(cave.Size()/2, cave.Size()/2)
}

// TryMove moves by the given delta if the destination is passable and
// reports whether it moved.
func (e *Explorer) TryMove(m Walkable, dx, dy int) bool {
	if !m.IsPassable(e.X+dx, e.Y+dy) {
		return false
	}
	e.X += dx
	e.Y += dy
	return true
}

// Position returns the current x, y coordinates.
func (e *Explorer) Position() (int, int) {
	return e.X, e.Y
}
