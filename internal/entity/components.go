// Package entity defines the components attached to game objects and the
// helpers that spawn the player and monsters.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/fov"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// Position is an entity's location on the map.
type Position struct {
	X, Y int
}

// Point returns the position as a map point.
func (p Position) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Renderable is the glyph and colors drawn for an entity.
type Renderable struct {
	Glyph rune
	Fg    tcell.Color
	Bg    tcell.Color
}

// Player marks the entity controlled by keyboard input.
type Player struct{}

// Monster marks a non-player actor.
type Monster struct {
	Kind      string // Monster definition ID
	RoomIndex int    // Room the monster spawned in
}

// Name is a display name.
type Name struct {
	Name string
}

// Viewshed holds what an entity can see. Dirty viewsheds are recomputed on
// the next visibility pass.
type Viewshed struct {
	Visible fov.VisibleSet
	Range   int
	Dirty   bool
}

// NewViewshed creates an empty, dirty viewshed with the given radius.
func NewViewshed(viewRange int) Viewshed {
	return Viewshed{
		Visible: fov.NewVisibleSet(),
		Range:   viewRange,
		Dirty:   true,
	}
}
