// Package system holds the per-tick rules that read and write components:
// movement against the map, field-of-view refresh and the monster
// visibility check.
package system

import (
	"github.com/samdwyer/roomcrawl/internal/ecs"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// Direction is a logical movement intent from the input mapper.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// TryMove moves pos by (dx, dy) unless the destination is a wall.
// Each axis is clamped to the map before the tile lookup, so a move off the
// edge lands on the edge. Returns true if the position changed; a rejected
// move leaves pos untouched.
func TryMove(pos *entity.Position, dx, dy int, m *world.Map) bool {
	destX := clamp(pos.X+dx, 0, m.Width()-1)
	destY := clamp(pos.Y+dy, 0, m.Height()-1)

	if m.TileAtIndex(m.XYIdx(destX, destY)) == world.TileWall {
		return false
	}
	if destX == pos.X && destY == pos.Y {
		return false
	}

	pos.X = destX
	pos.Y = destY
	return true
}

// MovePlayer applies dir to every player entity and marks the viewshed of
// each one that moved as dirty. Returns true if any player moved.
func MovePlayer(w *ecs.World, m *world.Map, dir Direction) bool {
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return false
	}

	moved := false
	ecs.Join2(w, func(e ecs.Entity, pos *entity.Position, _ *entity.Player) {
		if !TryMove(pos, dx, dy, m) {
			return
		}
		moved = true
		if vs, ok := ecs.Get[entity.Viewshed](w, e); ok {
			vs.Dirty = true
		}
	})
	return moved
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
