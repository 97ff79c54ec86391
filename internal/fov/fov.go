// Package fov computes the set of tiles visible from a point on a map.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// VisibleSet is the set of grid points an entity can currently see.
type VisibleSet = mapset.Set[world.Point]

// NewVisibleSet returns an empty set, optionally seeded with points.
func NewVisibleSet(points ...world.Point) VisibleSet {
	s := mapset.New[world.Point]()
	for _, p := range points {
		s.Put(p)
	}
	return s
}

// octant transform multipliers: worldX = cx + dx*xx + dy*xy, worldY = cy + dx*yx + dy*yy.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Compute runs recursive shadowcasting from origin out to radius tiles.
// Walls are opaque but are themselves visible. The result holds only
// in-bounds points and always includes the origin when it is on the map.
func Compute(m *world.Map, origin world.Point, radius int) VisibleSet {
	visible := NewVisibleSet()
	if !m.InBounds(origin.X, origin.Y) {
		return visible
	}
	visible.Put(origin)
	if radius <= 0 {
		return visible
	}

	c := caster{m: m, origin: origin, radius: radius, visible: visible}
	for _, o := range octants {
		c.castLight(1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
	return visible
}

type caster struct {
	m       *world.Map
	origin  world.Point
	radius  int
	visible VisibleSet
}

// castLight scans one octant row by row, recursing past each wall run.
func (c *caster) castLight(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := c.radius * c.radius
	newStart := start

	for j := row; j <= c.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := c.origin.X + dx*xx + dy*xy
			wy := c.origin.Y + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && c.m.InBounds(wx, wy) {
				c.visible.Put(world.Point{X: wx, Y: wy})
			}

			opaque := c.m.IsOpaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < c.radius {
				blocked = true
				c.castLight(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
