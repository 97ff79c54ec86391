package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTileCount is returned when a tile slice does not match the map dimensions.
var ErrTileCount = errors.New("tile count does not match map dimensions")

// Map is a fixed-size grid of tiles plus the rooms carved into it.
//
// A Map is mutable until Freeze is called. The generator freezes every map it
// returns, after which the map is shared read-only between movement, field of
// view and rendering. Mutating a frozen map panics.
type Map struct {
	width  int
	height int
	tiles  []Tile
	rooms  []Rect
	frozen bool
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid map size %dx%d", width, height))
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &Map{
		width:  width,
		height: height,
		tiles:  tiles,
		rooms:  make([]Rect, 0),
	}
}

// FromTiles creates a map from an existing row-major tile slice.
// The slice is copied.
func FromTiles(width, height int, tiles []Tile) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrTileCount, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d tiles for %dx%d", ErrTileCount, len(tiles), width, height)
	}
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)
	return &Map{
		width:  width,
		height: height,
		tiles:  cp,
		rooms:  make([]Rect, 0),
	}, nil
}

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.height }

// XYIdx returns the row-major index of (x, y).
// It panics if the coordinates are outside the map; use InBounds first when
// the coordinates come from untrusted arithmetic.
func (m *Map) XYIdx(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("world: coordinates (%d,%d) outside %dx%d map", x, y, m.width, m.height))
	}
	return y*m.width + x
}

// InBounds returns true if (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// TileAt returns the tile at the given position. Positions off the map read as walls.
func (m *Map) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[y*m.width+x]
}

// TileAtIndex returns the tile at a row-major index obtained from XYIdx.
func (m *Map) TileAtIndex(idx int) Tile {
	return m.tiles[idx]
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return m.TileAt(x, y).IsPassable()
}

// IsOpaque returns true if the given position blocks line of sight.
func (m *Map) IsOpaque(x, y int) bool {
	return m.TileAt(x, y).IsOpaque()
}

// Tiles returns a copy of the row-major tile slice.
func (m *Map) Tiles() []Tile {
	cp := make([]Tile, len(m.tiles))
	copy(cp, m.tiles)
	return cp
}

// Rooms returns a copy of the rooms in the order they were accepted.
func (m *Map) Rooms() []Rect {
	cp := make([]Rect, len(m.rooms))
	copy(cp, m.rooms)
	return cp
}

// RoomCount returns the number of rooms on the map.
func (m *Map) RoomCount() int {
	return len(m.rooms)
}

// FloorCount returns the number of floor tiles.
func (m *Map) FloorCount() int {
	n := 0
	for _, t := range m.tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Freeze marks the map read-only.
func (m *Map) Freeze() {
	m.frozen = true
}

// Frozen reports whether Freeze has been called.
func (m *Map) Frozen() bool {
	return m.frozen
}

func (m *Map) mustBeMutable() {
	if m.frozen {
		panic("world: mutation of a frozen map")
	}
}

// ApplyRoom carves the room's floor cells: x in (X1, X2], y in (Y1, Y2].
// The room is not clipped; a room reaching off the map panics in XYIdx.
func (m *Map) ApplyRoom(room Rect) {
	m.mustBeMutable()
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.tiles[m.XYIdx(x, y)] = TileFloor
		}
	}
}

// AddRoom appends a room to the room list without carving it.
func (m *Map) AddRoom(room Rect) {
	m.mustBeMutable()
	m.rooms = append(m.rooms, room)
}

// ApplyHorizontalTunnel carves floor along row y from x1 to x2 inclusive.
// Cells off the map are skipped.
func (m *Map) ApplyHorizontalTunnel(x1, x2, y int) {
	m.mustBeMutable()
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if m.InBounds(x, y) {
			m.tiles[m.XYIdx(x, y)] = TileFloor
		}
	}
}

// ApplyVerticalTunnel carves floor along column x from y1 to y2 inclusive.
// Cells off the map are skipped.
func (m *Map) ApplyVerticalTunnel(y1, y2, x int) {
	m.mustBeMutable()
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if m.InBounds(x, y) {
			m.tiles[m.XYIdx(x, y)] = TileFloor
		}
	}
}

// String renders the map one row per line.
func (m *Map) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteRune(m.tiles[y*m.width+x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
