package world

import (
	"errors"
	"testing"
)

func TestNewMapAllWalls(t *testing.T) {
	m := NewMap(10, 5)
	if m.Width() != 10 || m.Height() != 5 {
		t.Fatalf("size = %dx%d, want 10x5", m.Width(), m.Height())
	}
	if len(m.Tiles()) != 50 {
		t.Fatalf("tile count = %d, want 50", len(m.Tiles()))
	}
	if m.FloorCount() != 0 {
		t.Errorf("new map has %d floor tiles, want 0", m.FloorCount())
	}
	if m.RoomCount() != 0 {
		t.Errorf("new map has %d rooms, want 0", m.RoomCount())
	}
}

func TestFromTilesRejectsBadLength(t *testing.T) {
	_, err := FromTiles(3, 3, make([]Tile, 8))
	if !errors.Is(err, ErrTileCount) {
		t.Fatalf("FromTiles with 8 tiles for 3x3: err = %v, want ErrTileCount", err)
	}

	_, err = FromTiles(0, 3, nil)
	if !errors.Is(err, ErrTileCount) {
		t.Fatalf("FromTiles with zero width: err = %v, want ErrTileCount", err)
	}
}

func TestFromTilesCopiesInput(t *testing.T) {
	tiles := []Tile{TileFloor, TileFloor, TileWall, TileFloor}
	m, err := FromTiles(2, 2, tiles)
	if err != nil {
		t.Fatalf("FromTiles failed: %v", err)
	}
	tiles[0] = TileWall
	if m.TileAt(0, 0) != TileFloor {
		t.Error("map should not alias the input slice")
	}
	if m.TileAt(0, 1) != TileWall {
		t.Errorf("TileAt(0,1) = %v, want wall", m.TileAt(0, 1))
	}
}

func TestXYIdxRoundTrip(t *testing.T) {
	m := NewMap(17, 11)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			idx := m.XYIdx(x, y)
			if idx != y*17+x {
				t.Fatalf("XYIdx(%d,%d) = %d, want %d", x, y, idx, y*17+x)
			}
			if gx, gy := idx%m.Width(), idx/m.Width(); gx != x || gy != y {
				t.Fatalf("index %d decodes to (%d,%d), want (%d,%d)", idx, gx, gy, x, y)
			}
		}
	}
}

func TestXYIdxPanicsOutOfRange(t *testing.T) {
	m := NewMap(5, 5)
	coords := [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}}

	for _, c := range coords {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("XYIdx(%d,%d) should panic", c[0], c[1])
				}
			}()
			m.XYIdx(c[0], c[1])
		}()
	}
}

func TestTileAtOutOfBoundsIsWall(t *testing.T) {
	m, _ := FromTiles(1, 1, []Tile{TileFloor})
	if m.TileAt(-1, 0) != TileWall || m.TileAt(1, 0) != TileWall {
		t.Error("off-map tiles should read as walls")
	}
	if m.IsPassable(5, 5) {
		t.Error("off-map positions should not be passable")
	}
}

func TestApplyRoom(t *testing.T) {
	m := NewMap(12, 12)
	room := NewRect(2, 3, 4, 5)
	m.ApplyRoom(room)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			want := TileWall
			if room.Contains(x, y) {
				want = TileFloor
			}
			if got := m.TileAt(x, y); got != want {
				t.Errorf("TileAt(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if m.FloorCount() != 20 {
		t.Errorf("FloorCount = %d, want 20", m.FloorCount())
	}
}

func TestTunnelsEitherOrder(t *testing.T) {
	m := NewMap(10, 10)
	m.ApplyHorizontalTunnel(7, 2, 4)
	for x := 2; x <= 7; x++ {
		if m.TileAt(x, 4) != TileFloor {
			t.Errorf("horizontal tunnel missing floor at (%d,4)", x)
		}
	}
	if m.TileAt(1, 4) != TileWall || m.TileAt(8, 4) != TileWall {
		t.Error("horizontal tunnel should stop at its endpoints")
	}

	m.ApplyVerticalTunnel(6, 1, 3)
	for y := 1; y <= 6; y++ {
		if m.TileAt(3, y) != TileFloor {
			t.Errorf("vertical tunnel missing floor at (3,%d)", y)
		}
	}
	if m.FloorCount() != 6+6-1 {
		t.Errorf("FloorCount = %d, want 11", m.FloorCount())
	}
}

func TestTunnelsSkipOffMapCells(t *testing.T) {
	m := NewMap(5, 5)

	// A row past the right edge must not wrap onto the next row.
	m.ApplyHorizontalTunnel(3, 9, 1)
	if m.TileAt(0, 2) == TileFloor || m.TileAt(1, 2) == TileFloor {
		t.Error("horizontal tunnel wrapped onto the next row")
	}
	if m.FloorCount() != 2 {
		t.Errorf("FloorCount = %d, want 2", m.FloorCount())
	}

	m.ApplyVerticalTunnel(-3, 10, 4)
	if m.FloorCount() != 2+4 {
		t.Errorf("FloorCount = %d, want 6 after clipped vertical tunnel", m.FloorCount())
	}

	m.ApplyHorizontalTunnel(0, 4, -1)
	m.ApplyVerticalTunnel(0, 4, 7)
	if m.FloorCount() != 6 {
		t.Errorf("tunnels fully off the map should carve nothing, FloorCount = %d", m.FloorCount())
	}
}

func TestFrozenMapPanicsOnMutation(t *testing.T) {
	m := NewMap(10, 10)
	m.Freeze()
	if !m.Frozen() {
		t.Fatal("Frozen() = false after Freeze")
	}

	mutations := map[string]func(){
		"ApplyRoom":             func() { m.ApplyRoom(NewRect(1, 1, 2, 2)) },
		"AddRoom":               func() { m.AddRoom(NewRect(1, 1, 2, 2)) },
		"ApplyHorizontalTunnel": func() { m.ApplyHorizontalTunnel(1, 3, 1) },
		"ApplyVerticalTunnel":   func() { m.ApplyVerticalTunnel(1, 3, 1) },
	}

	for name, fn := range mutations {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on a frozen map should panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestRoomsReturnsCopy(t *testing.T) {
	m := NewMap(20, 20)
	m.AddRoom(NewRect(1, 1, 5, 5))
	rooms := m.Rooms()
	rooms[0] = NewRect(9, 9, 1, 1)
	if m.Rooms()[0] != NewRect(1, 1, 5, 5) {
		t.Error("Rooms() should return a copy")
	}
	if m.RoomIndexAt(3, 3) != 0 {
		t.Errorf("RoomIndexAt(3,3) = %d, want 0", m.RoomIndexAt(3, 3))
	}
	if m.RoomIndexAt(15, 15) != -1 {
		t.Errorf("RoomIndexAt(15,15) = %d, want -1", m.RoomIndexAt(15, 15))
	}
}

func TestMapString(t *testing.T) {
	m, _ := FromTiles(3, 2, []Tile{TileWall, TileFloor, TileWall, TileFloor, TileFloor, TileFloor})
	want := "#.#\n...\n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
