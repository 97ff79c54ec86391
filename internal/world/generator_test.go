package world

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/samdwyer/roomcrawl/internal/dice"
)

func generate(t *testing.T, seed int64) *Map {
	t.Helper()
	gen, err := NewGenerator(DefaultGeneratorConfig(), dice.New(seed))
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	return gen.Generate(context.Background())
}

func TestGeneratorReproducibility(t *testing.T) {
	seed := int64(12345)
	m1 := generate(t, seed)
	m2 := generate(t, seed)

	if !slices.Equal(m1.Rooms(), m2.Rooms()) {
		t.Fatalf("Room lists differ for the same seed: %v != %v", m1.Rooms(), m2.Rooms())
	}
	if !slices.Equal(m1.Tiles(), m2.Tiles()) {
		t.Fatal("Tile arrays differ for the same seed")
	}
}

func TestGeneratorDifferentSeeds(t *testing.T) {
	m1 := generate(t, 12345)
	m2 := generate(t, 54321)

	// Very unlikely to be identical by chance
	if slices.Equal(m1.Rooms(), m2.Rooms()) {
		t.Error("Maps with different seeds should not be identical")
	}
}

func TestGeneratedMapIsFrozen(t *testing.T) {
	m := generate(t, 7)
	if !m.Frozen() {
		t.Error("Generate should return a frozen map")
	}
}

func TestGeneratedRoomsAreFloorAndDisjoint(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		m := generate(t, seed)
		rooms := m.Rooms()

		if m.FloorCount() == 0 {
			t.Fatalf("seed %d: no floor tiles", seed)
		}
		if len(rooms) == 0 {
			t.Fatalf("seed %d: no rooms", seed)
		}

		for i, room := range rooms {
			for y := room.Y1 + 1; y <= room.Y2; y++ {
				for x := room.X1 + 1; x <= room.X2; x++ {
					if m.TileAt(x, y) != TileFloor {
						t.Fatalf("seed %d: room %d has wall at (%d,%d)", seed, i, x, y)
					}
				}
			}
			for j := i + 1; j < len(rooms); j++ {
				if room.Intersects(rooms[j]) {
					t.Fatalf("seed %d: rooms %d and %d intersect: %+v %+v", seed, i, j, room, rooms[j])
				}
			}
		}
	}
}

func TestGeneratedRoomsStayInsideMargin(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	for seed := int64(1); seed <= 50; seed++ {
		m := generate(t, seed)
		for i, room := range m.Rooms() {
			if room.X1 < 0 || room.Y1 < 0 || room.X2 > cfg.Width-2 || room.Y2 > cfg.Height-2 {
				t.Fatalf("seed %d: room %d %+v leaves the 1-tile far-edge margin", seed, i, room)
			}
			if room.Width() < cfg.MinRoomSize || room.Width() > cfg.MaxRoomSize ||
				room.Height() < cfg.MinRoomSize || room.Height() > cfg.MaxRoomSize {
				t.Fatalf("seed %d: room %d has size %dx%d", seed, i, room.Width(), room.Height())
			}
		}
	}
}

func TestConsecutiveRoomsAreConnected(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m := generate(t, seed)
		rooms := m.Rooms()
		for i := 1; i < len(rooms); i++ {
			ax, ay := rooms[i-1].Center()
			bx, by := rooms[i].Center()
			if !floorPathExists(m, Point{ax, ay}, Point{bx, by}) {
				t.Fatalf("seed %d: no floor path between room %d and room %d", seed, i-1, i)
			}
		}
	}
}

func TestRoomCountBound(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	total := 0
	runs := 100
	for seed := int64(1); seed <= int64(runs); seed++ {
		n := generate(t, seed).RoomCount()
		if n > cfg.MaxRooms {
			t.Fatalf("seed %d: %d rooms exceeds %d attempts", seed, n, cfg.MaxRooms)
		}
		total += n
	}
	// Overlap rejection keeps the typical count well below the attempt count.
	if mean := total / runs; mean >= cfg.MaxRooms/2 {
		t.Errorf("mean room count %d, expected substantially fewer than %d", mean, cfg.MaxRooms)
	}
}

func TestGeneratorConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*GeneratorConfig)
		valid bool
	}{
		{"default", func(*GeneratorConfig) {}, true},
		{"zero attempts", func(c *GeneratorConfig) { c.MaxRooms = 0 }, false},
		{"inverted sizes", func(c *GeneratorConfig) { c.MinRoomSize, c.MaxRoomSize = 8, 4 }, false},
		{"zero size", func(c *GeneratorConfig) { c.MinRoomSize = 0 }, false},
		{"too narrow", func(c *GeneratorConfig) { c.Width = 11 }, false},
		{"just wide enough", func(c *GeneratorConfig) { c.Width = 12 }, true},
		{"too short", func(c *GeneratorConfig) { c.Height = 5 }, false},
	}

	for _, tt := range tests {
		cfg := DefaultGeneratorConfig()
		tt.mod(&cfg)
		err := cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestNewGeneratorRejectsNilRoller(t *testing.T) {
	if _, err := NewGenerator(DefaultGeneratorConfig(), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestSmallMapGeneration(t *testing.T) {
	cfg := GeneratorConfig{Width: 12, Height: 12, MaxRooms: 10, MinRoomSize: 3, MaxRoomSize: 10}
	for seed := int64(1); seed <= 20; seed++ {
		gen, err := NewGenerator(cfg, dice.New(seed))
		if err != nil {
			t.Fatalf("NewGenerator failed: %v", err)
		}
		if gen.Config() != cfg {
			t.Fatalf("Config() = %+v, want %+v", gen.Config(), cfg)
		}
		m := gen.Generate(context.Background())
		if m.RoomCount() < 1 {
			t.Fatalf("seed %d: first attempt is always accepted", seed)
		}
	}
}

// floorPathExists runs a 4-way flood fill over floor tiles.
func floorPathExists(m *Map, from, to Point) bool {
	if !m.IsPassable(from.X, from.Y) || !m.IsPassable(to.X, to.Y) {
		return false
	}
	visited := make([]bool, m.Width()*m.Height())
	queue := []Point{from}
	visited[m.XYIdx(from.X, from.Y)] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			return true
		}
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := p.Add(d[0], d[1])
			if !m.IsPassable(n.X, n.Y) {
				continue
			}
			if idx := m.XYIdx(n.X, n.Y); !visited[idx] {
				visited[idx] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}
