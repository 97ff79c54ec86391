package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/dice"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement parameters
	DefaultMaxRooms    = 60 // Placement attempts, not a guaranteed room count
	DefaultMinRoomSize = 6
	DefaultMaxRoomSize = 10 // Inclusive
)

// ErrInvalidConfig is returned when generator parameters cannot produce a map.
var ErrInvalidConfig = errors.New("invalid generator config")

// GeneratorConfig holds the rooms-and-corridors parameters.
type GeneratorConfig struct {
	Width       int
	Height      int
	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int
}

// DefaultGeneratorConfig returns the standard 80x50 layout with 60 placement attempts.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
	}
}

// Validate checks that every room the generator can sample fits on the map
// with a one-tile margin on the far edges.
func (c GeneratorConfig) Validate() error {
	if c.MaxRooms <= 0 {
		return fmt.Errorf("%w: max rooms must be positive, got %d", ErrInvalidConfig, c.MaxRooms)
	}
	if c.MinRoomSize <= 0 || c.MaxRoomSize < c.MinRoomSize {
		return fmt.Errorf("%w: room size range [%d, %d]", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	}
	if c.Width-c.MaxRoomSize-1 < 1 || c.Height-c.MaxRoomSize-1 < 1 {
		return fmt.Errorf("%w: %dx%d map cannot hold rooms of size %d",
			ErrInvalidConfig, c.Width, c.Height, c.MaxRoomSize)
	}
	return nil
}

// Generator places random non-overlapping rooms and joins consecutive rooms
// with L-shaped corridors.
type Generator struct {
	cfg    GeneratorConfig
	dice   *dice.Roller
	logger *log.Logger
}

// NewGenerator creates a generator that draws from the given roller.
func NewGenerator(cfg GeneratorConfig, roller *dice.Roller) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if roller == nil {
		return nil, fmt.Errorf("%w: nil roller", ErrInvalidConfig)
	}
	return &Generator{cfg: cfg, dice: roller}, nil
}

// WithLogger attaches a logger for generation summaries.
func (g *Generator) WithLogger(logger *log.Logger) *Generator {
	g.logger = logger
	return g
}

// Config returns the generator parameters.
func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// Generate builds and freezes a new map. Rooms that intersect an already
// accepted room are discarded without retry, so the room count varies
// between 1 and MaxRooms.
func (g *Generator) Generate(ctx context.Context) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	m := NewMap(g.cfg.Width, g.cfg.Height)
	rejected := 0

	for i := 0; i < g.cfg.MaxRooms; i++ {
		w := g.dice.Range(g.cfg.MinRoomSize, g.cfg.MaxRoomSize)
		h := g.dice.Range(g.cfg.MinRoomSize, g.cfg.MaxRoomSize)
		x := g.dice.RollDice(1, g.cfg.Width-w-1) - 1
		y := g.dice.RollDice(1, g.cfg.Height-h-1) - 1
		candidate := NewRect(x, y, w, h)

		if overlapsAny(candidate, m.rooms) {
			rejected++
			continue
		}

		m.ApplyRoom(candidate)
		if len(m.rooms) > 0 {
			g.connect(m, m.rooms[len(m.rooms)-1], candidate)
		}
		m.AddRoom(candidate)
	}

	m.Freeze()

	span.SetAttributes(
		attribute.Int("dungeon.width", m.width),
		attribute.Int("dungeon.height", m.height),
		attribute.Int("dungeon.attempts", g.cfg.MaxRooms),
		attribute.Int("dungeon.room_count", len(m.rooms)),
		attribute.Int("dungeon.rejected", rejected),
		attribute.Int64("dungeon.seed", g.dice.Seed()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	if g.logger != nil {
		g.logger.Debug("dungeon generated",
			"rooms", len(m.rooms),
			"rejected", rejected,
			"floor", m.FloorCount(),
			"seed", g.dice.Seed(),
		)
	}

	return m
}

// overlapsAny returns true if candidate intersects any of rooms.
func overlapsAny(candidate Rect, rooms []Rect) bool {
	for _, other := range rooms {
		if candidate.Intersects(other) {
			return true
		}
	}
	return false
}

// connect carves an L-shaped corridor between the centers of prev and next.
func (g *Generator) connect(m *Map, prev, next Rect) {
	prevX, prevY := prev.Center()
	newX, newY := next.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if g.dice.CoinFlip() {
		m.ApplyHorizontalTunnel(prevX, newX, prevY)
		m.ApplyVerticalTunnel(prevY, newY, newX)
	} else {
		m.ApplyVerticalTunnel(prevY, newY, prevX)
		m.ApplyHorizontalTunnel(prevX, newX, newY)
	}
}
