package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/dice"
	"github.com/samdwyer/roomcrawl/internal/ecs"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/system"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/ui"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// ErrNotSetUp is returned when the loop or a tick is started before Setup.
var ErrNotSetUp = errors.New("game: Setup has not been called")

// Game holds the entire game state.
type Game struct {
	cfg      Config
	logger   *log.Logger
	dice     *dice.Roller
	monsters *gamedata.MonsterRegistry

	world   *ecs.World
	gameMap *world.Map
	player  ecs.Entity

	visibility system.VisibilitySystem
	ai         *system.MonsterAI

	state   State
	pending system.Direction
	message string
	turn    int
	running bool
}

// New creates a game. It does not touch the terminal.
func New(cfg Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		return nil, errors.New("game: nil logger")
	}
	if err := cfg.Generator.Validate(); err != nil {
		return nil, err
	}

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load monsters: %w", err)
	}
	kinds := make([]string, 0, monsters.Count())
	for _, def := range monsters.All() {
		kinds = append(kinds, def.ID)
	}
	logger.Debug("monsters loaded", "kinds", kinds)

	return &Game{
		cfg:      cfg,
		logger:   logger,
		dice:     dice.New(cfg.Seed),
		monsters: monsters,
		ai:       system.NewMonsterAI(logger),
		state:    StatePaused,
	}, nil
}

// Seed returns the seed actually used for this game.
func (g *Game) Seed() int64 { return g.dice.Seed() }

// World returns the entity store. Nil before Setup.
func (g *Game) World() *ecs.World { return g.world }

// Map returns the generated, frozen map. Nil before Setup.
func (g *Game) Map() *world.Map { return g.gameMap }

// Player returns the player entity.
func (g *Game) Player() ecs.Entity { return g.player }

// State returns the current run state.
func (g *Game) State() State { return g.state }

// Message returns the last line shown to the player.
func (g *Game) Message() string { return g.message }

// Setup generates the dungeon, publishes it to the world, spawns the player
// in the first room and a monster in every other room, and computes the
// initial viewsheds.
func (g *Game) Setup(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	gen, err := world.NewGenerator(g.cfg.Generator, g.dice)
	if err != nil {
		return err
	}
	m := gen.WithLogger(g.logger).Generate(ctx)

	w := ecs.NewWorld()
	if err := ecs.InsertResource(w, m); err != nil {
		return err
	}

	rooms := m.Rooms()
	// The first placement attempt always succeeds, so rooms is never empty
	startX, startY := rooms[0].Center()
	player := entity.SpawnPlayer(w, startX, startY, g.cfg.PlayerViewRange)

	spawned := 0
	if g.cfg.SpawnMonsters {
		for i, room := range rooms[1:] {
			def := g.monsters.SpawnRandom(g.dice)
			if def == nil {
				break
			}
			x, y := room.Center()
			entity.SpawnMonster(w, def, x, y, i+1, g.cfg.MonsterViewRange)
			spawned++
		}
	}

	g.world = w
	g.gameMap = m
	g.player = player
	g.visibility.Run(w, m)
	g.message = "Welcome to roomcrawl."

	span.SetAttributes(
		attribute.Int64("game.seed", g.dice.Seed()),
		attribute.Int("dungeon.rooms", len(rooms)),
		attribute.Int("dungeon.attempts", gen.Config().MaxRooms),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
		attribute.Int("monsters.spawned", spawned),
	)
	g.logger.Info("game ready", "seed", g.dice.Seed(), "rooms", len(rooms), "monsters", spawned)

	return nil
}

// Tick runs one simulation step for the given movement intent:
// movement, then viewshed refresh, then the monster visibility check.
// The game is paused again afterwards.
func (g *Game) Tick(ctx context.Context, dir system.Direction) ([]system.Sighting, error) {
	if g.world == nil {
		return nil, ErrNotSetUp
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.tick")
	defer span.End()

	g.turn++

	m := ecs.MustFetchResource[world.Map](g.world)
	moved := system.MovePlayer(g.world, m, dir)
	g.visibility.Run(g.world, m)

	var sightings []system.Sighting
	if pos, ok := ecs.Get[entity.Position](g.world, g.player); ok {
		sightings = g.ai.Run(g.world, pos.Point())
	}

	switch {
	case len(sightings) > 0:
		g.message = sightings[len(sightings)-1].Message()
	case !moved:
		g.message = "You can't go that way."
	default:
		g.message = ""
	}

	g.state = StatePaused

	span.SetAttributes(
		attribute.Int("game.turn", g.turn),
		attribute.String("move.direction", dir.String()),
		attribute.Bool("move.accepted", moved),
		attribute.Int("ai.sightings", len(sightings)),
	)
	return sightings, nil
}

// step runs a tick for the pending move if input switched the game to running.
func (g *Game) step(ctx context.Context) error {
	if g.state != StateRunning {
		return nil
	}
	_, err := g.Tick(ctx, g.pending)
	g.pending = system.DirNone
	return err
}

// Run executes the interactive loop on screen until the player quits.
func (g *Game) Run(ctx context.Context, screen *ui.Screen) error {
	if g.world == nil {
		return ErrNotSetUp
	}

	renderer := ui.NewRenderer(screen)
	g.running = true
	for g.running {
		if err := g.step(ctx); err != nil {
			return err
		}
		renderer.Render(g.gameMap, g.world, g.message)
		g.handleInput(screen)
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(screen *ui.Screen) {
	switch ev := screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input. A move only queues the
// direction; the next loop iteration runs the tick.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	action, dir := MapKey(ev)
	switch action {
	case ActionQuit:
		g.running = false
	case ActionMove:
		g.pending = dir
		g.state = StateRunning
	}
}
