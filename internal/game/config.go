package game

import (
	"github.com/samdwyer/roomcrawl/internal/config"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Generator world.GeneratorConfig

	// PlayerViewRange is the player's field-of-view radius.
	PlayerViewRange int

	// SpawnMonsters places one monster at the center of every room but the first.
	SpawnMonsters bool

	// MonsterViewRange overrides each monster's own sight range when positive.
	MonsterViewRange int
}

// DefaultConfig returns the standard 80x50 game with monsters.
func DefaultConfig() Config {
	return ConfigFromSettings(config.Default())
}

// ConfigFromSettings converts loaded settings into game options.
func ConfigFromSettings(s config.Settings) Config {
	return Config{
		Seed:             s.Seed,
		Generator:        s.Generator(),
		PlayerViewRange:  s.Player.ViewRange,
		SpawnMonsters:    s.Monsters.Enabled,
		MonsterViewRange: s.Monsters.ViewRange,
	}
}
