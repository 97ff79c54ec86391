// Package config loads roomcrawl settings from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// Settings is the full configuration file.
type Settings struct {
	Seed     int64          `yaml:"seed"`
	Map      MapSettings    `yaml:"map"`
	Player   PlayerSettings `yaml:"player"`
	Monsters MonsterConfig  `yaml:"monsters"`
	Log      LogSettings    `yaml:"log"`
}

// MapSettings controls dungeon generation.
type MapSettings struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MaxRooms    int `yaml:"max_rooms"`
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`
}

// PlayerSettings controls the player entity.
type PlayerSettings struct {
	ViewRange int `yaml:"view_range"`
}

// MonsterConfig controls monster spawning.
type MonsterConfig struct {
	Enabled   bool `yaml:"enabled"`
	ViewRange int  `yaml:"view_range"`
}

// LogSettings controls the logger.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings, matching defaults/roomcrawl.yaml.
func Default() Settings {
	gen := world.DefaultGeneratorConfig()
	return Settings{
		Map: MapSettings{
			Width:       gen.Width,
			Height:      gen.Height,
			MaxRooms:    gen.MaxRooms,
			MinRoomSize: gen.MinRoomSize,
			MaxRoomSize: gen.MaxRoomSize,
		},
		Player:   PlayerSettings{ViewRange: 8},
		Monsters: MonsterConfig{Enabled: true},
		Log:      LogSettings{Level: "info", File: "roomcrawl.log"},
	}
}

// Generator converts the map settings into generator parameters.
func (s Settings) Generator() world.GeneratorConfig {
	return world.GeneratorConfig{
		Width:       s.Map.Width,
		Height:      s.Map.Height,
		MaxRooms:    s.Map.MaxRooms,
		MinRoomSize: s.Map.MinRoomSize,
		MaxRoomSize: s.Map.MaxRoomSize,
	}
}

// LogLevel parses the configured level, defaulting to info when unset.
func (s Settings) LogLevel() (log.Level, error) {
	if s.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(s.Log.Level)
}

// Validate checks the settings for values the game cannot run with.
func (s Settings) Validate() error {
	var errs []error
	if err := s.Generator().Validate(); err != nil {
		errs = append(errs, err)
	}
	if s.Player.ViewRange < 0 {
		errs = append(errs, fmt.Errorf("player view range must not be negative, got %d", s.Player.ViewRange))
	}
	if s.Monsters.ViewRange < 0 {
		errs = append(errs, fmt.Errorf("monster view range must not be negative, got %d", s.Monsters.ViewRange))
	}
	if _, err := s.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}
