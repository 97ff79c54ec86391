package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/ecs"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
)

// PlayerGlyph is drawn at the player's position.
const PlayerGlyph = '@'

// SpawnPlayer creates the player entity at (x, y).
func SpawnPlayer(w *ecs.World, x, y, viewRange int) ecs.Entity {
	e := w.NewEntity()
	ecs.Attach(w, e, Position{X: x, Y: y})
	ecs.Attach(w, e, Renderable{
		Glyph: PlayerGlyph,
		Fg:    tcell.ColorYellow,
		Bg:    tcell.ColorBlack,
	})
	ecs.Attach(w, e, Player{})
	ecs.Attach(w, e, Name{Name: "Player"})
	ecs.Attach(w, e, NewViewshed(viewRange))
	return e
}

// SpawnMonster creates a monster from its definition at (x, y).
// A non-positive sightRange falls back to the definition's own range.
func SpawnMonster(w *ecs.World, def *gamedata.MonsterDef, x, y, roomIndex, sightRange int) ecs.Entity {
	if sightRange <= 0 {
		sightRange = def.SightRange
	}

	e := w.NewEntity()
	ecs.Attach(w, e, Position{X: x, Y: y})
	ecs.Attach(w, e, Renderable{
		Glyph: def.GlyphRune(),
		Fg:    def.TCellColor(),
		Bg:    tcell.ColorBlack,
	})
	ecs.Attach(w, e, Monster{Kind: def.ID, RoomIndex: roomIndex})
	ecs.Attach(w, e, Name{Name: def.Name})
	ecs.Attach(w, e, NewViewshed(sightRange))
	return e
}
