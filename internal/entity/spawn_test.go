package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/ecs"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
)

func TestSpawnPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e := SpawnPlayer(w, 4, 7, 8)

	pos, ok := ecs.Get[Position](w, e)
	if !ok || pos.X != 4 || pos.Y != 7 {
		t.Fatalf("player position = %+v, %v", pos, ok)
	}
	if !ecs.Has[Player](w, e) {
		t.Error("player should carry the Player marker")
	}
	r, _ := ecs.Get[Renderable](w, e)
	if r.Glyph != '@' || r.Fg != tcell.ColorYellow || r.Bg != tcell.ColorBlack {
		t.Errorf("player renderable = %+v", *r)
	}
	vs, _ := ecs.Get[Viewshed](w, e)
	if !vs.Dirty || vs.Range != 8 || vs.Visible.Size() != 0 {
		t.Errorf("new viewshed = %+v", *vs)
	}
}

func TestSpawnMonster(t *testing.T) {
	w := ecs.NewWorld()
	def := &gamedata.MonsterDef{ID: "orc", Name: "Orc", Glyph: "o", Color: "red", SightRange: 6}

	e := SpawnMonster(w, def, 10, 11, 3, 0)
	m, ok := ecs.Get[Monster](w, e)
	if !ok || m.Kind != "orc" || m.RoomIndex != 3 {
		t.Fatalf("monster component = %+v, %v", m, ok)
	}
	if ecs.Has[Player](w, e) {
		t.Error("monster must not be a player")
	}
	name, _ := ecs.Get[Name](w, e)
	if name.Name != "Orc" {
		t.Errorf("name = %q", name.Name)
	}
	r, _ := ecs.Get[Renderable](w, e)
	if r.Glyph != 'o' || r.Fg != tcell.ColorRed {
		t.Errorf("renderable = %+v", *r)
	}
	vs, _ := ecs.Get[Viewshed](w, e)
	if vs.Range != 6 {
		t.Errorf("sight range = %d, want definition's 6", vs.Range)
	}

	e2 := SpawnMonster(w, def, 1, 1, 0, 12)
	vs2, _ := ecs.Get[Viewshed](w, e2)
	if vs2.Range != 12 {
		t.Errorf("sight range override = %d, want 12", vs2.Range)
	}
}

func TestPositionPoint(t *testing.T) {
	p := Position{X: 2, Y: 9}
	if pt := p.Point(); pt.X != 2 || pt.Y != 9 {
		t.Errorf("Point() = %+v", pt)
	}
}
