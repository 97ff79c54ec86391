package system

import (
	"github.com/charmbracelet/log"

	"github.com/samdwyer/roomcrawl/internal/ecs"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/fov"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// IsVisible reports whether p is in the watcher's visible set.
func IsVisible(set fov.VisibleSet, p world.Point) bool {
	return set.Has(p)
}

// VisibilitySystem refreshes dirty viewsheds from the map.
type VisibilitySystem struct{}

// Run recomputes every dirty viewshed and returns how many were refreshed.
func (VisibilitySystem) Run(w *ecs.World, m *world.Map) int {
	refreshed := 0
	ecs.Join2(w, func(_ ecs.Entity, pos *entity.Position, vs *entity.Viewshed) {
		if !vs.Dirty {
			return
		}
		vs.Visible = fov.Compute(m, pos.Point(), vs.Range)
		vs.Dirty = false
		refreshed++
	})
	return refreshed
}

// Sighting records a monster that saw the watched point this tick.
type Sighting struct {
	Entity   ecs.Entity
	Name     string
	Position entity.Position
}

// Message returns the line shown to the player for the sighting.
func (s Sighting) Message() string {
	return s.Name + " shouts insults"
}

// MonsterAI reacts when a monster can see the player.
type MonsterAI struct {
	logger *log.Logger
}

// NewMonsterAI creates the AI system. logger may be nil.
func NewMonsterAI(logger *log.Logger) *MonsterAI {
	return &MonsterAI{logger: logger}
}

// Run checks each monster's viewshed against target independently and
// returns a sighting for every monster that can see it.
func (ai *MonsterAI) Run(w *ecs.World, target world.Point) []Sighting {
	var sightings []Sighting
	ecs.Join3(w, func(e ecs.Entity, _ *entity.Monster, vs *entity.Viewshed, name *entity.Name) {
		if !IsVisible(vs.Visible, target) {
			return
		}
		s := Sighting{Entity: e, Name: name.Name}
		if pos, ok := ecs.Get[entity.Position](w, e); ok {
			s.Position = *pos
		}
		sightings = append(sightings, s)

		if ai.logger != nil {
			ai.logger.Info(s.Message(), "monster", e, "x", s.Position.X, "y", s.Position.Y)
		}
	})
	return sightings
}
