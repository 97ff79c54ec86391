package gamedata

import (
	"errors"

	"github.com/samdwyer/roomcrawl/internal/dice"
)

// MonsterRegistry holds loaded monster definitions and provides spawning utilities.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		if m.SpawnWeight > 0 {
			totalWeight += m.SpawnWeight
		}
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// SpawnRandom selects a monster definition using weighted probability.
// Returns nil if no definition has a positive weight.
func (r *MonsterRegistry) SpawnRandom(roller *dice.Roller) *MonsterDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := roller.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.monsters {
		if r.monsters[i].SpawnWeight <= 0 {
			continue
		}
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Unreachable while totalWeight matches the positive weights
	return &r.monsters[0]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// All returns a copy of every monster definition in load order.
func (r *MonsterRegistry) All() []MonsterDef {
	out := make([]MonsterDef, len(r.monsters))
	copy(out, r.monsters)
	return out
}

// Count returns the number of monster kinds in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
