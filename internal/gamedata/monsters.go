package gamedata

import "github.com/gdamore/tcell/v2"

// MonsterDef defines a monster kind loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string `json:"color"`       // Hex code or tcell color name
	SightRange  int    `json:"sightRange"`  // Field-of-view radius in tiles
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	for _, r := range m.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color, falling back to white.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseColor(m.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
