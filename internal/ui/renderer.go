package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/ecs"
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, then every positioned renderable entity, then the
// message line directly below the map.
func (r *Renderer) Render(m *world.Map, w *ecs.World, message string) {
	r.screen.Clear()

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tile := m.TileAt(x, y)
			r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile))
		}
	}

	ecs.Join2(w, func(_ ecs.Entity, pos *entity.Position, rend *entity.Renderable) {
		style := tcell.StyleDefault.Foreground(rend.Fg).Background(rend.Bg)
		r.screen.SetContent(pos.X, pos.Y, rend.Glyph, style)
	})

	if message != "" {
		r.RenderMessage(message, m.Height())
	}

	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage writes a single line of text starting at column 0 of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
		i++
	}
}
