package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/system"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
)

// MapKey translates a key event into an action and, for ActionMove, a direction.
// Arrows, vi keys (hjkl) and numpad digits (8, 2, 4, 6) move.
func MapKey(ev *tcell.EventKey) (Action, system.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, system.DirNone
	case tcell.KeyUp:
		return ActionMove, system.DirUp
	case tcell.KeyDown:
		return ActionMove, system.DirDown
	case tcell.KeyLeft:
		return ActionMove, system.DirLeft
	case tcell.KeyRight:
		return ActionMove, system.DirRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit, system.DirNone
		case 'k', '8':
			return ActionMove, system.DirUp
		case 'j', '2':
			return ActionMove, system.DirDown
		case 'h', '4':
			return ActionMove, system.DirLeft
		case 'l', '6':
			return ActionMove, system.DirRight
		}
	}
	return ActionNone, system.DirNone
}
