// Package input turns terminal key presses into direction commands.
package input

import (
	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/gdamore/tcell/v2"
)

// KeyDirection maps vi keys and arrows to a direction: h/left is west,
// j/down south, k/up north and l/right east.
func KeyDirection(ev *tcell.EventKey) (maze.Direction, bool) {
	return keyDirection(ev.Key(), ev.Rune())
}

func keyDirection(key tcell.Key, r rune) (maze.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return maze.North, true
	case tcell.KeyDown:
		return maze.South, true
	case tcell.KeyLeft:
		return maze.West, true
	case tcell.KeyRight:
		return maze.East, true
	case tcell.KeyRune:
		switch r {
		case 'k':
			return maze.North, true
		case 'j':
			return maze.South, true
		case 'h':
			return maze.West, true
		case 'l':
			return maze.East, true
		}
	}
	return 0, false
}

// IsQuit reports whether the key asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	return isQuit(ev.Key(), ev.Rune())
}

func isQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return r == 'q'
	}
	return false
}
