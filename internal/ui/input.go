package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/neonpong/internal/protocol"
)

// ArrowStep is how far one arrow key press moves the paddle, in canvas units
const ArrowStep = 24.0

// KeyToInput converts a key event to a game input.
// Reports false for keys the game does not use.
func KeyToInput(key tcell.Key, r rune) (protocol.Input, bool) {
	switch key {
	case tcell.KeyEnter:
		return protocol.Input{Kind: protocol.InputRestart}, true
	case tcell.KeyRune:
		if k := runeToKey(r); k != protocol.KeyNone {
			return protocol.Input{Kind: protocol.InputKey, Key: k}, true
		}
	}
	return protocol.Input{}, false
}

func runeToKey(r rune) protocol.Key {
	switch r {
	case ' ':
		return protocol.KeyStart
	case 'p', 'P':
		return protocol.KeyPause
	case 'q', 'Q':
		return protocol.KeyTeleport
	case 'w', 'W':
		return protocol.KeySlowTime
	case 'e', 'E':
		return protocol.KeyWall
	case 'r', 'R':
		return protocol.KeyExtraBall
	}
	return protocol.KeyNone
}

// ArrowDelta returns the paddle movement for an arrow key, or 0
func ArrowDelta(key tcell.Key) float64 {
	switch key {
	case tcell.KeyUp:
		return -ArrowStep
	case tcell.KeyDown:
		return ArrowStep
	}
	return 0
}

// IsQuitKey returns true if the key should quit the application.
// q is an ability, so only Escape and Ctrl+C quit.
func IsQuitKey(key tcell.Key) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC
}

// MouseToInput converts a mouse row to a pointer input in canvas space
func MouseToInput(row, screenH int, canvasH float64) protocol.Input {
	return protocol.Input{Kind: protocol.InputPointer, Y: CanvasY(row, screenH, canvasH)}
}
