package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"hoverdash/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game
// actions. This centralizes the bindings and makes them testable.
// The mapper carries the mouse drag state between events.
type KeyMapper struct {
	dragging     bool
	lastX, lastY int
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame folds a key message into the input frame. Returns true
// for a quit request. Esc carries two meanings (pause toggle and
// adjust-discard); both actions are set and the mode decides which
// one applies.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	case " ", "up", "w":
		frame.Set(core.ActionFlap)
	case "p":
		frame.Set(core.ActionPause)
	case "esc":
		frame.Set(core.ActionPause)
		frame.Set(core.ActionCancel)
	case "enter":
		frame.Set(core.ActionConfirm)
	case "c":
		frame.Set(core.ActionAdjust)
	case "r":
		frame.Set(core.ActionRestart)
	case "+", "=":
		frame.Set(core.ActionZoomIn)
	case "-", "_":
		frame.Set(core.ActionZoomOut)
	case "m":
		frame.Set(core.ActionMusic)
	case "n":
		frame.Set(core.ActionSFX)
	}
	return false
}

// MapMouseToFrame folds a mouse event into the input frame. The wheel
// always zooms; what the left button means depends on the mode:
// while orbiting (a camera setup mode) it drags the view, otherwise a
// click is a flap.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame, orbiting bool) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			frame.AddWheel(1)
		}
		return
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			frame.AddWheel(-1)
		}
		return
	}

	if !orbiting {
		km.dragging = false
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			frame.Set(core.ActionFlap)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			km.dragging = true
			km.lastX, km.lastY = msg.X, msg.Y
		}
	case tea.MouseActionMotion:
		if km.dragging {
			frame.AddDrag(float64(msg.X-km.lastX), float64(msg.Y-km.lastY))
			km.lastX, km.lastY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		km.dragging = false
	}
}
