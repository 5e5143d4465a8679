package core

// Action is a semantic game action, abstracted from physical key presses
// (or mouse buttons, or SSH-forwarded input). The platform maps raw input
// to actions; the game consumes actions only.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // space, up, w, click - flap, or advance out of a menu mode
	ActionPause          // p, esc - pause/resume toggle
	ActionConfirm        // enter - confirm (camera setup, level complete, camera commit)
	ActionCancel         // esc in camera adjust - discard transient camera params
	ActionAdjust         // c - open camera adjust from pause
	ActionRestart        // r - back to camera setup from game over/victory
	ActionZoomIn         // + or = - duplicate of wheel zoom
	ActionZoomOut        // - or _
	ActionMusic          // m - toggle background score
	ActionSFX            // n - toggle one-shot cues
	ActionQuit           // q, ctrl+c
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionAdjust:
		return "Adjust"
	case ActionRestart:
		return "Restart"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionMusic:
		return "Music"
	case ActionSFX:
		return "SFX"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the player did between two simulation ticks.
// Discrete actions are edge-triggered booleans; camera adjustment carries
// analog drag/wheel deltas that only the two setup modes consume.
type InputFrame struct {
	Actions map[Action]bool

	// Camera deltas, accumulated over the frame. DragX/DragY are in cells,
	// Wheel in notches (positive = zoom in).
	DragX, DragY float64
	Wheel        float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddDrag accumulates a camera rotation delta.
func (f *InputFrame) AddDrag(dx, dy float64) {
	f.DragX += dx
	f.DragY += dy
}

// AddWheel accumulates a zoom delta.
func (f *InputFrame) AddWheel(d float64) {
	f.Wheel += d
}

// HasCameraDelta reports whether any analog camera input arrived.
func (f InputFrame) HasCameraDelta() bool {
	return f.DragX != 0 || f.DragY != 0 || f.Wheel != 0
}

// Clear resets all actions and deltas for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.DragX, f.DragY, f.Wheel = 0, 0, 0
}
