package core

// Action represents a semantic game action, abstracted from physical key presses.
// Input providers (keyboard, SSH session, WebSocket client) all produce the
// same actions so the simulation never sees a device.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space, W, Up - jump on the ground, thrust while airborne
	ActionRun            // Shift / X - run multiplier while held
	ActionShoot          // F, J - fire a projectile
	ActionReset          // R - full reset of the current run
	ActionPause          // P - pause/unpause
	ActionConfirm        // Enter - start the game, confirm menu selection
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionJump:    "jump",
	ActionRun:     "run",
	ActionShoot:   "shoot",
	ActionReset:   "reset",
	ActionPause:   "pause",
	ActionConfirm: "confirm",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionBack:    "back",
	ActionQuit:    "quit",
}

// String returns the lowercase name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a name produced by String back to its action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is the held state of every logical action during one tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions held.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Pressed reports whether a went from released in prev to held in f.
func (f InputFrame) Pressed(prev InputFrame, a Action) bool {
	return f.Has(a) && !prev.Has(a)
}
