package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// Default hold windows, in ticks.
const (
	// Long enough to bridge the gap before keyboard auto-repeat starts.
	DefaultHoldTicks = 30
	// Toggles and menu keys must not repeat.
	tapTicks = 1
)

// HeldKeys turns key presses into held actions. Terminals report presses
// and auto-repeats but never releases, so an action counts as held until
// no press has refreshed it for a number of ticks.
type HeldKeys struct {
	window int
	left   map[core.Action]int
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window int) *HeldKeys {
	if window < 1 {
		window = 1
	}
	return &HeldKeys{window: window, left: make(map[core.Action]int)}
}

// Press marks a as held. Pressing one direction releases the other, since
// a keyboard player switching direction has let go of the first key.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}

	if isTap(a) {
		h.left[a] = tapTicks
		return
	}
	h.left[a] = h.window
}

// Frame returns the actions held this tick and ages every hold by one.
func (h *HeldKeys) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range h.left {
		f.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
	return f
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.left)
}

func isTap(a core.Action) bool {
	switch a {
	case core.ActionPause, core.ActionReset, core.ActionConfirm, core.ActionBack:
		return true
	}
	return false
}
