package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals only report presses, plus auto-repeat while a key stays down,
// so a release is inferred once the repeats stop.
const DefaultHoldWindow = 150 * time.Millisecond

// Control is a ship control driven by the keyboard.
type Control int

const (
	ControlThrust Control = iota
	ControlLeft
	ControlRight
	ControlFire
	controlCount
)

// HoldTracker turns a stream of key presses into down and up edges on an
// intent latch. The first press of a key is its down edge; the up edge is
// emitted when no press has arrived for the hold window. Auto-repeat of a
// held fire key therefore does not fire again.
type HoldTracker struct {
	latch  *core.IntentLatch
	window time.Duration
	held   [controlCount]bool
	last   [controlCount]time.Time
}

// NewHoldTracker creates a tracker feeding latch.
func NewHoldTracker(latch *core.IntentLatch, window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{latch: latch, window: window}
}

// Press records a key press at now.
func (h *HoldTracker) Press(c Control, now time.Time) {
	if c < 0 || c >= controlCount {
		return
	}
	h.last[c] = now
	if h.held[c] {
		return
	}
	h.held[c] = true

	switch c {
	case ControlThrust:
		h.latch.ThrustOn()
	case ControlLeft:
		// The newer steering key wins; the other one is no longer held
		h.held[ControlRight] = false
		h.latch.SteerLeft(true)
	case ControlRight:
		h.held[ControlLeft] = false
		h.latch.SteerRight(true)
	case ControlFire:
		h.latch.Fire()
	}
}

// Expire releases every key whose last press is older than the hold window.
func (h *HoldTracker) Expire(now time.Time) {
	for c := Control(0); c < controlCount; c++ {
		if !h.held[c] || now.Sub(h.last[c]) < h.window {
			continue
		}
		h.held[c] = false

		switch c {
		case ControlThrust:
			h.latch.ThrustOff()
		case ControlLeft:
			h.latch.SteerLeft(false)
		case ControlRight:
			h.latch.SteerRight(false)
		}
	}
}

// Held reports whether a control is currently held.
func (h *HoldTracker) Held(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return h.held[c]
}

// Reset releases everything and clears the latch.
func (h *HoldTracker) Reset() {
	h.held = [controlCount]bool{}
	h.latch.Clear()
}
