package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newTestTracker() (*HoldTracker, *core.IntentLatch) {
	latch := core.NewIntentLatch()
	return NewHoldTracker(latch, 100*time.Millisecond), latch
}

func TestHoldTrackerThrust(t *testing.T) {
	h, latch := newTestTracker()
	t0 := time.Unix(0, 0)

	h.Press(ControlThrust, t0)
	if !latch.Intents().Thrust {
		t.Fatal("press should start thrusting")
	}

	h.Expire(t0.Add(99 * time.Millisecond))
	if !latch.Intents().Thrust {
		t.Error("thrust should still be held inside the window")
	}

	// Auto-repeat extends the hold
	h.Press(ControlThrust, t0.Add(90*time.Millisecond))
	h.Expire(t0.Add(150 * time.Millisecond))
	if !h.Held(ControlThrust) {
		t.Error("repeat should extend the hold")
	}

	h.Expire(t0.Add(190 * time.Millisecond))
	if latch.Intents().Thrust {
		t.Error("thrust should be released after the window expires")
	}
	if h.Held(ControlThrust) {
		t.Error("Held should report the release")
	}
}

func TestHoldTrackerFireIsEdgeTriggered(t *testing.T) {
	h, latch := newTestTracker()
	t0 := time.Unix(0, 0)

	for i := 0; i < 5; i++ {
		h.Press(ControlFire, t0.Add(time.Duration(i)*30*time.Millisecond))
	}
	if got := latch.Intents().Fire; got != 1 {
		t.Errorf("held fire key queued %d shots, expected 1", got)
	}

	h.Expire(t0.Add(time.Second))
	h.Press(ControlFire, t0.Add(time.Second))
	if got := latch.Intents().Fire; got != 1 {
		t.Errorf("fresh press queued %d shots, expected 1", got)
	}
}

func TestHoldTrackerSteering(t *testing.T) {
	h, latch := newTestTracker()
	t0 := time.Unix(0, 0)

	h.Press(ControlLeft, t0)
	if got := latch.Intents().Steer; got != core.SteerLeft {
		t.Fatalf("Steer = %v, expected Left", got)
	}

	h.Press(ControlRight, t0.Add(50*time.Millisecond))
	if got := latch.Intents().Steer; got != core.SteerRight {
		t.Fatalf("Steer = %v, expected Right after the newer press", got)
	}
	if h.Held(ControlLeft) {
		t.Error("left should no longer be held")
	}

	// Left's window passes, but right is still held
	h.Expire(t0.Add(120 * time.Millisecond))
	if got := latch.Intents().Steer; got != core.SteerRight {
		t.Errorf("Steer = %v, expected Right to survive the old left window", got)
	}

	h.Expire(t0.Add(150 * time.Millisecond))
	if got := latch.Intents().Steer; got != core.SteerNone {
		t.Errorf("Steer = %v, expected None after release", got)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h, latch := newTestTracker()
	t0 := time.Unix(0, 0)

	h.Press(ControlThrust, t0)
	h.Press(ControlLeft, t0)
	h.Press(ControlFire, t0)
	h.Reset()

	if in := latch.Intents(); in != (core.InputFrame{}) {
		t.Errorf("Reset should clear all intents, got %+v", in)
	}
	for c := Control(0); c < controlCount; c++ {
		if h.Held(c) {
			t.Errorf("control %d still held after Reset", c)
		}
	}
}

func TestHoldTrackerDefaults(t *testing.T) {
	h := NewHoldTracker(core.NewIntentLatch(), 0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected %v", h.window, DefaultHoldWindow)
	}

	// Unknown controls are ignored
	h.Press(Control(-1), time.Now())
	h.Press(controlCount, time.Now())
	if h.Held(controlCount) {
		t.Error("out of range control should never be held")
	}
}
