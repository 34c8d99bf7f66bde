package core

// Steering is the rotation intent of the ship for one tick.
type Steering int

const (
	SteerNone  Steering = iota
	SteerLeft           // counter-clockwise on screen (negative angular velocity)
	SteerRight          // clockwise on screen (positive angular velocity)
)

// String returns a human-readable name for the steering intent.
func (s Steering) String() string {
	switch s {
	case SteerNone:
		return "None"
	case SteerLeft:
		return "Left"
	case SteerRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame is the intent snapshot the simulation consumes for one tick.
// Thrust and Steer are level-triggered; Fire counts the discrete fire presses
// queued since the previous snapshot.
type InputFrame struct {
	Thrust bool
	Steer  Steering
	Fire   int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// IntentSource supplies the current intent snapshot at the start of each tick.
// Implementations decide where intents come from (keyboard, replay, CPU pilot).
type IntentSource interface {
	Intents() InputFrame
}

// IntentLatch turns discrete input events into per-tick intent snapshots.
// It is the input collaborator contract: thrust and steering edges update
// held state, fire presses queue until the next snapshot drains them.
// IntentLatch is not safe for concurrent use; the platform feeds it from the
// same goroutine that steps the simulation.
type IntentLatch struct {
	thrust bool
	steer  Steering
	fire   int
}

// NewIntentLatch creates a latch with no held intents.
func NewIntentLatch() *IntentLatch {
	return &IntentLatch{}
}

// ThrustOn starts thrusting.
func (l *IntentLatch) ThrustOn() {
	l.thrust = true
}

// ThrustOff stops thrusting.
func (l *IntentLatch) ThrustOff() {
	l.thrust = false
}

// SteerLeft presses (on=true) or releases (on=false) the left steering key.
// Releasing clears steering even if the right key was pressed last.
func (l *IntentLatch) SteerLeft(on bool) {
	if on {
		l.steer = SteerLeft
		return
	}
	l.steer = SteerNone
}

// SteerRight presses (on=true) or releases (on=false) the right steering key.
// Releasing clears steering even if the left key was pressed last.
func (l *IntentLatch) SteerRight(on bool) {
	if on {
		l.steer = SteerRight
		return
	}
	l.steer = SteerNone
}

// Fire queues one shot. Call it on key-down edges only.
func (l *IntentLatch) Fire() {
	l.fire++
}

// Intents returns the current snapshot and drains the fire queue.
func (l *IntentLatch) Intents() InputFrame {
	f := InputFrame{
		Thrust: l.thrust,
		Steer:  l.steer,
		Fire:   l.fire,
	}
	l.fire = 0
	return f
}

// Clear releases every held intent and drops queued shots.
func (l *IntentLatch) Clear() {
	*l = IntentLatch{}
}

var _ IntentSource = (*IntentLatch)(nil)
