package storage

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ErrCorruptInputs is returned when a stored input stream cannot be decoded.
var ErrCorruptInputs = errors.New("corrupt input stream")

// Input frames are stored one byte per tick:
//
//	bit 0     thrust
//	bits 1-2  steering (0 none, 1 left, 2 right)
//	bits 3-7  fire presses, capped at 31
const (
	thrustBit  = 1 << 0
	steerShift = 1
	steerMask  = 0b11 << steerShift
	fireShift  = 3
	maxFire    = 31
)

// EncodeInputs packs an input stream for storage.
func EncodeInputs(frames []core.InputFrame) []byte {
	out := make([]byte, len(frames))
	for i, f := range frames {
		var b byte
		if f.Thrust {
			b |= thrustBit
		}
		b |= (byte(f.Steer) << steerShift) & steerMask //#nosec G115 -- steering is 0..2
		b |= byte(core.Clamp(f.Fire, 0, maxFire)) << fireShift
		out[i] = b
	}
	return out
}

// DecodeInputs unpacks a stored input stream.
func DecodeInputs(data []byte) ([]core.InputFrame, error) {
	frames := make([]core.InputFrame, len(data))
	for i, b := range data {
		steer := core.Steering((b & steerMask) >> steerShift)
		if steer > core.SteerRight {
			return nil, fmt.Errorf("frame %d: steering value %d: %w", i, steer, ErrCorruptInputs)
		}
		frames[i] = core.InputFrame{
			Thrust: b&thrustBit != 0,
			Steer:  steer,
			Fire:   int(b >> fireShift),
		}
	}
	return frames, nil
}
