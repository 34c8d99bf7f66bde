package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Recorder wraps an intent source and keeps every snapshot it hands out,
// in tick order, so a run can be replayed later.
type Recorder struct {
	src    core.IntentSource
	frames []core.InputFrame
}

// NewRecorder creates a recorder around src.
func NewRecorder(src core.IntentSource) *Recorder {
	return &Recorder{src: src}
}

// Intents forwards to the wrapped source and records the result.
func (r *Recorder) Intents() core.InputFrame {
	f := r.src.Intents()
	r.frames = append(r.frames, f)
	return f
}

// Frames returns the recorded input stream.
func (r *Recorder) Frames() []core.InputFrame {
	return r.frames
}

// ReplaySource plays back a recorded input stream. Once the stream is
// exhausted it returns empty frames.
type ReplaySource struct {
	frames []core.InputFrame
	pos    int
}

// NewReplaySource creates a source replaying frames in order.
func NewReplaySource(frames []core.InputFrame) *ReplaySource {
	return &ReplaySource{frames: frames}
}

// Intents returns the next recorded frame.
func (r *ReplaySource) Intents() core.InputFrame {
	if r.pos >= len(r.frames) {
		return core.NewInputFrame()
	}
	f := r.frames[r.pos]
	r.pos++
	return f
}

// Remaining returns how many recorded frames have not been played yet.
func (r *ReplaySource) Remaining() int {
	return len(r.frames) - r.pos
}

var (
	_ core.IntentSource = (*Recorder)(nil)
	_ core.IntentSource = (*ReplaySource)(nil)
)
