package replay

import "time"

// Replayer feeds recorded frame deltas back in order
type Replayer struct {
	data  Trace
	frame int
}

// NewReplayer creates a new replayer from a trace
func NewReplayer(data Trace) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// Next returns the delta for the current frame and advances.
// Returns false once the trace is exhausted.
func (r *Replayer) Next() (float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, false
	}

	fd := r.data.Frames[r.frame]
	r.frame++
	return fd.DT, true
}

// Done reports whether every frame has been replayed
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// TraceOf builds a trace from explicit deltas
func TraceOf(deltas ...float64) Trace {
	data := Trace{
		Version:   FormatVersion,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameDelta, len(deltas)),
	}
	for i, d := range deltas {
		data.Frames[i] = FrameDelta{F: i, DT: d}
	}
	return data
}

// ConstantTrace builds a trace of n frames of dt each
func ConstantTrace(frames int, dt float64) Trace {
	deltas := make([]float64, frames)
	for i := range deltas {
		deltas[i] = dt
	}
	return TraceOf(deltas...)
}
