package replay

import "time"

// Recorder captures the delta of every frame
type Recorder struct {
	data      Trace
	recording bool
	frame     int
}

// NewRecorder creates a new recorder
func NewRecorder() *Recorder {
	return &Recorder{
		data: Trace{
			Version:   FormatVersion,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameDelta, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's delta
func (r *Recorder) RecordFrame(dt float64) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameDelta{F: r.frame, DT: dt})
	r.frame++
}

// Stop stops recording; later frames are ignored
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded trace
func (r *Recorder) Data() Trace {
	return r.data
}
