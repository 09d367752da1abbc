// Package replay records and replays per-frame deltas in memory, so a run
// can be driven by an exact, repeatable sequence of elapsed times.
package replay

// FormatVersion is written to every trace
const FormatVersion = "1.0"

// FrameDelta records the elapsed time fed to a single frame
type FrameDelta struct {
	F  int     // Frame number
	DT float64 // Elapsed seconds
}

// Trace holds the per-frame deltas of one run, in order
type Trace struct {
	Version   string
	StartTime string
	Frames    []FrameDelta
}

// Total returns the sum of all recorded deltas
func (t Trace) Total() float64 {
	var sum float64
	for _, f := range t.Frames {
		sum += f.DT
	}
	return sum
}
