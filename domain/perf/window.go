package perf

// WindowCapacity bounds the trailing sample window. With 100 entries the
// rolling statistics settle quickly while single outliers still move the max.
const WindowCapacity = 100

// RecentCount is how many trailing samples a snapshot exposes for sparklines.
const RecentCount = 10

// window is a bounded FIFO of render-time samples in milliseconds.
// Insertion order is chronological; appending at capacity evicts the oldest.
type window struct {
	samples []float64
}

func newWindow() *window {
	return &window{samples: make([]float64, 0, WindowCapacity)}
}

func (w *window) push(ms float64) {
	if len(w.samples) == WindowCapacity {
		copy(w.samples, w.samples[1:])
		w.samples = w.samples[:WindowCapacity-1]
	}
	w.samples = append(w.samples, ms)
}

func (w *window) len() int { return len(w.samples) }

// values returns a copy so callers cannot alias the live buffer.
func (w *window) values() []float64 {
	out := make([]float64, len(w.samples))
	copy(out, w.samples)
	return out
}

// tail returns a copy of the trailing n samples (fewer when shorter).
func (w *window) tail(n int) []float64 {
	if n > len(w.samples) {
		n = len(w.samples)
	}
	out := make([]float64, n)
	copy(out, w.samples[len(w.samples)-n:])
	return out
}
