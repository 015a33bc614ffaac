package app

// History keeps the most recent samples of a series in a fixed-size ring.
type History struct {
	buf   []float64
	start int
	n     int
	out   []float64
}

// NewHistory allocates a ring holding up to capacity samples.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{buf: make([]float64, capacity), out: make([]float64, 0, capacity)}
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(v float64) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = v
		h.n++
		return
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
}

// Samples returns the stored samples oldest first. The slice is reused by
// the next call.
func (h *History) Samples() []float64 {
	h.out = h.out[:0]
	for i := 0; i < h.n; i++ {
		h.out = append(h.out, h.buf[(h.start+i)%len(h.buf)])
	}
	return h.out
}

// Len reports how many samples are stored.
func (h *History) Len() int { return h.n }

// Clear drops all samples.
func (h *History) Clear() {
	h.start = 0
	h.n = 0
}
