package progress

import (
	"math"
	"sort"
)

// window is a fixed-size ring of rate samples.
type window struct {
	values []float64
	next   int
	full   bool
}

func newWindow(size int) *window {
	if size <= 0 {
		size = 1
	}
	return &window{values: make([]float64, 0, size)}
}

func (w *window) Add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if !w.full {
		w.values = append(w.values, v)
		w.full = len(w.values) == cap(w.values)
		return
	}
	w.values[w.next] = v
	w.next = (w.next + 1) % len(w.values)
}

func (w *window) Len() int { return len(w.values) }

// Quantile interpolates linearly between the two closest ranks.
func (w *window) Quantile(q float64) float64 {
	if len(w.values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), w.values...)
	sort.Float64s(sorted)
	switch {
	case q <= 0:
		return sorted[0]
	case q >= 1:
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
