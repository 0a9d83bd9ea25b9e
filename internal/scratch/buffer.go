// Package scratch provides reusable working memory for word splitting.
package scratch

// Buffer holds the prefix-cost array of one split.
type Buffer struct {
	costs []float64
}

// NewBuffer allocates a buffer for inputs of up to capacity-1 runes.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{costs: make([]float64, capacity)}
}

// Costs returns the backing array, grown to hold at least n values.
// The contents are unspecified.
func (b *Buffer) Costs(n int) []float64 {
	if cap(b.costs) < n {
		b.costs = make([]float64, n)
	}
	return b.costs[:n]
}

// Cap returns how many values the buffer holds without reallocating.
func (b *Buffer) Cap() int {
	return cap(b.costs)
}
