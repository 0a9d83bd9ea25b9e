package scratch

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned by Acquire once the pool is closed.
var ErrPoolClosed = errors.New("scratch: pool closed")

// Pool hands out a fixed number of Buffers. It bounds how many splits run at
// once and lets them reuse their prefix-cost arrays.
type Pool struct {
	buffers chan *Buffer
	size    int
	mu      sync.Mutex
	closed  bool
}

// NewPool creates a pool of size buffers, each able to hold capacity values.
func NewPool(size, capacity int) *Pool {
	if size <= 0 {
		size = 1
	}

	pool := &Pool{
		buffers: make(chan *Buffer, size),
		size:    size,
	}
	for i := 0; i < size; i++ {
		pool.buffers <- NewBuffer(capacity)
	}
	return pool
}

// Acquire gets a buffer from the pool, blocking if none available.
// Respects context cancellation. Returns error if pool is closed.
func (p *Pool) Acquire(ctx context.Context) (*Buffer, error) {
	select {
	case buf, ok := <-p.buffers:
		if !ok {
			return nil, ErrPoolClosed
		}
		return buf, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a buffer to the pool.
func (p *Pool) Release(b *Buffer) {
	if b == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	select {
	case p.buffers <- b:
	default:
		// Pool full; drop the extra buffer.
	}
}

// Close closes the pool. Buffers still out are dropped on Release.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.buffers)

	for range p.buffers {
	}
	return nil
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.size
}
