// Package typedpool wraps sync.Pool for scratch buffers of a single type.
package typedpool

import "sync"

type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool of *T values. The reset function is applied to every
// value that is put back into the pool and may be nil.
func New[T any](reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() *T {
	cachedValue := p.pool.Get().(*T)
	return cachedValue
}

func (p *Pool[T]) Put(value *T) {
	if p.reset != nil {
		p.reset(value)
	}

	p.pool.Put(value)
}

// Slices returns a pool of slices that are truncated to zero length when they
// are put back, keeping their capacity.
func Slices[E any]() *Pool[[]E] {
	return New(func(s *[]E) {
		clear(*s)
		*s = (*s)[:0]
	})
}
