// Package pool provides a small best match object cache for expensive to
// create resources such as GPU textures and shaders.
//
// A Pool keeps a bounded list of idle instances. Take hands out the idle
// instance that matches a Request best, or creates a new one. The instance is
// owned by the returned Entry until Entry.Release puts it back:
//
//	entry, err := textures.Take(request)
//	if err != nil {
//		return err
//	}
//
//	defer entry.Release()
//
// Lookup is a linear scan over the idle instances, which is fine for the
// single digit to low tens pool sizes this is meant for.
//
// A Pool is not safe for concurrent use. Callers that share a pool between
// goroutines must guard Take and Release with their own lock.
package pool

import (
	"log/slog"
	"reflect"
)

// Request describes the instance a caller wants to take from a Pool.
type Request[T any] interface {
	// Distance rates how well an idle instance serves this request. Lower is
	// better and zero is a perfect match that ends the search. Returns false
	// if the instance can not serve the request at all.
	Distance(item T) (float32, bool)

	// Prepare adjusts a reused instance before it is handed out, e.g. to
	// change a filter mode without creating a new object.
	Prepare(item *T)

	// Create is called on a pool miss to build a new instance.
	Create() (T, error)
}

// Deallocator is implemented by instances that hold resources which must be
// freed explicitly. The pool calls Deallocate when it evicts such an instance.
type Deallocator interface {
	Deallocate()
}

type Pool[T any] struct {
	idle    []T
	maxSize int
}

// New creates a pool that keeps at most maxSize idle instances.
func New[T any](maxSize int) *Pool[T] {
	return &Pool[T]{
		idle:    make([]T, 0, max(maxSize, 0)),
		maxSize: maxSize,
	}
}

// Size returns the number of idle instances.
func (p *Pool[T]) Size() int {
	return len(p.idle)
}

func (p *Pool[T]) MaxSize() int {
	return p.maxSize
}

// Take hands out the idle instance with the lowest distance to the request.
// If no idle instance can serve the request, a new one is created. An error
// returned by Request.Create is passed through unchanged.
func (p *Pool[T]) Take(request Request[T]) (*Entry[T], error) {
	best := -1
	var bestDistance float32

	for idx, item := range p.idle {
		distance, ok := request.Distance(item)
		if !ok {
			continue
		}

		if best == -1 || distance < bestDistance {
			best = idx
			bestDistance = distance
		}

		if distance == 0 {
			break
		}
	}

	if best == -1 {
		value, err := request.Create()
		if err != nil {
			return nil, err
		}

		slog.Debug(
			"Created pool instance",
			slog.String("type", typeName[T]()),
			slog.Int("idle", len(p.idle)),
		)

		return &Entry[T]{pool: p, value: value}, nil
	}

	value := p.idle[best]

	// keep the remaining instances in order of their release, oldest first
	p.idle = append(p.idle[:best], p.idle[best+1:]...)

	request.Prepare(&value)

	return &Entry[T]{pool: p, value: value}, nil
}

// Clear evicts all idle instances.
func (p *Pool[T]) Clear() {
	for _, item := range p.idle {
		deallocate(item)
	}

	clear(p.idle)
	p.idle = p.idle[:0]
}

func (p *Pool[T]) release(value T) {
	if p.maxSize <= 0 {
		deallocate(value)
		return
	}

	if len(p.idle) >= p.maxSize {
		oldest := p.idle[0]

		copy(p.idle, p.idle[1:])
		p.idle = p.idle[:len(p.idle)-1]

		slog.Debug(
			"Evict pool instance",
			slog.String("type", typeName[T]()),
			slog.Int("maxSize", p.maxSize),
		)

		deallocate(oldest)
	}

	p.idle = append(p.idle, value)
}

func deallocate[T any](value T) {
	if d, ok := any(value).(Deallocator); ok {
		d.Deallocate()
	}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
