package pool

import "fmt"

// Entry owns one instance taken from a Pool. Release returns the instance to
// the pool, after that the entry must not be used anymore.
type Entry[T any] struct {
	pool     *Pool[T]
	value    T
	released bool
}

// Value returns the owned instance.
func (e *Entry[T]) Value() T {
	if e.released {
		panic(fmt.Sprintf("pool entry of %s used after release", typeName[T]()))
	}

	return e.value
}

// Release returns the instance to the pool it was taken from.
// Releasing an entry twice panics.
func (e *Entry[T]) Release() {
	if e.released {
		panic(fmt.Sprintf("pool entry of %s released twice", typeName[T]()))
	}

	e.released = true
	e.pool.release(e.value)

	var tZero T
	e.value = tZero
}
