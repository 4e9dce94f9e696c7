// README: Single-slot lazy initialisation guard for optional clients.
package infra

import "sync"

// Lazy guards a one-time initialisation behind a mutex so concurrent callers
// join the in-flight attempt instead of racing on a boolean flag.
// A failed attempt is not cached; the next caller retries.
type Lazy[T any] struct {
	mu   sync.Mutex
	done bool
	val  T
	init func() (T, error)
}

func NewLazy[T any](init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the initialised value, running init on the first call.
func (l *Lazy[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done {
		return l.val, nil
	}
	v, err := l.init()
	if err != nil {
		var zero T
		return zero, err
	}
	l.val = v
	l.done = true
	return v, nil
}
