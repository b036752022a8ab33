package typedpool

import "sync"

// Pool is a typed wrapper around sync.Pool. Values are passed through the
// reset function before they go back into the pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

func New[T any]() *Pool[T] {
	return NewWithReset[T](nil)
}

func NewWithReset[T any](reset func(*T)) *Pool[T] {
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
