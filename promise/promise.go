package promise

import (
	"context"
	"errors"
	"sync"
)

// ErrNotSettled is the rejection reason of a promise whose executor returned
// (or whose input channel was closed) without producing a value.
var ErrNotSettled = errors.New("promise returned without being settled")

// Promise holds the outcome of an operation running on its own goroutine.
// A promise settles exactly once, either fulfilled with a value or rejected
// with a reason. The reason can be any value, not only an error.
type Promise[R any] struct {
	once   sync.Once
	done   chan struct{}
	value  R
	reason any
	ok     bool
}

func newPromise[R any]() *Promise[R] {
	return &Promise[R]{
		done: make(chan struct{}),
	}
}

// New starts executor on a new goroutine and returns the pending promise.
// Only the first call to resolve or reject counts. A panic inside the executor
// rejects the promise with the recovered value.
func New[R any](executor func(resolve func(R), reject func(any))) *Promise[R] {
	p := newPromise[R]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.reject(r)
			}
			// executor returned without calling resolve or reject
			p.reject(ErrNotSettled)
		}()

		executor(p.resolve, p.reject)
	}()

	return p
}

// Go runs fn on a new goroutine. A non-nil error rejects the promise with that
// error, otherwise the promise is fulfilled with the returned value.
func Go[R any](ctx context.Context, fn func(ctx context.Context) (R, error)) *Promise[R] {
	return New(func(resolve func(R), reject func(any)) {
		v, err := fn(ctx)
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	})
}

// Resolved returns a promise already fulfilled with v.
func Resolved[R any](v R) *Promise[R] {
	p := newPromise[R]()
	p.resolve(v)
	return p
}

// Rejected returns a promise already rejected with reason.
func Rejected[R any](reason any) *Promise[R] {
	p := newPromise[R]()
	p.reject(reason)
	return p
}

// FromChannel settles with the last value read from input once input is closed.
// If input is closed before any value was sent the promise is rejected with
// ErrNotSettled.
func FromChannel[R any](input <-chan R) *Promise[R] {
	return New(func(resolve func(R), reject func(any)) {
		var (
			last     R
			received bool
		)

		for value := range input {
			last = value
			received = true
		}

		if !received {
			reject(ErrNotSettled)
			return
		}

		resolve(last)
	})
}

// Await blocks until the promise is settled. It returns the value and true if
// the promise was fulfilled, or the rejection reason and false otherwise.
func (p *Promise[R]) Await() (value R, reason any, fulfilled bool) {
	<-p.done
	return p.value, p.reason, p.ok
}

// Done returns a channel closed once the promise is settled.
func (p *Promise[R]) Done() <-chan struct{} {
	return p.done
}

func (p *Promise[R]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *Promise[R]) resolve(v R) {
	p.once.Do(func() {
		p.value = v
		p.ok = true
		close(p.done)
	})
}

func (p *Promise[R]) reject(reason any) {
	p.once.Do(func() {
		p.reason = reason
		close(p.done)
	})
}
