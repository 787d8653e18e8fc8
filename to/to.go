package to

import (
	"context"

	"github.com/tupyy/outcome/promise"
)

// Awaiter is a pending operation, such as a *promise.Promise.
type Awaiter[R any] interface {
	// Await blocks until the operation settles. On failure it returns the
	// rejection reason and false.
	Await() (value R, reason any, fulfilled bool)
}

// To waits for p to settle and returns (value, nil) if it was fulfilled or
// (zero value, error) if it was rejected. It never panics because of p's failure.
func To[R any](p *promise.Promise[R]) (R, error) {
	return Settle[R](p).Unpack()
}

// Settle waits for any Awaiter and returns the pair as an Outcome.
func Settle[R any](p Awaiter[R]) Outcome[R] {
	value, reason, fulfilled := p.Await()
	if !fulfilled {
		return Outcome[R]{Err: Normalize(reason)}
	}

	return Outcome[R]{Value: value}
}

// Call runs fn on the calling goroutine. A returned error is passed through,
// a panic is recovered and normalized like a rejection reason.
func Call[R any](ctx context.Context, fn func(ctx context.Context) (R, error)) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			value, err = zero, Normalize(r)
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		var zero R
		return zero, err
	}

	return v, nil
}
