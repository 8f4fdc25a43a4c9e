package platform

import (
	"context"

	"github.com/aretw0/tsconf/pkg/core"
)

// Async delivers the outcome of a background operation.
type Async[T any] struct {
	Value T
	Err   error
}

// LoadAsync runs Load in a goroutine and delivers the result on the returned
// channel. The channel is buffered and closed after the single send, so the
// caller may abandon it. Cancellation is the caller's ctx; the loader itself
// defines no timeout semantics.
func (l *Loader) LoadAsync(ctx context.Context, dir, arg string) <-chan Async[core.Result] {
	ch := make(chan Async[core.Result], 1)
	go func() {
		defer close(ch)
		v, err := l.Load(ctx, dir, arg)
		ch <- Async[core.Result]{Value: v, Err: err}
	}()
	return ch
}

// ResolveAsync runs Resolve in a goroutine, same contract as LoadAsync.
func (l *Loader) ResolveAsync(ctx context.Context, dir, arg string) <-chan Async[string] {
	ch := make(chan Async[string], 1)
	go func() {
		defer close(ch)
		v, err := l.Resolve(ctx, dir, arg)
		ch <- Async[string]{Value: v, Err: err}
	}()
	return ch
}
