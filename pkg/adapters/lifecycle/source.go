package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/tsconf/pkg/core"
)

type configSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits configuration reload events.
// It bridges the typed watcher event channel to the generic lifecycle Event
// interface, so applications can feed config reloads into their supervision
// tree.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &configSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *configSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *configSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge itself is tracked and safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
