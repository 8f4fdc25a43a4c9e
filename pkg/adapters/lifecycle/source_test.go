package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tsconf/pkg/core"
)

func TestSourceBridgesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 1)
	src := NewSource(in)
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventReload, Path: "/proj/tsconfig.json"}

	select {
	case e := <-src.Events():
		assert.Equal(t, "RELOAD /proj/tsconfig.json", e.String())
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for bridged event")
	}
}

func TestSourceClosesWithUpstream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event)
	src := NewSource(in)
	require.NoError(t, src.Start(ctx))

	close(in)

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "output channel should close with upstream")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}
