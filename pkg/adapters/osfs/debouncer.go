package osfs

import (
	"sync"
	"time"

	"github.com/aretw0/tsconf/pkg/core"
)

// debouncer coalesces bursts of events for the same path. Editors typically
// emit several writes per save; only the last one within the window fires.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the delay, replacing any pending timer for the
// same path. Events arriving after stopAndWait are dropped.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	key := e.Path
	if t, ok := d.timers[key]; ok && t.Stop() {
		// Pending timer cancelled before firing; release its wait slot.
		d.wg.Done()
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		fire(e)
	})
}

// stopAndWait stops accepting events and waits for in-flight timers to
// complete, up to timeout. Callers may safely close downstream channels
// after it returns.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for _, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
