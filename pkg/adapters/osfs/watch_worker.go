package osfs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/tsconf/pkg/core"
	"github.com/aretw0/tsconf/pkg/parser"
)

// Watcher follows a single configuration file and reports reloads.
// Each write or create on the path re-reads and re-parses the document and
// emits a RELOAD event; remove and rename emit REMOVE. The watch is placed
// on the parent directory because editors replace files rather than write
// them in place.
type Watcher struct {
	*worker.BaseWorker
	path      string
	strict    bool
	logger    *slog.Logger
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

// NewWatcher creates a watcher for the configuration file at path.
// strict selects json.Number decoding on reloads.
func NewWatcher(path string, strict bool, logger *slog.Logger) *Watcher {
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("tsconf-watcher"),
		path:       filepath.Clean(path),
		strict:     strict,
		logger:     logger,
		events:     make(chan core.Event, 16),
	}
}

// Events returns the stream of reload events. The channel is closed after
// Stop returns or the run context is cancelled.
func (w *Watcher) Events() <-chan core.Event {
	return w.events
}

// Start begins watching. It is an error to start a watcher twice.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop requests shutdown and waits for the run loop to finish.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// run is the main event loop for the watcher worker.
func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if w.logger != nil {
				if w.logger.Enabled(ctx, slog.LevelDebug) {
					w.logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
				} else {
					w.logger.Error("watcher panic", "error", panicErr)
				}
			}
		}
	}()
	defer w.watcher.Close()

	err = w.eventLoop(ctx)

	// Stop accepting new events and wait for in-flight timers before the
	// events channel is closed, so no timer fires into a closed channel.
	w.debouncer.stopAndWait(5 * time.Second)
	close(w.events)

	return err
}

func (w *Watcher) eventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.logger != nil {
				w.logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}

func (w *Watcher) processEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	if w.logger != nil {
		w.logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		w.sendEvent(ctx, core.Event{
			Type:      core.EventRemove,
			Path:      w.path,
			Timestamp: time.Now().Unix(),
		})
	case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
		w.sendEvent(ctx, w.reload())
	}
}

// reload re-reads and re-parses the watched file. Failures travel on the
// event rather than stopping the watch; a broken intermediate save should
// not kill the subscription.
func (w *Watcher) reload() core.Event {
	e := core.Event{
		Type:      core.EventReload,
		Path:      w.path,
		Timestamp: time.Now().Unix(),
	}

	data, err := os.ReadFile(w.path)
	if err != nil {
		e.Err = err
		return e
	}

	if w.strict {
		e.Config, e.Err = parser.ParseStrict(string(data))
	} else {
		e.Config, e.Err = parser.Parse(string(data))
	}
	return e
}

// sendEvent enqueues an event via the debouncer, protecting against channel
// closure during shutdown.
func (w *Watcher) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}
