package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/tvnav/internal/catalog"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindCatalog Kind = iota
	KindWatchError
)

// Event conveys updated data or an error from the catalogue source.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Options tunes a Watcher.
type Options struct {
	// Watch reloads the catalogue whenever its file changes.
	Watch bool
	// Debounce is the minimum interval between reloads.
	Debounce time.Duration
	// Delay postpones the initial load, which leaves screens empty until
	// the catalogue arrives.
	Delay time.Duration
	// Loader replaces catalog.Load, mainly for tests.
	Loader func(path string) (catalog.Catalog, error)
}

// Watcher loads the catalogue in the background and publishes events: one
// for the initial load and one per reload after the file changes.
type Watcher struct {
	path string
	opts Options

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts loading the catalogue at path. An empty path loads the
// built-in catalogue and never watches.
func NewWatcher(path string, opts Options) *Watcher {
	if opts.Loader == nil {
		opts.Loader = catalog.Load
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   path,
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	if w.opts.Delay > 0 {
		timer := time.NewTimer(w.opts.Delay)
		select {
		case <-w.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
	if !w.emitCatalog() {
		return
	}
	if !w.opts.Watch || w.path == "" {
		return
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.emit(Event{Kind: KindWatchError, Err: fmt.Errorf("start file watcher: %w", err)})
		return
	}
	defer fw.Close()
	// Editors often replace files by rename, so watch the directory.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		w.emit(Event{Kind: KindWatchError, Err: fmt.Errorf("watch %s: %w", dir, err)})
		return
	}

	throttle := newThrottle(w.opts.Debounce)
	target := filepath.Clean(w.path)
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !throttle.wait(w.ctx) {
				return
			}
			if !w.emitCatalog() {
				return
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Kind: KindWatchError, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) emitCatalog() bool {
	data, err := w.opts.Loader(w.path)
	evt := Event{Kind: KindCatalog, Err: err}
	if err == nil {
		evt.Data = data
	}
	return w.emit(evt)
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
