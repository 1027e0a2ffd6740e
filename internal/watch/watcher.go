// Package watch triggers regeneration when the settings file or other input
// files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/observability"
)

// DefaultDebounce is the quiet period after the last change before the callback runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a set of files and calls onChange once per burst of changes.
// Parent directories are watched rather than the files themselves so editors
// that replace files by rename are still observed.
type Watcher struct {
	files    map[string]bool
	dirs     map[string]bool
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(context.Context)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New starts watching paths. Empty paths are ignored.
func New(paths []string, onChange func(context.Context), opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		files:    map[string]bool{},
		dirs:     map[string]bool{},
		watcher:  fsw,
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Add starts watching another file. An empty path or one already watched is a
// no-op. Add is not safe for concurrent use with Run, except from the onChange
// callback, which runs on the Run goroutine.
func (w *Watcher) Add(path string) error {
	if path == "" {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if w.files[abs] {
		return nil
	}
	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Files returns the absolute paths being watched.
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Run dispatches debounced change notifications until ctx is done, then
// releases the underlying watcher. onChange runs on the Run goroutine, so
// calls never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	// Timers follow Go 1.23 semantics: Stop and Reset never leave a stale tick in C.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ctx, event) {
				continue
			}
			slog.Debug("Watched file changed", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)
		case <-timer.C:
			w.onChange(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(ctx context.Context, event fsnotify.Event) bool {
	if !w.files[filepath.Clean(event.Name)] {
		return false
	}
	if event.Has(fsnotify.Remove) {
		observability.WarnContext(ctx, "Watched file removed", logfields.Path(event.Name))
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
