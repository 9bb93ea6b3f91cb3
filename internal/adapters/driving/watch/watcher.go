// Package watch uploads RFP PDFs as they appear in a directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// Defaults for pacing and write settling.
const (
	DefaultInterval = 2 * time.Second
	DefaultSettle   = 500 * time.Millisecond
)

// ErrMissingUploadService is returned when no upload service is given.
var ErrMissingUploadService = errors.New("watch: upload service is required")

// Result reports one upload triggered by the watcher.
type Result struct {
	Path    string
	Receipt *domain.UploadReceipt
	Err     error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval sets the minimum gap between uploads.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithSettle sets how long a new file must stay quiet before upload.
func WithSettle(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.settle = d
		}
	}
}

// WithResultHandler sets the callback invoked after each upload.
func WithResultHandler(fn func(Result)) Option {
	return func(w *Watcher) {
		w.onResult = fn
	}
}

// Watcher uploads each new .pdf file in one directory exactly once.
type Watcher struct {
	dir      string
	upload   driving.UploadService
	limiter  *rate.Limiter
	settle   time.Duration
	onResult func(Result)

	// pending maps a path to the time of its last event.
	pending map[string]time.Time

	readyOnce sync.Once
	ready     chan struct{}
}

// NewWatcher creates a watcher for dir.
func NewWatcher(dir string, upload driving.UploadService, opts ...Option) (*Watcher, error) {
	if upload == nil {
		return nil, ErrMissingUploadService
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch %s: not a directory: %w", dir, domain.ErrInvalidInput)
	}

	w := &Watcher{
		dir:     dir,
		upload:  upload,
		limiter: rate.NewLimiter(rate.Every(DefaultInterval), 1),
		settle:  DefaultSettle,
		pending: make(map[string]time.Time),
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Ready is closed once the directory is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.readyOnce.Do(func() { close(w.ready) })
	logger.Info("watch: watching %s", w.dir)

	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev, time.Now())

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case now := <-ticker.C:
			for _, path := range w.due(now) {
				if err := w.limiter.Wait(ctx); err != nil {
					return nil
				}
				w.process(ctx, path)
			}
		}
	}
}

// handleEvent records candidate uploads. A create starts the settle
// window; later writes to a pending file extend it.
func (w *Watcher) handleEvent(ev fsnotify.Event, now time.Time) bool {
	if !isCandidate(ev.Name) {
		return false
	}

	switch {
	case ev.Has(fsnotify.Create):
		info, err := os.Stat(ev.Name)
		if err != nil || info.IsDir() {
			return false
		}
		w.pending[ev.Name] = now
		return true

	case ev.Has(fsnotify.Write):
		if _, ok := w.pending[ev.Name]; ok {
			w.pending[ev.Name] = now
			return true
		}

	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		delete(w.pending, ev.Name)
	}
	return false
}

// due returns pending paths quiet for at least the settle window,
// oldest first, and forgets them.
func (w *Watcher) due(now time.Time) []string {
	var out []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.settle {
			out = append(out, path)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := w.pending[out[i]], w.pending[out[j]]
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return out[i] < out[j]
	})
	for _, path := range out {
		delete(w.pending, path)
	}
	return out
}

func (w *Watcher) process(ctx context.Context, path string) {
	receipt, err := w.upload.Upload(ctx, path)
	if err != nil {
		logger.Warn("watch: %v", err)
	} else {
		logger.Info("watch: uploaded %s", filepath.Base(path))
	}
	if w.onResult != nil {
		w.onResult(Result{Path: path, Receipt: receipt, Err: err})
	}
}

// isCandidate reports whether name is a visible .pdf file.
func isCandidate(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return domain.IsPDFPath(base)
}
