package config

import (
	"sync"
	"time"

	"github.com/dshills/caret/internal/config/watcher"
)

// ReloadFunc receives the reloaded configuration, or the error that
// prevented loading it. On error the previous configuration stays current.
type ReloadFunc func(cfg *Config, err error)

// Reloader reloads a configuration file whenever it changes on disk.
type Reloader struct {
	mu      sync.RWMutex
	path    string
	opts    []Option
	current *Config

	w  *watcher.Watcher
	fn ReloadFunc
}

// NewReloader starts watching path. initial is the configuration already
// loaded from it. debounce coalesces bursts of writes.
func NewReloader(path string, initial *Config, debounce time.Duration, fn ReloadFunc, opts ...Option) (*Reloader, error) {
	w, err := watcher.New(watcher.WithDebounce(debounce))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return nil, err
	}

	r := &Reloader{
		path:    path,
		opts:    opts,
		current: initial,
		w:       w,
		fn:      fn,
	}
	w.OnChange(r.handleChange)
	w.OnError(func(err error) { r.fn(nil, err) })
	w.Start()
	return r, nil
}

// Current returns the most recently loaded configuration.
func (r *Reloader) Current() *Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Close stops watching.
func (r *Reloader) Close() error {
	return r.w.Stop()
}

func (r *Reloader) handleChange(event watcher.Event) {
	if event.Op == watcher.OpRemove || event.Op == watcher.OpRename {
		return
	}
	r.reload()
}

func (r *Reloader) reload() {
	cfg, err := Load(r.path, r.opts...)
	if err != nil {
		r.fn(nil, err)
		return
	}

	r.mu.Lock()
	r.current = cfg
	r.mu.Unlock()

	r.fn(cfg, nil)
}
