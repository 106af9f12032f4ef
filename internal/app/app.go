// Package app provides the terminal host for caret. It owns the document,
// the editing engine, the renderer and the backend, and drives them with a
// fixed-rate frame loop.
package app

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine"
	"github.com/dshills/caret/internal/input"
	"github.com/dshills/caret/internal/input/key"
	"github.com/dshills/caret/internal/input/mouse"
	"github.com/dshills/caret/internal/renderer"
	"github.com/dshills/caret/internal/renderer/backend"
)

// reloadDebounce coalesces bursts of writes to the configuration file.
const reloadDebounce = 100 * time.Millisecond

// Chords handled by the host rather than the editor.
var (
	chordQuit  = key.MustParse("Ctrl+Q")
	chordSave  = key.MustParse("Ctrl+S")
	chordCopy  = key.MustParse("Ctrl+C")
	chordCut   = key.MustParse("Ctrl+X")
	chordPaste = key.MustParse("Ctrl+V")
)

// Options configures the application.
type Options struct {
	// Path is the file to edit. Empty opens a scratch buffer.
	Path string

	// Config holds the settings. Nil uses config.Default().
	Config *config.Config

	// ConfigPath is watched for live reload when non-empty.
	ConfigPath string

	// ConfigOptions are passed to config.Load on reload.
	ConfigOptions []config.Option

	// Logger receives application logs. Nil discards them.
	Logger *Logger

	// Clipboard backs copy, cut and paste. Nil uses the system clipboard.
	Clipboard Clipboard
}

// Application is the central coordinator for all caret components.
type Application struct {
	opts Options
	cfg  *config.Config
	log  *Logger

	doc       *Document
	editor    *engine.Editor
	input     *input.Handler
	clipboard Clipboard
	metrics   *Metrics

	backend  backend.Backend
	renderer *renderer.Renderer

	// pending holds a reloaded configuration until the next frame.
	pending atomic.Pointer[config.Config]

	running atomic.Bool
	done    chan struct{}
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		cfg:       opts.Config,
		log:       opts.Logger,
		clipboard: opts.Clipboard,
		metrics:   NewMetrics(),
		done:      make(chan struct{}),
	}
	if app.cfg == nil {
		app.cfg = config.Default()
	}
	if app.log == nil {
		app.log = NullLogger()
	}
	if app.clipboard == nil {
		sys := NewSystemClipboard()
		if !sys.Available() {
			app.log.Warn("system clipboard unavailable, copy and paste stay inside the editor")
		}
		app.clipboard = sys
	}

	if opts.Path == "" {
		app.doc = NewScratchDocument()
	} else {
		doc, err := OpenDocument(opts.Path)
		if err != nil {
			return nil, err
		}
		app.doc = doc
	}

	app.editor = engine.NewFromString(app.doc.Content(),
		engine.WithLogger(app.log.WithComponent("engine").WithField("document", app.doc.ID)),
		engine.WithInactivityPeriod(app.cfg.Editor.InactivityPeriod.D()),
		engine.WithHistoryLimit(app.cfg.Editor.HistoryLimit),
		engine.WithScrollMargin(app.cfg.View.ScrollMarginChars),
		engine.WithWordHighlight(app.cfg.Editor.WordHighlight),
		engine.WithCursorWidth(app.cfg.View.CharWidth),
		engine.WithLineEnding(app.doc.LineEnding),
	)
	app.input = input.NewHandler(input.Config{
		Mouse:      mouse.DefaultConfig(),
		CharWidth:  app.cfg.View.CharWidth,
		LineHeight: app.cfg.View.LineHeight,
	})

	app.log.Info("document opened",
		"id", app.doc.ID,
		"name", app.doc.Name,
		"lines", app.editor.Buffer().LineCount(),
	)
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until Ctrl+Q is pressed, which returns ErrQuit, or Shutdown is
// called, which returns nil.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	app.renderer = renderer.New(app.backend, renderer.DefaultOptions())

	if app.opts.ConfigPath != "" {
		reloader, rerr := config.NewReloader(app.opts.ConfigPath, app.cfg, reloadDebounce, app.onReload, app.opts.ConfigOptions...)
		if rerr != nil {
			app.log.Warn("config live reload disabled", "path", app.opts.ConfigPath, "error", rerr)
		} else {
			defer reloader.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan backend.Event, 256)
	go app.pollEvents(ctx, events)

	defer func() {
		snap := app.metrics.Snapshot()
		app.log.Info("session ended",
			"frames", snap.FrameCount,
			"events", snap.EventCount,
			"avg_frame", snap.FrameAvg,
			"slow_frames", snap.SlowFrames,
		)
	}()

	return app.eventLoop(events)
}

// Shutdown stops a running Run loop.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	select {
	case <-app.done:
	default:
		close(app.done)
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Editor returns the editing engine.
func (app *Application) Editor() *engine.Editor {
	return app.editor
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Metrics returns the frame metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// pollEvents forwards backend events until ctx is cancelled. PollEvent
// returns EventNone once the backend is shut down.
func (app *Application) pollEvents(ctx context.Context, out chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			if ctx.Err() != nil {
				return
			}
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// eventLoop collects input between ticks and runs one frame per tick.
func (app *Application) eventLoop(events <-chan backend.Event) error {
	interval := app.cfg.View.FrameInterval.D()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var batch []input.Event
	for {
		select {
		case <-app.done:
			return nil

		case ev := <-events:
			if ev.Type == backend.EventResize {
				app.renderer.Invalidate()
			}
			batch = append(batch, app.input.Handle(ev, time.Now())...)

		case now := <-ticker.C:
			if err := app.frame(now, batch); err != nil {
				return err
			}
			batch = batch[:0]

			if d := app.cfg.View.FrameInterval.D(); d != interval {
				interval = d
				ticker.Reset(interval)
			}
		}
	}
}

// frame applies one batch of events and paints the result.
func (app *Application) frame(now time.Time, batch []input.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		}
	}()

	start := time.Now()
	app.applyPending()

	geo := app.geometry()
	out, quit := app.process(now, batch, geo)
	app.renderer.Render(SceneFromOutput(out, geo))

	app.metrics.RecordFrame(time.Since(start), len(batch), app.cfg.View.FrameInterval.D())
	if quit {
		return ErrQuit
	}
	return nil
}

// process feeds batch to the editor and handles the host-level chords.
// Ctrl+Q ends the batch and reports quit. Ctrl+V is replaced by the
// clipboard text. Save, copy and cut take effect at their position in the
// batch, so the editor is updated in segments ending at each of them.
func (app *Application) process(now time.Time, batch []input.Event, geo engine.Geometry) (out engine.Output, quit bool) {
	segment := make([]input.Event, 0, len(batch))
	flush := func() {
		out = app.editor.Update(engine.Frame{Now: now, Events: segment, Geometry: geo})
		app.handleOutput(out)
		segment = segment[:0]
	}

	for _, ev := range batch {
		switch {
		case isChord(ev, chordQuit):
			quit = true
		case isChord(ev, chordPaste):
			flush()
			if text := app.paste(); text != "" {
				segment = append(segment, input.TextEvent(text))
			}
		case isChord(ev, chordSave), isChord(ev, chordCopy), isChord(ev, chordCut):
			segment = append(segment, ev)
			flush()
		default:
			segment = append(segment, ev)
		}
		if quit {
			break
		}
	}
	flush()
	return out, quit
}

// paste returns the clipboard text with normalized newlines.
func (app *Application) paste() string {
	text, err := app.clipboard.ReadText()
	if err != nil {
		app.log.Warn("paste failed", "error", err)
		return ""
	}
	return normalizeNewlines(text)
}

func isChord(ev input.Event, chord key.Event) bool {
	return ev.Kind == input.KindKey && ev.Key.Equals(chord)
}

// handleOutput performs the side effects requested during a frame.
func (app *Application) handleOutput(out engine.Output) {
	if out.Copied != "" {
		if err := app.clipboard.WriteText(out.Copied); err != nil {
			app.log.Warn("copy failed", "error", err)
		}
	}
	if out.SaveRequested {
		if err := app.Save(); err != nil {
			app.log.Error("save failed", "error", err)
		}
	}
}

// Save writes the editor content to the document's file.
func (app *Application) Save() error {
	summary, err := app.doc.Save(app.editor.Text())
	if err != nil {
		return err
	}
	app.log.Info("document saved",
		"id", app.doc.ID,
		"path", app.doc.Path,
		"added", summary.Added,
		"removed", summary.Removed,
	)
	return nil
}

// geometry describes the whole terminal as the editing viewport.
func (app *Application) geometry() engine.Geometry {
	w, h := app.backend.Size()
	return GeometryFor(app.cfg.View, w, h)
}

// onReload runs on the watcher goroutine; the frame loop picks the new
// configuration up.
func (app *Application) onReload(cfg *config.Config, err error) {
	if err != nil {
		app.log.Warn("config reload failed", "error", err)
		return
	}
	app.pending.Store(cfg)
}

// applyPending applies a reloaded configuration, if any.
func (app *Application) applyPending() {
	if cfg := app.pending.Swap(nil); cfg != nil {
		app.ApplyConfig(cfg)
	}
}

// ApplyConfig switches the running editor to cfg. It must be called from
// the goroutine that runs frames.
func (app *Application) ApplyConfig(cfg *config.Config) {
	app.cfg = cfg

	app.editor.SetInactivityPeriod(cfg.Editor.InactivityPeriod.D())
	app.editor.SetHistoryLimit(cfg.Editor.HistoryLimit)
	app.editor.SetScrollMargin(cfg.View.ScrollMarginChars)
	app.editor.SetWordHighlight(cfg.Editor.WordHighlight)
	app.editor.SetCursorWidth(cfg.View.CharWidth)
	app.input.SetCellSize(cfg.View.CharWidth, cfg.View.LineHeight)
	app.log.SetLevel(ParseLogLevel(cfg.Log.Level))
	if app.renderer != nil {
		app.renderer.Invalidate()
	}

	app.log.Info("config applied",
		"inactivity_period", cfg.Editor.InactivityPeriod,
		"history_limit", cfg.Editor.HistoryLimit,
		"log_level", cfg.Log.Level,
	)
}
