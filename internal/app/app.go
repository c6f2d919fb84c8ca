package app

import (
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/config/watcher"
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/i18n"
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer"
	"github.com/dshills/textpad/internal/renderer/backend"
	"github.com/dshills/textpad/internal/statusbar"
)

// Options configures application creation.
type Options struct {
	// ConfigPath is the configuration file. A missing file means defaults.
	ConfigPath string

	// Config, when set, is used instead of loading ConfigPath.
	Config *config.Config

	// Files to open at startup. Only the first one is used.
	Files []string

	// LogLevel overrides the configured log level.
	LogLevel string

	// ReadOnly opens the document read-only.
	ReadOnly bool

	// Version is shown in the About box.
	Version string

	// SystemClipboard enables the platform clipboard.
	SystemClipboard bool

	// WatchConfig reloads the configuration file when it changes.
	WatchConfig bool
}

// Application wires the editor together and runs its event loop.
type Application struct {
	opts Options

	mu  sync.Mutex
	cfg *config.Config

	logger    *Logger
	logCloser io.Closer

	translator *i18n.Translator
	engine     *engine.Engine
	document   *Document
	clipboard  *Clipboard
	status     *statusbar.Model
	nav        *menu.Navigator
	dispatcher *dispatcher.Dispatcher
	ui         *UI

	backend  backend.Backend
	renderer *renderer.Renderer
	view     *viewAdapter
	watcher  *watcher.Watcher

	// Event loop state.
	running   atomic.Bool
	closing   atomic.Bool
	quitAsked bool
	pasting   bool
	mouseDown bool
	goalCol   int

	now func() time.Time
}

// New creates a new application. Call SetBackend before Run.
func New(opts Options) (*Application, error) {
	a := &Application{
		opts:    opts,
		goalCol: -1,
		now:     time.Now,
	}
	if err := a.bootstrap(); err != nil {
		a.cleanup()
		return nil, err
	}
	return a, nil
}

// SetBackend sets the terminal the application draws on.
func (a *Application) SetBackend(b backend.Backend) error {
	if a.running.Load() {
		return ErrAlreadyRunning
	}
	a.backend = b

	palette, err := a.Config().Theme.Palette()
	if err != nil {
		a.logger.Warn("theme: %v", err)
		palette = config.DefaultPalette()
	}
	opts := renderer.DefaultOptions()
	opts.WordWrap = a.Config().Editor.WordWrap
	a.renderer = renderer.New(b, palette, opts)
	a.view = &viewAdapter{status: a.status, renderer: a.renderer, nav: a.nav}
	return nil
}

// Run initializes the backend and processes events until the user quits.
// A panic in the event loop restores the terminal and is returned as a
// *RecoveredPanicError.
func (a *Application) Run() (err error) {
	if a.backend == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)
	defer func() {
		if a.closing.Load() {
			a.cleanup()
		}
	}()

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic in event loop: %v", r)
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		}
	}()

	if a.opts.WatchConfig {
		a.startWatcher()
	}

	a.logger.Info("running")
	a.renderer.Resize(a.backend.Size())
	a.render()
	for !a.ui.Quitting() {
		a.handleEvent(a.backend.PollEvent())
		a.render()
	}
	a.logCommandStats()
	a.logger.Info("quit")
	return nil
}

// logCommandStats writes the most used commands to the debug log.
func (a *Application) logCommandStats() {
	m := a.dispatcher.Metrics()
	if m == nil {
		return
	}
	n, errs, panics := m.Totals()
	a.logger.Debug("commands: %d dispatched, %d failed, %d panicked", n, errs, panics)
	for _, s := range m.Top(5) {
		a.logger.Debug("  %s", s)
	}
}

// RequestQuit asks a running event loop to exit the way File > Exit does,
// prompting when there are unsaved changes. A second request quits without
// asking. It is safe to call from any goroutine.
func (a *Application) RequestQuit() {
	if a.backend != nil {
		a.backend.PostEvent(backend.Interrupt(quitRequest{}))
	}
}

// Shutdown stops the event loop without prompting and releases resources.
// While Run is executing, the resources are released when the loop returns.
// It is safe to call more than once, and before Run starts.
func (a *Application) Shutdown() {
	a.closing.Store(true)
	if a.backend != nil {
		a.backend.PostEvent(backend.Interrupt(quitRequest{force: true}))
	}
	if !a.running.Load() {
		a.cleanup()
	}
}

// quitRequest is posted to stop the event loop from another goroutine.
type quitRequest struct {
	force bool
}

// Config returns the current configuration.
func (a *Application) Config() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger {
	return a.logger
}

// Engine returns the document engine.
func (a *Application) Engine() *engine.Engine {
	return a.engine
}

// Document returns the open document.
func (a *Application) Document() *Document {
	return a.document
}

// Dispatcher returns the command dispatcher.
func (a *Application) Dispatcher() *dispatcher.Dispatcher {
	return a.dispatcher
}

// UI returns the dialog manager.
func (a *Application) UI() *UI {
	return a.ui
}

// Status returns the status bar model.
func (a *Application) Status() *statusbar.Model {
	return a.status
}

// Menu returns the menu navigator.
func (a *Application) Menu() *menu.Navigator {
	return a.nav
}

// Title returns the window title: the document name, marked with "*" when
// modified, and the application name.
func (a *Application) Title() string {
	name := a.document.DisplayName()
	if a.document.IsModified() {
		name = "*" + name
	}
	return name + " - " + a.Config().AppName
}
