package app

import (
	"errors"
	"io/fs"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/config/watcher"
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/i18n"
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer/backend"
	"github.com/dshills/textpad/internal/statusbar"
)

// initStep is one bootstrap stage.
type initStep struct {
	name string
	fn   func() error
}

// bootstrap initializes components in dependency order. A failed step is
// reported as an InitError naming it.
func (a *Application) bootstrap() error {
	steps := []initStep{
		{"config", a.initConfig},
		{"logger", a.initLogger},
		{"translator", a.initTranslator},
		{"document", a.initDocument},
		{"status bar", a.initStatusBar},
		{"menu", a.initMenu},
		{"dispatcher", a.initDispatcher},
		{"files", a.openFiles},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return &InitError{Component: s.name, Err: err}
		}
	}
	a.logger.Info("initialized %s", a.document)
	return nil
}

func (a *Application) initConfig() error {
	cfg := a.opts.Config
	if cfg == nil {
		var err error
		if a.opts.ConfigPath == "" {
			cfg = config.Default()
		} else if cfg, err = config.Load(a.opts.ConfigPath); err != nil {
			return err
		}
	}
	a.cfg = cfg
	return nil
}

func (a *Application) initLogger() error {
	level := a.cfg.Log.Level
	if a.opts.LogLevel != "" {
		level = a.opts.LogLevel
	}
	logger, closer, err := OpenLogFile(a.cfg.Log.Path, ParseLogLevel(level))
	if err != nil {
		return err
	}
	a.logger = logger.WithField("session", uuid.NewString())
	a.logCloser = closer
	return nil
}

func (a *Application) initTranslator() error {
	tr, err := i18n.Load(a.cfg.LocalesPath(), a.cfg.Locale)
	if err != nil {
		return err
	}
	a.translator = tr
	return nil
}

func (a *Application) initDocument() error {
	opts := []engine.Option{engine.WithTabWidth(a.cfg.Editor.TabWidth)}
	if a.opts.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}
	a.engine = engine.New(opts...)

	doc, err := NewDocument(a.engine, a.cfg.File)
	if err != nil {
		return err
	}
	a.document = doc
	a.clipboard = NewClipboard(a.opts.SystemClipboard, a.logger.WithComponent("clipboard"))
	a.ui = NewUI(a.translator, a.cfg.AppName, a.engine, a.logger.WithComponent("ui"), a.beep)
	return nil
}

func (a *Application) initStatusBar() error {
	z := a.cfg.Zoom
	zoom, err := statusbar.NewZoom(z.Min, z.Max, z.Factor, z.Restore)
	if err != nil {
		return err
	}
	a.status = statusbar.New(zoom)
	a.status.SetVisible(a.cfg.Editor.StatusBar)
	return a.status.SetEncoding(a.document.Encoding().Label())
}

func (a *Application) initMenu() error {
	var bar *menu.Bar
	if path := a.cfg.MenuBarPath(); path != "" {
		var err error
		if bar, err = menu.Load(path, menu.WithTranslator(a.translator)); err != nil {
			return err
		}
	} else {
		bar = menu.Default(menu.WithTranslator(a.translator))
	}
	bar.SetChecked(dispatcher.CmdFormatWordWrap, a.cfg.Editor.WordWrap)
	bar.SetChecked(dispatcher.CmdViewStatusBar, a.cfg.Editor.StatusBar)
	a.nav = menu.NewNavigator(bar)
	return nil
}

func (a *Application) initDispatcher() error {
	opts := dispatcher.DefaultOptions().
		WithPanicRecovery(true).
		WithMetrics(a.logger.Level() == LogLevelDebug)
	a.dispatcher = dispatcher.New(opts)
	a.dispatcher.SetLogger(a.logger.WithComponent("dispatcher"))
	a.dispatcher.SetContextBuilder(a.buildContext)
	a.dispatcher.RegisterPostHook(a.afterDispatch)
	return a.registerHandlers()
}

// openFiles loads the first file named on the command line. A file that
// does not exist yet becomes the save target of an empty document.
func (a *Application) openFiles() error {
	if len(a.opts.Files) == 0 {
		return nil
	}
	path := a.opts.Files[0]
	err := a.document.Open(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		a.document.adopt(path)
	default:
		a.logger.Error("%v", err)
		a.ui.ShowMessage(a.translator.T("Error"), a.translator.T("Cannot open %s: %v", path, err))
	}
	return nil
}

func (a *Application) startWatcher() {
	path := a.Config().Path()
	if path == "" {
		return
	}
	w, err := watcher.New(path,
		func(cfg *config.Config) {
			a.backend.PostEvent(backend.Interrupt(cfg))
		},
		watcher.WithDebounce(200*time.Millisecond),
		watcher.WithErrorHandler(func(err error) {
			a.logger.Warn("config reload: %v", err)
		}),
	)
	if err != nil {
		a.logger.Warn("watching %s: %v", path, err)
		return
	}
	a.mu.Lock()
	a.watcher = w
	a.mu.Unlock()
	a.logger.Debug("watching %s", path)
}

// cleanup releases resources acquired by bootstrap and Run.
func (a *Application) cleanup() {
	a.mu.Lock()
	w := a.watcher
	a.watcher = nil
	closer := a.logCloser
	a.logCloser = nil
	a.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
	if closer != nil {
		_ = closer.Close()
	}
}

func (a *Application) beep() {
	if a.backend != nil {
		a.backend.Beep()
	}
}
