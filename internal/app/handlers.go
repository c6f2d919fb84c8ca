package app

import (
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
	"github.com/dshills/textpad/internal/dispatcher/handlers/edit"
	"github.com/dshills/textpad/internal/dispatcher/handlers/file"
	"github.com/dshills/textpad/internal/dispatcher/handlers/help"
	"github.com/dshills/textpad/internal/dispatcher/handlers/search"
	"github.com/dshills/textpad/internal/dispatcher/handlers/view"
	"github.com/dshills/textpad/internal/menu"
)

// registrar is implemented by every handler package.
type registrar interface {
	Register(d *dispatcher.Dispatcher) error
}

// registerHandlers binds every command to its handler.
func (a *Application) registerHandlers() error {
	registrars := []registrar{
		file.NewHandler(),
		edit.NewHandler(),
		search.NewHandler(),
		view.NewHandler(),
		help.NewHandler(),
	}
	for _, r := range registrars {
		if err := r.Register(a.dispatcher); err != nil {
			return err
		}
	}

	// Every menu command needs a handler.
	for _, id := range a.nav.Bar().Commands() {
		if !a.dispatcher.Has(id) {
			a.logger.Warn("menu command %s has no handler", id)
		}
	}
	return nil
}

// buildContext creates the execution context handed to handlers.
func (a *Application) buildContext() *execctx.ExecutionContext {
	cfg := a.Config()

	ctx := execctx.New()
	ctx.Engine = a.engine
	ctx.Document = a.document
	ctx.Clipboard = a.clipboard
	ctx.UI = a.ui
	ctx.Translator = a.translator
	ctx.App = execctx.AppInfo{Name: cfg.AppName, Version: a.opts.Version}
	ctx.DateTimeFormat = cfg.DateTimeFormat
	ctx.Now = a.now
	if a.view != nil {
		ctx.View = a.view
	}
	return ctx
}

// enabled returns the enablement predicate for menus, evaluated against ctx.
func (a *Application) enabled(ctx *execctx.ExecutionContext) menu.EnabledFunc {
	return func(id dispatcher.CommandID) bool {
		return a.dispatcher.Enabled(id, ctx)
	}
}

// afterDispatch shows the result message. Dispatcher errors are already
// logged; handlers report their own user-facing failures.
func (a *Application) afterDispatch(id dispatcher.CommandID, result handler.Result) {
	if result.Message != "" {
		a.ui.Status(result.Message)
	}
	if result.IsError() && result.Message == "" {
		a.ui.Status(result.Error.Error())
	}
}
