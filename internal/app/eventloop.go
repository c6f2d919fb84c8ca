package app

import (
	"errors"

	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/renderer"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// wheelRows is the number of rows one wheel notch scrolls.
const wheelRows = 3

// handleEvent processes a single backend event.
func (a *Application) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventResize:
		a.renderer.Resize(ev.Width, ev.Height)
	case backend.EventKey:
		a.handleKey(ev)
	case backend.EventMouse:
		a.handleMouse(ev)
	case backend.EventPaste:
		a.handlePaste(ev)
	case backend.EventInterrupt:
		a.handleInterrupt(ev.Data)
	case backend.EventFocus:
		// Nothing to do.
	}
}

// handleKey routes a key press: dialogs first, then the menu, then menu
// shortcuts, and finally text editing.
func (a *Application) handleKey(ev backend.Event) {
	a.ui.ClearStatus()

	if a.ui.HandleEvent(ev) {
		return
	}
	if a.pasting {
		a.handleEditKey(ev)
		return
	}

	ctx := a.buildContext()
	enabled := a.enabled(ctx)
	if cmd, handled := a.nav.HandleEvent(ev, enabled); handled {
		if cmd != dispatcher.CmdNone {
			a.dispatcher.DispatchWithContext(cmd, ctx)
		}
		return
	}
	// A disabled shortcut falls through: Del without a selection deletes
	// the next character.
	if cmd, ok := a.nav.Bar().Lookup(ev); ok && enabled(cmd) {
		a.dispatcher.DispatchWithContext(cmd, ctx)
		return
	}
	a.handleEditKey(ev)
}

// handleEditKey applies typing and cursor keys to the document.
func (a *Application) handleEditKey(ev backend.Event) {
	if ev.IsRune() {
		a.edit(a.engine.InsertText(string(ev.Rune)))
		return
	}

	extend := ev.Mod.Has(backend.ModShift)
	ctrl := ev.Mod.Has(backend.ModCtrl)
	head := a.engine.Selection().Head

	switch ev.Key {
	case backend.KeyEnter:
		a.edit(a.engine.InsertText("\n"))
	case backend.KeyTab:
		a.edit(a.engine.InsertText("\t"))
	case backend.KeyBackspace:
		a.edit(a.engine.DeleteBackward())
	case backend.KeyDelete:
		a.edit(a.engine.DeleteForward())

	case backend.KeyLeft:
		if sel := a.engine.Selection(); !extend && !sel.IsEmpty() {
			a.moveTo(sel.Start(), false)
			return
		}
		a.moveTo(prevBoundary(a.engine, head), extend)
	case backend.KeyRight:
		if sel := a.engine.Selection(); !extend && !sel.IsEmpty() {
			a.moveTo(sel.End(), false)
			return
		}
		a.moveTo(nextBoundary(a.engine, head), extend)
	case backend.KeyUp:
		a.moveVertical(-1, extend)
	case backend.KeyDown:
		a.moveVertical(1, extend)
	case backend.KeyPageUp:
		a.moveVertical(-a.pageRows(), extend)
	case backend.KeyPageDown:
		a.moveVertical(a.pageRows(), extend)

	case backend.KeyHome:
		if ctrl {
			a.moveTo(0, extend)
			return
		}
		start, _ := lineBounds(a.engine, head)
		a.moveTo(start, extend)
	case backend.KeyEnd:
		if ctrl {
			a.moveTo(a.engine.Len(), extend)
			return
		}
		_, end := lineBounds(a.engine, head)
		a.moveTo(end, extend)

	case backend.KeyEscape:
		// Escape with nothing open does nothing.
	}
}

// edit finishes a text change. Edits of a read-only document beep.
func (a *Application) edit(err error) {
	a.goalCol = -1
	if err != nil {
		if errors.Is(err, engine.ErrReadOnly) {
			a.beep()
			return
		}
		a.logger.Error("edit: %v", err)
		return
	}
	a.renderer.RevealCursor()
}

// moveTo moves the cursor head to off, keeping the anchor when extend is set.
func (a *Application) moveTo(off engine.ByteOffset, extend bool) {
	a.goalCol = -1
	a.setHead(off, extend)
}

func (a *Application) setHead(off engine.ByteOffset, extend bool) {
	if extend {
		a.engine.SetSelection(engine.NewSelection(a.engine.Selection().Anchor, off))
	} else {
		a.engine.MoveCursor(off)
	}
	a.renderer.RevealCursor()
}

func (a *Application) moveVertical(delta int, extend bool) {
	off, goal := verticalTarget(a.engine, a.engine.Selection().Head, delta, a.goalCol)
	a.setHead(off, extend)
	a.goalCol = goal
}

func (a *Application) pageRows() int {
	return max(a.renderer.PageRows()-1, 1)
}

// handleMouse places the cursor on click, selects on drag and scrolls on
// wheel. Dialogs are keyboard driven, so clicks while one is open are
// dropped.
func (a *Application) handleMouse(ev backend.Event) {
	if a.ui.HandleEvent(ev) {
		return
	}

	ctx := a.buildContext()
	if cmd, handled := a.nav.HandleEvent(ev, a.enabled(ctx)); handled {
		if cmd != dispatcher.CmdNone {
			a.dispatcher.DispatchWithContext(cmd, ctx)
		}
		return
	}

	switch ev.MouseButton {
	case backend.MouseWheelUp:
		a.renderer.ScrollBy(a.frame(), -wheelRows)
	case backend.MouseWheelDown:
		a.renderer.ScrollBy(a.frame(), wheelRows)
	case backend.MouseLeft:
		off, ok := a.renderer.OffsetAt(a.engine, ev.MouseX, ev.MouseY)
		if !ok {
			return
		}
		a.goalCol = -1
		extend := a.mouseDown || ev.Mod.Has(backend.ModShift)
		a.mouseDown = true
		if extend {
			a.engine.SetSelection(engine.NewSelection(a.engine.Selection().Anchor, off))
		} else {
			a.engine.MoveCursor(off)
		}
	case backend.MouseNone:
		a.mouseDown = false
	}
}

// handlePaste brackets a terminal paste so it undoes in one step.
func (a *Application) handlePaste(ev backend.Event) {
	if ev.PasteStart == a.pasting {
		return
	}
	a.pasting = ev.PasteStart
	if a.pasting {
		a.engine.BeginUndoGroup("Paste")
	} else {
		a.engine.EndUndoGroup()
	}
}

// handleInterrupt processes events posted from other goroutines.
func (a *Application) handleInterrupt(data any) {
	switch d := data.(type) {
	case *config.Config:
		a.applyConfig(d)
	case quitRequest:
		if d.force || a.quitAsked {
			a.ui.Quit()
			return
		}
		a.quitAsked = true
		a.dispatcher.DispatchWithContext(dispatcher.CmdFileExit, a.buildContext())
	}
}

// applyConfig applies a reloaded configuration. Theme, zoom bounds, file
// defaults, tab width, date format and log level take effect immediately;
// the locale and menu file need a restart.
func (a *Application) applyConfig(cfg *config.Config) {
	if palette, err := cfg.Theme.Palette(); err == nil {
		a.renderer.SetPalette(palette)
	} else {
		a.logger.Warn("theme: %v", err)
	}
	if err := a.status.Zoom().SetBounds(cfg.Zoom.Min, cfg.Zoom.Max, cfg.Zoom.Factor, cfg.Zoom.Restore); err != nil {
		a.logger.Warn("zoom: %v", err)
	}
	if err := a.document.SetFileConfig(cfg.File); err != nil {
		a.logger.Warn("file: %v", err)
	}
	a.engine.SetTabWidth(cfg.Editor.TabWidth)
	if a.opts.LogLevel == "" {
		a.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	}
	a.ui.SetAppName(cfg.AppName)

	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()
	a.logger.Info("configuration reloaded from %s", cfg.Path())
}

// syncStatus copies the cursor, line ending and encoding to the status bar.
func (a *Application) syncStatus() {
	p := a.engine.CursorPoint()
	line, err := a.engine.LineText(p.Line)
	if err != nil {
		return
	}
	if err := a.status.SetCursor(p, line); err != nil {
		a.logger.Debug("status: %v", err)
	}
	if err := a.status.SetLineEnding(a.engine.LineEnding()); err != nil {
		a.logger.Debug("status: %v", err)
	}
	if err := a.status.SetEncoding(a.document.Encoding().Label()); err != nil {
		a.logger.Debug("status: %v", err)
	}
}

// frame describes the current screen.
func (a *Application) frame() renderer.Frame {
	return renderer.Frame{
		Title:   a.Title(),
		Doc:     a.engine,
		Menu:    a.nav,
		Enabled: a.enabled(a.buildContext()),
		Dialogs: a.ui.Forms(),
		Status:  a.status,
		Message: a.ui.Message(),
	}
}

func (a *Application) render() {
	a.syncStatus()
	a.renderer.Render(a.frame())
}
