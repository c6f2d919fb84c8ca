package app

import (
	"sync"

	"github.com/dshills/textpad/internal/dialog"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/find"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// Compile-time interface checks.
var (
	_ execctx.UIInterface = (*UI)(nil)
	_ dialog.Host         = (*UI)(nil)
)

// UI owns the modal dialog stack and the transient status message.
//
// The find, replace and go-to dialogs are created once and keep their
// state between openings. Message boxes and prompts are created per use.
type UI struct {
	mu sync.Mutex

	tr      execctx.Translator
	appName string
	logger  *Logger
	beep    func()

	forms   []*dialog.Form
	find    *dialog.Find
	replace *dialog.Replace
	goTo    *dialog.GoTo

	last    find.SearchOptions
	hasLast bool
	message string
	quit    bool
}

// NewUI creates the dialogs over e. beep sounds the bell and may be nil.
func NewUI(tr execctx.Translator, appName string, e *engine.Engine, logger *Logger, beep func()) *UI {
	if logger == nil {
		logger = NullLogger()
	}
	if beep == nil {
		beep = func() {}
	}
	u := &UI{tr: tr, appName: appName, logger: logger, beep: beep}
	u.find = dialog.NewFind(tr, e, u)
	u.replace = dialog.NewReplace(tr, e, u)
	u.goTo = dialog.NewGoTo(tr, func(line int) {
		e.GoToLine(uint32(line - 1))
	})
	return u
}

// SetAppName changes the title of unsaved-changes prompts.
func (u *UI) SetAppName(name string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.appName = name
}

// push shows f on top, moving it there if it is already stacked.
func (u *UI) push(f *dialog.Form) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, g := range u.forms {
		if g == f {
			u.forms = append(u.forms[:i], u.forms[i+1:]...)
			break
		}
	}
	u.forms = append(u.forms, f)
}

// Forms returns the open dialogs, bottom first.
func (u *UI) Forms() []*dialog.Form {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pruneLocked()
	return append([]*dialog.Form(nil), u.forms...)
}

func (u *UI) pruneLocked() {
	open := u.forms[:0]
	for _, f := range u.forms {
		if !f.Closed() {
			open = append(open, f)
		}
	}
	clear(u.forms[len(open):])
	u.forms = open
}

// Top returns the topmost open dialog, or nil.
func (u *UI) Top() *dialog.Form {
	forms := u.Forms()
	if len(forms) == 0 {
		return nil
	}
	return forms[len(forms)-1]
}

// HandleEvent routes ev to the topmost dialog. Dialogs are modal: while
// one is open every key and mouse event is consumed.
func (u *UI) HandleEvent(ev backend.Event) bool {
	top := u.Top()
	if top == nil {
		return false
	}
	// The form lock is not held here: buttons may open further dialogs.
	top.HandleEvent(ev)
	return ev.Type == backend.EventKey || ev.Type == backend.EventMouse
}

// NotFound reports a failed search in a message box.
func (u *UI) NotFound(query string) {
	u.beep()
	u.ShowMessage(u.appName, u.tr.T("Cannot find \"%s\"", query))
}

// Searched records the options of a dialog search for Find Next.
func (u *UI) Searched(opts find.SearchOptions) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.last = opts
	u.hasLast = true
}

// LastSearch returns the options of the last dialog search.
func (u *UI) LastSearch() (find.SearchOptions, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.last, u.hasLast
}

// Status sets the transient status bar message.
func (u *UI) Status(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.message = msg
}

// Message returns the transient status bar message.
func (u *UI) Message() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.message
}

// ClearStatus removes the transient message.
func (u *UI) ClearStatus() {
	u.Status("")
}

// ReportError logs err and shows it.
func (u *UI) ReportError(err error) {
	if err == nil {
		return
	}
	u.logger.Error("%v", err)
	u.ShowMessage(u.tr.T("Error"), err.Error())
}

// OpenFind shows the find dialog. The replace dialog is closed first so
// only one search dialog is visible.
func (u *UI) OpenFind(prefill string) {
	u.replace.Close()
	u.find.Show(prefill)
	u.push(u.find.Form)
}

// OpenReplace shows the replace dialog.
func (u *UI) OpenReplace(prefill string) {
	u.find.Close()
	u.replace.Show(prefill)
	u.push(u.replace.Form)
}

// OpenGoTo shows the go-to dialog.
func (u *UI) OpenGoTo(current, last int) {
	u.goTo.Show(current, last)
	u.push(u.goTo.Form)
}

// ShowMessage shows a message box.
func (u *UI) ShowMessage(title, text string) {
	u.push(dialog.NewMessage(u.tr, title, text, nil))
}

// AskSaveChanges asks whether to save name before it is discarded.
func (u *UI) AskSaveChanges(name string, then func(execctx.Choice)) {
	u.mu.Lock()
	appName := u.appName
	u.mu.Unlock()
	u.push(dialog.NewSaveChanges(u.tr, appName, name, then))
}

// PromptPath asks for a file path. then receives "" on cancel.
func (u *UI) PromptPath(title, initial string, then func(path string)) {
	u.push(dialog.NewPrompt(u.tr, title, u.tr.T("File &name:"), initial, then))
}

// Quit asks the event loop to stop.
func (u *UI) Quit() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quit = true
}

// Quitting reports whether Quit was called.
func (u *UI) Quitting() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.quit
}
