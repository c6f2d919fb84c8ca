// Package handlertest provides in-memory collaborators for handler tests.
package handlertest

import (
	"errors"
	"fmt"

	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/find"
)

// ErrClipboardEmpty is returned by Clipboard.ReadAll when Fail is set.
var ErrClipboardEmpty = errors.New("handlertest: clipboard unavailable")

// UI records dialog requests and answers prompts from preset values.
type UI struct {
	NotFoundQueries []string
	FindOpened      []string
	ReplaceOpened   []string
	GoToOpened      [][2]int
	Messages        []string
	SaveAsked       []string
	PathPrompts     []string
	QuitCalled      int

	// Answer is returned from AskSaveChanges.
	Answer execctx.Choice
	// Path is returned from PromptPath.
	Path string
	// Last is returned from LastSearch when HasLast is set.
	Last    find.SearchOptions
	HasLast bool
}

func (u *UI) NotFound(query string)                  { u.NotFoundQueries = append(u.NotFoundQueries, query) }
func (u *UI) OpenFind(prefill string)                { u.FindOpened = append(u.FindOpened, prefill) }
func (u *UI) OpenReplace(prefill string)             { u.ReplaceOpened = append(u.ReplaceOpened, prefill) }
func (u *UI) OpenGoTo(current, last int)             { u.GoToOpened = append(u.GoToOpened, [2]int{current, last}) }
func (u *UI) ShowMessage(title, text string)         { u.Messages = append(u.Messages, title+": "+text) }
func (u *UI) Quit()                                  { u.QuitCalled++ }
func (u *UI) LastSearch() (find.SearchOptions, bool) { return u.Last, u.HasLast }

func (u *UI) AskSaveChanges(name string, then func(execctx.Choice)) {
	u.SaveAsked = append(u.SaveAsked, name)
	then(u.Answer)
}

func (u *UI) PromptPath(title, initial string, then func(path string)) {
	u.PathPrompts = append(u.PathPrompts, title)
	then(u.Path)
}

// Document is an in-memory document bound to an engine.
type Document struct {
	Engine  *engine.Engine
	Files   map[string]string
	path    string
	SaveErr error
	Saves   int
}

// NewDocument creates a document over e with an empty file system.
func NewDocument(e *engine.Engine) *Document {
	return &Document{Engine: e, Files: make(map[string]string)}
}

func (d *Document) Path() string { return d.path }

func (d *Document) DisplayName() string {
	if d.path == "" {
		return "Untitled"
	}
	return d.path
}

func (d *Document) IsModified() bool { return d.Engine.IsModified() }

func (d *Document) New() {
	d.path = ""
	d.Engine.SetContent("")
}

func (d *Document) Open(path string) error {
	text, ok := d.Files[path]
	if !ok {
		return fmt.Errorf("open %s: file does not exist", path)
	}
	d.path = path
	d.Engine.SetContent(text)
	return nil
}

func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("handlertest: document has no path")
	}
	return d.SaveAs(d.path)
}

func (d *Document) SaveAs(path string) error {
	if d.SaveErr != nil {
		return d.SaveErr
	}
	d.Files[path] = d.Engine.TextForSave()
	d.path = path
	d.Saves++
	d.Engine.MarkSaved()
	return nil
}

// Clipboard is an in-memory clipboard.
type Clipboard struct {
	Text string
	Fail bool
}

func (c *Clipboard) ReadAll() (string, error) {
	if c.Fail {
		return "", ErrClipboardEmpty
	}
	return c.Text, nil
}

func (c *Clipboard) WriteAll(text string) error {
	if c.Fail {
		return ErrClipboardEmpty
	}
	c.Text = text
	return nil
}

// View is a fixed-step zoom model with toggles.
type View struct {
	ZoomLevel int
	Min, Max  int
	Step      int
	WordWrap  bool
	StatusBar bool
	ZoomErr   error
}

// NewView returns a view at 100% zoom with bounds 10..500 and step 10.
func NewView() *View {
	return &View{ZoomLevel: 100, Min: 10, Max: 500, Step: 10, StatusBar: true}
}

func (v *View) Zoom() int { return v.ZoomLevel }

func (v *View) ZoomIn() error {
	if v.ZoomLevel+v.Step > v.Max {
		return v.zoomErr()
	}
	v.ZoomLevel += v.Step
	return nil
}

func (v *View) ZoomOut() error {
	if v.ZoomLevel-v.Step < v.Min {
		return v.zoomErr()
	}
	v.ZoomLevel -= v.Step
	return nil
}

func (v *View) ZoomRestore() error {
	v.ZoomLevel = 100
	return nil
}

func (v *View) zoomErr() error {
	if v.ZoomErr != nil {
		return v.ZoomErr
	}
	return errors.New("handlertest: zoom out of range")
}

func (v *View) ToggleWordWrap() bool {
	v.WordWrap = !v.WordWrap
	return v.WordWrap
}

func (v *View) ToggleStatusBar() bool {
	v.StatusBar = !v.StatusBar
	return v.StatusBar
}

// Env bundles an engine and its fakes into an execution context.
type Env struct {
	Engine    *engine.Engine
	Document  *Document
	Clipboard *Clipboard
	View      *View
	UI        *UI
	Ctx       *execctx.ExecutionContext
}

// NewEnv creates an environment whose engine holds text.
func NewEnv(text string) *Env {
	e := engine.New(engine.WithContent(text))
	env := &Env{
		Engine:    e,
		Document:  NewDocument(e),
		Clipboard: &Clipboard{},
		View:      NewView(),
		UI:        &UI{},
	}
	ctx := execctx.New()
	ctx.Engine = e
	ctx.Document = env.Document
	ctx.Clipboard = env.Clipboard
	ctx.View = env.View
	ctx.UI = env.UI
	ctx.App = execctx.AppInfo{Name: "Textpad", Version: "test"}
	env.Ctx = ctx
	return env
}
