// Package execctx provides the execution context for command handlers.
package execctx

import (
	"fmt"
	"time"

	"github.com/dshills/textpad/internal/engine/buffer"
	"github.com/dshills/textpad/internal/engine/cursor"
	"github.com/dshills/textpad/internal/find"
)

// EngineInterface abstracts the document engine for handlers.
type EngineInterface interface {
	find.TextBuffer
	find.UndoGrouper

	Text() string
	Len() buffer.ByteOffset
	IsEmpty() bool
	LineCount() uint32
	CursorPoint() buffer.Point

	Selection() cursor.Selection
	SetSelection(sel cursor.Selection)
	SelectAll()
	GoToLine(line uint32)

	InsertText(text string) error
	DeleteForward() error

	Undo() error
	Redo() error
	CanUndo() bool
	CanRedo() bool
	UndoDescription() string
	RedoDescription() string
}

// DocumentInterface abstracts the open file for handlers.
type DocumentInterface interface {
	Path() string
	DisplayName() string
	IsModified() bool

	New()
	Open(path string) error
	Save() error
	SaveAs(path string) error
}

// ClipboardInterface abstracts the system clipboard.
type ClipboardInterface interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// ViewInterface abstracts view state that commands toggle.
type ViewInterface interface {
	Zoom() int
	ZoomIn() error
	ZoomOut() error
	ZoomRestore() error
	ToggleWordWrap() bool
	ToggleStatusBar() bool
}

// Choice is the answer to the unsaved-changes prompt.
type Choice uint8

const (
	ChoiceSave Choice = iota
	ChoiceDiscard
	ChoiceCancel
)

// String returns the choice name.
func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// UIInterface abstracts dialogs and window-level actions.
//
// Dialogs are modeless from the handler's point of view: methods that need
// an answer take a continuation that runs when the user responds.
type UIInterface interface {
	find.Notifier

	OpenFind(prefill string)
	OpenReplace(prefill string)
	OpenGoTo(current, last int)
	ShowMessage(title, text string)
	AskSaveChanges(name string, then func(Choice))
	PromptPath(title, initial string, then func(path string))
	LastSearch() (find.SearchOptions, bool)
	Quit()
}

// Translator translates user-visible strings.
type Translator interface {
	T(key string, args ...any) string
}

// AppInfo describes the running application for the about box.
type AppInfo struct {
	Name    string
	Version string
}

// ExecutionContext provides everything a handler may touch.
type ExecutionContext struct {
	Engine     EngineInterface
	Document   DocumentInterface
	Clipboard  ClipboardInterface
	View       ViewInterface
	UI         UIInterface
	Translator Translator

	App AppInfo

	// DateTimeFormat is the strftime layout for Insert Date/Time.
	DateTimeFormat string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Data holds handler-specific context data.
	Data map[string]any
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Now:  time.Now,
		Data: make(map[string]any),
	}
}

// T translates key, returning it unchanged when no translator is set.
func (ctx *ExecutionContext) T(key string, args ...any) string {
	if ctx.Translator == nil {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf(key, args...)
	}
	return ctx.Translator.T(key, args...)
}

// HasSelection returns true if the engine has a non-empty selection.
func (ctx *ExecutionContext) HasSelection() bool {
	return ctx.Engine != nil && ctx.Engine.HasSelection()
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value any) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]any)
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (any, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that the engine is present.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}

// ValidateForDocument checks the engine, document and UI are present.
func (ctx *ExecutionContext) ValidateForDocument() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Document == nil {
		return ErrMissingDocument
	}
	if ctx.UI == nil {
		return ErrMissingUI
	}
	return nil
}
