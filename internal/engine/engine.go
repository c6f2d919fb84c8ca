package engine

import (
	"sync"
	"unicode/utf8"

	"github.com/dshills/textpad/internal/engine/buffer"
	"github.com/dshills/textpad/internal/engine/cursor"
	"github.com/dshills/textpad/internal/engine/history"
	"github.com/dshills/textpad/internal/find"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the document.
	ByteOffset = buffer.ByteOffset

	// Point is a 0-indexed line/column position.
	Point = buffer.Point

	// Range is a byte range in the document.
	Range = buffer.Range

	// Selection is the document selection.
	Selection = cursor.Selection

	// LineEnding is the on-disk line ending style.
	LineEnding = buffer.LineEnding
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
	LineEndingCR   = buffer.LineEndingCR
)

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head ByteOffset) Selection {
	return cursor.NewSelection(anchor, head)
}

// Engine is the document facade: text, selection and undo history.
//
// All methods are safe for concurrent use.
type Engine struct {
	mu sync.RWMutex

	buf     *buffer.Buffer
	sel     cursor.Selection
	history *history.History

	tabWidth       int
	lineEnding     *buffer.LineEnding
	maxUndoEntries int
	readOnly       bool

	initContent string
}

// Compile-time interface checks.
var (
	_ find.TextBuffer  = (*Engine)(nil)
	_ find.UndoGrouper = (*Engine)(nil)
)

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		tabWidth:       DefaultTabWidth,
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(e)
	}

	var bufOpts []buffer.Option
	if e.lineEnding != nil {
		bufOpts = append(bufOpts, buffer.WithLineEnding(*e.lineEnding))
	}
	e.buf = buffer.NewBufferFromString(e.initContent, bufOpts...)
	e.history = history.NewHistory(e.maxUndoEntries)
	e.initContent = ""
	return e
}

// Text returns the document text with "\n" line endings.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Text()
}

// TextForSave returns the document text using its on-disk line ending.
func (e *Engine) TextForSave() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.TextWithLineEnding()
}

// TextRange returns the text in [start, end).
func (e *Engine) TextRange(start, end ByteOffset) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.TextRange(start, end)
}

// Len returns the document length in bytes.
func (e *Engine) Len() ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Len()
}

// IsEmpty returns true if the document has no text.
func (e *Engine) IsEmpty() bool {
	return e.Len() == 0
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineCount()
}

// LineText returns the text of line without its terminator.
func (e *Engine) LineText(line uint32) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineText(line)
}

// OffsetToPoint converts a byte offset to a line/column position.
func (e *Engine) OffsetToPoint(offset ByteOffset) Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.OffsetToPoint(offset)
}

// PointToOffset converts a line/column position to a byte offset.
func (e *Engine) PointToOffset(p Point) ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.PointToOffset(p)
}

// LineEnding returns the on-disk line ending.
func (e *Engine) LineEnding() LineEnding {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineEnding()
}

// SetLineEnding changes the on-disk line ending.
func (e *Engine) SetLineEnding(le LineEnding) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.SetLineEnding(le)
}

// TabWidth returns the tab width.
func (e *Engine) TabWidth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tabWidth
}

// SetTabWidth sets the tab width. Non-positive values are ignored.
func (e *Engine) SetTabWidth(width int) {
	if width <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tabWidth = width
}

// IsReadOnly returns true if edits are rejected.
func (e *Engine) IsReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}

// SetReadOnly enables or disables read-only mode.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readOnly = readOnly
}

// SetContent replaces the whole document, moves the cursor to the start and
// clears the undo history. The result counts as unmodified.
func (e *Engine) SetContent(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.SetText(text)
	e.sel = cursor.NewCursorSelection(0)
	e.history.Clear()
}

// Selection operations

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel
}

// SetSelection sets the selection, clamped to the document.
func (e *Engine) SetSelection(sel Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel = sel.Clamp(e.buf.Len())
}

// MoveCursor collapses the selection to offset.
func (e *Engine) MoveCursor(offset ByteOffset) {
	e.SetSelection(cursor.NewCursorSelection(offset))
}

// CursorPoint returns the line/column of the cursor head.
func (e *Engine) CursorPoint() Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.OffsetToPoint(e.sel.Head)
}

// SelectAll selects the whole document.
func (e *Engine) SelectAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel = cursor.NewSelection(0, e.buf.Len())
}

// GoToLine moves the cursor to the start of a 0-indexed line.
// Lines past the end go to the last line.
func (e *Engine) GoToLine(line uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if last := e.buf.LineCount() - 1; line > last {
		line = last
	}
	e.sel = cursor.NewCursorSelection(e.buf.LineStartOffset(line))
}

// MoveCursorToStart collapses the selection to the document start.
func (e *Engine) MoveCursorToStart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel = cursor.NewCursorSelection(0)
}

// MoveCursorToEnd collapses the selection to the document end.
func (e *Engine) MoveCursorToEnd() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel = cursor.NewCursorSelection(e.buf.Len())
}

// HasSelection returns true if the selection is non-empty.
func (e *Engine) HasSelection() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.sel.IsEmpty()
}

// SelectionText returns the selected text.
func (e *Engine) SelectionText() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	r := e.sel.Range()
	text, err := e.buf.TextRange(r.Start, r.End)
	if err != nil {
		return ""
	}
	return text
}

// FindFromCursor selects the next match of query without wrapping.
//
// Forward scans start at the selection end. Backward scans pick the last
// match that ends at or before the selection start.
func (e *Engine) FindFromCursor(query string, caseSensitive bool, dir find.Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	var (
		r  Range
		ok bool
	)
	if dir == find.Backward {
		r, ok = e.buf.FindBackward(query, e.sel.Start(), caseSensitive)
	} else {
		r, ok = e.buf.Find(query, e.sel.End(), caseSensitive)
	}
	if !ok {
		return false
	}
	e.sel = cursor.NewRangeSelection(r)
	return true
}

// Edit operations

// ReplaceSelectionText replaces the selection with text and leaves the
// cursor right after the inserted text.
func (e *Engine) ReplaceSelectionText(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.replaceLocked(e.sel.Range(), text)
}

// InsertText types text over the selection.
func (e *Engine) InsertText(text string) error {
	return e.ReplaceSelectionText(text)
}

// DeleteForward removes the selection, or the character after the cursor
// when the selection is empty. At the document end it does nothing.
func (e *Engine) DeleteForward() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.sel.Range()
	if r.IsEmpty() {
		text := e.buf.Text()
		if int(r.Start) >= len(text) {
			return nil
		}
		_, size := utf8.DecodeRuneInString(text[r.Start:])
		r.End = r.Start + ByteOffset(size)
	}
	return e.replaceLocked(r, "")
}

// DeleteBackward removes the selection, or the character before the cursor
// when the selection is empty. At the document start it does nothing.
func (e *Engine) DeleteBackward() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.sel.Range()
	if r.IsEmpty() {
		if r.Start == 0 {
			return nil
		}
		_, size := utf8.DecodeLastRuneInString(e.buf.Text()[:r.Start])
		r.Start -= ByteOffset(size)
	}
	return e.replaceLocked(r, "")
}

func (e *Engine) replaceLocked(r Range, text string) error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.history.Execute(history.NewEditCommand(r, text), e.buf, &e.sel)
}

// Undo/Redo operations

// Undo reverts the last edit or edit group.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	return e.history.Undo(e.buf, &e.sel)
}

// Redo re-applies the last undone edit or edit group.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	return e.history.Redo(e.buf, &e.sel)
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// BeginUndoGroup starts grouping edits into one undo step.
func (e *Engine) BeginUndoGroup(name string) {
	e.history.BeginGroup(name)
}

// EndUndoGroup closes the current undo group.
func (e *Engine) EndUndoGroup() {
	e.history.EndGroup()
}

// UndoDescription describes the next undo step, or "" if there is none.
func (e *Engine) UndoDescription() string {
	info, ok := e.history.PeekUndo()
	if !ok {
		return ""
	}
	return info.Description
}

// RedoDescription describes the next redo step, or "" if there is none.
func (e *Engine) RedoDescription() string {
	info, ok := e.history.PeekRedo()
	if !ok {
		return ""
	}
	return info.Description
}

// IsModified returns true if the document differs from the last save point.
func (e *Engine) IsModified() bool {
	return !e.history.IsAtSavePoint()
}

// MarkSaved records the current state as saved.
func (e *Engine) MarkSaved() {
	e.history.MarkSaved()
}
