package find

// TextBuffer is the document capability used by find and replace.
//
// The buffer holds one cursor with an optional selection.
type TextBuffer interface {
	// FindFromCursor selects the next match of query in direction dir,
	// starting from the current selection. It never wraps. It returns false
	// and leaves the selection alone when there is no match.
	FindFromCursor(query string, caseSensitive bool, dir Direction) bool

	// MoveCursorToStart collapses the selection to the document start.
	MoveCursorToStart()

	// MoveCursorToEnd collapses the selection to the document end.
	MoveCursorToEnd()

	// HasSelection reports whether the selection is non-empty.
	HasSelection() bool

	// ReplaceSelectionText replaces the selection with text and leaves an
	// empty cursor right after the inserted text.
	ReplaceSelectionText(text string) error

	// SelectionText returns the selected text.
	SelectionText() string
}

// UndoGrouper is implemented by buffers that can merge several edits into
// one undo step.
type UndoGrouper interface {
	BeginUndoGroup(name string)
	EndUndoGroup()
}

// Notifier tells the user that a query could not be found.
type Notifier interface {
	NotFound(query string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(query string)

// NotFound calls f(query).
func (f NotifierFunc) NotFound(query string) {
	f(query)
}
