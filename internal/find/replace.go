package find

import (
	"fmt"
	"strings"
)

// ReplaceAllGroupName is the undo group name used by ReplaceAll.
const ReplaceAllGroupName = "Replace All"

// ReplaceOne replaces the current occurrence of opts.Query and selects the
// next one.
//
// When the selection already holds the query, as it does after Find Next,
// that text is replaced. Otherwise the next occurrence is found as FindNext
// does and replaced. Either way a following FindNext highlights the next
// match, so repeated calls step through the document.
//
// It returns false when nothing was found, and also when the buffer reports a
// match but exposes no selection; in that case nothing is edited.
func ReplaceOne(buf TextBuffer, opts SearchOptions, replacement string) (bool, error) {
	if opts.IsEmpty() {
		return false, nil
	}
	if !selectionMatches(buf, opts) {
		if !FindNext(buf, opts) || !buf.HasSelection() {
			return false, nil
		}
	}
	if err := buf.ReplaceSelectionText(replacement); err != nil {
		return false, fmt.Errorf("replace %q: %w", opts.Query, err)
	}
	FindNext(buf, opts)
	return true, nil
}

func selectionMatches(buf TextBuffer, opts SearchOptions) bool {
	if !buf.HasSelection() {
		return false
	}
	sel := buf.SelectionText()
	if opts.CaseSensitive {
		return sel == opts.Query
	}
	return strings.EqualFold(sel, opts.Query)
}

// ReplaceAll replaces every occurrence of opts.Query and returns the count.
//
// The scan always starts at the document start and runs forward without
// wrapping, whatever opts.Direction and opts.WrapAround say. After each
// replacement the cursor sits right after the inserted text, so the loop runs
// at most once per occurrence in the original text.
//
// If buf implements UndoGrouper the replacements undo as one step.
func ReplaceAll(buf TextBuffer, opts SearchOptions, replacement string) (int, error) {
	if opts.IsEmpty() {
		return 0, nil
	}

	if g, ok := buf.(UndoGrouper); ok {
		g.BeginUndoGroup(ReplaceAllGroupName)
		defer g.EndUndoGroup()
	}

	buf.MoveCursorToStart()

	count := 0
	for buf.FindFromCursor(opts.Query, opts.CaseSensitive, Forward) {
		if !buf.HasSelection() {
			break
		}
		if err := buf.ReplaceSelectionText(replacement); err != nil {
			return count, fmt.Errorf("replace all %q: %w", opts.Query, err)
		}
		count++
	}
	return count, nil
}
