// Package history provides undo/redo for a document.
//
// Edits are recorded as Commands. An EditCommand captures one replacement
// along with the selection before and after it, so undo and redo restore
// both the text and the cursor.
//
//	h := history.NewHistory(1000)
//	h.Execute(history.NewEditCommand(r, "new"), buf, &sel)
//	h.Undo(buf, &sel)
//	h.Redo(buf, &sel)
//
// Several edits can be grouped so one undo reverts all of them:
//
//	h.BeginGroup("Replace All")
//	// ... edits ...
//	h.EndGroup()
//
// History also remembers a save point so callers can tell whether the
// document differs from what was last written to disk.
package history
