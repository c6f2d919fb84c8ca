// Package engine provides the document model behind the editor window.
//
// Engine combines the text buffer, the single selection and the undo
// history into one thread-safe facade. It implements find.TextBuffer and
// find.UndoGrouper, so the find and replace algorithms drive it directly.
//
//	e := engine.New(engine.WithContent("Hello, World!"))
//	e.SetSelection(engine.NewSelection(7, 12))
//	e.InsertText("Go")  // "Hello, Go!"
//	e.Undo()            // "Hello, World!"
//
// Every edit goes through the history, so Undo restores both the text and
// the selection. IsModified compares the history with the last save point.
//
// Errors:
//
//   - ErrReadOnly: edit attempted on a read-only engine
//   - ErrNothingToUndo / ErrNothingToRedo: history is empty
//   - buffer.ErrOffsetOutOfRange / buffer.ErrRangeInvalid: bad offsets
package engine
