// Package cursor provides the document selection.
//
// A Selection uses an anchor/head model. Anchor is where the selection
// started and Head is where typing happens. When Anchor == Head the selection
// is an empty cursor. Matches selected by find place Anchor at the start of
// the match and Head at its end.
//
// Selection is an immutable value type. Edits move it with TransformSelection.
package cursor
