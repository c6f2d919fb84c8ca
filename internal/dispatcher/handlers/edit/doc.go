// Package edit provides handlers for the Edit menu: undo and redo,
// clipboard transfer, deletion, selection, go-to-line and date insertion.
package edit
