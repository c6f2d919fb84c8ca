// Package dialog implements the modal windows of the editor: find,
// replace, go to line, path prompt, message box and the unsaved-changes
// question.
//
// Dialogs are plain state machines over backend events. They do not draw
// themselves; the renderer walks Form.Controls. The find and replace
// dialogs build a fresh find.SearchOptions from their widgets on every
// button press and run the find package against the live buffer.
package dialog
