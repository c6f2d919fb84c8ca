// Package file provides handlers for the File menu.
//
// New, Open and Exit first ask whether unsaved changes should be saved.
// The answer arrives through a continuation, so a handler may return
// handler.Pending while a dialog is open.
package file
