// Package search provides handlers for Find, Find Next, Find Previous and
// Replace.
//
// Find and Replace open their dialogs pre-filled with the selected text.
// Find Next and Find Previous repeat the last search made from the find
// dialog without reopening it; when there is none they open the dialog.
package search
