// Package statusbar holds the status bar model: cursor position, zoom,
// line separator and encoding, each validated when set.
//
// Columns count grapheme clusters, so "é" written as e plus a combining
// accent is one column.
package statusbar
