// Package find implements find and replace over a live text buffer.
//
// The algorithms only talk to the document through the TextBuffer interface,
// so they run the same against the editor engine and against a test fake.
// Searches are relative to the buffer's cursor: a forward search starts at
// the end of the current selection and a backward search looks for the last
// match ending at or before its start.
//
// FindNext scans at most twice. When the first scan fails and wrap-around is
// enabled, the cursor moves to the document boundary for the search direction
// and the scan is retried once.
//
//	opts := find.SearchOptions{Query: "foo", Direction: find.Forward, WrapAround: true}
//	if !find.FindNext(buf, opts) {
//	    notifier.NotFound(opts.Query)
//	}
//
// ReplaceAll always scans forward from the document start and leaves the
// cursor after each inserted replacement, so it terminates even when the
// replacement contains the query.
//
// An empty query never matches. No outcome of a search is an error; errors
// are returned only when the buffer refuses an edit.
package find
