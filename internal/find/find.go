package find

// FindNext selects the next occurrence of opts.Query in opts.Direction.
//
// If the first scan fails and opts.WrapAround is set, the cursor moves to the
// document start (Forward) or end (Backward) and the scan is retried once.
// When that retry fails too the cursor stays at the boundary. Without
// wrap-around a failed search leaves the selection unchanged.
//
// An empty query returns false without touching the buffer.
func FindNext(buf TextBuffer, opts SearchOptions) bool {
	if opts.IsEmpty() {
		return false
	}

	if buf.FindFromCursor(opts.Query, opts.CaseSensitive, opts.Direction) {
		return true
	}
	if !opts.WrapAround {
		return false
	}

	if opts.Direction == Backward {
		buf.MoveCursorToEnd()
	} else {
		buf.MoveCursorToStart()
	}
	return buf.FindFromCursor(opts.Query, opts.CaseSensitive, opts.Direction)
}

// FindOrNotify runs FindNext and reports a miss to n.
// An empty query is a miss that nobody is told about.
func FindOrNotify(buf TextBuffer, opts SearchOptions, n Notifier) bool {
	if FindNext(buf, opts) {
		return true
	}
	if !opts.IsEmpty() && n != nil {
		n.NotFound(opts.Query)
	}
	return false
}
