package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEngine indicates the engine is required but not set.
	ErrMissingEngine = errors.New("execution context: engine is required")

	// ErrMissingDocument indicates the document is required but not set.
	ErrMissingDocument = errors.New("execution context: document is required")

	// ErrMissingUI indicates the UI is required but not set.
	ErrMissingUI = errors.New("execution context: ui is required")

	// ErrMissingClipboard indicates the clipboard is required but not set.
	ErrMissingClipboard = errors.New("execution context: clipboard is required")

	// ErrMissingView indicates the view is required but not set.
	ErrMissingView = errors.New("execution context: view is required")
)
