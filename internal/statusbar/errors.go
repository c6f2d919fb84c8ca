package statusbar

import "errors"

// Status bar validation errors.
var (
	// ErrInvalidPosition indicates a line or column below 1.
	ErrInvalidPosition = errors.New("statusbar: invalid position")

	// ErrZoomOutOfRange indicates a zoom level outside the configured bounds.
	ErrZoomOutOfRange = errors.New("statusbar: zoom out of range")

	// ErrUnknownLineEnding indicates an unrecognised line separator.
	ErrUnknownLineEnding = errors.New("statusbar: unknown line separator")

	// ErrUnknownEncoding indicates an unrecognised encoding name.
	ErrUnknownEncoding = errors.New("statusbar: unknown encoding")

	// ErrInvalidZoomBounds indicates min > max or a non-positive step.
	ErrInvalidZoomBounds = errors.New("statusbar: invalid zoom bounds")
)
