package find

// Direction is the scan orientation of a search.
type Direction uint8

const (
	// Forward scans toward the document end.
	Forward Direction = iota
	// Backward scans toward the document start.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// SearchOptions describes one find or replace request.
// Callers build a fresh value from the dialog state for every request.
type SearchOptions struct {
	Query         string
	CaseSensitive bool
	Direction     Direction
	WrapAround    bool
}

// IsEmpty returns true if there is nothing to search for.
func (o SearchOptions) IsEmpty() bool {
	return o.Query == ""
}
