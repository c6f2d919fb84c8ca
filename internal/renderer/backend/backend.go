// Package backend abstracts the terminal the editor draws on.
//
// Terminal drives a real screen through tcell. NullBackend keeps an
// in-memory grid and an event queue for tests.
package backend

import "github.com/gdamore/tcell/v2"

// Backend is the drawing and input surface.
type Backend interface {
	// Init prepares the screen. It must be called before any drawing.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the screen size in cells.
	Size() (width, height int)

	// SetCell draws one cell. Out-of-range coordinates are ignored.
	SetCell(x, y int, cell Cell)

	// Fill draws cell over every position in rect.
	Fill(rect Rect, cell Cell)

	// Clear blanks the whole screen.
	Clear()

	// Show flushes pending changes.
	Show()

	// ShowCursor places the text cursor.
	ShowCursor(x, y int)

	// HideCursor hides the text cursor.
	HideCursor()

	// SetTitle sets the terminal window title where supported.
	SetTitle(title string)

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues an event for PollEvent. It never blocks.
	PostEvent(ev Event)

	// Beep sounds the terminal bell.
	Beep()
}

// Cell is one screen position.
type Cell struct {
	Rune  rune
	Combc []rune
	Style tcell.Style
}

// NewCell returns a cell with the default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Style: tcell.StyleDefault}
}

// NewStyledCell returns a cell with style.
func NewStyledCell(r rune, style tcell.Style) Cell {
	return Cell{Rune: r, Style: style}
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return NewCell(' ')
}

// Equals compares two cells.
func (c Cell) Equals(other Cell) bool {
	if c.Rune != other.Rune || c.Style != other.Style || len(c.Combc) != len(other.Combc) {
		return false
	}
	for i := range c.Combc {
		if c.Combc[i] != other.Combc[i] {
			return false
		}
	}
	return true
}

// Rect is a screen rectangle; Bottom and Right are exclusive.
type Rect struct {
	Top, Left, Bottom, Right int
}

// NewRect creates a rect from its edges.
func NewRect(top, left, bottom, right int) Rect {
	return Rect{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Width returns the rect width.
func (r Rect) Width() int {
	return max(r.Right-r.Left, 0)
}

// Height returns the rect height.
func (r Rect) Height() int {
	return max(r.Bottom-r.Top, 0)
}

// IsEmpty returns true if the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
