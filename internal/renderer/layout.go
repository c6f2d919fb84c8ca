package renderer

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// glyph is one drawn character of a line.
type glyph struct {
	Rune  rune
	Combc []rune
	Width int

	// X is the visual column from the start of the line.
	X int

	// Col is the byte column of the character in the line.
	Col uint32
}

// lineLayout is the visual form of one document line.
type lineLayout struct {
	Glyphs []glyph

	// Rows holds the glyph index each visual row starts at. It always has
	// at least one entry.
	Rows []int

	// Width is the total visual width.
	Width int

	// Len is the byte length of the line.
	Len uint32
}

// layoutLine expands tabs, measures wide characters and folds combining
// marks into their base. When wrap is positive the line is broken into rows
// no wider than wrap, preferring to break after a space.
func layoutLine(text string, tabWidth, wrap int) *lineLayout {
	if tabWidth < 1 {
		tabWidth = 1
	}
	l := &lineLayout{Rows: []int{0}, Len: uint32(len(text))}
	x := 0
	for i, r := range text {
		w := runewidth.RuneWidth(r)
		switch {
		case r == '\t':
			r, w = ' ', tabWidth-x%tabWidth
		case w == 0 && len(l.Glyphs) > 0 && unicode.In(r, unicode.Mn, unicode.Me):
			g := &l.Glyphs[len(l.Glyphs)-1]
			g.Combc = append(g.Combc, r)
			continue
		case w == 0:
			r, w = ' ', 1
		}

		if wrap > 0 {
			l.wrapBefore(x, w, wrap)
		}
		l.Glyphs = append(l.Glyphs, glyph{Rune: r, Width: w, X: x, Col: uint32(i)})
		x += w
	}
	l.Width = x
	return l
}

// wrapBefore starts a new row when a glyph of width w at column x would
// not fit in the current one.
func (l *lineLayout) wrapBefore(x, w, wrap int) {
	start := l.Rows[len(l.Rows)-1]
	if start >= len(l.Glyphs) || x+w-l.rowX(len(l.Rows)-1) <= wrap {
		return
	}
	brk := len(l.Glyphs)
	for i := len(l.Glyphs) - 1; i > start; i-- {
		if l.Glyphs[i-1].Rune == ' ' {
			brk = i
			break
		}
	}
	l.Rows = append(l.Rows, brk)
	// A word longer than the rest of the row may still not fit.
	if brk < len(l.Glyphs) && x+w-l.rowX(len(l.Rows)-1) > wrap {
		l.Rows[len(l.Rows)-1] = len(l.Glyphs)
	}
}

// RowCount returns the number of visual rows.
func (l *lineLayout) RowCount() int {
	return len(l.Rows)
}

// rowX returns the visual column row starts at.
func (l *lineLayout) rowX(row int) int {
	i := l.Rows[row]
	if i >= len(l.Glyphs) {
		return l.Width
	}
	return l.Glyphs[i].X
}

// RowGlyphs returns the glyphs of row.
func (l *lineLayout) RowGlyphs(row int) []glyph {
	start := l.Rows[row]
	end := len(l.Glyphs)
	if row+1 < len(l.Rows) {
		end = l.Rows[row+1]
	}
	return l.Glyphs[start:end]
}

// Locate returns the row and the column within that row of byte column col.
func (l *lineLayout) Locate(col uint32) (row, x int) {
	idx := len(l.Glyphs)
	vx := l.Width
	for i, g := range l.Glyphs {
		if g.Col >= col {
			idx, vx = i, g.X
			break
		}
	}
	for row = len(l.Rows) - 1; row > 0 && l.Rows[row] > idx; row-- {
	}
	return row, vx - l.rowX(row)
}

// ColumnAt returns the byte column drawn at visual column x of row. Points
// past the end of a row map to the end of the row.
func (l *lineLayout) ColumnAt(row, x int) uint32 {
	glyphs := l.RowGlyphs(row)
	base := l.rowX(row)
	for _, g := range glyphs {
		if x < g.X-base+g.Width {
			return g.Col
		}
	}
	if row+1 < len(l.Rows) && l.Rows[row+1] < len(l.Glyphs) {
		return l.Glyphs[l.Rows[row+1]].Col
	}
	return l.Len
}
