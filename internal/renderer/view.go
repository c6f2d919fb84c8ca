package renderer

import (
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// View is the text area. It owns the scroll position and maps between
// document positions and screen cells.
type View struct {
	area backend.Rect
	wrap bool

	// marginX is how far past the cursor a horizontal scroll jumps.
	marginX int

	topLine uint32
	topRow  int
	left    int
}

// NewView creates a view over area.
func NewView(area backend.Rect, wrap bool, marginX int) *View {
	return &View{area: area, wrap: wrap, marginX: max(marginX, 0)}
}

// Area returns the screen region of the view.
func (v *View) Area() backend.Rect {
	return v.area
}

// SetArea moves or resizes the view.
func (v *View) SetArea(area backend.Rect) {
	if area.Width() != v.area.Width() {
		v.topRow = 0
	}
	v.area = area
}

// Wrap returns true if long lines wrap.
func (v *View) Wrap() bool {
	return v.wrap
}

// SetWrap toggles wrapping. Horizontal scroll is reset either way.
func (v *View) SetWrap(wrap bool) {
	v.wrap = wrap
	v.left = 0
	v.topRow = 0
}

// Height returns the number of visible rows.
func (v *View) Height() int {
	return v.area.Height()
}

// TopLine returns the first visible document line.
func (v *View) TopLine() uint32 {
	return v.topLine
}

// Left returns the first visible column when wrapping is off.
func (v *View) Left() int {
	return v.left
}

func (v *View) layout(doc Document, line uint32) *lineLayout {
	text, err := doc.LineText(line)
	if err != nil {
		text = ""
	}
	wrap := 0
	if v.wrap {
		wrap = max(v.area.Width(), 1)
	}
	return layoutLine(text, doc.TabWidth(), wrap)
}

func (v *View) clampTop(doc Document) {
	if n := doc.LineCount(); n > 0 && v.topLine >= n {
		v.topLine = n - 1
		v.topRow = 0
	}
	if v.topRow > 0 && v.topRow >= v.layout(doc, v.topLine).RowCount() {
		v.topRow = 0
	}
}

// cursor returns the cursor line and the visual row and column of the
// cursor within that line.
func (v *View) cursor(doc Document) (line uint32, row, x int) {
	p := doc.OffsetToPoint(doc.Selection().Head)
	row, x = v.layout(doc, p.Line).Locate(p.Column)
	return p.Line, row, x
}

// ScrollToCursor adjusts the scroll position so the cursor is visible.
func (v *View) ScrollToCursor(doc Document) {
	v.clampTop(doc)
	h := v.Height()
	if h <= 0 {
		return
	}
	line, row, x := v.cursor(doc)

	if !v.wrap {
		switch {
		case line < v.topLine:
			v.topLine = line
		case line >= v.topLine+uint32(h):
			v.topLine = line - uint32(h) + 1
		}
		w := v.area.Width()
		margin := min(v.marginX, max(w-1, 0))
		switch {
		case x < v.left:
			v.left = max(x-margin, 0)
		case x >= v.left+w:
			v.left = x - w + 1 + margin
		}
		return
	}

	if line < v.topLine || (line == v.topLine && row < v.topRow) {
		v.topLine, v.topRow = line, row
		return
	}
	// Count rows from the top down to the cursor row.
	rows := 0
	for l := v.topLine; l < line && rows < h; l++ {
		n := v.layout(doc, l).RowCount()
		if l == v.topLine {
			n -= v.topRow
		}
		rows += n
	}
	if line == v.topLine {
		rows = row - v.topRow
	} else {
		rows += row
	}
	if rows < h {
		return
	}
	// Walk back h-1 rows from the cursor row.
	v.topLine, v.topRow = line, row
	remaining := h - 1
	for remaining > 0 {
		if v.topRow >= remaining {
			v.topRow -= remaining
			break
		}
		remaining -= v.topRow
		if v.topLine == 0 {
			v.topRow = 0
			break
		}
		v.topLine--
		v.topRow = v.layout(doc, v.topLine).RowCount() - 1
		remaining--
	}
}

// ScrollBy moves the view n rows down, or up when n is negative, without
// moving the cursor.
func (v *View) ScrollBy(doc Document, n int) {
	v.clampTop(doc)
	last := doc.LineCount()
	if last == 0 {
		return
	}
	last--
	for ; n > 0; n-- {
		if v.wrap && v.topRow+1 < v.layout(doc, v.topLine).RowCount() {
			v.topRow++
			continue
		}
		if v.topLine >= last {
			break
		}
		v.topLine++
		v.topRow = 0
	}
	for ; n < 0; n++ {
		if v.wrap && v.topRow > 0 {
			v.topRow--
			continue
		}
		if v.topLine == 0 {
			break
		}
		v.topLine--
		v.topRow = 0
		if v.wrap {
			v.topRow = v.layout(doc, v.topLine).RowCount() - 1
		}
	}
}

// visualRow is one visible row of the text area.
type visualRow struct {
	Y      int
	Line   uint32
	Layout *lineLayout
	Row    int
}

// rows returns the visible rows top to bottom.
func (v *View) rows(doc Document) []visualRow {
	v.clampTop(doc)
	h := v.Height()
	out := make([]visualRow, 0, h)
	n := doc.LineCount()
	row := v.topRow
	for line := v.topLine; line < n && len(out) < h; line++ {
		lay := v.layout(doc, line)
		for ; row < lay.RowCount() && len(out) < h; row++ {
			out = append(out, visualRow{Y: v.area.Top + len(out), Line: line, Layout: lay, Row: row})
		}
		row = 0
	}
	return out
}

// CursorPosition returns the screen cell of the cursor and whether it is
// inside the view.
func (v *View) CursorPosition(doc Document) (x, y int, ok bool) {
	line, row, cx := v.cursor(doc)
	for _, vr := range v.rows(doc) {
		if vr.Line != line || vr.Row != row {
			continue
		}
		if !v.wrap {
			cx -= v.left
		}
		if cx < 0 || cx > v.area.Width() {
			return 0, 0, false
		}
		return v.area.Left + min(cx, v.area.Width()-1), vr.Y, true
	}
	return 0, 0, false
}

// OffsetAt returns the document offset under screen cell (x, y). Clicks
// below the last line land on the end of the document.
func (v *View) OffsetAt(doc Document, x, y int) (engine.ByteOffset, bool) {
	if !v.area.Contains(x, y) {
		return 0, false
	}
	rows := v.rows(doc)
	if len(rows) == 0 {
		return 0, true
	}
	col := x - v.area.Left
	if !v.wrap {
		col += v.left
	}
	for _, vr := range rows {
		if vr.Y == y {
			c := vr.Layout.ColumnAt(vr.Row, col)
			return doc.PointToOffset(engine.Point{Line: vr.Line, Column: c}), true
		}
	}
	last := rows[len(rows)-1]
	return doc.PointToOffset(engine.Point{Line: last.Line, Column: last.Layout.Len}), true
}
