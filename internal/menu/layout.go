package menu

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textpad/internal/renderer/backend"
)

// barLeft is the column of the first title on the menu bar row.
const barLeft = 1

// SubmenuArrow marks items that open a submenu.
const SubmenuArrow = "▸"

// Span is the horizontal extent of a title on the bar row.
type Span struct {
	X, Width int
}

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.X && x < s.X+s.Width
}

// TitleSpans returns where each top-level title is drawn. Titles are padded
// with one blank on either side.
func TitleSpans(b *Bar) []Span {
	spans := make([]Span, len(b.Menus))
	x := barLeft
	for i, m := range b.Menus {
		w := runewidth.StringWidth(m.Label.Text) + 2
		spans[i] = Span{X: x, Width: w}
		x += w
	}
	return spans
}

// Dropdown is one open menu panel.
type Dropdown struct {
	Items    []*Item
	Rect     backend.Rect
	Selected int

	// TextWidth is the widest label; RightWidth the widest shortcut or arrow.
	TextWidth, RightWidth int
}

// Row returns the screen row of item i.
func (d Dropdown) Row(i int) int {
	return d.Rect.Top + 1 + i
}

// ItemAt returns the index of the item drawn at row y, or -1.
func (d Dropdown) ItemAt(x, y int) int {
	if !d.Rect.Contains(x, y) {
		return -1
	}
	i := y - d.Rect.Top - 1
	if i < 0 || i >= len(d.Items) {
		return -1
	}
	return i
}

// newDropdown sizes a panel for items with its top-left corner at
// (left, top), shifted left when it would overflow screenWidth.
func newDropdown(items []*Item, left, top, screenWidth int) Dropdown {
	d := Dropdown{Items: items}
	for _, it := range items {
		d.TextWidth = max(d.TextWidth, runewidth.StringWidth(it.Label.Text))
		switch {
		case it.Kind == KindSubmenu:
			d.RightWidth = max(d.RightWidth, runewidth.StringWidth(SubmenuArrow))
		case !it.Shortcut.IsZero():
			d.RightWidth = max(d.RightWidth, runewidth.StringWidth(it.Shortcut.String()))
		}
	}

	// border, check column, text, gap, shortcut, pad, border
	width := 1 + 2 + d.TextWidth + 3 + d.RightWidth + 1 + 1
	if screenWidth > 0 && left+width > screenWidth {
		left = max(screenWidth-width, 0)
	}
	d.Rect = backend.NewRect(top, left, top+len(items)+2, left+width)
	return d
}
