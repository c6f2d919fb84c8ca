package renderer

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// Box drawing runes.
const (
	boxH  = '─'
	boxV  = '│'
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
	boxLT = '├'
	boxRT = '┤'

	checkMark = '✓'
)

// statusSeparator goes between status bar segments.
const statusSeparator = " │ "

// drawString draws s from column x and returns the column after it. Text
// that would cross maxX is cut.
func (r *Renderer) drawString(x, y int, s string, style tcell.Style, maxX int) int {
	for _, c := range s {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		r.backend.SetCell(x, y, backend.NewStyledCell(c, style))
		x += w
	}
	return x
}

// drawLabel draws a label with its mnemonic underlined.
func (r *Renderer) drawLabel(x, y int, l menu.Label, style tcell.Style, maxX int) int {
	i := 0
	for _, c := range l.Text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			i++
			continue
		}
		if x+w > maxX {
			break
		}
		st := style
		if i == l.Index {
			st = style.Underline(true)
		}
		r.backend.SetCell(x, y, backend.NewStyledCell(c, st))
		x += w
		i++
	}
	return x
}

func (r *Renderer) hline(x, y, n int, style tcell.Style) {
	for i := 0; i < n; i++ {
		r.backend.SetCell(x+i, y, backend.NewStyledCell(boxH, style))
	}
}

// drawBox fills rect and draws a single-line border around it.
func (r *Renderer) drawBox(rect backend.Rect, style tcell.Style) {
	if rect.Width() < 2 || rect.Height() < 2 {
		return
	}
	r.backend.Fill(rect, backend.NewStyledCell(' ', style))
	right, bottom := rect.Right-1, rect.Bottom-1
	r.hline(rect.Left+1, rect.Top, rect.Width()-2, style)
	r.hline(rect.Left+1, bottom, rect.Width()-2, style)
	for y := rect.Top + 1; y < bottom; y++ {
		r.backend.SetCell(rect.Left, y, backend.NewStyledCell(boxV, style))
		r.backend.SetCell(right, y, backend.NewStyledCell(boxV, style))
	}
	r.backend.SetCell(rect.Left, rect.Top, backend.NewStyledCell(boxTL, style))
	r.backend.SetCell(right, rect.Top, backend.NewStyledCell(boxTR, style))
	r.backend.SetCell(rect.Left, bottom, backend.NewStyledCell(boxBL, style))
	r.backend.SetCell(right, bottom, backend.NewStyledCell(boxBR, style))
}

// drawMenuBar draws the titles on row 0.
func (r *Renderer) drawMenuBar(nav *menu.Navigator) {
	r.backend.Fill(backend.NewRect(0, 0, 1, r.width), backend.NewStyledCell(' ', r.styles.menu))
	bar := nav.Bar()
	for i, span := range menu.TitleSpans(bar) {
		style := r.styles.menu
		if i == nav.Active() {
			style = r.styles.menuHot
		}
		end := min(span.X+span.Width, r.width)
		x := r.drawString(span.X, 0, " ", style, end)
		x = r.drawLabel(x, 0, bar.Menus[i].Label, style, end)
		r.drawString(x, 0, " ", style, end)
	}
}

// drawDropdowns draws every open panel, outermost first.
func (r *Renderer) drawDropdowns(nav *menu.Navigator, enabled menu.EnabledFunc) {
	for _, d := range nav.Dropdowns() {
		rect := d.Rect
		r.drawBox(rect, r.styles.menu)
		inner := rect.Width() - 2
		for i, it := range d.Items {
			y := d.Row(i)
			if it.Kind == menu.KindSeparator {
				r.backend.SetCell(rect.Left, y, backend.NewStyledCell(boxLT, r.styles.menu))
				r.hline(rect.Left+1, y, inner, r.styles.menu)
				r.backend.SetCell(rect.Right-1, y, backend.NewStyledCell(boxRT, r.styles.menu))
				continue
			}

			style := r.styles.menu
			if it.Kind == menu.KindAction && !isEnabled(enabled, it.Command) {
				style = r.styles.disabled
			}
			if i == d.Selected {
				style = r.styles.menuHot
			}
			r.backend.Fill(backend.NewRect(y, rect.Left+1, y+1, rect.Right-1), backend.NewStyledCell(' ', style))
			if it.Checkable && it.Checked {
				r.backend.SetCell(rect.Left+1, y, backend.NewStyledCell(checkMark, style))
			}
			r.drawLabel(rect.Left+3, y, it.Label, style, rect.Right-2)

			right := ""
			switch {
			case it.Kind == menu.KindSubmenu:
				right = menu.SubmenuArrow
			case !it.Shortcut.IsZero():
				right = it.Shortcut.String()
			}
			if right != "" {
				r.drawString(rect.Right-2-runewidth.StringWidth(right), y, right, style, rect.Right-2)
			}
		}
	}
}

func isEnabled(enabled menu.EnabledFunc, cmd dispatcher.CommandID) bool {
	return enabled == nil || enabled(cmd)
}

// drawStatus draws the bottom row: a message on the left and the status
// segments on the right.
func (r *Renderer) drawStatus(f Frame) {
	y := r.height - 1
	if y < 0 {
		return
	}
	r.backend.Fill(backend.NewRect(y, 0, y+1, r.width), backend.NewStyledCell(' ', r.styles.menu))

	right := strings.Join(f.Status.Segments(), statusSeparator) + " "
	rx := max(r.width-runewidth.StringWidth(right), 0)
	r.drawString(rx, y, right, r.styles.menu, r.width)

	msg := f.Message
	if f.Menu != nil {
		if it := f.Menu.Highlighted(); it != nil && it.StatusTip != "" {
			msg = it.StatusTip
		}
	}
	if msg != "" {
		r.drawString(1, y, msg, r.styles.menu, max(rx-1, 1))
	}
}
