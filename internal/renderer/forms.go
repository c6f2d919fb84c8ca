package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textpad/internal/dialog"
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// fieldWidth is the minimum width of a text input.
const fieldWidth = 24

// formRow is one line of a dialog: a single control or a run of buttons.
type formRow struct {
	controls []dialog.Control
}

func formRows(f *dialog.Form) []formRow {
	var rows []formRow
	for _, c := range f.Controls() {
		if _, ok := c.(*dialog.Button); ok && len(rows) > 0 {
			last := &rows[len(rows)-1]
			if _, prev := last.controls[0].(*dialog.Button); prev {
				last.controls = append(last.controls, c)
				continue
			}
		}
		rows = append(rows, formRow{controls: []dialog.Control{c}})
	}
	return rows
}

func labelWidth(l menu.Label) int {
	return runewidth.StringWidth(l.Text)
}

func buttonWidth(b *dialog.Button) int {
	return labelWidth(b.Label) + 4
}

// formMetrics measures a dialog. fieldX is the offset of every text input
// from the left of the content so inputs line up.
func formMetrics(f *dialog.Form, rows []formRow) (inner, fieldX int) {
	for _, c := range f.Controls() {
		if fld, ok := c.(*dialog.Field); ok {
			fieldX = max(fieldX, labelWidth(fld.Label)+1)
		}
	}
	inner = runewidth.StringWidth(f.Title()) + 2
	inner = max(inner, runewidth.StringWidth(f.Note()))
	for _, row := range rows {
		w := 0
		switch c := row.controls[0].(type) {
		case *dialog.Text:
			w = runewidth.StringWidth(c.Value)
		case *dialog.Field:
			w = fieldX + max(fieldWidth, len(c.Text())+1)
		case *dialog.CheckBox:
			w = 4 + labelWidth(c.Label)
		case *dialog.RadioGroup:
			w = labelWidth(c.Label) + 1
			for _, o := range c.Options {
				w += 5 + labelWidth(o)
			}
		case *dialog.Button:
			for i, ctl := range row.controls {
				if i > 0 {
					w += 2
				}
				w += buttonWidth(ctl.(*dialog.Button))
			}
		}
		inner = max(inner, w)
	}
	return inner, fieldX
}

// formRect centers a dialog of the given content size on the screen.
func (r *Renderer) formRect(inner, rows int) backend.Rect {
	w := min(inner+4, r.width)
	h := min(rows+4, r.height)
	left := max((r.width-w)/2, 0)
	top := max((r.height-h)/2, 1)
	if top+h > r.height {
		top = max(r.height-h, 0)
	}
	return backend.NewRect(top, left, top+h, left+w)
}

// drawForm draws f and returns where the caret goes when f is topmost and
// a text input has focus.
func (r *Renderer) drawForm(f *dialog.Form, topmost bool) (cx, cy int, ok bool) {
	rows := formRows(f)
	inner, fieldX := formMetrics(f, rows)
	n := len(rows)
	if f.Note() != "" {
		n++
	}
	rect := r.formRect(inner, n)
	st := r.styles.menu
	r.drawBox(rect, st)

	title := " " + f.Title() + " "
	tx := rect.Left + max((rect.Width()-runewidth.StringWidth(title))/2, 1)
	r.drawString(tx, rect.Top, title, st.Bold(true), rect.Right-1)

	left, maxX := rect.Left+2, rect.Right-2
	focused := f.Focused()
	hot := func(c dialog.Control) tcell.Style {
		if topmost && c == focused {
			return r.styles.menuHot
		}
		return st
	}

	for i, row := range rows {
		y := rect.Top + 2 + i
		if y >= rect.Bottom-1 {
			break
		}
		switch c := row.controls[0].(type) {
		case *dialog.Text:
			r.drawString(left, y, c.Value, st, maxX)

		case *dialog.Field:
			r.drawLabel(left, y, c.Label, st, maxX)
			fx := left + fieldX
			fw := max(maxX-fx, 1)
			r.backend.Fill(backend.NewRect(y, fx, y+1, fx+fw), backend.NewStyledCell(' ', r.styles.text))
			text := []rune(c.Text())
			start := max(c.Cursor()-fw+1, 0)
			r.drawString(fx, y, string(text[start:]), r.styles.text, fx+fw)
			if topmost && c == focused {
				cx, cy, ok = fx+runewidth.StringWidth(string(text[start:c.Cursor()])), y, true
			}

		case *dialog.CheckBox:
			mark := "[ ] "
			if c.Checked {
				mark = "[x] "
			}
			x := r.drawString(left, y, mark, hot(c), maxX)
			r.drawLabel(x, y, c.Label, hot(c), maxX)

		case *dialog.RadioGroup:
			x := r.drawLabel(left, y, c.Label, st, maxX)
			x = r.drawString(x, y, ":", st, maxX)
			for j, o := range c.Options {
				mark := " ( ) "
				if j == c.Selected {
					mark = " (•) "
				}
				style := st
				if j == c.Selected {
					style = hot(c)
				}
				x = r.drawString(x, y, mark, style, maxX)
				x = r.drawLabel(x, y, o, style, maxX)
			}

		case *dialog.Button:
			total := 0
			for j, ctl := range row.controls {
				if j > 0 {
					total += 2
				}
				total += buttonWidth(ctl.(*dialog.Button))
			}
			x := left + max((maxX-left-total)/2, 0)
			for j, ctl := range row.controls {
				b := ctl.(*dialog.Button)
				if j > 0 {
					x += 2
				}
				style := hot(b)
				if b.Default {
					style = style.Bold(true)
				}
				x = r.drawString(x, y, "[ ", style, maxX)
				x = r.drawLabel(x, y, b.Label, style, maxX)
				x = r.drawString(x, y, " ]", style, maxX)
			}
		}
	}

	if note := f.Note(); note != "" {
		y := rect.Top + 2 + len(rows)
		if y < rect.Bottom-1 {
			r.drawString(left, y, note, st.Bold(true), maxX)
		}
	}
	return cx, cy, ok
}
