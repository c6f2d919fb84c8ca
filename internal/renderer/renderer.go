package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/dialog"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer/backend"
	"github.com/dshills/textpad/internal/statusbar"
)

// Document is the text shown in the text area.
type Document interface {
	LineCount() uint32
	LineText(line uint32) (string, error)
	Selection() engine.Selection
	OffsetToPoint(offset engine.ByteOffset) engine.Point
	PointToOffset(p engine.Point) engine.ByteOffset
	TabWidth() int
}

// Options configures the renderer.
type Options struct {
	// WordWrap folds long lines at the window edge.
	WordWrap bool

	// ScrollMarginX is how many extra columns a horizontal scroll reveals.
	ScrollMarginX int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		WordWrap:      false,
		ScrollMarginX: 10,
	}
}

// Frame is everything drawn in one pass.
type Frame struct {
	// Title is the window title.
	Title string

	Doc Document

	// Menu is the menu bar state. Nil hides the bar.
	Menu *menu.Navigator

	// Enabled greys out menu items. Nil enables everything.
	Enabled menu.EnabledFunc

	// Dialogs are the open forms, bottom first.
	Dialogs []*dialog.Form

	// Status is the status bar. A nil or hidden model gives its row to the
	// text area.
	Status *statusbar.Model

	// Message is a transient status bar message.
	Message string
}

// Renderer draws frames on a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	opts    Options
	styles  styles
	view    *View

	width, height int
	title         string

	// The view follows the cursor only when it moved or on request, so a
	// wheel scroll survives the next frame.
	lastHead engine.ByteOffset
	follow   bool
}

// New creates a renderer drawing on b.
func New(b backend.Backend, palette config.Palette, opts Options) *Renderer {
	w, h := b.Size()
	r := &Renderer{
		backend: b,
		opts:    opts,
		width:   w,
		height:  h,
		follow:  true,
	}
	r.view = NewView(backend.NewRect(1, 0, max(h-1, 1), w), opts.WordWrap, opts.ScrollMarginX)
	r.SetPalette(palette)
	return r
}

// PageRows returns the height of the text area in the last frame.
func (r *Renderer) PageRows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return max(r.view.Height(), 1)
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// SetOptions updates the options.
func (r *Renderer) SetOptions(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if opts.WordWrap != r.opts.WordWrap {
		r.view.SetWrap(opts.WordWrap)
		r.follow = true
	}
	r.view.marginX = max(opts.ScrollMarginX, 0)
	r.opts = opts
}

// SetPalette changes the colors.
func (r *Renderer) SetPalette(p config.Palette) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles = newStyles(p)
}

// Resize records a new screen size.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.follow = true
}

// RevealCursor scrolls the cursor into view on the next frame.
func (r *Renderer) RevealCursor() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follow = true
}

// ScrollBy scrolls the text area n rows without moving the cursor.
func (r *Renderer) ScrollBy(f Frame, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.Doc == nil {
		return
	}
	r.layout(f)
	r.view.ScrollBy(f.Doc, n)
}

// OffsetAt returns the document offset under screen cell (x, y) as laid
// out by the last frame.
func (r *Renderer) OffsetAt(doc Document, x, y int) (engine.ByteOffset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view.OffsetAt(doc, x, y)
}

// Size returns the screen size.
func (r *Renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *Renderer) layout(f Frame) {
	top, bottom := 0, r.height
	if f.Menu != nil {
		top = 1
	}
	if f.Status != nil && f.Status.Visible() {
		bottom--
	}
	r.view.SetArea(backend.NewRect(top, 0, max(bottom, top), r.width))
	if f.Menu != nil {
		f.Menu.SetWidth(r.width)
	}
}

// Render draws f and shows it.
func (r *Renderer) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.layout(f)
	if f.Title != r.title {
		r.title = f.Title
		r.backend.SetTitle(f.Title)
	}

	r.backend.Fill(backend.NewRect(0, 0, r.height, r.width), backend.NewStyledCell(' ', r.styles.text))
	if f.Doc != nil {
		if head := f.Doc.Selection().Head; r.follow || head != r.lastHead {
			r.view.ScrollToCursor(f.Doc)
			r.lastHead = head
			r.follow = false
		}
		r.drawText(f.Doc)
	}
	if f.Status != nil && f.Status.Visible() {
		r.drawStatus(f)
	}
	if f.Menu != nil {
		r.drawMenuBar(f.Menu)
		r.drawDropdowns(f.Menu, f.Enabled)
	}

	cursorShown := false
	for i, form := range f.Dialogs {
		if form.Closed() {
			continue
		}
		if x, y, ok := r.drawForm(form, i == len(f.Dialogs)-1); ok {
			r.backend.ShowCursor(x, y)
			cursorShown = true
		}
	}
	switch {
	case len(f.Dialogs) > 0 || (f.Menu != nil && f.Menu.IsOpen()):
		if !cursorShown {
			r.backend.HideCursor()
		}
	case f.Doc != nil:
		if x, y, ok := r.view.CursorPosition(f.Doc); ok {
			r.backend.ShowCursor(x, y)
		} else {
			r.backend.HideCursor()
		}
	default:
		r.backend.HideCursor()
	}
	r.backend.Show()
}

// drawText paints the visible rows with the selection highlighted.
func (r *Renderer) drawText(doc Document) {
	v := r.view
	sel := doc.Selection()
	selStart, selEnd := sel.Start(), sel.End()
	lastLine := doc.LineCount() - 1
	right := v.area.Right

	for _, vr := range v.rows(doc) {
		lineStart := doc.PointToOffset(engine.Point{Line: vr.Line})
		base := vr.Layout.rowX(vr.Row)
		if !v.wrap {
			base = v.left
		}
		for _, g := range vr.Layout.RowGlyphs(vr.Row) {
			x := v.area.Left + g.X - base
			style := r.styles.text
			if off := lineStart + engine.ByteOffset(g.Col); off >= selStart && off < selEnd {
				style = r.styles.selection
			}
			if g.Rune == ' ' {
				for i := 0; i < g.Width; i++ {
					if x+i >= v.area.Left && x+i < right {
						r.backend.SetCell(x+i, vr.Y, backend.Cell{Rune: ' ', Style: style})
					}
				}
				continue
			}
			// Wide characters cut by an edge are left out.
			if x >= v.area.Left && x+g.Width <= right {
				r.backend.SetCell(x, vr.Y, backend.Cell{Rune: g.Rune, Combc: g.Combc, Style: style})
			}
		}

		// Mark a selected line break with one highlighted cell.
		lastRow := vr.Row == vr.Layout.RowCount()-1
		lineEnd := lineStart + engine.ByteOffset(vr.Layout.Len)
		if lastRow && vr.Line < lastLine && lineEnd >= selStart && lineEnd < selEnd {
			x := v.area.Left + vr.Layout.Width - base
			if x >= v.area.Left && x < right {
				r.backend.SetCell(x, vr.Y, backend.Cell{Rune: ' ', Style: r.styles.selection})
			}
		}
	}
}

// styles are the palette turned into cell styles.
type styles struct {
	text      tcell.Style
	selection tcell.Style
	menu      tcell.Style
	menuHot   tcell.Style
	disabled  tcell.Style
}

func newStyles(p config.Palette) styles {
	menuStyle := tcell.StyleDefault.Foreground(p.MenuFG).Background(p.MenuBG)
	selStyle := tcell.StyleDefault.Foreground(p.SelectionFG).Background(p.SelectionBG)
	return styles{
		text:      tcell.StyleDefault.Foreground(p.Foreground).Background(p.Background),
		selection: selStyle,
		menu:      menuStyle,
		menuHot:   selStyle,
		disabled:  menuStyle.Foreground(p.MenuDisabled),
	}
}
