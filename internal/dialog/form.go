package dialog

import (
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// Control is one widget on a form.
type Control interface {
	// CanFocus reports whether the control takes keyboard focus.
	CanFocus() bool

	// HandleEvent processes a key while the control has focus.
	HandleEvent(ev backend.Event) bool
}

// Form is a modal window made of a column of controls. Consecutive buttons
// are drawn on one row.
type Form struct {
	title    string
	controls []Control
	focus    int
	closed   bool
	note     string
	onClose  []func()
}

// NewForm creates a form and focuses its first focusable control.
func NewForm(title string, controls ...Control) *Form {
	f := &Form{title: title, controls: controls, focus: -1}
	f.focusNext(1)
	return f
}

// Title returns the window title.
func (f *Form) Title() string {
	return f.title
}

// Controls returns the controls in layout order.
func (f *Form) Controls() []Control {
	return f.controls
}

// Focused returns the focused control, or nil.
func (f *Form) Focused() Control {
	if f.focus < 0 || f.focus >= len(f.controls) {
		return nil
	}
	return f.controls[f.focus]
}

// SetFocus moves focus to c when it belongs to the form.
func (f *Form) SetFocus(c Control) {
	for i, ctl := range f.controls {
		if ctl == c && c.CanFocus() {
			f.focus = i
			return
		}
	}
}

// Note returns the inline message shown under the controls.
func (f *Form) Note() string {
	return f.note
}

// SetNote sets the inline message. An empty string hides it.
func (f *Form) SetNote(note string) {
	f.note = note
}

// OnClose registers fn to run every time the form closes.
func (f *Form) OnClose(fn func()) {
	f.onClose = append(f.onClose, fn)
}

// Reopen marks a closed form as open again.
func (f *Form) Reopen() {
	f.closed = false
	f.note = ""
}

// Close hides the form and runs the close callbacks.
func (f *Form) Close() {
	if f.closed {
		return
	}
	f.closed = true
	for _, fn := range f.onClose {
		fn()
	}
}

// Closed returns true once the form has been closed.
func (f *Form) Closed() bool {
	return f.closed
}

// HandleEvent routes a key to the form. Escape closes, Tab cycles focus,
// Enter presses the focused or default button, Alt+letter fires a mnemonic.
func (f *Form) HandleEvent(ev backend.Event) bool {
	if ev.Type != backend.EventKey || f.closed {
		return false
	}

	switch ev.Key {
	case backend.KeyEscape:
		f.Close()
		return true
	case backend.KeyTab:
		f.focusNext(1)
		return true
	case backend.KeyBacktab:
		f.focusNext(-1)
		return true
	case backend.KeyEnter:
		if b, ok := f.Focused().(*Button); ok {
			b.Press()
		} else if b := f.defaultButton(); b != nil {
			b.Press()
		}
		return true
	}

	if ev.Key == backend.KeyRune && ev.Mod.Has(backend.ModAlt) {
		return f.mnemonic(ev.Rune)
	}
	if c := f.Focused(); c != nil && c.HandleEvent(ev) {
		return true
	}
	// Plain letters act as mnemonics when focus is not on a text field.
	if _, typing := f.Focused().(*Field); !typing && ev.IsRune() {
		return f.mnemonic(ev.Rune)
	}
	return true
}

func (f *Form) mnemonic(r rune) bool {
	for _, c := range f.controls {
		if !labelOf(c).Matches(r) {
			continue
		}
		switch c := c.(type) {
		case *Button:
			f.SetFocus(c)
			c.Press()
		case *CheckBox:
			f.SetFocus(c)
			c.Toggle()
		case *Field:
			f.SetFocus(c)
		case *RadioGroup:
			f.SetFocus(c)
		}
		return true
	}
	for _, c := range f.controls {
		if g, ok := c.(*RadioGroup); ok && g.selectMnemonic(r) {
			f.SetFocus(g)
			return true
		}
	}
	return false
}

func (f *Form) defaultButton() *Button {
	for _, c := range f.controls {
		if b, ok := c.(*Button); ok && b.Default {
			return b
		}
	}
	return nil
}

func (f *Form) focusNext(dir int) {
	n := len(f.controls)
	if n == 0 {
		return
	}
	i := f.focus
	for _i := 0; _i < n; _i++ {
		i = ((i+dir)%n + n) % n
		if f.controls[i].CanFocus() {
			f.focus = i
			return
		}
	}
}

func labelOf(c Control) menu.Label {
	switch c := c.(type) {
	case *Button:
		return c.Label
	case *CheckBox:
		return c.Label
	case *Field:
		return c.Label
	case *RadioGroup:
		return c.Label
	}
	return menu.Label{Index: -1}
}
