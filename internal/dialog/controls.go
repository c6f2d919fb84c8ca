package dialog

import (
	"unicode"

	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// Text is a static line of text.
type Text struct {
	Value string
}

// NewText creates a static text line.
func NewText(value string) *Text {
	return &Text{Value: value}
}

func (t *Text) CanFocus() bool                 { return false }
func (t *Text) HandleEvent(backend.Event) bool { return false }

// Field is a single-line text input.
type Field struct {
	Label menu.Label
	value []rune
	pos   int
}

// NewField creates an empty input labelled label.
func NewField(label string) *Field {
	return &Field{Label: menu.ParseLabel(label)}
}

// Text returns the current input.
func (f *Field) Text() string {
	return string(f.value)
}

// SetText replaces the input and puts the caret at the end.
func (f *Field) SetText(s string) {
	f.value = []rune(s)
	f.pos = len(f.value)
}

// Cursor returns the caret position in runes.
func (f *Field) Cursor() int {
	return f.pos
}

func (f *Field) CanFocus() bool { return true }

func (f *Field) HandleEvent(ev backend.Event) bool {
	switch ev.Key {
	case backend.KeyRune:
		if !ev.IsRune() || !unicode.IsPrint(ev.Rune) {
			return false
		}
		f.value = append(f.value[:f.pos], append([]rune{ev.Rune}, f.value[f.pos:]...)...)
		f.pos++
	case backend.KeyBackspace:
		if f.pos > 0 {
			f.value = append(f.value[:f.pos-1], f.value[f.pos:]...)
			f.pos--
		}
	case backend.KeyDelete:
		if f.pos < len(f.value) {
			f.value = append(f.value[:f.pos], f.value[f.pos+1:]...)
		}
	case backend.KeyLeft:
		f.pos = max(f.pos-1, 0)
	case backend.KeyRight:
		f.pos = min(f.pos+1, len(f.value))
	case backend.KeyHome:
		f.pos = 0
	case backend.KeyEnd:
		f.pos = len(f.value)
	default:
		return false
	}
	return true
}

// CheckBox is a labelled toggle.
type CheckBox struct {
	Label   menu.Label
	Checked bool
}

// NewCheckBox creates an unchecked box.
func NewCheckBox(label string) *CheckBox {
	return &CheckBox{Label: menu.ParseLabel(label)}
}

// Toggle flips the check mark.
func (c *CheckBox) Toggle() {
	c.Checked = !c.Checked
}

func (c *CheckBox) CanFocus() bool { return true }

func (c *CheckBox) HandleEvent(ev backend.Event) bool {
	if ev.Key == backend.KeyRune && ev.Rune == ' ' {
		c.Toggle()
		return true
	}
	return false
}

// RadioGroup is a set of mutually exclusive options.
type RadioGroup struct {
	Label    menu.Label
	Options  []menu.Label
	Selected int
}

// NewRadioGroup creates a group with option selected.
func NewRadioGroup(label string, selected int, options ...string) *RadioGroup {
	g := &RadioGroup{Label: menu.ParseLabel(label), Selected: selected}
	for _, o := range options {
		g.Options = append(g.Options, menu.ParseLabel(o))
	}
	return g
}

func (g *RadioGroup) CanFocus() bool { return len(g.Options) > 0 }

func (g *RadioGroup) HandleEvent(ev backend.Event) bool {
	n := len(g.Options)
	switch ev.Key {
	case backend.KeyLeft, backend.KeyUp:
		g.Selected = (g.Selected - 1 + n) % n
	case backend.KeyRight, backend.KeyDown:
		g.Selected = (g.Selected + 1) % n
	default:
		return false
	}
	return true
}

func (g *RadioGroup) selectMnemonic(r rune) bool {
	for i, o := range g.Options {
		if o.Matches(r) {
			g.Selected = i
			return true
		}
	}
	return false
}

// Button runs an action when pressed.
type Button struct {
	Label   menu.Label
	Default bool
	OnPress func()
}

// NewButton creates a button.
func NewButton(label string, onPress func()) *Button {
	return &Button{Label: menu.ParseLabel(label), OnPress: onPress}
}

// Press runs the button action.
func (b *Button) Press() {
	if b.OnPress != nil {
		b.OnPress()
	}
}

func (b *Button) CanFocus() bool { return true }

func (b *Button) HandleEvent(ev backend.Event) bool {
	if ev.Key == backend.KeyRune && ev.Rune == ' ' {
		b.Press()
		return true
	}
	return false
}
