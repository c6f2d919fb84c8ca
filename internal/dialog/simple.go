package dialog

import (
	"strconv"
	"strings"

	"github.com/dshills/textpad/internal/dispatcher/execctx"
)

// GoTo asks for a 1-based line number.
type GoTo struct {
	*Form

	tr   Translator
	line *Field
	last int
	onGo func(line int)
}

// NewGoTo creates a closed go-to dialog. onGo receives the chosen line.
func NewGoTo(tr Translator, onGo func(line int)) *GoTo {
	d := &GoTo{tr: tr, line: NewField(tr.T("&Line number:")), onGo: onGo}
	ok := NewButton(tr.T("Go To"), d.submit)
	ok.Default = true
	cancel := NewButton(tr.T("Cancel"), nil)

	d.Form = NewForm(tr.T("Go To Line"), d.line, ok, cancel)
	cancel.OnPress = d.Close
	d.Form.Close()
	return d
}

// Show opens the dialog with current pre-filled; last bounds the input.
func (d *GoTo) Show(current, last int) {
	d.last = last
	d.line.SetText(strconv.Itoa(current))
	d.Reopen()
	d.SetFocus(d.line)
}

func (d *GoTo) submit() {
	n, err := strconv.Atoi(strings.TrimSpace(d.line.Text()))
	switch {
	case err != nil || n < 1:
		d.SetNote(d.tr.T("Enter a line number greater than zero"))
	case n > d.last:
		d.SetNote(d.tr.T("The line number is beyond the total number of lines"))
	default:
		d.Close()
		if d.onGo != nil {
			d.onGo(n)
		}
	}
}

// NewPrompt creates an open form asking for a single value. then receives
// the entered text, or "" when the user cancels.
func NewPrompt(tr Translator, title, label, initial string, then func(string)) *Form {
	field := NewField(label)
	field.SetText(initial)

	answer := ""
	var f *Form
	ok := NewButton(tr.T("OK"), func() {
		answer = strings.TrimSpace(field.Text())
		f.Close()
	})
	ok.Default = true
	cancel := NewButton(tr.T("Cancel"), func() { f.Close() })

	f = NewForm(title, field, ok, cancel)
	f.OnClose(func() {
		if then != nil {
			then(answer)
		}
	})
	return f
}

// NewMessage creates an open message box. Each line of text becomes a row.
func NewMessage(tr Translator, title, text string, onClose func()) *Form {
	var controls []Control
	for _, line := range strings.Split(text, "\n") {
		controls = append(controls, NewText(line))
	}
	var f *Form
	ok := NewButton(tr.T("OK"), func() { f.Close() })
	ok.Default = true
	controls = append(controls, ok)

	f = NewForm(title, controls...)
	if onClose != nil {
		f.OnClose(onClose)
	}
	return f
}

// NewSaveChanges asks whether to save name before it is discarded.
// Escape counts as Cancel.
func NewSaveChanges(tr Translator, appName, name string, then func(execctx.Choice)) *Form {
	choice := execctx.ChoiceCancel
	var f *Form
	pick := func(c execctx.Choice) func() {
		return func() {
			choice = c
			f.Close()
		}
	}
	save := NewButton(tr.T("&Save"), pick(execctx.ChoiceSave))
	save.Default = true
	discard := NewButton(tr.T("Do&n't Save"), pick(execctx.ChoiceDiscard))
	cancel := NewButton(tr.T("Cancel"), pick(execctx.ChoiceCancel))

	f = NewForm(appName, NewText(tr.T("Do you want to save changes to %s?", name)), save, discard, cancel)
	f.OnClose(func() {
		if then != nil {
			then(choice)
		}
	})
	return f
}
