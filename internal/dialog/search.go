package dialog

import (
	"github.com/dshills/textpad/internal/find"
)

// Translator translates dialog strings.
type Translator interface {
	T(key string, args ...any) string
}

// Host receives the outcome of search dialog actions.
type Host interface {
	find.Notifier

	// Searched records the options of the last search run from a dialog.
	Searched(opts find.SearchOptions)

	// Status shows a transient message.
	Status(msg string)

	// ReportError shows a failed edit.
	ReportError(err error)
}

// Direction option indexes of the find dialog.
const (
	directionUp = iota
	directionDown
)

// Find is the find dialog.
type Find struct {
	*Form

	buf  find.TextBuffer
	host Host

	query     *Field
	direction *RadioGroup
	matchCase *CheckBox
	wrap      *CheckBox
}

// NewFind creates a closed find dialog over buf.
func NewFind(tr Translator, buf find.TextBuffer, host Host) *Find {
	d := &Find{
		buf:       buf,
		host:      host,
		query:     NewField(tr.T("Fi&nd what:")),
		direction: NewRadioGroup(tr.T("Direction"), directionDown, tr.T("&Up"), tr.T("&Down")),
		matchCase: NewCheckBox(tr.T("Match &case")),
		wrap:      NewCheckBox(tr.T("&Wrap around")),
	}
	next := NewButton(tr.T("&Find Next"), func() { d.FindNext() })
	next.Default = true
	cancel := NewButton(tr.T("Cancel"), nil)

	d.Form = NewForm(tr.T("Find"), d.query, d.direction, d.matchCase, d.wrap, next, cancel)
	cancel.OnPress = d.Close
	d.Form.Close()
	return d
}

// Show opens the dialog. A non-empty prefill replaces the query.
func (d *Find) Show(prefill string) {
	if prefill != "" {
		d.query.SetText(prefill)
	}
	d.Reopen()
	d.SetFocus(d.query)
}

// Options returns a fresh snapshot of the dialog state.
func (d *Find) Options() find.SearchOptions {
	opts := find.SearchOptions{
		Query:         d.query.Text(),
		CaseSensitive: d.matchCase.Checked,
		WrapAround:    d.wrap.Checked,
	}
	if d.direction.Selected == directionUp {
		opts.Direction = find.Backward
	}
	return opts
}

// SetOptions loads opts into the widgets.
func (d *Find) SetOptions(opts find.SearchOptions) {
	d.query.SetText(opts.Query)
	d.matchCase.Checked = opts.CaseSensitive
	d.wrap.Checked = opts.WrapAround
	d.direction.Selected = directionDown
	if opts.Direction == find.Backward {
		d.direction.Selected = directionUp
	}
}

// FindNext searches in the selected direction and notifies the host on a
// miss. The dialog stays open.
func (d *Find) FindNext() bool {
	opts := d.Options()
	if opts.IsEmpty() {
		return false
	}
	d.host.Searched(opts)
	return find.FindOrNotify(d.buf, opts, d.host)
}

// Replace is the replace dialog. It always searches forward.
type Replace struct {
	*Form

	tr   Translator
	buf  find.TextBuffer
	host Host

	query       *Field
	replacement *Field
	matchCase   *CheckBox
	wrap        *CheckBox
}

// NewReplace creates a closed replace dialog over buf.
func NewReplace(tr Translator, buf find.TextBuffer, host Host) *Replace {
	d := &Replace{
		tr:          tr,
		buf:         buf,
		host:        host,
		query:       NewField(tr.T("Fi&nd what:")),
		replacement: NewField(tr.T("Re&place with:")),
		matchCase:   NewCheckBox(tr.T("Match &case")),
		wrap:        NewCheckBox(tr.T("&Wrap around")),
	}
	next := NewButton(tr.T("&Find Next"), func() { d.FindNext() })
	replace := NewButton(tr.T("&Replace"), func() { d.ReplaceOne() })
	all := NewButton(tr.T("Replace &All"), func() { d.ReplaceAll() })
	cancel := NewButton(tr.T("Cancel"), nil)
	cancel.Default = true

	d.Form = NewForm(tr.T("Replace"), d.query, d.replacement, d.matchCase, d.wrap, next, replace, all, cancel)
	cancel.OnPress = d.Close
	d.Form.Close()
	return d
}

// Show opens the dialog. A non-empty prefill replaces the query.
func (d *Replace) Show(prefill string) {
	if prefill != "" {
		d.query.SetText(prefill)
	}
	d.Reopen()
	d.SetFocus(d.query)
}

// Options returns a fresh snapshot of the dialog state.
func (d *Replace) Options() find.SearchOptions {
	return find.SearchOptions{
		Query:         d.query.Text(),
		CaseSensitive: d.matchCase.Checked,
		Direction:     find.Forward,
		WrapAround:    d.wrap.Checked,
	}
}

// Replacement returns the replacement text.
func (d *Replace) Replacement() string {
	return d.replacement.Text()
}

// FindNext selects the next occurrence.
func (d *Replace) FindNext() bool {
	opts := d.Options()
	if opts.IsEmpty() {
		return false
	}
	d.host.Searched(opts)
	return find.FindOrNotify(d.buf, opts, d.host)
}

// ReplaceOne replaces the highlighted occurrence, or the next one, and selects
// the match after it.
func (d *Replace) ReplaceOne() bool {
	opts := d.Options()
	if opts.IsEmpty() {
		return false
	}
	d.host.Searched(opts)
	ok, err := find.ReplaceOne(d.buf, opts, d.Replacement())
	if err != nil {
		d.host.ReportError(err)
		return false
	}
	if !ok {
		d.host.NotFound(opts.Query)
	}
	return ok
}

// ReplaceAll replaces every occurrence and reports the count.
func (d *Replace) ReplaceAll() int {
	opts := d.Options()
	if opts.IsEmpty() {
		return 0
	}
	n, err := find.ReplaceAll(d.buf, opts, d.Replacement())
	if err != nil {
		d.host.ReportError(err)
		return n
	}
	if n == 0 {
		d.host.NotFound(opts.Query)
		return 0
	}
	d.host.Status(d.tr.T("Replaced %d occurrences", n))
	return n
}
