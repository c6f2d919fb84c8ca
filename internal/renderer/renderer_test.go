package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/dialog"
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/find"
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer/backend"
	"github.com/dshills/textpad/internal/statusbar"
)

func newTestRenderer(w, h int) (*backend.NullBackend, *Renderer) {
	b := backend.NewNullBackend(w, h)
	return b, New(b, config.DefaultPalette(), DefaultOptions())
}

func lines(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("l")
		sb.WriteByte(byte('0' + i))
	}
	return sb.String()
}

func findRow(b *backend.NullBackend, s string) int {
	_, h := b.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(b.Row(y), s) {
			return y
		}
	}
	return -1
}

type plain struct{}

func (plain) T(key string, args ...any) string { return key }

type nopHost struct{}

func (nopHost) NotFound(string)             {}
func (nopHost) Searched(find.SearchOptions) {}
func (nopHost) Status(string)               {}
func (nopHost) ReportError(error)           {}

func TestRenderTextAndChrome(t *testing.T) {
	b, r := newTestRenderer(60, 6)
	e := engine.New(engine.WithContent("hello\nworld"))
	r.Render(Frame{
		Title:  "Untitled - Textpad",
		Doc:    e,
		Menu:   menu.NewNavigator(menu.Default()),
		Status: statusbar.New(nil),
	})

	if !strings.Contains(b.Row(0), "File  Edit  Format  View  Help") {
		t.Errorf("menu row = %q", b.Row(0))
	}
	if b.Row(1) != "hello" || b.Row(2) != "world" {
		t.Errorf("text rows = %q, %q", b.Row(1), b.Row(2))
	}
	if status := b.Row(5); !strings.Contains(status, "Ln 1, Col 1 │ 100% │ Linux (LF) │ UTF-8") {
		t.Errorf("status row = %q", status)
	}
	if x, y, ok := b.CursorPosition(); !ok || x != 0 || y != 1 {
		t.Errorf("cursor = (%d, %d, %v), want (0, 1, true)", x, y, ok)
	}
	if b.Title() != "Untitled - Textpad" {
		t.Errorf("title = %q", b.Title())
	}
	if b.Shows() != 1 {
		t.Errorf("Show called %d times", b.Shows())
	}
}

func TestRenderSelection(t *testing.T) {
	b, r := newTestRenderer(20, 5)
	e := engine.New(engine.WithContent("abcd\nef"))
	e.SetSelection(engine.NewSelection(1, 6))
	r.Render(Frame{Doc: e})

	tests := []struct {
		x, y     int
		selected bool
	}{
		{0, 0, false},
		{1, 0, true},
		{3, 0, true},
		{4, 0, true}, // line break
		{5, 0, false},
		{0, 1, true},
		{1, 1, false},
	}
	for _, tt := range tests {
		got := b.GetCell(tt.x, tt.y).Style == r.styles.selection
		if got != tt.selected {
			t.Errorf("cell (%d, %d) selected = %v, want %v", tt.x, tt.y, got, tt.selected)
		}
	}
}

func TestRenderHorizontalScroll(t *testing.T) {
	b, r := newTestRenderer(10, 3)
	e := engine.New(engine.WithContent(strings.Repeat("0123456789", 3)))
	e.MoveCursor(25)
	r.Render(Frame{Doc: e})

	if got := b.Row(0); got != "56789" {
		t.Errorf("row = %q, want %q", got, "56789")
	}
	if x, y, ok := b.CursorPosition(); !ok || x != 0 || y != 0 {
		t.Errorf("cursor = (%d, %d, %v)", x, y, ok)
	}

	e.MoveCursor(0)
	r.Render(Frame{Doc: e})
	if got := b.Row(0); got != "0123456789" {
		t.Errorf("after moving home row = %q", got)
	}
}

func TestRenderWordWrap(t *testing.T) {
	b, r := newTestRenderer(11, 4)
	r.SetOptions(Options{WordWrap: true})
	e := engine.New(engine.WithContent("hello world again\nx"))
	e.MoveCursor(17)
	r.Render(Frame{Doc: e})

	want := []string{"hello", "world again", "x"}
	for y, w := range want {
		if got := b.Row(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if _, y, ok := b.CursorPosition(); !ok || y != 1 {
		t.Errorf("cursor row = %d, %v; want 1", y, ok)
	}
}

func TestRenderFollowsCursorButKeepsWheelScroll(t *testing.T) {
	b, r := newTestRenderer(10, 5)
	e := engine.New(engine.WithContent(lines(10)))
	f := Frame{Doc: e, Menu: menu.NewNavigator(menu.Default()), Status: statusbar.New(nil)}

	e.MoveCursor(e.PointToOffset(engine.Point{Line: 9}))
	r.Render(f)
	if b.Row(1) != "l7" || b.Row(3) != "l9" {
		t.Fatalf("rows = %q..%q, want l7..l9", b.Row(1), b.Row(3))
	}
	if r.PageRows() != 3 {
		t.Errorf("PageRows() = %d, want 3", r.PageRows())
	}

	r.ScrollBy(f, -2)
	r.Render(f)
	if b.Row(1) != "l5" {
		t.Errorf("after wheel scroll row 1 = %q, want l5", b.Row(1))
	}
	if _, _, ok := b.CursorPosition(); ok {
		t.Error("cursor scrolled out of view should be hidden")
	}

	r.RevealCursor()
	r.Render(f)
	if b.Row(3) != "l9" {
		t.Errorf("RevealCursor row 3 = %q, want l9", b.Row(3))
	}
}

func TestRenderHiddenStatusBar(t *testing.T) {
	b, r := newTestRenderer(10, 4)
	e := engine.New(engine.WithContent(lines(5)))
	status := statusbar.New(nil)
	status.SetVisible(false)
	r.Render(Frame{Doc: e, Menu: menu.NewNavigator(menu.Default()), Status: status})

	if got := b.Row(3); got != "l2" {
		t.Errorf("bottom row = %q, want l2", got)
	}
}

func TestOffsetAt(t *testing.T) {
	_, r := newTestRenderer(20, 8)
	e := engine.New(engine.WithContent("abc\ndef"))
	r.Render(Frame{Doc: e, Menu: menu.NewNavigator(menu.Default())})

	tests := []struct {
		name string
		x, y int
		want engine.ByteOffset
		ok   bool
	}{
		{"inside", 1, 2, 5, true},
		{"past line end", 15, 1, 3, true},
		{"below text", 2, 6, 7, true},
		{"menu row", 1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.OffsetAt(e, tt.x, tt.y)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("OffsetAt(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRenderDropdown(t *testing.T) {
	b, r := newTestRenderer(60, 12)
	nav := menu.NewNavigator(menu.Default())
	nav.Open(0)
	enabled := func(c dispatcher.CommandID) bool { return c != dispatcher.CmdFileSave }
	e := engine.New()
	r.Render(Frame{Doc: e, Menu: nav, Enabled: enabled, Status: statusbar.New(nil)})

	d := nav.Dropdowns()[0]
	if !strings.Contains(b.Row(d.Row(0)), "New") || !strings.Contains(b.Row(d.Row(0)), "Ctrl+N") {
		t.Errorf("first item row = %q", b.Row(d.Row(0)))
	}
	if got := b.GetCell(d.Rect.Left, d.Rect.Top).Rune; got != '┌' {
		t.Errorf("corner = %q", got)
	}
	// Column Left+3 holds the underlined mnemonic; check the next one.
	if b.GetCell(d.Rect.Left+4, d.Row(0)).Style != r.styles.menuHot {
		t.Error("highlighted item not drawn hot")
	}
	if b.GetCell(1, 0).Style != r.styles.menuHot {
		t.Error("active title not drawn hot")
	}
	for i, it := range d.Items {
		if it.Command == dispatcher.CmdFileSave {
			if b.GetCell(d.Rect.Left+4, d.Row(i)).Style != r.styles.disabled {
				t.Error("disabled item not greyed")
			}
		}
	}
	if !strings.Contains(b.Row(11), "Create a new document") {
		t.Errorf("status tip missing: %q", b.Row(11))
	}
	if _, _, ok := b.CursorPosition(); ok {
		t.Error("cursor should be hidden while a menu is open")
	}
}

func TestRenderMessage(t *testing.T) {
	b, r := newTestRenderer(60, 4)
	r.Render(Frame{Doc: engine.New(), Status: statusbar.New(nil), Message: `Cannot find "x"`})
	if got := b.Row(3); !strings.HasPrefix(got, ` Cannot find "x"`) {
		t.Errorf("status row = %q", got)
	}
}

func TestRenderDialogs(t *testing.T) {
	b, r := newTestRenderer(70, 20)
	e := engine.New(engine.WithContent("text"))

	fd := dialog.NewFind(plain{}, e, nopHost{})
	fd.Show("abc")
	r.Render(Frame{Doc: e, Dialogs: []*dialog.Form{fd.Form}})

	for _, want := range []string{" Find ", "Find what:", "Direction: ( ) Up (•) Down", "[ ] Match case", "[ Find Next ]  [ Cancel ]"} {
		if findRow(b, want) < 0 {
			t.Errorf("dialog missing %q:\n%s", want, b.Screen())
		}
	}
	y := findRow(b, "Find what:")
	if x, cy, ok := b.CursorPosition(); !ok || cy != y || b.GetCell(x-1, y).Rune != 'c' {
		t.Errorf("caret = (%d, %d, %v), want after the query on row %d", x, cy, ok, y)
	}

	gt := dialog.NewGoTo(plain{}, nil)
	gt.Show(1, 1)
	gt.SetNote("Out of range")
	r.Render(Frame{Doc: e, Dialogs: []*dialog.Form{fd.Form, gt.Form}})
	if findRow(b, "Go To Line") < 0 || findRow(b, "Out of range") < 0 {
		t.Errorf("go to dialog not drawn:\n%s", b.Screen())
	}
	if _, cy, ok := b.CursorPosition(); !ok || cy != findRow(b, "Line number:") {
		t.Error("caret should follow the topmost dialog")
	}
}
