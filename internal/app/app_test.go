package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/renderer/backend"
	"github.com/dshills/textpad/internal/statusbar"
)

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(a.cleanup)

	b := backend.NewNullBackend(60, 20)
	if err := a.SetBackend(b); err != nil {
		t.Fatalf("SetBackend() error = %v", err)
	}
	a.renderer.Resize(b.Size())
	a.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC) }
	a.render()
	return a, b
}

func send(a *Application, evs ...backend.Event) {
	for _, ev := range evs {
		a.handleEvent(ev)
	}
	a.render()
}

func typeText(a *Application, s string) {
	for _, r := range s {
		a.handleEvent(backend.RuneEvent(r))
	}
	a.render()
}

func key(k backend.Key) backend.Event {
	return backend.KeyEvent(k, 0, backend.ModNone)
}

func shift(k backend.Key) backend.Event {
	return backend.KeyEvent(k, 0, backend.ModShift)
}

func TestNewWithDefaults(t *testing.T) {
	a, b := newTestApp(t, Options{})

	if got := a.Title(); got != "Untitled - Textpad" {
		t.Errorf("Title() = %q", got)
	}
	if b.Title() != a.Title() {
		t.Errorf("backend title = %q", b.Title())
	}
	if !strings.Contains(b.Row(0), "File") {
		t.Errorf("menu row = %q", b.Row(0))
	}
	for _, id := range dispatcher.AllCommands() {
		if !a.Dispatcher().Has(id) {
			t.Errorf("no handler for %s", id)
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textpad.toml")
	if err := os.WriteFile(path, []byte("unknown_key = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{ConfigPath: path})
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "config" {
		t.Errorf("New() error = %v, want config InitError", err)
	}
}

func TestTypingMarksModified(t *testing.T) {
	a, b := newTestApp(t, Options{})
	typeText(a, "hi")
	send(a, key(backend.KeyEnter), key(backend.KeyTab))

	if got := a.Engine().Text(); got != "hi\n\t" {
		t.Errorf("Text() = %q", got)
	}
	if got := b.Title(); got != "*Untitled - Textpad" {
		t.Errorf("title = %q", got)
	}
	if got := a.Status().PositionLabel(); got != "Ln 2, Col 2" {
		t.Errorf("position = %q", got)
	}
}

func TestReadOnlyBeeps(t *testing.T) {
	a, b := newTestApp(t, Options{ReadOnly: true})
	typeText(a, "x")
	if a.Engine().Text() != "" {
		t.Errorf("read-only document changed: %q", a.Engine().Text())
	}
	if b.Beeps() != 1 {
		t.Errorf("Beeps() = %d, want 1", b.Beeps())
	}
}

func TestCursorKeys(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  engine.ByteOffset
		keys   []backend.Event
		anchor engine.ByteOffset
		head   engine.ByteOffset
	}{
		{"right over cluster", "e\u0301x", 0, []backend.Event{key(backend.KeyRight)}, 3, 3},
		{"left over cluster", "e\u0301x", 3, []backend.Event{key(backend.KeyLeft)}, 0, 0},
		{"right across line break", "ab\ncd", 2, []backend.Event{key(backend.KeyRight)}, 3, 3},
		{"left across line break", "ab\ncd", 3, []backend.Event{key(backend.KeyLeft)}, 2, 2},
		{"down keeps column", "abcd\nxy\nabcd", 3, []backend.Event{key(backend.KeyDown), key(backend.KeyDown)}, 11, 11},
		{"up from first line", "abc\nd", 2, []backend.Event{key(backend.KeyUp)}, 0, 0},
		{"down from last line", "abc\nd", 1, []backend.Event{key(backend.KeyDown), key(backend.KeyDown)}, 5, 5},
		{"home", "abc\ndef", 6, []backend.Event{key(backend.KeyHome)}, 4, 4},
		{"end", "abc\ndef", 4, []backend.Event{key(backend.KeyEnd)}, 7, 7},
		{"ctrl end", "abc\ndef", 1, []backend.Event{backend.KeyEvent(backend.KeyEnd, 0, backend.ModCtrl)}, 7, 7},
		{"shift extends", "abc", 0, []backend.Event{shift(backend.KeyRight), shift(backend.KeyRight)}, 0, 2},
		{"left collapses selection", "abc", 0, []backend.Event{shift(backend.KeyEnd), key(backend.KeyLeft)}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t, Options{})
			a.Engine().SetContent(tt.text)
			a.Engine().MoveCursor(tt.start)
			send(a, tt.keys...)

			sel := a.Engine().Selection()
			if sel.Anchor != tt.anchor || sel.Head != tt.head {
				t.Errorf("selection = %d..%d, want %d..%d", sel.Anchor, sel.Head, tt.anchor, tt.head)
			}
		})
	}
}

func TestDeleteKey(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	a.Engine().SetContent("abc")

	send(a, key(backend.KeyDelete))
	if got := a.Engine().Text(); got != "bc" {
		t.Fatalf("Del without selection: Text() = %q, want %q", got, "bc")
	}

	send(a, shift(backend.KeyRight), key(backend.KeyDelete))
	if got := a.Engine().Text(); got != "c" {
		t.Errorf("Del with selection: Text() = %q, want %q", got, "c")
	}
}

func TestShortcutsDispatch(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	typeText(a, "abc")

	send(a, backend.CtrlEvent('a'))
	if sel := a.Engine().Selection(); sel.Start() != 0 || sel.End() != 3 {
		t.Fatalf("Ctrl+A selection = %d..%d", sel.Start(), sel.End())
	}
	send(a, backend.CtrlEvent('x'))
	if a.Engine().Text() != "" {
		t.Fatalf("Ctrl+X left %q", a.Engine().Text())
	}
	send(a, backend.CtrlEvent('v'), backend.CtrlEvent('v'))
	if got := a.Engine().Text(); got != "abcabc" {
		t.Errorf("after pasting twice Text() = %q", got)
	}
	send(a, backend.CtrlEvent('z'))
	if got := a.Engine().Text(); got != "abc" {
		t.Errorf("after undo Text() = %q", got)
	}
}

func TestInsertDateTime(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	send(a, key(backend.KeyF5))
	if got := a.Engine().Text(); got != "14:05 09/03/2024" {
		t.Errorf("Text() = %q", got)
	}
}

func TestFindDialogAndFindNext(t *testing.T) {
	a, b := newTestApp(t, Options{})
	a.Engine().SetContent("one two one")

	send(a, backend.CtrlEvent('f'))
	if a.UI().Top() != a.ui.find.Form {
		t.Fatal("Ctrl+F did not open the find dialog")
	}
	typeText(a, "one")
	send(a, key(backend.KeyEnter))
	if sel := a.Engine().Selection(); sel.Start() != 0 || sel.End() != 3 {
		t.Errorf("first match = %d..%d, want 0..3", sel.Start(), sel.End())
	}

	send(a, key(backend.KeyEscape))
	if a.UI().Top() != nil {
		t.Fatal("Escape did not close the dialog")
	}
	send(a, key(backend.KeyF3))
	if sel := a.Engine().Selection(); sel.Start() != 8 || sel.End() != 11 {
		t.Errorf("F3 match = %d..%d, want 8..11", sel.Start(), sel.End())
	}

	// Without wrap-around the next search fails and says so.
	send(a, key(backend.KeyF3))
	top := a.UI().Top()
	if top == nil || findRowText(b, `Cannot find "one"`) < 0 {
		t.Fatalf("missing not-found message:\n%s", b.Screen())
	}
	if b.Beeps() != 1 {
		t.Errorf("Beeps() = %d, want 1", b.Beeps())
	}
	send(a, key(backend.KeyEnter))
	if a.UI().Top() != nil {
		t.Error("OK did not close the message")
	}
}

func TestReplaceAllFromDialog(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	a.Engine().SetContent("a-a-a")

	send(a, backend.CtrlEvent('r'))
	typeText(a, "a")
	send(a, key(backend.KeyTab))
	typeText(a, "bb")
	send(a, backend.KeyEvent(backend.KeyRune, 'a', backend.ModAlt))

	if got := a.Engine().Text(); got != "bb-bb-bb" {
		t.Errorf("Text() = %q", got)
	}
	if got := a.UI().Message(); got != "Replaced 3 occurrences" {
		t.Errorf("Message() = %q", got)
	}

	send(a, backend.CtrlEvent('z'))
	if a.UI().Top() == nil {
		t.Fatal("dialog should stay open after Replace All")
	}
	send(a, key(backend.KeyEscape), backend.CtrlEvent('z'))
	if got := a.Engine().Text(); got != "a-a-a" {
		t.Errorf("after one undo Text() = %q", got)
	}
}

func TestGoTo(t *testing.T) {
	a, b := newTestApp(t, Options{})
	a.Engine().SetContent("a\nb\nc\nd")

	send(a, backend.CtrlEvent('g'))
	if findRowText(b, "Go To Line") < 0 {
		t.Fatalf("go to dialog not shown:\n%s", b.Screen())
	}
	send(a, key(backend.KeyBackspace))
	typeText(a, "3")
	send(a, key(backend.KeyEnter))
	if p := a.Engine().CursorPoint(); p.Line != 2 {
		t.Errorf("cursor line = %d, want 2", p.Line)
	}
	if got := a.Status().PositionLabel(); got != "Ln 3, Col 1" {
		t.Errorf("position = %q", got)
	}
}

func TestExitAsksToSave(t *testing.T) {
	a, b := newTestApp(t, Options{})
	typeText(a, "x")

	send(a, backend.CtrlEvent('q'))
	if a.UI().Quitting() {
		t.Fatal("quit without asking")
	}
	if findRowText(b, "Do you want to save changes to Untitled?") < 0 {
		t.Fatalf("save prompt not shown:\n%s", b.Screen())
	}
	send(a, backend.RuneEvent('n'))
	if !a.UI().Quitting() {
		t.Error("Don't Save did not quit")
	}
}

func TestExitCancel(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	typeText(a, "x")
	send(a, backend.CtrlEvent('q'), key(backend.KeyEscape))
	if a.UI().Quitting() {
		t.Error("Escape should cancel the exit")
	}
	if a.UI().Top() != nil {
		t.Error("prompt still open")
	}
}

func TestSaveAsWritesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.File.Directory = dir
	a, b := newTestApp(t, Options{Config: cfg})
	typeText(a, "hello")

	send(a, backend.CtrlEvent('s'))
	if findRowText(b, "File name:") < 0 {
		t.Fatalf("path prompt not shown:\n%s", b.Screen())
	}
	send(a, key(backend.KeyEnter))

	path := filepath.Join(dir, "Untitled.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("file = %q", data)
	}
	if got := b.Title(); got != "Untitled.txt - Textpad" {
		t.Errorf("title = %q", got)
	}
	if a.Document().IsModified() {
		t.Error("document still modified after save")
	}
}

func TestOpenFileOnStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("a\r\nb"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, b := newTestApp(t, Options{Files: []string{path}})
	send(a)

	if got := a.Engine().Text(); got != "a\nb" {
		t.Errorf("Text() = %q", got)
	}
	if got := a.Status().LineEndingLabel(); got != statusbar.LabelCRLF {
		t.Errorf("line ending = %q", got)
	}
	if got := b.Title(); got != "crlf.txt - Textpad" {
		t.Errorf("title = %q", got)
	}
}

func TestOpenMissingFileAdoptsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	a, _ := newTestApp(t, Options{Files: []string{path}})
	if a.Document().Path() != path {
		t.Errorf("Path() = %q, want %q", a.Document().Path(), path)
	}
	if a.UI().Top() != nil {
		t.Error("a missing file should not show an error")
	}
}

func TestMouse(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	a.Engine().SetContent("abc\ndef")
	a.render()

	click := backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseLeft, MouseX: 2, MouseY: 2}
	send(a, click, backend.Event{Type: backend.EventMouse})
	if sel := a.Engine().Selection(); !sel.IsEmpty() || sel.Head != 6 {
		t.Fatalf("click selection = %+v, want cursor at 6", sel)
	}

	drag := backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseLeft, MouseX: 1, MouseY: 1}
	send(a, drag, backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseLeft, MouseX: 0, MouseY: 2})
	if sel := a.Engine().Selection(); sel.Anchor != 1 || sel.Head != 4 {
		t.Errorf("drag selection = %d..%d, want 1..4", sel.Anchor, sel.Head)
	}
}

func TestMenuClickOpensMenu(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	send(a, backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseLeft, MouseX: 1, MouseY: 0})
	if !a.Menu().IsOpen() {
		t.Fatal("click on the menu bar did not open a menu")
	}
	send(a, key(backend.KeyEscape))
	if a.Menu().IsOpen() {
		t.Error("Escape did not close the menu")
	}
}

func TestPasteIsOneUndoStep(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	send(a,
		backend.Event{Type: backend.EventPaste, PasteStart: true},
		backend.RuneEvent('x'),
		key(backend.KeyEnter),
		backend.RuneEvent('y'),
		backend.Event{Type: backend.EventPaste},
	)
	if got := a.Engine().Text(); got != "x\ny" {
		t.Fatalf("Text() = %q", got)
	}
	send(a, backend.CtrlEvent('z'))
	if got := a.Engine().Text(); got != "" {
		t.Errorf("after undo Text() = %q", got)
	}
	if got := a.UI().Message(); got != "Undo Paste" {
		t.Errorf("Message() = %q", got)
	}
}

func TestViewCommands(t *testing.T) {
	a, b := newTestApp(t, Options{})

	send(a, backend.KeyEvent(backend.KeyRune, '=', backend.ModAlt))
	if got := a.Status().Zoom().Level(); got != 110 {
		t.Errorf("zoom = %d, want 110", got)
	}
	if got := a.UI().Message(); got != "Zoom 110%" {
		t.Errorf("Message() = %q", got)
	}

	a.Dispatcher().Dispatch(dispatcher.CmdFormatWordWrap)
	if !a.renderer.Options().WordWrap || !a.Menu().Bar().Item(dispatcher.CmdFormatWordWrap).Checked {
		t.Error("word wrap toggle not applied")
	}

	a.Dispatcher().Dispatch(dispatcher.CmdViewStatusBar)
	a.render()
	if a.Status().Visible() || a.Menu().Bar().Item(dispatcher.CmdViewStatusBar).Checked {
		t.Error("status bar toggle not applied")
	}
	if strings.Contains(b.Row(19), "Ln 1") {
		t.Errorf("status bar still drawn: %q", b.Row(19))
	}
}

func TestAbout(t *testing.T) {
	a, b := newTestApp(t, Options{Version: "1.2.3"})
	send(a, key(backend.KeyF1))
	if findRowText(b, "Textpad 1.2.3") < 0 {
		t.Errorf("about box missing version:\n%s", b.Screen())
	}
}

func TestConfigReload(t *testing.T) {
	a, b := newTestApp(t, Options{})

	cfg := config.Default()
	cfg.AppName = "Notes"
	cfg.Zoom.Max = 150
	cfg.DateTimeFormat = "%Y"
	send(a, backend.Interrupt(cfg))

	if got := b.Title(); got != "Untitled - Notes" {
		t.Errorf("title = %q", got)
	}
	if _, hi := a.Status().Zoom().Bounds(); hi != 150 {
		t.Errorf("zoom max = %d, want 150", hi)
	}
	send(a, key(backend.KeyF5))
	if got := a.Engine().Text(); got != "2024" {
		t.Errorf("date format not reloaded: %q", got)
	}
}

func TestRunUntilExit(t *testing.T) {
	a, b := newTestApp(t, Options{})
	b.PostEvent(backend.RuneEvent('a'))
	b.PostEvent(backend.CtrlEvent('z'))
	b.PostEvent(backend.CtrlEvent('q'))

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if a.Engine().Text() != "" {
		t.Errorf("Text() = %q", a.Engine().Text())
	}
}

func TestDebugLogsCommandStats(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Path = filepath.Join(t.TempDir(), "textpad.log")
	a, b := newTestApp(t, Options{Config: cfg, LogLevel: "debug"})
	b.PostEvent(backend.CtrlEvent('a'))
	b.PostEvent(backend.CtrlEvent('a'))
	b.PostEvent(backend.CtrlEvent('q'))

	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.Log.Path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"commands: 3 dispatched", "edit.selectAll x2"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func TestShutdownStopsRun(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	a.Shutdown()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestShutdownKeepsLogOpenUntilRunReturns(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Path = filepath.Join(t.TempDir(), "textpad.log")
	a, _ := newTestApp(t, Options{Config: cfg})
	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	deadline := time.Now().Add(2 * time.Second)
	for !a.running.Load() {
		if time.Now().After(deadline) {
			t.Fatal("Run did not start")
		}
		time.Sleep(time.Millisecond)
	}
	a.Shutdown()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}

	data, err := os.ReadFile(cfg.Log.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "quit") {
		t.Errorf("log closed before the loop stopped:\n%s", data)
	}
	a.mu.Lock()
	closer := a.logCloser
	a.mu.Unlock()
	if closer != nil {
		t.Error("log file not released after Run returned")
	}
}

func TestRequestQuitAsksToSave(t *testing.T) {
	a, b := newTestApp(t, Options{})
	typeText(a, "x")

	a.RequestQuit()
	send(a, b.PollEvent())
	if a.UI().Quitting() {
		t.Fatal("quit with unsaved changes without asking")
	}
	if findRowText(b, "Do you want to save changes to Untitled?") < 0 {
		t.Fatalf("save prompt not shown:\n%s", b.Screen())
	}

	// A second request does not wait for an answer.
	a.RequestQuit()
	send(a, b.PollEvent())
	if !a.UI().Quitting() {
		t.Error("second RequestQuit did not quit")
	}
}

func TestRequestQuitUnmodified(t *testing.T) {
	a, b := newTestApp(t, Options{})
	a.RequestQuit()
	send(a, b.PollEvent())
	if !a.UI().Quitting() {
		t.Error("RequestQuit on a saved document did not quit")
	}
}

func TestRunWithoutBackend(t *testing.T) {
	a, err := New(Options{Config: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() error = %v, want ErrNoBackend", err)
	}
}

func findRowText(b *backend.NullBackend, s string) int {
	_, h := b.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(b.Row(y), s) {
			return y
		}
	}
	return -1
}

type panicBackend struct {
	*backend.NullBackend
}

func (panicBackend) PollEvent() backend.Event {
	panic("poll failed")
}

func TestRunRecoversPanic(t *testing.T) {
	a, err := New(Options{Config: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(a.cleanup)
	if err := a.SetBackend(panicBackend{backend.NewNullBackend(40, 10)}); err != nil {
		t.Fatal(err)
	}

	err = a.Run()
	var pe *RecoveredPanicError
	if !errors.As(err, &pe) || pe.Value != "poll failed" {
		t.Errorf("Run() error = %v, want a recovered panic", err)
	}
	if a.running.Load() {
		t.Error("still marked running after the panic")
	}
}
