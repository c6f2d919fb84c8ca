package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal backend for the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, cell.Rune, cell.Combc, cell.Style)
}

func (t *Terminal) Fill(rect Rect, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, cell.Combc, cell.Style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

func (t *Terminal) SetTitle(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetTitle(title)
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		// The screen was finalized.
		return Event{Type: EventNone}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(ev Event) {
	var tev tcell.Event
	switch ev.Type {
	case EventKey:
		tev = tcell.NewEventKey(convertToTcellKey(ev.Key, ev.Rune, ev.Mod))
	case EventInterrupt:
		tev = tcell.NewEventInterrupt(ev.Data)
	default:
		return
	}
	_ = t.screen.PostEvent(tev) // best-effort; the queue may be full
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.screen.Beep()
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
			Mod:         convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventPaste:
		return Event{Type: EventPaste, PasteStart: e.Start()}

	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}

	case *tcell.EventInterrupt:
		return Interrupt(e.Data())

	default:
		return Event{Type: EventNone}
	}
}

// convertKeyEvent folds tcell's control-key codes into KeyRune plus ModCtrl.
// Backspace, Tab and Enter share codes with Ctrl+H, Ctrl+I and Ctrl+M; they
// are treated as chords only when the terminal reports the Ctrl modifier.
func convertKeyEvent(e *tcell.EventKey) Event {
	k, mod := e.Key(), convertMod(e.Modifiers())

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		switch {
		case k == tcell.KeyBackspace && !mod.Has(ModCtrl):
			return KeyEvent(KeyBackspace, 0, mod)
		case k == tcell.KeyTab && !mod.Has(ModCtrl):
			return KeyEvent(KeyTab, 0, mod)
		case k == tcell.KeyEnter && !mod.Has(ModCtrl):
			return KeyEvent(KeyEnter, 0, mod)
		}
		return KeyEvent(KeyRune, 'a'+rune(k-tcell.KeyCtrlA), mod|ModCtrl)
	}

	if k == tcell.KeyRune {
		r := e.Rune()
		if mod.Has(ModCtrl) && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return KeyEvent(KeyRune, r, mod)
	}
	return KeyEvent(convertKey(k), 0, mod)
}

func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyBacktab:
		return KeyBacktab
	case tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1)
	}
	return KeyNone
}

func convertToTcellKey(k Key, r rune, mod ModMask) (tcell.Key, rune, tcell.ModMask) {
	tmod := convertToTcellMod(mod)
	switch k {
	case KeyRune:
		return tcell.KeyRune, r, tmod
	case KeyEscape:
		return tcell.KeyEscape, 0, tmod
	case KeyEnter:
		return tcell.KeyEnter, 0, tmod
	case KeyTab:
		return tcell.KeyTab, 0, tmod
	case KeyBacktab:
		return tcell.KeyBacktab, 0, tmod
	case KeyBackspace:
		return tcell.KeyBackspace2, 0, tmod
	case KeyDelete:
		return tcell.KeyDelete, 0, tmod
	case KeyInsert:
		return tcell.KeyInsert, 0, tmod
	case KeyHome:
		return tcell.KeyHome, 0, tmod
	case KeyEnd:
		return tcell.KeyEnd, 0, tmod
	case KeyPageUp:
		return tcell.KeyPgUp, 0, tmod
	case KeyPageDown:
		return tcell.KeyPgDn, 0, tmod
	case KeyUp:
		return tcell.KeyUp, 0, tmod
	case KeyDown:
		return tcell.KeyDown, 0, tmod
	case KeyLeft:
		return tcell.KeyLeft, 0, tmod
	case KeyRight:
		return tcell.KeyRight, 0, tmod
	}
	if k >= KeyF1 && k <= KeyF12 {
		return tcell.KeyF1 + tcell.Key(k-KeyF1), 0, tmod
	}
	return tcell.KeyRune, r, tmod
}

func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(ModAlt) {
		result |= tcell.ModAlt
	}
	if m.Has(ModMeta) {
		result |= tcell.ModMeta
	}
	return result
}

func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseRight
	case b&tcell.Button3 != 0:
		return MouseMiddle
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
