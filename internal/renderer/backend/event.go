package backend

import "strings"

// EventType identifies the kind of input event.
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	EventInterrupt
)

// Key identifies a non-printable key. Printable input arrives as KeyRune.
//
// Control chords are normalized: Ctrl+S is KeyRune with Rune 's' and
// ModCtrl, whatever the terminal reported.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyRune:      "Rune",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Del",
	KeyInsert:    "Ins",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// String returns the display name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "None"
}

// KeyFromName returns the key called name, ignoring case.
func KeyFromName(name string) (Key, bool) {
	for k, n := range keyNames {
		if k != KeyRune && strings.EqualFold(n, name) {
			return k, true
		}
	}
	switch strings.ToLower(name) {
	case "escape":
		return KeyEscape, true
	case "return":
		return KeyEnter, true
	case "delete":
		return KeyDelete, true
	case "insert":
		return KeyInsert, true
	case "pageup":
		return KeyPageUp, true
	case "pagedown", "pgdn":
		return KeyPageDown, true
	}
	return KeyNone, false
}

// ModMask is a set of modifier keys.
type ModMask uint8

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone ModMask = 0
)

// Has returns true if all of mod is set in m.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod == mod
}

// MouseButton identifies a mouse button or wheel motion.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Event is one input event.
type Event struct {
	Type EventType

	// Key events.
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse events.
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize events.
	Width, Height int

	// Paste marks the start (true) or end of a bracketed paste.
	PasteStart bool

	// Focused is set by focus events.
	Focused bool

	// Data carries the payload of an interrupt event.
	Data any
}

// KeyEvent builds a key event.
func KeyEvent(k Key, r rune, mod ModMask) Event {
	return Event{Type: EventKey, Key: k, Rune: r, Mod: mod}
}

// RuneEvent builds a key event for a printable rune.
func RuneEvent(r rune) Event {
	return KeyEvent(KeyRune, r, ModNone)
}

// CtrlEvent builds a Ctrl+letter event.
func CtrlEvent(r rune) Event {
	return KeyEvent(KeyRune, r, ModCtrl)
}

// Interrupt builds an interrupt event carrying data.
func Interrupt(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}

// IsRune returns true for a printable key press without Ctrl or Alt.
func (ev Event) IsRune() bool {
	return ev.Type == EventKey && ev.Key == KeyRune && ev.Mod&(ModCtrl|ModAlt|ModMeta) == 0
}
