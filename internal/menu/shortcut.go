package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/textpad/internal/renderer/backend"
)

// ErrInvalidShortcut indicates a shortcut string that cannot be parsed.
var ErrInvalidShortcut = errors.New("menu: invalid shortcut")

// Shortcut is a key chord bound to a menu action.
type Shortcut struct {
	Key  backend.Key
	Rune rune
	Mod  backend.ModMask
}

// modifierNames maps lower-case modifier names to masks.
var modifierNames = map[string]backend.ModMask{
	"ctrl":    backend.ModCtrl,
	"control": backend.ModCtrl,
	"alt":     backend.ModAlt,
	"option":  backend.ModAlt,
	"shift":   backend.ModShift,
	"meta":    backend.ModMeta,
	"cmd":     backend.ModMeta,
}

// runeNames maps key names that stand for printable characters.
var runeNames = map[string]rune{
	"plus":  '+',
	"minus": '-',
	"space": ' ',
	"comma": ',',
}

// ParseShortcut parses "Ctrl+S", "Shift+F3", "Alt+=", "Ctrl++" or "Del".
// The empty string is the zero Shortcut.
func ParseShortcut(spec string) (Shortcut, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Shortcut{}, nil
	}

	keyPart := spec
	var mods backend.ModMask
	if i := strings.LastIndex(spec[:len(spec)-1], "+"); i >= 0 {
		keyPart = spec[i+1:]
		for _, p := range strings.Split(spec[:i], "+") {
			mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(p))]
			if !ok {
				return Shortcut{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidShortcut, p, spec)
			}
			mods |= mod
		}
	}
	return parseKey(spec, strings.TrimSpace(keyPart), mods)
}

func parseKey(spec, keyPart string, mods backend.ModMask) (Shortcut, error) {
	if keyPart == "" {
		return Shortcut{}, fmt.Errorf("%w: missing key in %q", ErrInvalidShortcut, spec)
	}
	if r, ok := runeNames[strings.ToLower(keyPart)]; ok {
		return Shortcut{Key: backend.KeyRune, Rune: r, Mod: mods}, nil
	}
	if k, ok := backend.KeyFromName(keyPart); ok {
		return Shortcut{Key: k, Mod: mods}, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Shortcut{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidShortcut, keyPart, spec)
	}
	// Terminals report letters without Shift; the letter case carries it.
	return Shortcut{Key: backend.KeyRune, Rune: unicode.ToLower(runes[0]), Mod: mods &^ backend.ModShift}, nil
}

// MustParseShortcut parses spec and panics on error.
func MustParseShortcut(spec string) Shortcut {
	s, err := ParseShortcut(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// IsZero returns true if no key is bound.
func (s Shortcut) IsZero() bool {
	return s.Key == backend.KeyNone
}

// Matches reports whether ev is this chord.
func (s Shortcut) Matches(ev backend.Event) bool {
	if s.IsZero() || ev.Type != backend.EventKey || ev.Key != s.Key {
		return false
	}
	if s.Key == backend.KeyRune {
		return unicode.ToLower(ev.Rune) == s.Rune && ev.Mod&^backend.ModShift == s.Mod
	}
	return ev.Mod == s.Mod
}

// String returns the display form, e.g. "Ctrl+S".
func (s Shortcut) String() string {
	if s.IsZero() {
		return ""
	}
	var parts []string
	if s.Mod.Has(backend.ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if s.Mod.Has(backend.ModAlt) {
		parts = append(parts, "Alt")
	}
	if s.Mod.Has(backend.ModShift) {
		parts = append(parts, "Shift")
	}
	if s.Mod.Has(backend.ModMeta) {
		parts = append(parts, "Meta")
	}

	switch {
	case s.Key != backend.KeyRune:
		parts = append(parts, s.Key.String())
	case s.Rune == ' ':
		parts = append(parts, "Space")
	default:
		parts = append(parts, string(unicode.ToUpper(s.Rune)))
	}
	return strings.Join(parts, "+")
}
