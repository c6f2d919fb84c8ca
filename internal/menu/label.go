package menu

import (
	"strings"
	"unicode"
)

// Label is a display text with an optional mnemonic.
type Label struct {
	// Text is the label with mnemonic markers removed.
	Text string

	// Mnemonic is the lower-cased access key, or 0.
	Mnemonic rune

	// Index is the rune index of the mnemonic within Text, or -1.
	Index int
}

// ParseLabel strips "&" markers from s. The first "&x" names the mnemonic;
// "&&" produces a literal "&". A trailing "&" is kept as text.
func ParseLabel(s string) Label {
	l := Label{Index: -1}
	if !strings.ContainsRune(s, '&') {
		l.Text = s
		return l
	}

	var sb strings.Builder
	runes := []rune(s)
	n := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '&' && i+1 < len(runes) {
			i++
			r = runes[i]
			if r != '&' && l.Index < 0 {
				l.Index = n
				l.Mnemonic = unicode.ToLower(r)
			}
		}
		sb.WriteRune(r)
		n++
	}
	l.Text = sb.String()
	return l
}

// String returns the plain text.
func (l Label) String() string {
	return l.Text
}

// Matches reports whether r selects this label.
func (l Label) Matches(r rune) bool {
	return l.Mnemonic != 0 && unicode.ToLower(r) == l.Mnemonic
}
