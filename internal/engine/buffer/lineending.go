package buffer

import "strings"

// LineEnding represents a line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: "\n"
	LineEndingCRLF                   // Windows: "\r\n"
	LineEndingCR                     // Classic Mac: "\r"
)

// String returns the escaped form of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the raw characters of the line ending.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// NormalizeLineEndings converts every "\r\n" and lone "\r" in text to "\n".
func NormalizeLineEndings(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ApplyLineEnding converts "\n"-normalized text to use the given line ending.
func ApplyLineEnding(text string, le LineEnding) string {
	if le == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", le.Sequence())
}
