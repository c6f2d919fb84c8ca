package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Find returns the first occurrence of query starting at or after from.
// Returns false if query is empty or there is no occurrence.
func (b *Buffer) Find(query string, from ByteOffset, caseSensitive bool) (Range, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return findForward(b.text, query, from, caseSensitive)
}

// FindBackward returns the last occurrence of query that ends at or before before.
// Returns false if query is empty or there is no occurrence.
func (b *Buffer) FindBackward(query string, before ByteOffset, caseSensitive bool) (Range, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return findBackward(b.text, query, before, caseSensitive)
}

func findForward(text, query string, from ByteOffset, caseSensitive bool) (Range, bool) {
	if query == "" || from > ByteOffset(len(text)) {
		return Range{}, false
	}
	if from < 0 {
		from = 0
	}

	if caseSensitive {
		idx := strings.Index(text[from:], query)
		if idx < 0 {
			return Range{}, false
		}
		start := from + ByteOffset(idx)
		return Range{Start: start, End: start + ByteOffset(len(query))}, true
	}

	i := int(from)
	for i < len(text) && !utf8.RuneStart(text[i]) {
		i++
	}
	for i < len(text) {
		if end, ok := foldMatchAt(text, i, query); ok {
			return Range{Start: ByteOffset(i), End: ByteOffset(end)}, true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return Range{}, false
}

func findBackward(text, query string, before ByteOffset, caseSensitive bool) (Range, bool) {
	if query == "" || before < 0 {
		return Range{}, false
	}
	if before > ByteOffset(len(text)) {
		before = ByteOffset(len(text))
	}
	head := text[:before]

	if caseSensitive {
		idx := strings.LastIndex(head, query)
		if idx < 0 {
			return Range{}, false
		}
		return Range{Start: ByteOffset(idx), End: ByteOffset(idx + len(query))}, true
	}

	for i := len(head); i >= 0; {
		if i < len(head) {
			if end, ok := foldMatchAt(head, i, query); ok {
				return Range{Start: ByteOffset(i), End: ByteOffset(end)}, true
			}
		}
		if i == 0 {
			break
		}
		_, size := utf8.DecodeLastRuneInString(head[:i])
		i -= size
	}
	return Range{}, false
}

// foldMatchAt reports whether query matches text at byte offset i under
// simple Unicode case folding, and returns the end offset of the match in text.
func foldMatchAt(text string, i int, query string) (int, bool) {
	for _, qr := range query {
		if i >= len(text) {
			return 0, false
		}
		tr, size := utf8.DecodeRuneInString(text[i:])
		if !equalFoldRune(tr, qr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
