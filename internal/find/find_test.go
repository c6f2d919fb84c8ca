package find

import (
	"strings"
	"testing"
)

// fakeBuffer is a minimal TextBuffer over ASCII text.
type fakeBuffer struct {
	text       string
	start, end int

	scans       int
	groupsBegun int
	groupsEnded int

	// lieAboutSelection makes FindFromCursor report a match without selecting it.
	lieAboutSelection bool
}

func newFakeBuffer(text string) *fakeBuffer {
	return &fakeBuffer{text: text}
}

func (b *fakeBuffer) FindFromCursor(query string, caseSensitive bool, dir Direction) bool {
	b.scans++
	text, q := b.text, query
	if !caseSensitive {
		text, q = strings.ToLower(text), strings.ToLower(query)
	}

	idx := -1
	if dir == Backward {
		idx = strings.LastIndex(text[:b.start], q)
	} else if i := strings.Index(text[b.end:], q); i >= 0 {
		idx = b.end + i
	}
	if idx < 0 {
		return false
	}
	if b.lieAboutSelection {
		b.start, b.end = idx, idx
		return true
	}
	b.start, b.end = idx, idx+len(q)
	return true
}

func (b *fakeBuffer) MoveCursorToStart() { b.start, b.end = 0, 0 }

func (b *fakeBuffer) MoveCursorToEnd() { b.start, b.end = len(b.text), len(b.text) }

func (b *fakeBuffer) HasSelection() bool { return b.start != b.end }

func (b *fakeBuffer) ReplaceSelectionText(text string) error {
	b.text = b.text[:b.start] + text + b.text[b.end:]
	b.start += len(text)
	b.end = b.start
	return nil
}

func (b *fakeBuffer) SelectionText() string { return b.text[b.start:b.end] }

func (b *fakeBuffer) BeginUndoGroup(string) { b.groupsBegun++ }

func (b *fakeBuffer) EndUndoGroup() { b.groupsEnded++ }

func (b *fakeBuffer) setCursor(offset int) { b.start, b.end = offset, offset }

func TestFindNextEmptyQuery(t *testing.T) {
	optsList := []SearchOptions{
		{},
		{CaseSensitive: true},
		{Direction: Backward, WrapAround: true},
		{WrapAround: true},
	}
	for _, text := range []string{"", "abc", "   "} {
		for _, opts := range optsList {
			buf := newFakeBuffer(text)
			if FindNext(buf, opts) {
				t.Errorf("FindNext(%q, %+v) = true, want false", text, opts)
			}
			if buf.scans != 0 {
				t.Errorf("empty query scanned the buffer %d times", buf.scans)
			}
		}
	}
}

func TestFindNextAbsentWithoutWrapLeavesSelection(t *testing.T) {
	for _, dir := range []Direction{Forward, Backward} {
		buf := newFakeBuffer("hello world")
		buf.start, buf.end = 2, 5

		if FindNext(buf, SearchOptions{Query: "xyz", Direction: dir}) {
			t.Fatalf("%v: expected not found", dir)
		}
		if buf.start != 2 || buf.end != 5 {
			t.Errorf("%v: selection moved to [%d,%d)", dir, buf.start, buf.end)
		}
		if buf.scans != 1 {
			t.Errorf("%v: scans = %d, want 1", dir, buf.scans)
		}
	}
}

func TestFindNextAbsentWithWrapStopsAtBoundary(t *testing.T) {
	tests := []struct {
		dir  Direction
		want int
	}{
		{Forward, 0},
		{Backward, len("hello world")},
	}
	for _, tt := range tests {
		buf := newFakeBuffer("hello world")
		buf.setCursor(4)

		if FindNext(buf, SearchOptions{Query: "xyz", Direction: tt.dir, WrapAround: true}) {
			t.Fatalf("%v: expected not found", tt.dir)
		}
		if buf.start != tt.want || buf.end != tt.want {
			t.Errorf("%v: cursor at [%d,%d), want %d", tt.dir, buf.start, buf.end, tt.want)
		}
		if buf.scans != 2 {
			t.Errorf("%v: scans = %d, want 2", tt.dir, buf.scans)
		}
	}
}

func TestFindNextSingleOccurrence(t *testing.T) {
	buf := newFakeBuffer("one needle here")
	opts := SearchOptions{Query: "needle"}

	if !FindNext(buf, opts) {
		t.Fatal("first scan should find the needle")
	}
	if buf.SelectionText() != "needle" {
		t.Errorf("selection = %q", buf.SelectionText())
	}
	if FindNext(buf, opts) {
		t.Error("second scan without wrap should fail")
	}

	// With wrap-around each call is a full document scan that finds it once.
	buf.MoveCursorToStart()
	opts.WrapAround = true
	for i := 0; i < 3; i++ {
		buf.scans = 0
		if !FindNext(buf, opts) {
			t.Fatalf("wrapped scan %d failed", i)
		}
		if buf.start != 4 {
			t.Errorf("wrapped scan %d selected offset %d", i, buf.start)
		}
		if buf.scans > 2 {
			t.Errorf("wrapped scan %d used %d scans", i, buf.scans)
		}
	}
}

func TestFindNextWrapsForward(t *testing.T) {
	buf := newFakeBuffer("target then more text")
	buf.setCursor(10)

	if !FindNext(buf, SearchOptions{Query: "target", WrapAround: true}) {
		t.Fatal("expected wrap to find the occurrence")
	}
	if buf.start != 0 || buf.end != 6 {
		t.Errorf("selection = [%d,%d), want [0,6)", buf.start, buf.end)
	}
	if buf.scans != 2 {
		t.Errorf("scans = %d, want 2", buf.scans)
	}
}

func TestFindNextWrapsBackward(t *testing.T) {
	buf := newFakeBuffer("some text then target")
	buf.setCursor(3)

	if !FindNext(buf, SearchOptions{Query: "target", Direction: Backward, WrapAround: true}) {
		t.Fatal("expected backward wrap to find the occurrence")
	}
	if buf.SelectionText() != "target" {
		t.Errorf("selection = %q", buf.SelectionText())
	}
}

func TestFindNextCaseSensitivity(t *testing.T) {
	tests := []struct {
		caseSensitive bool
		want          bool
	}{
		{true, false},
		{false, true},
	}
	for _, tt := range tests {
		buf := newFakeBuffer("ABC")
		got := FindNext(buf, SearchOptions{Query: "abc", CaseSensitive: tt.caseSensitive})
		if got != tt.want {
			t.Errorf("caseSensitive=%v: FindNext = %v, want %v", tt.caseSensitive, got, tt.want)
		}
	}
}

func TestFindOrNotify(t *testing.T) {
	var notified []string
	n := NotifierFunc(func(q string) { notified = append(notified, q) })

	buf := newFakeBuffer("abc")
	if FindOrNotify(buf, SearchOptions{Query: "zzz"}, n) {
		t.Error("expected miss")
	}
	if FindOrNotify(buf, SearchOptions{}, n) {
		t.Error("empty query should miss")
	}
	if !FindOrNotify(buf, SearchOptions{Query: "b"}, n) {
		t.Error("expected hit")
	}
	if len(notified) != 1 || notified[0] != "zzz" {
		t.Errorf("notified = %v, want [zzz]", notified)
	}

	// A nil notifier is allowed.
	FindOrNotify(buf, SearchOptions{Query: "zzz"}, nil)
}

func TestDirectionString(t *testing.T) {
	if Forward.String() != "forward" || Backward.String() != "backward" {
		t.Errorf("got %q/%q", Forward.String(), Backward.String())
	}
}
