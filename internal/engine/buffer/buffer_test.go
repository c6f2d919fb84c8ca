package buffer

import (
	"errors"
	"testing"
)

func TestNewBufferFromStringNormalizes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		ending LineEnding
		lines  uint32
	}{
		{"empty", "", "", LineEndingLF, 1},
		{"lf", "a\nb\n", "a\nb\n", LineEndingLF, 3},
		{"crlf", "a\r\nb\r\nc", "a\nb\nc", LineEndingCRLF, 3},
		{"cr", "a\rb", "a\nb", LineEndingCR, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			if got := b.Text(); got != tt.text {
				t.Errorf("Text() = %q, want %q", got, tt.text)
			}
			if got := b.LineEnding(); got != tt.ending {
				t.Errorf("LineEnding() = %v, want %v", got, tt.ending)
			}
			if got := b.LineCount(); got != tt.lines {
				t.Errorf("LineCount() = %d, want %d", got, tt.lines)
			}
		})
	}
}

func TestTextWithLineEnding(t *testing.T) {
	b := NewBufferFromString("one\r\ntwo")
	if got := b.TextWithLineEnding(); got != "one\r\ntwo" {
		t.Errorf("TextWithLineEnding() = %q", got)
	}
	b.SetLineEnding(LineEndingLF)
	if got := b.TextWithLineEnding(); got != "one\ntwo" {
		t.Errorf("TextWithLineEnding() after SetLineEnding = %q", got)
	}
}

func TestInsertDeleteReplace(t *testing.T) {
	b := NewBufferFromString("Hello, World!")

	end, err := b.Insert(7, "Beautiful ")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if end != 17 {
		t.Errorf("Insert end = %d, want 17", end)
	}
	if got := b.Text(); got != "Hello, Beautiful World!" {
		t.Errorf("after Insert = %q", got)
	}

	if err := b.Delete(0, 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := b.Text(); got != "Beautiful World!" {
		t.Errorf("after Delete = %q", got)
	}

	end, err = b.Replace(10, 15, "Go")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if end != 12 {
		t.Errorf("Replace end = %d, want 12", end)
	}
	if got := b.Text(); got != "Beautiful Go!" {
		t.Errorf("after Replace = %q", got)
	}
}

func TestEditErrors(t *testing.T) {
	b := NewBufferFromString("abc")

	if _, err := b.Insert(4, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert past end error = %v, want ErrOffsetOutOfRange", err)
	}
	if err := b.Delete(2, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("Delete reversed error = %v, want ErrRangeInvalid", err)
	}
	if _, err := b.TextRange(-1, 2); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("TextRange negative error = %v, want ErrOffsetOutOfRange", err)
	}
	if b.Text() != "abc" {
		t.Errorf("failed edits changed text to %q", b.Text())
	}
}

func TestApplyEditResult(t *testing.T) {
	b := NewBufferFromString("foo bar")
	res, err := b.ApplyEdit(Edit{Range: NewRange(4, 7), NewText: "a\r\nb"})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	if res.OldText != "bar" {
		t.Errorf("OldText = %q, want bar", res.OldText)
	}
	if res.NewRange != NewRange(4, 7) {
		t.Errorf("NewRange = %v, want [4:7)", res.NewRange)
	}
	if res.Delta != 0 {
		t.Errorf("Delta = %d, want 0", res.Delta)
	}
	if got := b.Text(); got != "foo a\nb" {
		t.Errorf("Text() = %q", got)
	}
}

func TestRevisionChangesOnEdit(t *testing.T) {
	b := NewBufferFromString("x")
	rev := b.Revision()
	if _, err := b.Insert(1, "y"); err != nil {
		t.Fatal(err)
	}
	if b.Revision() == rev {
		t.Error("revision did not change after edit")
	}
}

func TestOffsetPointConversion(t *testing.T) {
	b := NewBufferFromString("ab\ncde\n\nf")

	tests := []struct {
		offset ByteOffset
		point  Point
	}{
		{0, Point{0, 0}},
		{2, Point{0, 2}},
		{3, Point{1, 0}},
		{6, Point{1, 3}},
		{7, Point{2, 0}},
		{8, Point{3, 0}},
		{9, Point{3, 1}},
	}

	for _, tt := range tests {
		if got := b.OffsetToPoint(tt.offset); got != tt.point {
			t.Errorf("OffsetToPoint(%d) = %v, want %v", tt.offset, got, tt.point)
		}
		if got := b.PointToOffset(tt.point); got != tt.offset {
			t.Errorf("PointToOffset(%v) = %d, want %d", tt.point, got, tt.offset)
		}
	}

	if got := b.OffsetToPoint(100); got != (Point{3, 1}) {
		t.Errorf("OffsetToPoint past end = %v", got)
	}
	if got := b.PointToOffset(Point{Line: 0, Column: 50}); got != 2 {
		t.Errorf("PointToOffset clamps column: got %d, want 2", got)
	}
}

func TestLineText(t *testing.T) {
	b := NewBufferFromString("first\nsecond\n")
	tests := []struct {
		line uint32
		want string
	}{
		{0, "first"},
		{1, "second"},
		{2, ""},
	}
	for _, tt := range tests {
		got, err := b.LineText(tt.line)
		if err != nil {
			t.Fatalf("LineText(%d): %v", tt.line, err)
		}
		if got != tt.want {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
	if _, err := b.LineText(3); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("LineText(3) error = %v", err)
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"", LineEndingLF},
		{"no newline", LineEndingLF},
		{"a\nb\r\nc\r\n", LineEndingCRLF},
		{"a\rb\rc\n", LineEndingCR},
		{"a\nb\nc\r", LineEndingLF},
	}
	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
