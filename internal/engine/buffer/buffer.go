package buffer

import (
	"errors"
	"sort"
	"sync"
)

// Common errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range: start > end")
	ErrLineOutOfRange   = errors.New("line out of range")
)

// Buffer is a thread-safe text buffer.
//
// Text is stored with "\n" line endings. The on-disk line ending is kept
// separately and applied by TextWithLineEnding.
type Buffer struct {
	mu sync.RWMutex

	text       string
	lineStarts []ByteOffset
	lineEnding LineEnding
	revision   RevisionID
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineEnding: LineEndingLF,
		lineStarts: []ByteOffset{0},
		revision:   NewRevisionID(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer initialized with text.
// The line ending is detected from text unless an option overrides it.
func NewBufferFromString(text string, opts ...Option) *Buffer {
	b := NewBuffer(append([]Option{WithDetectedLineEnding(text)}, opts...)...)
	b.text = NormalizeLineEndings(text)
	b.rebuildLines()
	return b
}

// Text returns the full buffer content with "\n" line endings.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// TextWithLineEnding returns the content converted to the buffer's line ending.
func (b *Buffer) TextWithLineEnding() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ApplyLineEnding(b.text, b.lineEnding)
}

// SetText replaces the entire content. The line ending is re-detected.
func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = DetectLineEnding(text)
	b.text = NormalizeLineEndings(text)
	b.rebuildLines()
	b.revision = NewRevisionID()
}

// Len returns the content length in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uint32(len(b.lineStarts))
}

// LineEnding returns the on-disk line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding changes the on-disk line ending style.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// TextRange returns the text in [start, end).
func (b *Buffer) TextRange(start, end ByteOffset) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.checkRange(start, end); err != nil {
		return "", err
	}
	return b.text[start:end], nil
}

// LineText returns the text of a line without its terminator.
func (b *Buffer) LineText(line uint32) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return "", ErrLineOutOfRange
	}
	return b.text[b.lineStarts[line]:b.lineEndLocked(line)], nil
}

// LineStartOffset returns the offset of the first byte of line.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return ByteOffset(len(b.text))
	}
	return b.lineStarts[line]
}

// LineEndOffset returns the offset just before line's terminator.
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return ByteOffset(len(b.text))
	}
	return b.lineEndLocked(line)
}

// OffsetToPoint converts a byte offset to a line/column position.
// Offsets past the end are clamped.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.offsetToPointLocked(offset)
}

// PointToOffset converts a line/column position to a byte offset.
// Lines and columns past the end are clamped.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(p.Line) >= len(b.lineStarts) {
		return ByteOffset(len(b.text))
	}
	start := b.lineStarts[p.Line]
	end := b.lineEndLocked(p.Line)
	offset := start + ByteOffset(p.Column)
	if offset > end {
		offset = end
	}
	return offset
}

// Insert inserts text at offset and returns the end offset of the insertion.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	return b.Replace(offset, offset, text)
}

// Delete removes the text in [start, end).
func (b *Buffer) Delete(start, end ByteOffset) error {
	_, err := b.Replace(start, end, "")
	return err
}

// Replace replaces [start, end) with text and returns the end offset of the new text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	res, err := b.ApplyEdit(Edit{Range: Range{Start: start, End: end}, NewText: text})
	if err != nil {
		return 0, err
	}
	return res.NewRange.End, nil
}

// ApplyEdit applies an edit and returns what changed.
// Inserted text has its line endings normalized.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRange(edit.Range.Start, edit.Range.End); err != nil {
		return EditResult{}, err
	}

	newText := NormalizeLineEndings(edit.NewText)
	oldText := b.text[edit.Range.Start:edit.Range.End]
	b.text = b.text[:edit.Range.Start] + newText + b.text[edit.Range.End:]
	b.rebuildLines()
	b.revision = NewRevisionID()

	newEnd := edit.Range.Start + ByteOffset(len(newText))
	return EditResult{
		OldRange: edit.Range,
		NewRange: Range{Start: edit.Range.Start, End: newEnd},
		OldText:  oldText,
		Delta:    int64(len(newText)) - int64(len(oldText)),
	}, nil
}

func (b *Buffer) checkRange(start, end ByteOffset) error {
	if start > end {
		return ErrRangeInvalid
	}
	if start < 0 || end > ByteOffset(len(b.text)) {
		return ErrOffsetOutOfRange
	}
	return nil
}

func (b *Buffer) rebuildLines() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	b.lineStarts = starts
}

func (b *Buffer) lineEndLocked(line uint32) ByteOffset {
	if int(line)+1 < len(b.lineStarts) {
		return b.lineStarts[line+1] - 1
	}
	return ByteOffset(len(b.text))
}

func (b *Buffer) offsetToPointLocked(offset ByteOffset) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > ByteOffset(len(b.text)) {
		offset = ByteOffset(len(b.text))
	}
	// Index of the last line start <= offset.
	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
	return Point{
		Line:   uint32(line),
		Column: uint32(offset - b.lineStarts[line]),
	}
}
