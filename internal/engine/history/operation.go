package history

import (
	"time"

	"github.com/dshills/textpad/internal/engine/buffer"
	"github.com/dshills/textpad/internal/engine/cursor"
)

// ByteOffset is an alias for buffer.ByteOffset.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range.
type Range = buffer.Range

// Selection is an alias for cursor.Selection.
type Selection = cursor.Selection

// Operation is a single applied replacement with the selection around it.
type Operation struct {
	Range   Range  // replaced range in the document before the edit
	OldText string // text that was replaced
	NewText string // text that was inserted

	SelectionBefore Selection
	SelectionAfter  Selection

	Timestamp time.Time
}

// NewRange returns the range the new text occupies after the operation.
func (op *Operation) NewRange() Range {
	return Range{Start: op.Range.Start, End: op.Range.Start + ByteOffset(len(op.NewText))}
}

// BytesDelta returns the change in document length.
func (op *Operation) BytesDelta() int {
	return len(op.NewText) - int(op.Range.Len())
}

// Invert returns an operation that undoes this one.
func (op *Operation) Invert() *Operation {
	return &Operation{
		Range:           op.NewRange(),
		OldText:         op.NewText,
		NewText:         op.OldText,
		SelectionBefore: op.SelectionAfter,
		SelectionAfter:  op.SelectionBefore,
		Timestamp:       time.Now(),
	}
}

// OperationInfo describes an undo or redo entry.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}
