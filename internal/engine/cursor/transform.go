package cursor

import "github.com/dshills/textpad/internal/engine/buffer"

// TransformOffset updates an offset after edit is applied.
//
//   - edit entirely before offset: shift by the edit's delta
//   - edit starts at or after offset: unchanged
//   - edit spans offset: move to the end of the new text
func TransformOffset(offset ByteOffset, edit buffer.Edit) ByteOffset {
	if edit.Range.End <= offset {
		return offset + edit.Delta()
	}
	if edit.Range.Start >= offset {
		return offset
	}
	return edit.Range.Start + ByteOffset(len(edit.NewText))
}

// TransformSelection updates both ends of a selection after edit is applied.
func TransformSelection(sel Selection, edit buffer.Edit) Selection {
	return Selection{
		Anchor: TransformOffset(sel.Anchor, edit),
		Head:   TransformOffset(sel.Head, edit),
	}
}
