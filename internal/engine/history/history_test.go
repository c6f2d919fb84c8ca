package history

import (
	"errors"
	"testing"

	"github.com/dshills/textpad/internal/engine/buffer"
	"github.com/dshills/textpad/internal/engine/cursor"
)

func newTestState(text string, pos ByteOffset) (*buffer.Buffer, *cursor.Selection) {
	buf := buffer.NewBufferFromString(text)
	sel := cursor.NewCursorSelection(pos)
	return buf, &sel
}

func TestOperationInvert(t *testing.T) {
	op := &Operation{
		Range:           buffer.NewRange(2, 5),
		OldText:         "abc",
		NewText:         "hello",
		SelectionBefore: cursor.NewSelection(2, 5),
		SelectionAfter:  cursor.NewCursorSelection(7),
	}

	inv := op.Invert()
	if inv.Range != buffer.NewRange(2, 7) {
		t.Errorf("inverted range = %v, want [2:7)", inv.Range)
	}
	if inv.NewText != "abc" || inv.OldText != "hello" {
		t.Errorf("inverted texts = %q/%q", inv.OldText, inv.NewText)
	}
	if inv.SelectionAfter != op.SelectionBefore {
		t.Errorf("inverted SelectionAfter = %v", inv.SelectionAfter)
	}
	if op.BytesDelta() != 2 {
		t.Errorf("BytesDelta() = %d, want 2", op.BytesDelta())
	}
}

func TestExecuteUndoRedo(t *testing.T) {
	buf, sel := newTestState("Hello World", 6)
	*sel = cursor.NewSelection(6, 11)
	h := NewHistory(0)

	if err := h.Execute(NewEditCommand(sel.Range(), "Go"), buf, sel); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if buf.Text() != "Hello Go" {
		t.Errorf("after Execute = %q", buf.Text())
	}
	if *sel != cursor.NewCursorSelection(8) {
		t.Errorf("selection after Execute = %v", *sel)
	}

	if err := h.Undo(buf, sel); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.Text() != "Hello World" {
		t.Errorf("after Undo = %q", buf.Text())
	}
	if *sel != cursor.NewSelection(6, 11) {
		t.Errorf("selection after Undo = %v", *sel)
	}

	if err := h.Redo(buf, sel); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if buf.Text() != "Hello Go" {
		t.Errorf("after Redo = %q", buf.Text())
	}
	if *sel != cursor.NewCursorSelection(8) {
		t.Errorf("selection after Redo = %v", *sel)
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	buf, sel := newTestState("", 0)
	h := NewHistory(10)

	if err := h.Undo(buf, sel); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo error = %v, want ErrNothingToUndo", err)
	}
	if err := h.Redo(buf, sel); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo error = %v, want ErrNothingToRedo", err)
	}
}

func TestPushClearsRedo(t *testing.T) {
	buf, sel := newTestState("abc", 3)
	h := NewHistory(10)

	_ = h.Execute(NewEditCommand(buffer.NewRange(3, 3), "d"), buf, sel)
	_ = h.Undo(buf, sel)
	if !h.CanRedo() {
		t.Fatal("expected redo to be available")
	}
	_ = h.Execute(NewEditCommand(buffer.NewRange(3, 3), "e"), buf, sel)
	if h.CanRedo() {
		t.Error("new edit should clear redo stack")
	}
	if buf.Text() != "abce" {
		t.Errorf("text = %q", buf.Text())
	}
}

func TestGroupUndoesTogether(t *testing.T) {
	buf, sel := newTestState("a a a", 0)
	h := NewHistory(10)

	h.BeginGroup("Replace All")
	for _, r := range []buffer.Range{buffer.NewRange(0, 1), buffer.NewRange(2, 3), buffer.NewRange(4, 5)} {
		if err := h.Execute(NewEditCommand(r, "b"), buf, sel); err != nil {
			t.Fatal(err)
		}
	}
	h.EndGroup()

	if buf.Text() != "b b b" {
		t.Fatalf("text = %q", buf.Text())
	}
	info, ok := h.PeekUndo()
	if !ok || info.Description != "Replace All" {
		t.Errorf("PeekUndo() = %+v, %v", info, ok)
	}

	if err := h.Undo(buf, sel); err != nil {
		t.Fatal(err)
	}
	if buf.Text() != "a a a" {
		t.Errorf("after Undo = %q", buf.Text())
	}
	if h.CanUndo() {
		t.Error("group took more than one undo step")
	}
	if info, ok := h.PeekRedo(); !ok || info.Description != "Replace All" {
		t.Errorf("PeekRedo() = %+v, %v", info, ok)
	}
	if *sel != cursor.NewCursorSelection(0) {
		t.Errorf("selection after Undo = %v", *sel)
	}
}

func TestEmptyGroupRecordsNothing(t *testing.T) {
	h := NewHistory(10)
	h.BeginGroup("noop")
	h.EndGroup()
	if h.CanUndo() {
		t.Error("empty group should not be recorded")
	}
}

func TestMaxEntries(t *testing.T) {
	buf, sel := newTestState("", 0)
	h := NewHistory(3)

	for i := 0; i < 5; i++ {
		_ = h.Execute(NewEditCommand(buffer.NewRange(buf.Len(), buf.Len()), "x"), buf, sel)
	}
	undone := 0
	for h.Undo(buf, sel) == nil {
		undone++
	}
	if undone != 3 {
		t.Errorf("undid %d steps, want 3", undone)
	}
	if buf.Text() != "xx" {
		t.Errorf("text = %q, want the two oldest edits kept", buf.Text())
	}
}

func TestSavePoint(t *testing.T) {
	buf, sel := newTestState("abc", 3)
	h := NewHistory(10)

	if !h.IsAtSavePoint() {
		t.Fatal("new history should be at save point")
	}

	_ = h.Execute(NewEditCommand(buffer.NewRange(3, 3), "d"), buf, sel)
	if h.IsAtSavePoint() {
		t.Error("edit should leave save point")
	}

	_ = h.Undo(buf, sel)
	if !h.IsAtSavePoint() {
		t.Error("undo back to saved state should be at save point")
	}

	_ = h.Redo(buf, sel)
	h.MarkSaved()
	if !h.IsAtSavePoint() {
		t.Error("MarkSaved should set save point")
	}

	_ = h.Undo(buf, sel)
	_ = h.Execute(NewEditCommand(buffer.NewRange(3, 3), "z"), buf, sel)
	if h.IsAtSavePoint() {
		t.Error("diverged history should never return to save point")
	}
	_ = h.Undo(buf, sel)
	if h.IsAtSavePoint() {
		t.Error("saved state is no longer reachable")
	}
}
