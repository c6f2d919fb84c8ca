package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/textpad/internal/engine/buffer"
	"github.com/dshills/textpad/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is used when NewHistory gets a non-positive limit.
const DefaultMaxEntries = 1000

type undoEntry struct {
	command   Command
	timestamp time.Time
}

// History manages undo/redo state for a document.
type History struct {
	mu sync.Mutex

	undoStack []*undoEntry
	redoStack []*undoEntry

	grouping  bool
	groupName string
	groupCmds []Command

	// savePoint is the undo depth matching the saved document, or -1 if
	// that state can no longer be reached.
	savePoint int

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Execute runs a command and records it.
func (h *History) Execute(cmd Command, buf *buffer.Buffer, sel *cursor.Selection) error {
	if err := cmd.Execute(buf, sel); err != nil {
		return err
	}
	h.Push(cmd)
	return nil
}

// Push records an already executed command and clears the redo stack.
func (h *History) Push(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}
	h.pushLocked(cmd)
}

func (h *History) pushLocked(cmd Command) {
	if h.savePoint > len(h.undoStack) {
		h.savePoint = -1
	}

	h.undoStack = append(h.undoStack, &undoEntry{command: cmd, timestamp: time.Now()})
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
		if h.savePoint >= 0 {
			h.savePoint -= excess
			if h.savePoint < 0 {
				h.savePoint = -1
			}
		}
	}
}

// Undo reverts the last command.
func (h *History) Undo(buf *buffer.Buffer, sel *cursor.Selection) error {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToUndo
	}
	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.mu.Unlock()

	if err := entry.command.Undo(buf, sel); err != nil {
		h.mu.Lock()
		h.undoStack = append(h.undoStack, entry)
		h.mu.Unlock()
		return err
	}

	h.mu.Lock()
	h.redoStack = append(h.redoStack, entry)
	h.mu.Unlock()
	return nil
}

// Redo re-applies the last undone command.
func (h *History) Redo(buf *buffer.Buffer, sel *cursor.Selection) error {
	h.mu.Lock()
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToRedo
	}
	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.mu.Unlock()

	if err := entry.command.Execute(buf, sel); err != nil {
		h.mu.Lock()
		h.redoStack = append(h.redoStack, entry)
		h.mu.Unlock()
		return err
	}

	h.mu.Lock()
	h.undoStack = append(h.undoStack, entry)
	h.mu.Unlock()
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// BeginGroup starts a command group. Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup records all commands since BeginGroup as one CompoundCommand.
// An empty group records nothing.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}
	h.grouping = false

	if len(h.groupCmds) > 0 {
		h.pushLocked(&CompoundCommand{Name: h.groupName, Commands: h.groupCmds})
	}
	h.groupCmds = nil
}

// IsGrouping returns true while a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Clear removes all undo/redo entries and marks the current state as saved.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupCmds = nil
	h.savePoint = 0
}

// MarkSaved records the current state as the saved one.
func (h *History) MarkSaved() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.savePoint = len(h.undoStack)
}

// IsAtSavePoint returns true if the document matches the saved state.
func (h *History) IsAtSavePoint() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.groupCmds) == 0 && h.savePoint == len(h.undoStack)
}

// PeekUndo describes the next undo entry.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return entryInfo(h.undoStack[len(h.undoStack)-1]), true
}

// PeekRedo describes the next redo entry.
func (h *History) PeekRedo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return entryInfo(h.redoStack[len(h.redoStack)-1]), true
}

func entryInfo(e *undoEntry) OperationInfo {
	return OperationInfo{Description: e.command.Description(), Timestamp: e.timestamp}
}
