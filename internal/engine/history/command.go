package history

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dshills/textpad/internal/engine/buffer"
	"github.com/dshills/textpad/internal/engine/cursor"
)

// Command is an edit that can be executed and undone.
type Command interface {
	Execute(buf *buffer.Buffer, sel *cursor.Selection) error
	Undo(buf *buffer.Buffer, sel *cursor.Selection) error
	Description() string
}

// EditCommand replaces a range with new text and leaves the cursor after it.
type EditCommand struct {
	Range   Range
	NewText string

	op *Operation
}

// NewEditCommand creates a command replacing r with text.
func NewEditCommand(r Range, text string) *EditCommand {
	return &EditCommand{Range: r, NewText: text}
}

// Execute applies the replacement. Executing again after Undo redoes it.
func (c *EditCommand) Execute(buf *buffer.Buffer, sel *cursor.Selection) error {
	before := *sel
	if c.op != nil {
		before = c.op.SelectionBefore
	}

	res, err := buf.ApplyEdit(buffer.Edit{Range: c.Range, NewText: c.NewText})
	if err != nil {
		return fmt.Errorf("edit at offset %d: %w", c.Range.Start, err)
	}

	after := cursor.NewCursorSelection(res.NewRange.End)
	c.op = &Operation{
		Range:           res.OldRange,
		OldText:         res.OldText,
		NewText:         buf.Text()[res.NewRange.Start:res.NewRange.End],
		SelectionBefore: before,
		SelectionAfter:  after,
		Timestamp:       time.Now(),
	}
	*sel = after
	return nil
}

// Undo restores the replaced text and the selection from before the edit.
func (c *EditCommand) Undo(buf *buffer.Buffer, sel *cursor.Selection) error {
	if c.op == nil {
		return nil
	}
	inv := c.op.Invert()
	if _, err := buf.Replace(inv.Range.Start, inv.Range.End, inv.NewText); err != nil {
		return fmt.Errorf("undo edit: %w", err)
	}
	*sel = inv.SelectionAfter
	return nil
}

// Operation returns the applied operation, or nil before Execute.
func (c *EditCommand) Operation() *Operation {
	return c.op
}

// Description returns a human-readable description.
func (c *EditCommand) Description() string {
	oldLen := c.Range.Len()
	newLen := utf8.RuneCountInString(c.NewText)
	switch {
	case oldLen == 0 && newLen <= 20:
		return fmt.Sprintf("Insert %q", c.NewText)
	case oldLen == 0:
		return fmt.Sprintf("Insert %d characters", newLen)
	case newLen == 0:
		return fmt.Sprintf("Delete %d bytes", oldLen)
	default:
		return fmt.Sprintf("Replace %d bytes with %d characters", oldLen, newLen)
	}
}

// CompoundCommand groups commands into one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// Execute runs all commands in order.
func (c *CompoundCommand) Execute(buf *buffer.Buffer, sel *cursor.Selection) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf, sel); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf, sel)
			}
			return fmt.Errorf("compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *buffer.Buffer, sel *cursor.Selection) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf, sel); err != nil {
			return fmt.Errorf("undo compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the group name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}
