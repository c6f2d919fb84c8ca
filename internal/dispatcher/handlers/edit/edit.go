package edit

import (
	"errors"

	"github.com/ncruces/go-strftime"

	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
	"github.com/dshills/textpad/internal/engine/history"
)

// DefaultDateTimeFormat is used when the context carries no format.
const DefaultDateTimeFormat = "%H:%M %d/%m/%Y"

// Handler implements the edit commands.
type Handler struct{}

// NewHandler creates a new edit handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Commands returns the commands this handler serves.
func (h *Handler) Commands() []dispatcher.CommandID {
	return []dispatcher.CommandID{
		dispatcher.CmdEditUndo,
		dispatcher.CmdEditRedo,
		dispatcher.CmdEditCut,
		dispatcher.CmdEditCopy,
		dispatcher.CmdEditPaste,
		dispatcher.CmdEditDelete,
		dispatcher.CmdEditGoTo,
		dispatcher.CmdEditSelectAll,
		dispatcher.CmdEditInsertDateTime,
	}
}

// Register binds every edit command on d with its enablement rule.
func (h *Handler) Register(d *dispatcher.Dispatcher) error {
	for _, id := range h.Commands() {
		err := d.Register(id, handler.EnabledFunc{
			Run: func(ctx *execctx.ExecutionContext) handler.Result {
				return h.HandleCommand(id, ctx)
			},
			When: func(ctx *execctx.ExecutionContext) bool {
				return h.Enabled(id, ctx)
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Enabled reports whether id can currently run.
// Undo and redo follow history; cut, copy and delete need a selection.
func (h *Handler) Enabled(id dispatcher.CommandID, ctx *execctx.ExecutionContext) bool {
	if ctx.Engine == nil {
		return false
	}
	switch id {
	case dispatcher.CmdEditUndo:
		return ctx.Engine.CanUndo()
	case dispatcher.CmdEditRedo:
		return ctx.Engine.CanRedo()
	case dispatcher.CmdEditCut, dispatcher.CmdEditCopy, dispatcher.CmdEditDelete:
		return ctx.Engine.HasSelection()
	}
	return true
}

// HandleCommand processes an edit command.
func (h *Handler) HandleCommand(id dispatcher.CommandID, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	switch id {
	case dispatcher.CmdEditUndo:
		return h.undo(ctx)
	case dispatcher.CmdEditRedo:
		return h.redo(ctx)
	case dispatcher.CmdEditCut:
		return h.cut(ctx)
	case dispatcher.CmdEditCopy:
		return h.copy(ctx)
	case dispatcher.CmdEditPaste:
		return h.paste(ctx)
	case dispatcher.CmdEditDelete:
		return h.delete(ctx)
	case dispatcher.CmdEditGoTo:
		return h.goTo(ctx)
	case dispatcher.CmdEditSelectAll:
		ctx.Engine.SelectAll()
		return handler.Success()
	case dispatcher.CmdEditInsertDateTime:
		return h.insertDateTime(ctx)
	default:
		return handler.Errorf("unknown edit command: %s", id)
	}
}

func (h *Handler) undo(ctx *execctx.ExecutionContext) handler.Result {
	desc := ctx.Engine.UndoDescription()
	if err := ctx.Engine.Undo(); err != nil {
		if errors.Is(err, history.ErrNothingToUndo) {
			return handler.NoOpWithMessage(ctx.T("Nothing to undo"))
		}
		return handler.Error(err)
	}
	return handler.SuccessWithMessage(ctx.T("Undo %s", desc))
}

func (h *Handler) redo(ctx *execctx.ExecutionContext) handler.Result {
	desc := ctx.Engine.RedoDescription()
	if err := ctx.Engine.Redo(); err != nil {
		if errors.Is(err, history.ErrNothingToRedo) {
			return handler.NoOpWithMessage(ctx.T("Nothing to redo"))
		}
		return handler.Error(err)
	}
	return handler.SuccessWithMessage(ctx.T("Redo %s", desc))
}

func (h *Handler) copy(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Clipboard == nil {
		return handler.Error(execctx.ErrMissingClipboard)
	}
	if !ctx.Engine.HasSelection() {
		return handler.NoOp()
	}
	if err := ctx.Clipboard.WriteAll(ctx.Engine.SelectionText()); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

func (h *Handler) cut(ctx *execctx.ExecutionContext) handler.Result {
	r := h.copy(ctx)
	if r.Status != handler.StatusOK {
		return r
	}
	if err := ctx.Engine.ReplaceSelectionText(""); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

func (h *Handler) paste(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Clipboard == nil {
		return handler.Error(execctx.ErrMissingClipboard)
	}
	text, err := ctx.Clipboard.ReadAll()
	if err != nil {
		return handler.Error(err)
	}
	if text == "" {
		return handler.NoOp()
	}
	if err := ctx.Engine.InsertText(text); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

// delete removes the selection, or the character after the cursor.
func (h *Handler) delete(ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Engine.DeleteForward(); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

func (h *Handler) goTo(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.UI == nil {
		return handler.Error(execctx.ErrMissingUI)
	}
	current := int(ctx.Engine.CursorPoint().Line) + 1
	ctx.UI.OpenGoTo(current, int(ctx.Engine.LineCount()))
	return handler.Pending()
}

func (h *Handler) insertDateTime(ctx *execctx.ExecutionContext) handler.Result {
	layout := ctx.DateTimeFormat
	if layout == "" {
		layout = DefaultDateTimeFormat
	}
	stamp := strftime.Format(layout, ctx.Now())
	if err := ctx.Engine.InsertText(stamp); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}
