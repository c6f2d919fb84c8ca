package file

import (
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
)

// Handler implements the file commands.
type Handler struct{}

// NewHandler creates a new file handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Commands returns the commands this handler serves.
func (h *Handler) Commands() []dispatcher.CommandID {
	return []dispatcher.CommandID{
		dispatcher.CmdFileNew,
		dispatcher.CmdFileOpen,
		dispatcher.CmdFileSave,
		dispatcher.CmdFileSaveAs,
		dispatcher.CmdFileExit,
	}
}

// Register binds every file command on d.
func (h *Handler) Register(d *dispatcher.Dispatcher) error {
	for _, id := range h.Commands() {
		if err := d.RegisterFunc(id, func(ctx *execctx.ExecutionContext) handler.Result {
			return h.HandleCommand(id, ctx)
		}); err != nil {
			return err
		}
	}
	return nil
}

// HandleCommand processes a file command.
func (h *Handler) HandleCommand(id dispatcher.CommandID, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForDocument(); err != nil {
		return handler.Error(err)
	}

	switch id {
	case dispatcher.CmdFileNew:
		return h.newFile(ctx)
	case dispatcher.CmdFileOpen:
		return h.open(ctx)
	case dispatcher.CmdFileSave:
		return h.save(ctx, nil)
	case dispatcher.CmdFileSaveAs:
		return h.saveAs(ctx, nil)
	case dispatcher.CmdFileExit:
		return h.exit(ctx)
	default:
		return handler.Errorf("unknown file command: %s", id)
	}
}

func (h *Handler) newFile(ctx *execctx.ExecutionContext) handler.Result {
	return h.guard(ctx, func() handler.Result {
		ctx.Document.New()
		return handler.Success()
	})
}

func (h *Handler) open(ctx *execctx.ExecutionContext) handler.Result {
	return h.guard(ctx, func() handler.Result {
		result := handler.Pending()
		ctx.UI.PromptPath(ctx.T("Open"), "", func(path string) {
			if path == "" {
				result = handler.Cancelled()
				return
			}
			if err := ctx.Document.Open(path); err != nil {
				ctx.UI.ShowMessage(ctx.T("Error"), ctx.T("Cannot open %s: %v", path, err))
				result = handler.Error(err)
				return
			}
			result = handler.SuccessWithMessage(ctx.Document.DisplayName())
		})
		return result
	})
}

// save writes the document, asking for a path when it has none.
// then runs only after a successful write.
func (h *Handler) save(ctx *execctx.ExecutionContext, then func() handler.Result) handler.Result {
	if ctx.Document.Path() == "" {
		return h.saveAs(ctx, then)
	}
	if err := ctx.Document.Save(); err != nil {
		ctx.UI.ShowMessage(ctx.T("Error"), ctx.T("Cannot save %s: %v", ctx.Document.DisplayName(), err))
		return handler.Error(err)
	}
	if then != nil {
		return then()
	}
	return handler.SuccessWithMessage(ctx.T("Saved"))
}

func (h *Handler) saveAs(ctx *execctx.ExecutionContext, then func() handler.Result) handler.Result {
	result := handler.Pending()
	ctx.UI.PromptPath(ctx.T("Save As"), ctx.Document.DisplayName(), func(path string) {
		if path == "" {
			result = handler.Cancelled()
			return
		}
		if err := ctx.Document.SaveAs(path); err != nil {
			ctx.UI.ShowMessage(ctx.T("Error"), ctx.T("Cannot save %s: %v", path, err))
			result = handler.Error(err)
			return
		}
		if then != nil {
			result = then()
			return
		}
		result = handler.SuccessWithMessage(ctx.T("Saved"))
	})
	return result
}

func (h *Handler) exit(ctx *execctx.ExecutionContext) handler.Result {
	return h.guard(ctx, func() handler.Result {
		ctx.UI.Quit()
		return handler.Success()
	})
}

// guard runs next directly for unmodified documents. Otherwise it asks
// whether to save first; Cancel abandons next.
func (h *Handler) guard(ctx *execctx.ExecutionContext, next func() handler.Result) handler.Result {
	if !ctx.Document.IsModified() {
		return next()
	}

	result := handler.Pending()
	ctx.UI.AskSaveChanges(ctx.Document.DisplayName(), func(choice execctx.Choice) {
		switch choice {
		case execctx.ChoiceSave:
			result = h.save(ctx, next)
		case execctx.ChoiceDiscard:
			result = next()
		default:
			result = handler.Cancelled()
		}
	})
	return result
}
