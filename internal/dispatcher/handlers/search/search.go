package search

import (
	"strings"

	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
	"github.com/dshills/textpad/internal/find"
)

// Handler implements the search commands.
type Handler struct{}

// NewHandler creates a new search handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Commands returns the commands this handler serves.
func (h *Handler) Commands() []dispatcher.CommandID {
	return []dispatcher.CommandID{
		dispatcher.CmdEditFind,
		dispatcher.CmdEditFindNext,
		dispatcher.CmdEditFindPrevious,
		dispatcher.CmdEditReplace,
	}
}

// Register binds every search command on d. Searching needs text.
func (h *Handler) Register(d *dispatcher.Dispatcher) error {
	for _, id := range h.Commands() {
		err := d.Register(id, handler.EnabledFunc{
			Run: func(ctx *execctx.ExecutionContext) handler.Result {
				return h.HandleCommand(id, ctx)
			},
			When: func(ctx *execctx.ExecutionContext) bool {
				return ctx.Engine != nil && !ctx.Engine.IsEmpty()
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// HandleCommand processes a search command.
func (h *Handler) HandleCommand(id dispatcher.CommandID, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if ctx.UI == nil {
		return handler.Error(execctx.ErrMissingUI)
	}

	switch id {
	case dispatcher.CmdEditFind:
		ctx.UI.OpenFind(prefill(ctx))
		return handler.Pending()
	case dispatcher.CmdEditReplace:
		ctx.UI.OpenReplace(prefill(ctx))
		return handler.Pending()
	case dispatcher.CmdEditFindNext:
		return h.repeat(ctx, find.Forward)
	case dispatcher.CmdEditFindPrevious:
		return h.repeat(ctx, find.Backward)
	default:
		return handler.Errorf("unknown search command: %s", id)
	}
}

// repeat reruns the last find dialog search in direction dir.
func (h *Handler) repeat(ctx *execctx.ExecutionContext, dir find.Direction) handler.Result {
	opts, ok := ctx.UI.LastSearch()
	if !ok || opts.IsEmpty() {
		ctx.UI.OpenFind(prefill(ctx))
		return handler.Pending()
	}
	opts.Direction = dir
	if !find.FindOrNotify(ctx.Engine, opts, ctx.UI) {
		return handler.NoOpWithMessage(ctx.T("Cannot find \"%s\"", opts.Query))
	}
	return handler.Success()
}

// prefill returns the selected text when it fits on one line.
func prefill(ctx *execctx.ExecutionContext) string {
	text := ctx.Engine.SelectionText()
	if strings.ContainsAny(text, "\r\n") {
		return ""
	}
	return text
}
