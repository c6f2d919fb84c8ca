package view

import (
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
)

// Handler implements zoom and layout toggles.
type Handler struct{}

// NewHandler creates a new view handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Commands returns the commands this handler serves.
func (h *Handler) Commands() []dispatcher.CommandID {
	return []dispatcher.CommandID{
		dispatcher.CmdFormatWordWrap,
		dispatcher.CmdViewZoomIn,
		dispatcher.CmdViewZoomOut,
		dispatcher.CmdViewZoomRestore,
		dispatcher.CmdViewStatusBar,
	}
}

// Register binds every view command on d.
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

// HandleCommand processes a view command.
func (h *Handler) HandleCommand(id dispatcher.CommandID, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.View == nil {
		return handler.Error(execctx.ErrMissingView)
	}

	switch id {
	case dispatcher.CmdFormatWordWrap:
		return toggled(ctx, "Word wrap", ctx.View.ToggleWordWrap())
	case dispatcher.CmdViewStatusBar:
		return toggled(ctx, "Status bar", ctx.View.ToggleStatusBar())
	case dispatcher.CmdViewZoomIn:
		return h.zoom(ctx, ctx.View.ZoomIn)
	case dispatcher.CmdViewZoomOut:
		return h.zoom(ctx, ctx.View.ZoomOut)
	case dispatcher.CmdViewZoomRestore:
		return h.zoom(ctx, ctx.View.ZoomRestore)
	default:
		return handler.Errorf("unknown view command: %s", id)
	}
}

// zoom applies step. A step that would leave the zoom bounds is a no-op.
func (h *Handler) zoom(ctx *execctx.ExecutionContext, step func() error) handler.Result {
	if err := step(); err != nil {
		return handler.NoOpWithMessage(err.Error())
	}
	return handler.SuccessWithMessage(ctx.T("Zoom %d%%", ctx.View.Zoom()))
}

func toggled(ctx *execctx.ExecutionContext, what string, on bool) handler.Result {
	if on {
		return handler.SuccessWithMessage(ctx.T(what + " on"))
	}
	return handler.SuccessWithMessage(ctx.T(what + " off"))
}
