package help

import (
	"runtime"
	"strings"

	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
)

// License is shown at the bottom of the About box.
const License = "Released under the MIT License."

// Handler implements the help commands.
type Handler struct{}

// NewHandler creates a new help handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register binds the help commands on d.
func (h *Handler) Register(d *dispatcher.Dispatcher) error {
	return d.RegisterFunc(dispatcher.CmdHelpAbout, h.about)
}

func (h *Handler) about(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.UI == nil {
		return handler.Error(execctx.ErrMissingUI)
	}
	ctx.UI.ShowMessage(ctx.T("About %s", ctx.App.Name), AboutText(ctx))
	return handler.Pending()
}

// AboutText builds the body of the About box.
func AboutText(ctx *execctx.ExecutionContext) string {
	var b strings.Builder
	b.WriteString(ctx.App.Name)
	if ctx.App.Version != "" {
		b.WriteString(" ")
		b.WriteString(ctx.App.Version)
	}
	b.WriteString("\n")
	b.WriteString(ctx.T("Running on %s/%s", runtime.GOOS, runtime.GOARCH))
	b.WriteString("\n\n")
	b.WriteString(ctx.T(License))
	return b.String()
}
