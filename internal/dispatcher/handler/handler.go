// Package handler provides the handler interface and result types for command dispatch.
package handler

import "github.com/dshills/textpad/internal/dispatcher/execctx"

// Handler executes one command.
type Handler interface {
	Handle(ctx *execctx.ExecutionContext) Result
}

// Func adapts a function to the Handler interface.
type Func func(ctx *execctx.ExecutionContext) Result

// Handle calls f(ctx).
func (f Func) Handle(ctx *execctx.ExecutionContext) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(ctx)
}

// Enabler is implemented by handlers whose command is not always available.
// Menus grey out commands whose handler reports false.
type Enabler interface {
	Enabled(ctx *execctx.ExecutionContext) bool
}

// EnabledFunc adapts a handler function and an enablement predicate.
type EnabledFunc struct {
	Run  Func
	When func(ctx *execctx.ExecutionContext) bool
}

// Handle runs the handler function.
func (e EnabledFunc) Handle(ctx *execctx.ExecutionContext) Result {
	return e.Run.Handle(ctx)
}

// Enabled reports whether the command can run.
func (e EnabledFunc) Enabled(ctx *execctx.ExecutionContext) bool {
	if e.When == nil {
		return true
	}
	return e.When(ctx)
}
