package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
)

// Logger is the subset of the application logger the dispatcher uses.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// PostDispatchHook is called after every dispatch with the handler result.
type PostDispatchHook func(id CommandID, result handler.Result)

// ContextBuilder produces a fresh execution context for each dispatch.
type ContextBuilder func() *execctx.ExecutionContext

// Dispatcher routes commands to handlers.
type Dispatcher struct {
	mu sync.RWMutex

	handlers map[CommandID]handler.Handler

	builder   ContextBuilder
	postHooks []PostDispatchHook
	logger    Logger

	opts    Options
	metrics *Metrics
}

// New creates a dispatcher.
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[CommandID]handler.Handler),
		opts:     opts,
	}
	if opts.Metrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with DefaultOptions.
func NewWithDefaults() *Dispatcher {
	return New(DefaultOptions())
}

// SetContextBuilder sets the function used by Dispatch to build contexts.
func (d *Dispatcher) SetContextBuilder(b ContextBuilder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.builder = b
}

// SetLogger sets the logger. A nil logger disables logging.
func (d *Dispatcher) SetLogger(l Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = l
}

// Register binds a handler to a command, replacing any previous binding.
func (d *Dispatcher) Register(id CommandID, h handler.Handler) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCommand, uint8(id))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[id] = h
	return nil
}

// RegisterFunc binds a handler function to a command.
func (d *Dispatcher) RegisterFunc(id CommandID, fn func(*execctx.ExecutionContext) handler.Result) error {
	return d.Register(id, handler.Func(fn))
}

// Unregister removes the handler for a command.
func (d *Dispatcher) Unregister(id CommandID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.handlers, id)
}

// Has returns true if a handler is registered for id.
func (d *Dispatcher) Has(id CommandID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[id]
	return ok
}

// Enabled returns true if id has a handler that is currently available.
func (d *Dispatcher) Enabled(id CommandID, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	h, ok := d.handlers[id]
	d.mu.RUnlock()
	if !ok {
		return false
	}
	if e, ok := h.(handler.Enabler); ok {
		return e.Enabled(ctx)
	}
	return true
}

// RegisterPostHook adds a hook run after every dispatch.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// Dispatch executes a command with a context from the context builder.
func (d *Dispatcher) Dispatch(id CommandID) handler.Result {
	d.mu.RLock()
	b := d.builder
	d.mu.RUnlock()

	var ctx *execctx.ExecutionContext
	if b != nil {
		ctx = b()
	} else {
		ctx = execctx.New()
	}
	return d.DispatchWithContext(id, ctx)
}

// DispatchWithContext executes a command with an explicit context.
func (d *Dispatcher) DispatchWithContext(id CommandID, ctx *execctx.ExecutionContext) handler.Result {
	startTime := time.Now()

	d.mu.RLock()
	h := d.handlers[id]
	hooks := d.postHooks
	logger := d.logger
	d.mu.RUnlock()

	var result handler.Result
	switch {
	case h == nil:
		result = handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, id))
	case d.opts.RecoverPanics:
		result = d.executeWithRecovery(h, id, ctx)
	default:
		result = h.Handle(ctx)
	}

	if logger != nil {
		if result.IsError() {
			logger.Error("command %s failed: %v", id, result.Error)
		} else {
			logger.Debug("command %s: %s", id, result.Status)
		}
	}

	for _, hook := range hooks {
		hook(id, result)
	}

	if d.metrics != nil {
		d.metrics.record(id, time.Since(startTime), result.Status)
	}

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, id CommandID, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w for %s: %v\n%s", ErrPanic, id, r, string(stack[:n])))

			if d.metrics != nil {
				d.metrics.recordPanic()
			}
		}
	}()

	return h.Handle(ctx)
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Options returns the options the dispatcher was created with.
func (d *Dispatcher) Options() Options {
	return d.opts
}
