package app

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/menu"
	"github.com/dshills/textpad/internal/renderer"
	"github.com/dshills/textpad/internal/statusbar"
)

// Compile-time interface checks.
var (
	_ execctx.ClipboardInterface = (*Clipboard)(nil)
	_ execctx.ViewInterface      = (*viewAdapter)(nil)
)

// Clipboard is the system clipboard with an in-process register behind it.
// The register keeps cut and paste working where no clipboard tool is
// installed, or over ssh.
type Clipboard struct {
	mu       sync.Mutex
	register string
	system   bool
	logger   *Logger
}

// NewClipboard creates a clipboard. system selects the system clipboard
// when the platform supports one.
func NewClipboard(system bool, logger *Logger) *Clipboard {
	if logger == nil {
		logger = NullLogger()
	}
	return &Clipboard{system: system && !clipboard.Unsupported, logger: logger}
}

// ReadAll returns the system clipboard, falling back to the register.
func (c *Clipboard) ReadAll() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.system {
		text, err := clipboard.ReadAll()
		if err == nil && text != "" {
			text = normalizeNewlines(text)
			c.register = text
			return text, nil
		}
		if err != nil {
			c.logger.Debug("system clipboard read failed: %v", err)
		}
	}
	return c.register, nil
}

// WriteAll stores text in the register and the system clipboard.
func (c *Clipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register = text
	if c.system {
		if err := clipboard.WriteAll(text); err != nil {
			c.logger.Debug("system clipboard write failed: %v", err)
		}
	}
	return nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// viewAdapter exposes view state to the view handler and keeps the
// checkable menu items in step with it.
type viewAdapter struct {
	status   *statusbar.Model
	renderer *renderer.Renderer
	nav      *menu.Navigator
}

func (v *viewAdapter) Zoom() int          { return v.status.Zoom().Level() }
func (v *viewAdapter) ZoomIn() error      { return v.status.Zoom().In() }
func (v *viewAdapter) ZoomOut() error     { return v.status.Zoom().Out() }
func (v *viewAdapter) ZoomRestore() error { return v.status.Zoom().Restore() }

func (v *viewAdapter) ToggleWordWrap() bool {
	opts := v.renderer.Options()
	opts.WordWrap = !opts.WordWrap
	v.renderer.SetOptions(opts)
	v.nav.Bar().SetChecked(dispatcher.CmdFormatWordWrap, opts.WordWrap)
	return opts.WordWrap
}

func (v *viewAdapter) ToggleStatusBar() bool {
	on := !v.status.Visible()
	v.status.SetVisible(on)
	v.nav.Bar().SetChecked(dispatcher.CmdViewStatusBar, on)
	return on
}
