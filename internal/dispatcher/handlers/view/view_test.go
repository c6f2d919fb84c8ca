package view

import (
	"testing"

	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/dispatcher/handler"
	"github.com/dshills/textpad/internal/dispatcher/handlers/handlertest"
)

func TestZoom(t *testing.T) {
	env := handlertest.NewEnv("")
	env.View.Max = 120
	h := NewHandler()

	steps := []struct {
		id         dispatcher.CommandID
		wantZoom   int
		wantStatus handler.ResultStatus
		wantMsg    string
	}{
		{dispatcher.CmdViewZoomIn, 110, handler.StatusOK, "Zoom 110%"},
		{dispatcher.CmdViewZoomIn, 120, handler.StatusOK, "Zoom 120%"},
		{dispatcher.CmdViewZoomIn, 120, handler.StatusNoOp, "handlertest: zoom out of range"},
		{dispatcher.CmdViewZoomOut, 110, handler.StatusOK, "Zoom 110%"},
		{dispatcher.CmdViewZoomRestore, 100, handler.StatusOK, "Zoom 100%"},
	}
	for i, s := range steps {
		r := h.HandleCommand(s.id, env.Ctx)
		if r.Status != s.wantStatus || r.Message != s.wantMsg {
			t.Errorf("step %d %s = %+v", i, s.id, r)
		}
		if env.View.Zoom() != s.wantZoom {
			t.Errorf("step %d zoom = %d, want %d", i, env.View.Zoom(), s.wantZoom)
		}
	}
}

func TestToggles(t *testing.T) {
	env := handlertest.NewEnv("")
	h := NewHandler()

	r := h.HandleCommand(dispatcher.CmdFormatWordWrap, env.Ctx)
	if !env.View.WordWrap || r.Message != "Word wrap on" {
		t.Errorf("word wrap toggle = %+v, wrap=%v", r, env.View.WordWrap)
	}
	r = h.HandleCommand(dispatcher.CmdViewStatusBar, env.Ctx)
	if env.View.StatusBar || r.Message != "Status bar off" {
		t.Errorf("status bar toggle = %+v, visible=%v", r, env.View.StatusBar)
	}
}

func TestMissingView(t *testing.T) {
	r := NewHandler().HandleCommand(dispatcher.CmdViewZoomIn, execctx.New())
	if !r.IsError() {
		t.Errorf("ZoomIn without view = %+v", r)
	}
}
