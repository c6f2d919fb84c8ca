// Package renderer draws the editor onto a backend.Backend.
//
// The screen is split into three regions:
//
//	┌─────────────────────────────────────────┐
//	│ File  Edit  Format  View  Help          │  menu bar
//	├─────────────────────────────────────────┤
//	│                                         │
//	│  text area (wrapped or scrolled)        │
//	│                                         │
//	├─────────────────────────────────────────┤
//	│ message          Ln 1, Col 1 │ 100% │ … │  status bar
//	└─────────────────────────────────────────┘
//
// Open dropdowns and dialogs are painted over the text area, innermost
// last. The renderer holds no document state of its own besides the
// scroll position; everything else is read from a Frame on every call
// to Render.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, palette, renderer.DefaultOptions())
//	r.Render(renderer.Frame{Doc: doc, Menu: nav, Status: status})
package renderer
