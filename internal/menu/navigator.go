package menu

import (
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// EnabledFunc reports whether a command can run now.
type EnabledFunc func(dispatcher.CommandID) bool

type level struct {
	menu *Item
	sel  int
}

// Navigator tracks which menus are open and which item is highlighted.
//
// While open it is modal: HandleEvent consumes every key and mouse event.
type Navigator struct {
	bar    *Bar
	width  int
	top    int
	levels []level
}

// NewNavigator creates a closed navigator over bar.
func NewNavigator(bar *Bar) *Navigator {
	return &Navigator{bar: bar, top: -1}
}

// Bar returns the menu bar.
func (n *Navigator) Bar() *Bar {
	return n.bar
}

// SetBar replaces the menu bar and closes any open menu.
func (n *Navigator) SetBar(bar *Bar) {
	n.Close()
	n.bar = bar
}

// SetWidth sets the screen width used to place dropdowns.
func (n *Navigator) SetWidth(width int) {
	n.width = width
}

// IsOpen returns true if a menu is showing.
func (n *Navigator) IsOpen() bool {
	return len(n.levels) > 0
}

// Active returns the index of the open top-level menu, or -1.
func (n *Navigator) Active() int {
	if !n.IsOpen() {
		return -1
	}
	return n.top
}

// Open shows top-level menu i.
func (n *Navigator) Open(i int) {
	if i < 0 || i >= len(n.bar.Menus) {
		return
	}
	n.top = i
	m := n.bar.Menus[i]
	n.levels = []level{{menu: m, sel: nextSelectable(m.Items, -1, 1)}}
}

// Close hides every menu.
func (n *Navigator) Close() {
	n.levels = nil
	n.top = -1
}

// Highlighted returns the highlighted item of the innermost menu, or nil.
func (n *Navigator) Highlighted() *Item {
	if !n.IsOpen() {
		return nil
	}
	lv := n.levels[len(n.levels)-1]
	if lv.sel < 0 || lv.sel >= len(lv.menu.Items) {
		return nil
	}
	return lv.menu.Items[lv.sel]
}

// Dropdowns returns the open panels, outermost first.
func (n *Navigator) Dropdowns() []Dropdown {
	if !n.IsOpen() {
		return nil
	}
	spans := TitleSpans(n.bar)
	out := make([]Dropdown, 0, len(n.levels))
	left, top := spans[n.top].X, 1
	for i, lv := range n.levels {
		if i > 0 {
			prev := out[i-1]
			left, top = prev.Rect.Right-1, prev.Rect.Top+prev.Selected
		}
		d := newDropdown(lv.menu.Items, left, top, n.width)
		d.Selected = lv.sel
		out = append(out, d)
	}
	return out
}

// HandleEvent updates the navigation state. It returns the command to run,
// or CmdNone, and whether the event was consumed.
func (n *Navigator) HandleEvent(ev backend.Event, enabled EnabledFunc) (dispatcher.CommandID, bool) {
	if !n.IsOpen() {
		return dispatcher.CmdNone, n.handleClosed(ev)
	}
	switch ev.Type {
	case backend.EventKey:
		return n.handleKey(ev, enabled)
	case backend.EventMouse:
		return n.handleMouse(ev, enabled)
	default:
		return dispatcher.CmdNone, false
	}
}

func (n *Navigator) handleClosed(ev backend.Event) bool {
	switch ev.Type {
	case backend.EventKey:
		if ev.Key == backend.KeyF10 && ev.Mod == backend.ModNone {
			n.Open(0)
			return true
		}
		if ev.Key == backend.KeyRune && ev.Mod == backend.ModAlt {
			if i := n.bar.MenuFor(ev.Rune); i >= 0 {
				n.Open(i)
				return true
			}
		}
	case backend.EventMouse:
		if ev.MouseButton == backend.MouseLeft && ev.MouseY == 0 {
			if i := n.titleAt(ev.MouseX); i >= 0 {
				n.Open(i)
				return true
			}
		}
	}
	return false
}

func (n *Navigator) handleKey(ev backend.Event, enabled EnabledFunc) (dispatcher.CommandID, bool) {
	cur := &n.levels[len(n.levels)-1]
	count := len(n.bar.Menus)

	switch ev.Key {
	case backend.KeyEscape:
		n.pop()
	case backend.KeyF10:
		n.Close()
	case backend.KeyLeft:
		if len(n.levels) > 1 {
			n.pop()
		} else {
			n.Open((n.top - 1 + count) % count)
		}
	case backend.KeyRight:
		if it := n.Highlighted(); it != nil && it.Kind == KindSubmenu {
			n.push(it)
		} else {
			n.Open((n.top + 1) % count)
		}
	case backend.KeyUp:
		cur.sel = nextSelectable(cur.menu.Items, cur.sel, -1)
	case backend.KeyDown:
		cur.sel = nextSelectable(cur.menu.Items, cur.sel, 1)
	case backend.KeyHome:
		cur.sel = nextSelectable(cur.menu.Items, -1, 1)
	case backend.KeyEnd:
		cur.sel = nextSelectable(cur.menu.Items, len(cur.menu.Items), -1)
	case backend.KeyEnter:
		return n.activate(n.Highlighted(), enabled), true
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) {
			break
		}
		if ev.Rune == ' ' {
			return n.activate(n.Highlighted(), enabled), true
		}
		for i, it := range cur.menu.Items {
			if it.Selectable() && it.Label.Matches(ev.Rune) {
				cur.sel = i
				return n.activate(it, enabled), true
			}
		}
		if ev.Mod.Has(backend.ModAlt) {
			if i := n.bar.MenuFor(ev.Rune); i >= 0 {
				n.Open(i)
			}
		}
	}
	return dispatcher.CmdNone, true
}

func (n *Navigator) handleMouse(ev backend.Event, enabled EnabledFunc) (dispatcher.CommandID, bool) {
	if ev.MouseButton != backend.MouseLeft {
		return dispatcher.CmdNone, true
	}

	drops := n.Dropdowns()
	for depth := len(drops) - 1; depth >= 0; depth-- {
		i := drops[depth].ItemAt(ev.MouseX, ev.MouseY)
		if i < 0 {
			continue
		}
		it := drops[depth].Items[i]
		if !it.Selectable() {
			return dispatcher.CmdNone, true
		}
		n.levels = n.levels[:depth+1]
		n.levels[depth].sel = i
		return n.activate(it, enabled), true
	}

	if ev.MouseY == 0 {
		if i := n.titleAt(ev.MouseX); i >= 0 && i != n.top {
			n.Open(i)
			return dispatcher.CmdNone, true
		}
	}
	n.Close()
	return dispatcher.CmdNone, true
}

// activate opens a submenu or returns an enabled action's command.
func (n *Navigator) activate(it *Item, enabled EnabledFunc) dispatcher.CommandID {
	if it == nil {
		return dispatcher.CmdNone
	}
	switch it.Kind {
	case KindSubmenu:
		n.push(it)
	case KindAction:
		if enabled != nil && !enabled(it.Command) {
			return dispatcher.CmdNone
		}
		n.Close()
		return it.Command
	}
	return dispatcher.CmdNone
}

func (n *Navigator) push(it *Item) {
	n.levels = append(n.levels, level{menu: it, sel: nextSelectable(it.Items, -1, 1)})
}

func (n *Navigator) pop() {
	if len(n.levels) <= 1 {
		n.Close()
		return
	}
	n.levels = n.levels[:len(n.levels)-1]
}

func (n *Navigator) titleAt(x int) int {
	for i, s := range TitleSpans(n.bar) {
		if s.Contains(x) {
			return i
		}
	}
	return -1
}

// nextSelectable steps from index from in direction dir, wrapping, and
// returns the first selectable item or -1.
func nextSelectable(items []*Item, from, dir int) int {
	n := len(items)
	if n == 0 {
		return -1
	}
	i := from
	for _i := 0; _i < n; _i++ {
		i = ((i+dir)%n + n) % n
		if items[i].Selectable() {
			return i
		}
	}
	return -1
}
