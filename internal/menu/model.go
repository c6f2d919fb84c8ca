package menu

import (
	"github.com/dshills/textpad/internal/dispatcher"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// ItemKind distinguishes menu entries.
type ItemKind uint8

const (
	KindAction ItemKind = iota
	KindSeparator
	KindSubmenu
)

// String returns the JSON name of the kind.
func (k ItemKind) String() string {
	switch k {
	case KindSeparator:
		return "separator"
	case KindSubmenu:
		return "menu"
	default:
		return "action"
	}
}

// Item is one menu entry. Top-level menus are KindSubmenu items.
type Item struct {
	Kind      ItemKind
	Label     Label
	Command   dispatcher.CommandID
	Shortcut  Shortcut
	StatusTip string
	Checkable bool
	Checked   bool
	Items     []*Item
}

// Selectable returns true if the item can be highlighted.
func (it *Item) Selectable() bool {
	return it.Kind != KindSeparator
}

// Bar is the menu bar.
type Bar struct {
	Menus []*Item

	byCommand map[dispatcher.CommandID]*Item
}

// NewBar creates a bar and indexes its actions.
func NewBar(menus ...*Item) *Bar {
	b := &Bar{Menus: menus}
	b.reindex()
	return b
}

func (b *Bar) reindex() {
	b.byCommand = make(map[dispatcher.CommandID]*Item)
	b.Walk(func(it *Item) {
		if it.Kind == KindAction {
			if _, dup := b.byCommand[it.Command]; !dup {
				b.byCommand[it.Command] = it
			}
		}
	})
}

// Walk calls fn for every item depth first, top-level menus included.
func (b *Bar) Walk(fn func(*Item)) {
	var walk func(items []*Item)
	walk = func(items []*Item) {
		for _, it := range items {
			fn(it)
			if it.Kind == KindSubmenu {
				walk(it.Items)
			}
		}
	}
	walk(b.Menus)
}

// Item returns the first action bound to cmd, or nil.
func (b *Bar) Item(cmd dispatcher.CommandID) *Item {
	return b.byCommand[cmd]
}

// Commands returns the commands reachable from the bar.
func (b *Bar) Commands() []dispatcher.CommandID {
	var ids []dispatcher.CommandID
	for _, id := range dispatcher.AllCommands() {
		if _, ok := b.byCommand[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetChecked updates the check mark of every checkable action bound to cmd.
func (b *Bar) SetChecked(cmd dispatcher.CommandID, checked bool) {
	b.Walk(func(it *Item) {
		if it.Kind == KindAction && it.Command == cmd && it.Checkable {
			it.Checked = checked
		}
	})
}

// Lookup returns the command whose shortcut matches ev.
func (b *Bar) Lookup(ev backend.Event) (dispatcher.CommandID, bool) {
	var found *Item
	b.Walk(func(it *Item) {
		if found == nil && it.Kind == KindAction && it.Shortcut.Matches(ev) {
			found = it
		}
	})
	if found == nil {
		return dispatcher.CmdNone, false
	}
	return found.Command, true
}

// MenuFor returns the index of the top-level menu with mnemonic r, or -1.
func (b *Bar) MenuFor(r rune) int {
	for i, m := range b.Menus {
		if m.Label.Matches(r) {
			return i
		}
	}
	return -1
}
