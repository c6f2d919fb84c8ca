package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/dshills/textpad/internal/dispatcher"
)

//go:embed menubar.json
var defaultMenubar []byte

// Translator translates menu texts and status tips.
type Translator interface {
	T(key string, args ...any) string
}

// Option configures loading.
type Option func(*loader)

// WithTranslator translates every text and status tip before the
// mnemonic is parsed.
func WithTranslator(tr Translator) Option {
	return func(l *loader) {
		l.tr = tr
	}
}

type loader struct {
	tr   Translator
	errs []error
	keys map[Shortcut]string
}

// Load reads and parses the menu file at path.
func Load(path string, opts ...Option) (*Bar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("menu: reading %s: %w", path, err)
	}
	bar, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bar, nil
}

// Default returns the built-in menu bar.
func Default(opts ...Option) *Bar {
	bar, err := Parse(defaultMenubar, opts...)
	if err != nil {
		panic("menu: built-in menubar: " + err.Error())
	}
	return bar
}

// DefaultJSON returns a copy of the built-in menu file.
func DefaultJSON() []byte {
	return append([]byte(nil), defaultMenubar...)
}

// Parse builds a bar from JSON. All problems are reported together.
func Parse(data []byte, opts ...Option) (*Bar, error) {
	l := &loader{keys: make(map[Shortcut]string)}
	for _, opt := range opts {
		opt(l)
	}

	if !gjson.ValidBytes(data) {
		return nil, configErrorf("", nil, "malformed JSON")
	}
	root := gjson.ParseBytes(data).Get("menubar")
	if !root.IsArray() {
		return nil, configErrorf("menubar", nil, "expected an array of menus")
	}

	var menus []*Item
	for i, m := range root.Array() {
		path := "menubar." + strconv.Itoa(i)
		if it := l.menu(path, m); it != nil {
			menus = append(menus, it)
		}
	}
	if len(l.errs) > 0 {
		return nil, errors.Join(l.errs...)
	}
	return NewBar(menus...), nil
}

func (l *loader) fail(path string, err error, format string, args ...any) {
	l.errs = append(l.errs, configErrorf(path, err, format, args...))
}

func (l *loader) text(s string) string {
	if l.tr == nil || s == "" {
		return s
	}
	return l.tr.T(s)
}

func (l *loader) menu(path string, node gjson.Result) *Item {
	text := node.Get("text")
	if text.Type != gjson.String || text.String() == "" {
		l.fail(path, nil, `"text" is required for a menu`)
		return nil
	}
	children := node.Get("children")
	if !children.IsArray() {
		l.fail(path, nil, `"children" must be an array`)
		return nil
	}

	it := &Item{Kind: KindSubmenu, Label: ParseLabel(l.text(text.String()))}
	for i, child := range children.Array() {
		if c := l.child(path+".children."+strconv.Itoa(i), child); c != nil {
			it.Items = append(it.Items, c)
		}
	}
	return it
}

func (l *loader) child(path string, node gjson.Result) *Item {
	switch kind := node.Get("type").String(); kind {
	case "separator":
		return &Item{Kind: KindSeparator}
	case "menu":
		return l.menu(path, node)
	case "action":
		return l.action(path, node)
	default:
		l.fail(path, nil, "unsupported child type %q", kind)
		return nil
	}
}

func (l *loader) action(path string, node gjson.Result) *Item {
	text := node.Get("text").String()
	if text == "" {
		l.fail(path, nil, `"text" is required for an action`)
		return nil
	}
	name := node.Get("command").String()
	if name == "" {
		l.fail(path, nil, `"command" is required for an action`)
		return nil
	}
	cmd, err := dispatcher.ParseCommandID(name)
	if err != nil {
		l.fail(path+".command", err, "cannot bind %q", text)
		return nil
	}

	it := &Item{
		Kind:      KindAction,
		Label:     ParseLabel(l.text(text)),
		Command:   cmd,
		StatusTip: l.text(node.Get("status-tip").String()),
		Checkable: node.Get("checkable").Bool(),
		Checked:   node.Get("checked").Bool(),
	}

	if spec := node.Get("shortcut").String(); spec != "" {
		sc, err := ParseShortcut(spec)
		if err != nil {
			l.fail(path+".shortcut", err, "cannot bind %q", text)
			return nil
		}
		if other, dup := l.keys[sc]; dup {
			l.fail(path+".shortcut", nil, "%s is already bound to %s", sc, other)
			return nil
		}
		l.keys[sc] = name
		it.Shortcut = sc
	}
	return it
}
