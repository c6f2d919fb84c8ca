package config

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ThemeConfig holds the screen colors as "#rrggbb" strings.
type ThemeConfig struct {
	Foreground  string `toml:"foreground"`
	Background  string `toml:"background"`
	SelectionFG string `toml:"selection_fg"`
	SelectionBG string `toml:"selection_bg"`
	MenuFG      string `toml:"menu_fg"`
	MenuBG      string `toml:"menu_bg"`
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Foreground:  "#d0d0d0",
		Background:  "#1c1c1c",
		SelectionFG: "#1c1c1c",
		SelectionBG: "#87afd7",
		MenuFG:      "#1c1c1c",
		MenuBG:      "#bcbcbc",
	}
}

// Palette is a theme resolved to terminal colors.
type Palette struct {
	Foreground  tcell.Color
	Background  tcell.Color
	SelectionFG tcell.Color
	SelectionBG tcell.Color
	MenuFG      tcell.Color
	MenuBG      tcell.Color

	// MenuDisabled is MenuFG faded halfway toward MenuBG.
	MenuDisabled tcell.Color
}

func (t ThemeConfig) fields() []struct{ key, value string } {
	return []struct{ key, value string }{
		{"theme.foreground", t.Foreground},
		{"theme.background", t.Background},
		{"theme.selection_fg", t.SelectionFG},
		{"theme.selection_bg", t.SelectionBG},
		{"theme.menu_fg", t.MenuFG},
		{"theme.menu_bg", t.MenuBG},
	}
}

// Validate checks every color parses.
func (t ThemeConfig) Validate() error {
	var errs []error
	for _, f := range t.fields() {
		if _, err := colorful.Hex(f.value); err != nil {
			errs = append(errs, &ValidationError{
				Path:    f.key,
				Message: "must be a #rrggbb color",
				Value:   f.value,
				Err:     ErrInvalidColor,
			})
		}
	}
	return errors.Join(errs...)
}

// Palette resolves the theme to terminal colors.
func (t ThemeConfig) Palette() (Palette, error) {
	parsed := make([]colorful.Color, 0, 6)
	for _, f := range t.fields() {
		c, err := colorful.Hex(f.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w: %q", f.key, ErrInvalidColor, f.value)
		}
		parsed = append(parsed, c)
	}

	p := Palette{
		Foreground:  toTcell(parsed[0]),
		Background:  toTcell(parsed[1]),
		SelectionFG: toTcell(parsed[2]),
		SelectionBG: toTcell(parsed[3]),
		MenuFG:      toTcell(parsed[4]),
		MenuBG:      toTcell(parsed[5]),
	}
	p.MenuDisabled = toTcell(parsed[4].BlendLab(parsed[5], 0.5).Clamped())
	return p, nil
}

// DefaultPalette returns the palette of DefaultTheme.
func DefaultPalette() Palette {
	p, _ := DefaultTheme().Palette()
	return p
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
