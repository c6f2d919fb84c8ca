// Package config loads the textpad configuration file.
//
// Configuration is a single TOML file. Keys that are absent keep their
// defaults, unknown keys are rejected, and the result is validated before
// use:
//
//	app_name        = "Textpad"
//	locale          = "en"
//	locales_dir     = "locales"
//	datetime_format = "%H:%M %d/%m/%Y"
//	menubar         = ""            # empty uses the built-in menu
//
//	[file]
//	name      = "Untitled"
//	extension = ".txt"
//	encoding  = "utf-8"
//	directory = ""
//
//	[zoom]
//	min     = 10
//	max     = 500
//	factor  = 10
//	restore = 100
//
//	[editor]
//	tab_width  = 4
//	word_wrap  = false
//	status_bar = true
//
//	[theme]
//	foreground   = "#d0d0d0"
//	background   = "#1c1c1c"
//	selection_fg = "#1c1c1c"
//	selection_bg = "#87afd7"
//	menu_fg      = "#1c1c1c"
//	menu_bg      = "#bcbcbc"
//
//	[log]
//	path  = ""
//	level = "info"
//
// # Sub-packages
//
//   - watcher: fsnotify-based live reload of the configuration file
package config
