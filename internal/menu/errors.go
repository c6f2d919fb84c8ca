package menu

import (
	"errors"
	"fmt"
)

// ErrInvalidMenu is wrapped by every ConfigError.
var ErrInvalidMenu = errors.New("menu: invalid menu configuration")

// ConfigError describes one problem in a menu file.
type ConfigError struct {
	// Path is the JSON path of the offending node, e.g. "menubar.0.children.3".
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("menu: %s: %v", msg, e.Err)
	}
	return "menu: " + msg
}

// Unwrap returns the cause and ErrInvalidMenu.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidMenu, e.Err}
	}
	return []error{ErrInvalidMenu}
}

func configErrorf(path string, err error, format string, args ...any) *ConfigError {
	return &ConfigError{Path: path, Message: fmt.Sprintf(format, args...), Err: err}
}
