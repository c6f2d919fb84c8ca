package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler was registered for a command.
	ErrNoHandler = errors.New("dispatcher: no handler for command")

	// ErrUnknownCommand indicates a command name is not in the command table.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrInvalidCommand indicates the command ID is out of range.
	ErrInvalidCommand = errors.New("dispatcher: invalid command")
)
