// Package dispatcher routes editor commands to handlers.
//
// Every menu item and keyboard shortcut resolves to a CommandID. Command
// names such as "edit.findNext" are looked up in a static table when menu
// files are loaded, so an unknown name is reported at load time instead of
// when the user clicks it.
//
// # Handler Execution
//
// When a command is dispatched:
//
//  1. An ExecutionContext is built by the registered ContextBuilder
//  2. The handler for the command is looked up
//  3. The handler is executed (with optional panic recovery)
//  4. Post-dispatch hooks are called
//  5. Metrics are recorded (if enabled)
//
// Handlers that implement handler.Enabler can report that their command is
// unavailable; menus use Dispatcher.Enabled to grey such items out.
package dispatcher
