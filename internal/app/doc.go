// Package app wires the editor together and runs its event loop.
//
// Application owns the configuration, logger, engine, document, menu,
// dispatcher and dialogs. It is created with New, attached to a terminal
// with SetBackend and started with Run:
//
//	a, err := app.New(app.Options{ConfigPath: path, Files: args})
//	if err != nil {
//		return err
//	}
//	defer a.Shutdown()
//	if err := a.SetBackend(term); err != nil {
//		return err
//	}
//	return a.Run()
//
// Events are handled on the Run goroutine. Key presses go to the topmost
// dialog, then the menu, then menu shortcuts and finally the text. Work
// from other goroutines, such as configuration reloads, is posted back as
// interrupt events.
package app
