package dispatcher

import "fmt"

// CommandID identifies an editor command.
type CommandID uint8

// Editor commands.
const (
	CmdNone CommandID = iota

	CmdFileNew
	CmdFileOpen
	CmdFileSave
	CmdFileSaveAs
	CmdFileExit

	CmdEditUndo
	CmdEditRedo
	CmdEditCut
	CmdEditCopy
	CmdEditPaste
	CmdEditDelete
	CmdEditFind
	CmdEditFindNext
	CmdEditFindPrevious
	CmdEditReplace
	CmdEditGoTo
	CmdEditSelectAll
	CmdEditInsertDateTime

	CmdFormatWordWrap

	CmdViewZoomIn
	CmdViewZoomOut
	CmdViewZoomRestore
	CmdViewStatusBar

	CmdHelpAbout

	cmdCount
)

// commandNames is the static name table used when loading menu files.
var commandNames = [cmdCount]string{
	CmdNone:               "",
	CmdFileNew:            "file.new",
	CmdFileOpen:           "file.open",
	CmdFileSave:           "file.save",
	CmdFileSaveAs:         "file.saveAs",
	CmdFileExit:           "file.exit",
	CmdEditUndo:           "edit.undo",
	CmdEditRedo:           "edit.redo",
	CmdEditCut:            "edit.cut",
	CmdEditCopy:           "edit.copy",
	CmdEditPaste:          "edit.paste",
	CmdEditDelete:         "edit.delete",
	CmdEditFind:           "edit.find",
	CmdEditFindNext:       "edit.findNext",
	CmdEditFindPrevious:   "edit.findPrevious",
	CmdEditReplace:        "edit.replace",
	CmdEditGoTo:           "edit.goTo",
	CmdEditSelectAll:      "edit.selectAll",
	CmdEditInsertDateTime: "edit.insertDateTime",
	CmdFormatWordWrap:     "format.wordWrap",
	CmdViewZoomIn:         "view.zoomIn",
	CmdViewZoomOut:        "view.zoomOut",
	CmdViewZoomRestore:    "view.zoomRestore",
	CmdViewStatusBar:      "view.statusBar",
	CmdHelpAbout:          "help.about",
}

var commandsByName = func() map[string]CommandID {
	m := make(map[string]CommandID, len(commandNames))
	for id, name := range commandNames {
		if name != "" {
			m[name] = CommandID(id)
		}
	}
	return m
}()

// String returns the command name.
func (c CommandID) String() string {
	if c < cmdCount && c != CmdNone {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// Valid returns true if c names a real command.
func (c CommandID) Valid() bool {
	return c > CmdNone && c < cmdCount
}

// ParseCommandID maps a command name to its ID.
func ParseCommandID(name string) (CommandID, error) {
	if id, ok := commandsByName[name]; ok {
		return id, nil
	}
	return CmdNone, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// AllCommands returns every valid command in declaration order.
func AllCommands() []CommandID {
	ids := make([]CommandID, 0, cmdCount-1)
	for id := CmdNone + 1; id < cmdCount; id++ {
		ids = append(ids, id)
	}
	return ids
}
