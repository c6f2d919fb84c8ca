// Package menu builds the menu bar from a JSON description and tracks
// keyboard and mouse navigation through it.
//
// The file format mirrors a desktop menu definition:
//
//	{
//	  "menubar": [
//	    {
//	      "text": "&File",
//	      "children": [
//	        {"type": "action", "text": "&Save", "command": "file.save",
//	         "shortcut": "Ctrl+S", "status-tip": "Save the document"},
//	        {"type": "separator"},
//	        {"type": "menu", "text": "&Recent", "children": []}
//	      ]
//	    }
//	  ]
//	}
//
// An "&" marks the mnemonic of a label; "&&" is a literal ampersand.
// Commands are resolved once, at load time, through the dispatcher's
// command table. Unknown commands, unknown child types and missing keys are
// load errors.
package menu
