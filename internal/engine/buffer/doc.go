// Package buffer provides the text storage behind a document.
//
// A Buffer holds the document text with line endings normalized to "\n" and
// remembers the line ending style the document uses on disk so it can be
// restored when the document is written back. Positions are expressed as
// byte offsets (ByteOffset) or 0-indexed line/column pairs (Point).
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//	buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//	buf.Delete(0, 7)             // "Beautiful World!"
//
//	r, ok := buf.Find("world", 0, false) // case-insensitive scan
//
// All Buffer methods are safe for concurrent use. Reads take a read lock and
// writes take the write lock.
package buffer
