// Package fileio reads and writes documents in a named character encoding.
//
// Encodings are resolved through the IANA registry, so any name or alias
// that golang.org/x/text knows ("utf-8", "latin1", "windows-1252",
// "shift_jis") is accepted. Files are decoded to UTF-8 on read and encoded
// back on write; a leading byte order mark overrides the configured
// encoding when reading.
package fileio
