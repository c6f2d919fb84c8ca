package fileio

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

var (
	// ErrUnknownEncoding indicates an encoding name is not registered.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrInvalidText indicates UTF-8 input holds invalid byte sequences.
	ErrInvalidText = errors.New("not valid UTF-8 text, open it with another encoding")
)

// Encoding is a resolved character encoding.
type Encoding struct {
	// Name is the canonical IANA name, e.g. "UTF-8" or "ISO-8859-1".
	Name string

	enc encoding.Encoding
}

// LookupEncoding resolves name through the IANA registry.
// An empty name resolves to UTF-8. Underscores are accepted in place of
// hyphens ("utf_8").
func LookupEncoding(name string) (Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	name = strings.TrimSpace(name)

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		enc, err = ianaindex.IANA.Encoding(strings.ReplaceAll(name, "_", "-"))
	}
	if err != nil || enc == nil {
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = strings.ToUpper(name)
	}
	return Encoding{Name: canonical, enc: enc}, nil
}

// MustLookupEncoding is like LookupEncoding but panics on unknown names.
func MustLookupEncoding(name string) Encoding {
	e, err := LookupEncoding(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Label returns the name shown in the status bar.
func (e Encoding) Label() string {
	return strings.ToUpper(e.Name)
}

// Decode converts data in this encoding to UTF-8 text.
// A byte order mark selects UTF-8 or UTF-16 regardless of the encoding.
// Malformed UTF-8 is refused with ErrInvalidText.
func (e Encoding) Decode(data []byte) (string, error) {
	enc := e.enc
	if enc == nil {
		enc = unicode.UTF8
	}
	if invalidUTF8(enc, e.Name, data) {
		return "", fmt.Errorf("decoding %s: %w", e.Name, ErrInvalidText)
	}
	out, err := decodeWithBOM(enc, data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", e.Name, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 text to this encoding.
// Characters the encoding cannot represent are an error.
func (e Encoding) Encode(text string) ([]byte, error) {
	enc := e.enc
	if enc == nil {
		enc = unicode.UTF8
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", e.Name, err)
	}
	return out, nil
}
