package fileio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultPerm is the mode for newly created files.
const DefaultPerm os.FileMode = 0o644

// ReadFile reads path and decodes it with enc.
func ReadFile(path string, enc Encoding) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text, err := enc.Decode(data)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}

// WriteFile encodes text with enc and replaces path.
//
// The data is written to a temporary file in the same directory and
// renamed over path, so a failed write leaves the old file intact.
func WriteFile(path, text string, enc Encoding) error {
	data, err := enc.Encode(text)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	perm := DefaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// invalidUTF8 reports whether data will be read as UTF-8, by its BOM or by
// enc, and contains bytes that are not valid UTF-8.
func invalidUTF8(enc encoding.Encoding, name string, data []byte) bool {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		data = data[len(utf8BOM):]
	case bytes.HasPrefix(data, utf16BEBOM), bytes.HasPrefix(data, utf16LEBOM):
		return false
	case enc != unicode.UTF8 && !strings.EqualFold(name, "UTF-8"):
		return false
	}
	return !utf8.Valid(data)
}

func decodeWithBOM(enc encoding.Encoding, data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	return out, err
}
