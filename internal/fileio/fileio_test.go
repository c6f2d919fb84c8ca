package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLookupEncoding(t *testing.T) {
	tests := []struct {
		name      string
		wantLabel string
	}{
		{"", "UTF-8"},
		{"utf-8", "UTF-8"},
		{"Shift_JIS", "SHIFT_JIS"},
		{"utf_8", "UTF-8"},
		{"latin1", "ISO-8859-1"},
		{"ISO-8859-1", "ISO-8859-1"},
		{"windows-1252", "WINDOWS-1252"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := LookupEncoding(tt.name)
			if err != nil {
				t.Fatalf("LookupEncoding(%q) error: %v", tt.name, err)
			}
			if got := enc.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
		})
	}

	if _, err := LookupEncoding("klingon-8"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("unknown encoding error = %v", err)
	}
}

func TestRoundTripLatin1(t *testing.T) {
	enc := MustLookupEncoding("latin1")
	path := filepath.Join(t.TempDir(), "café.txt")

	if err := WriteFile(path, "café\r\nnaïve", enc); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != len("cafe\r\nnaive") {
		t.Errorf("latin1 file is %d bytes, want one byte per character", len(raw))
	}

	text, err := ReadFile(path, enc)
	if err != nil {
		t.Fatal(err)
	}
	if text != "café\r\nnaïve" {
		t.Errorf("ReadFile() = %q", text)
	}
}

func TestUnencodableText(t *testing.T) {
	enc := MustLookupEncoding("latin1")
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, "snowman ☃", enc); err == nil {
		t.Fatal("WriteFile() succeeded for unencodable text")
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "old" {
		t.Errorf("failed write changed file to %q", raw)
	}
}

func TestBOMOverridesEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.txt")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("héllo")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadFile(path, MustLookupEncoding("latin1"))
	if err != nil {
		t.Fatal(err)
	}
	if text != "héllo" {
		t.Errorf("ReadFile() = %q, want BOM-stripped UTF-8", text)
	}
}

func TestInvalidUTF8(t *testing.T) {
	bad := []byte("caf\xe9 ok")
	tests := []struct {
		name    string
		enc     string
		data    []byte
		want    string
		invalid bool
	}{
		{"utf-8", "utf-8", bad, "", true},
		{"utf-8 bom", "latin1", append([]byte{0xEF, 0xBB, 0xBF}, bad...), "", true},
		{"latin1", "latin1", bad, "café ok", false},
		{"valid utf-8", "utf-8", []byte("café ok"), "café ok", false},
		{"utf-16 bom", "utf-8", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustLookupEncoding(tt.enc).Decode(tt.data)
			if tt.invalid {
				if !errors.Is(err, ErrInvalidText) {
					t.Errorf("Decode() error = %v, want ErrInvalidText", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}

	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, bad, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path, Encoding{}); !errors.Is(err, ErrInvalidText) {
		t.Errorf("ReadFile() error = %v, want ErrInvalidText", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), MustLookupEncoding("utf-8"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v", err)
	}
}
