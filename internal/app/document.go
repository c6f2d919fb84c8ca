package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/dispatcher/execctx"
	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/fileio"
)

// Document binds the engine to a file on disk.
type Document struct {
	mu sync.RWMutex

	id     string
	engine *engine.Engine
	path   string
	enc    fileio.Encoding
	files  config.FileConfig
}

var _ execctx.DocumentInterface = (*Document)(nil)

// NewDocument creates an unnamed document over e.
func NewDocument(e *engine.Engine, files config.FileConfig) (*Document, error) {
	enc, err := fileio.LookupEncoding(files.Encoding)
	if err != nil {
		return nil, err
	}
	return &Document{
		id:     uuid.NewString(),
		engine: e,
		enc:    enc,
		files:  files,
	}, nil
}

// ID identifies the document for the lifetime of its contents. It changes
// on New and Open.
func (d *Document) ID() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.id
}

// Path returns the file path, or "" for an unsaved document.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// DisplayName returns the base name of the file or the configured default.
func (d *Document) DisplayName() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.path == "" {
		return d.files.Name
	}
	return filepath.Base(d.path)
}

// Encoding returns the encoding used for reading and writing.
func (d *Document) Encoding() fileio.Encoding {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.enc
}

// SetFileConfig applies new file defaults. The encoding of an already
// loaded file is kept.
func (d *Document) SetFileConfig(files config.FileConfig) error {
	enc, err := fileio.LookupEncoding(files.Encoding)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.path == "" {
		d.enc = enc
	}
	d.files = files
	return nil
}

// IsModified reports unsaved changes.
func (d *Document) IsModified() bool {
	return d.engine.IsModified()
}

// New discards the contents and forgets the path.
func (d *Document) New() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.SetContent("")
	d.engine.SetLineEnding(engine.LineEndingLF)
	d.path = ""
	d.id = uuid.NewString()
}

// Open replaces the contents with the file at path.
func (d *Document) Open(path string) error {
	path = d.resolve(path, false)

	d.mu.RLock()
	enc := d.enc
	d.mu.RUnlock()

	text, err := fileio.ReadFile(path, enc)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.SetContent(text)
	d.path = path
	d.id = uuid.NewString()
	return nil
}

// adopt names an empty document after a file that does not exist yet.
func (d *Document) adopt(path string) {
	path = d.resolve(path, false)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.path = path
}

// Save writes the contents to the current path.
func (d *Document) Save() error {
	path := d.Path()
	if path == "" {
		return NewOperationError("save", d.DisplayName(), ErrNoPath)
	}
	return d.write(path)
}

// SaveAs writes the contents to path and adopts it. The configured
// extension is added when path has none.
func (d *Document) SaveAs(path string) error {
	path = d.resolve(path, true)
	if err := d.write(path); err != nil {
		return err
	}
	d.mu.Lock()
	d.path = path
	d.mu.Unlock()
	return nil
}

func (d *Document) write(path string) error {
	if err := fileio.WriteFile(path, d.engine.TextForSave(), d.Encoding()); err != nil {
		return err
	}
	d.engine.MarkSaved()
	return nil
}

// resolve expands "~", anchors relative paths at the configured directory
// and optionally adds the default extension.
func (d *Document) resolve(path string, addExt bool) string {
	d.mu.RLock()
	files := d.files
	d.mu.RUnlock()

	path = expandHome(path)
	if dir := expandHome(files.Directory); dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if addExt && files.Extension != "" && filepath.Ext(path) == "" {
		path += files.Extension
	}
	return filepath.Clean(path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// String implements fmt.Stringer for log fields.
func (d *Document) String() string {
	return fmt.Sprintf("%s (%s)", d.DisplayName(), d.ID())
}
