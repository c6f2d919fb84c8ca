package statusbar

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/textpad/internal/engine/buffer"
	"github.com/dshills/textpad/internal/fileio"
)

// Line separator labels.
const (
	LabelLF   = "Linux (LF)"
	LabelCR   = "Mac (CR)"
	LabelCRLF = "Windows (CRLF)"
)

// Model is the status bar state. The zero value is not usable; use New.
type Model struct {
	line     int
	column   int
	zoom     *Zoom
	sepLabel string
	encLabel string
	visible  bool
}

// New creates a status bar at Ln 1, Col 1 showing zoom, LF and UTF-8.
func New(zoom *Zoom) *Model {
	if zoom == nil {
		zoom = DefaultZoom()
	}
	return &Model{
		line:     1,
		column:   1,
		zoom:     zoom,
		sepLabel: LabelLF,
		encLabel: "UTF-8",
		visible:  true,
	}
}

// SetPosition sets the 1-based line and column.
func (m *Model) SetPosition(line, column int) error {
	if line < 1 || column < 1 {
		return fmt.Errorf("%w: Ln %d, Col %d", ErrInvalidPosition, line, column)
	}
	m.line, m.column = line, column
	return nil
}

// SetCursor sets the position from a 0-based point in lineText.
// The column is counted in grapheme clusters.
func (m *Model) SetCursor(p buffer.Point, lineText string) error {
	return m.SetPosition(int(p.Line)+1, Column(lineText, int(p.Column)))
}

// Column returns the 1-based grapheme column of byteCol within lineText.
func Column(lineText string, byteCol int) int {
	if byteCol > len(lineText) {
		byteCol = len(lineText)
	}
	if byteCol < 0 {
		byteCol = 0
	}
	return uniseg.GraphemeClusterCount(lineText[:byteCol]) + 1
}

// SetLineEnding shows the label for le.
func (m *Model) SetLineEnding(le buffer.LineEnding) error {
	switch le {
	case buffer.LineEndingLF:
		m.sepLabel = LabelLF
	case buffer.LineEndingCR:
		m.sepLabel = LabelCR
	case buffer.LineEndingCRLF:
		m.sepLabel = LabelCRLF
	default:
		return fmt.Errorf("%w: %v", ErrUnknownLineEnding, le)
	}
	return nil
}

// SetLineSeparator shows the label for a literal separator sequence.
func (m *Model) SetLineSeparator(sep string) error {
	switch sep {
	case "\n":
		return m.SetLineEnding(buffer.LineEndingLF)
	case "\r":
		return m.SetLineEnding(buffer.LineEndingCR)
	case "\r\n":
		return m.SetLineEnding(buffer.LineEndingCRLF)
	}
	return fmt.Errorf("%w: %q", ErrUnknownLineEnding, sep)
}

// SetEncoding shows the canonical upper-cased name of an encoding.
func (m *Model) SetEncoding(name string) error {
	enc, err := fileio.LookupEncoding(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	m.encLabel = enc.Label()
	return nil
}

// Zoom returns the zoom model.
func (m *Model) Zoom() *Zoom { return m.zoom }

// Visible reports whether the status bar is shown.
func (m *Model) Visible() bool { return m.visible }

// SetVisible shows or hides the status bar.
func (m *Model) SetVisible(v bool) { m.visible = v }

// PositionLabel returns "Ln L, Col C".
func (m *Model) PositionLabel() string {
	return fmt.Sprintf("Ln %d, Col %d", m.line, m.column)
}

// LineEndingLabel returns the line separator label.
func (m *Model) LineEndingLabel() string { return m.sepLabel }

// EncodingLabel returns the encoding label.
func (m *Model) EncodingLabel() string { return m.encLabel }

// Segments returns the permanent fields in display order.
func (m *Model) Segments() []string {
	return []string{m.PositionLabel(), m.zoom.Label(), m.sepLabel, m.encLabel}
}

// String joins the segments for logging.
func (m *Model) String() string {
	return strings.Join(m.Segments(), " | ")
}
