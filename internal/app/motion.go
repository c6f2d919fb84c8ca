package app

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/textpad/internal/engine"
)

// Cursor motion over grapheme clusters. Lines are "\n" separated in the
// engine, so a line break is always one byte.

// nextBoundary returns the offset after the grapheme at off.
func nextBoundary(e *engine.Engine, off engine.ByteOffset) engine.ByteOffset {
	p := e.OffsetToPoint(off)
	line, err := e.LineText(p.Line)
	if err != nil {
		return off
	}
	if int(p.Column) >= len(line) {
		if p.Line+1 >= e.LineCount() {
			return off
		}
		return off + 1
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(line[p.Column:], -1)
	return off + engine.ByteOffset(len(cluster))
}

// prevBoundary returns the offset of the grapheme before off.
func prevBoundary(e *engine.Engine, off engine.ByteOffset) engine.ByteOffset {
	if off == 0 {
		return 0
	}
	p := e.OffsetToPoint(off)
	if p.Column == 0 {
		return off - 1
	}
	line, err := e.LineText(p.Line)
	if err != nil {
		return off
	}
	return e.PointToOffset(engine.Point{Line: p.Line, Column: uint32(lastClusterStart(line[:p.Column]))})
}

func lastClusterStart(s string) int {
	start, pos := 0, 0
	state := -1
	for s[pos:] != "" {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(s[pos:], state)
		start = pos
		pos += len(cluster)
	}
	return start
}

// graphemeColumn counts the graphemes before byte column col.
func graphemeColumn(line string, col uint32) int {
	if int(col) > len(line) {
		col = uint32(len(line))
	}
	return uniseg.GraphemeClusterCount(line[:col])
}

// byteColumn returns the byte column of the n-th grapheme of line, or the
// line length when the line is shorter.
func byteColumn(line string, n int) uint32 {
	pos := 0
	state := -1
	for i := 0; i < n && pos < len(line); i++ {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(line[pos:], state)
		pos += len(cluster)
	}
	return uint32(pos)
}

// verticalTarget returns the offset delta lines away from off, keeping the
// grapheme column goal. goal < 0 takes the column of off.
func verticalTarget(e *engine.Engine, off engine.ByteOffset, delta, goal int) (engine.ByteOffset, int) {
	p := e.OffsetToPoint(off)
	if goal < 0 {
		line, _ := e.LineText(p.Line)
		goal = graphemeColumn(line, p.Column)
	}

	target := int(p.Line) + delta
	last := int(e.LineCount()) - 1
	switch {
	case target < 0:
		return 0, goal
	case target > last:
		return e.Len(), goal
	}

	line, err := e.LineText(uint32(target))
	if err != nil {
		return off, goal
	}
	return e.PointToOffset(engine.Point{Line: uint32(target), Column: byteColumn(line, goal)}), goal
}

// lineBounds returns the start and end offsets of the line holding off.
func lineBounds(e *engine.Engine, off engine.ByteOffset) (start, end engine.ByteOffset) {
	p := e.OffsetToPoint(off)
	start = e.PointToOffset(engine.Point{Line: p.Line})
	line, err := e.LineText(p.Line)
	if err != nil {
		return start, start
	}
	return start, start + engine.ByteOffset(len(line))
}
