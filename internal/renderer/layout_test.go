package renderer

import "testing"

func rowText(l *lineLayout, row int) string {
	var s []rune
	for _, g := range l.RowGlyphs(row) {
		s = append(s, g.Rune)
		s = append(s, g.Combc...)
	}
	return string(s)
}

func TestLayoutLineExpandsTabs(t *testing.T) {
	l := layoutLine("a\tb", 4, 0)
	if len(l.Glyphs) != 3 {
		t.Fatalf("glyphs = %d, want 3", len(l.Glyphs))
	}
	if g := l.Glyphs[1]; g.Rune != ' ' || g.Width != 3 || g.X != 1 {
		t.Errorf("tab glyph = %+v", g)
	}
	if g := l.Glyphs[2]; g.X != 4 || g.Col != 2 {
		t.Errorf("b glyph = %+v", g)
	}
	if l.Width != 5 {
		t.Errorf("Width = %d, want 5", l.Width)
	}
}

func TestLayoutLineWideAndCombining(t *testing.T) {
	l := layoutLine("e\u0301中a", 4, 0)
	if len(l.Glyphs) != 3 {
		t.Fatalf("glyphs = %d, want 3", len(l.Glyphs))
	}
	if g := l.Glyphs[0]; len(g.Combc) != 1 || g.Combc[0] != '\u0301' {
		t.Errorf("combining mark not folded: %+v", g)
	}
	if g := l.Glyphs[1]; g.Width != 2 || g.X != 1 || g.Col != 3 {
		t.Errorf("wide glyph = %+v", g)
	}
	if g := l.Glyphs[2]; g.X != 3 || g.Col != 6 {
		t.Errorf("a glyph = %+v", g)
	}
}

func TestLayoutLineWrap(t *testing.T) {
	tests := []struct {
		name string
		text string
		wrap int
		want []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"at space", "hello world again", 11, []string{"hello ", "world again"}},
		{"long word", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"empty", "", 5, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layoutLine(tt.text, 4, tt.wrap)
			if l.RowCount() != len(tt.want) {
				t.Fatalf("RowCount() = %d, want %d", l.RowCount(), len(tt.want))
			}
			for i, w := range tt.want {
				if got := rowText(l, i); got != w {
					t.Errorf("row %d = %q, want %q", i, got, w)
				}
			}
		})
	}
}

func TestLayoutLocateAndColumnAt(t *testing.T) {
	l := layoutLine("hello world again", 4, 11)

	tests := []struct {
		col    uint32
		row, x int
	}{
		{0, 0, 0},
		{5, 0, 5},
		{6, 1, 0},
		{8, 1, 2},
		{17, 1, 11},
	}
	for _, tt := range tests {
		row, x := l.Locate(tt.col)
		if row != tt.row || x != tt.x {
			t.Errorf("Locate(%d) = (%d, %d), want (%d, %d)", tt.col, row, x, tt.row, tt.x)
		}
	}

	if got := l.ColumnAt(1, 2); got != 8 {
		t.Errorf("ColumnAt(1, 2) = %d, want 8", got)
	}
	if got := l.ColumnAt(0, 40); got != 6 {
		t.Errorf("ColumnAt past wrapped row = %d, want 6", got)
	}
	if got := l.ColumnAt(1, 40); got != 17 {
		t.Errorf("ColumnAt past last row = %d, want 17", got)
	}
}
