package find_test

import (
	"errors"
	"testing"

	"github.com/dshills/textpad/internal/engine"
	"github.com/dshills/textpad/internal/find"
)

func TestEngineFindNextProperties(t *testing.T) {
	t.Run("absent query without wrap keeps selection", func(t *testing.T) {
		e := engine.New(engine.WithContent("alpha beta gamma"))
		e.SetSelection(engine.NewSelection(6, 10))
		if find.FindNext(e, find.SearchOptions{Query: "delta"}) {
			t.Fatal("expected not found")
		}
		if e.Selection() != engine.NewSelection(6, 10) {
			t.Errorf("selection = %v", e.Selection())
		}
	})

	t.Run("single occurrence found once per scan", func(t *testing.T) {
		e := engine.New(engine.WithContent("x needle y"))
		opts := find.SearchOptions{Query: "needle"}
		if !find.FindNext(e, opts) {
			t.Fatal("expected match")
		}
		if find.FindNext(e, opts) {
			t.Error("expected no second match")
		}
	})

	t.Run("wrap finds occurrence before cursor", func(t *testing.T) {
		e := engine.New(engine.WithContent("needle and hay"))
		e.MoveCursor(8)
		if !find.FindNext(e, find.SearchOptions{Query: "needle", WrapAround: true}) {
			t.Fatal("expected wrapped match")
		}
		if e.SelectionText() != "needle" {
			t.Errorf("selection text = %q", e.SelectionText())
		}
	})

	t.Run("backward walks matches in reverse", func(t *testing.T) {
		e := engine.New(engine.WithContent("ab ab ab"))
		e.MoveCursorToEnd()
		opts := find.SearchOptions{Query: "ab", Direction: find.Backward}
		var starts []engine.ByteOffset
		for find.FindNext(e, opts) {
			starts = append(starts, e.Selection().Start())
		}
		if len(starts) != 3 || starts[0] != 6 || starts[1] != 3 || starts[2] != 0 {
			t.Errorf("starts = %v, want [6 3 0]", starts)
		}
	})

	t.Run("case sensitivity", func(t *testing.T) {
		e := engine.New(engine.WithContent("ABC"))
		if find.FindNext(e, find.SearchOptions{Query: "abc", CaseSensitive: true}) {
			t.Error("case-sensitive search matched")
		}
		if !find.FindNext(e, find.SearchOptions{Query: "abc"}) {
			t.Error("case-insensitive search missed")
		}
	})

	t.Run("empty query", func(t *testing.T) {
		e := engine.New(engine.WithContent("anything"))
		if find.FindNext(e, find.SearchOptions{WrapAround: true}) {
			t.Error("empty query matched")
		}
	})
}

func TestEngineReplaceAll(t *testing.T) {
	tests := []struct {
		text        string
		query       string
		replacement string
		want        string
		count       int
	}{
		{"aaa", "a", "aa", "aaaaaa", 3},
		{"", "x", "y", "", 0},
		{"abcabc", "abc", "", "", 2},
		{"Line\r\nline\r\n", "LINE", "row", "row\nrow\n", 2},
	}

	for _, tt := range tests {
		e := engine.New(engine.WithContent(tt.text))
		count, err := find.ReplaceAll(e, find.SearchOptions{Query: tt.query}, tt.replacement)
		if err != nil {
			t.Fatalf("ReplaceAll(%q): %v", tt.text, err)
		}
		if count != tt.count {
			t.Errorf("ReplaceAll(%q) count = %d, want %d", tt.text, count, tt.count)
		}
		if e.Text() != tt.want {
			t.Errorf("ReplaceAll(%q) text = %q, want %q", tt.text, e.Text(), tt.want)
		}
	}
}

func TestEngineReplaceAllUndoesInOneStep(t *testing.T) {
	e := engine.New(engine.WithContent("a-a-a"))
	if _, err := find.ReplaceAll(e, find.SearchOptions{Query: "a"}, "b"); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "b-b-b" {
		t.Fatalf("text = %q", e.Text())
	}
	if e.UndoDescription() != find.ReplaceAllGroupName {
		t.Errorf("UndoDescription() = %q", e.UndoDescription())
	}
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "a-a-a" {
		t.Errorf("after one Undo = %q", e.Text())
	}
	if e.CanUndo() {
		t.Error("expected a single undo step")
	}
}

func TestEngineReplaceOneReadOnly(t *testing.T) {
	e := engine.New(engine.WithContent("abc"), engine.WithReadOnly())
	ok, err := find.ReplaceOne(e, find.SearchOptions{Query: "b"}, "x")
	if ok {
		t.Error("ReplaceOne reported success on read-only engine")
	}
	if !errors.Is(err, engine.ErrReadOnly) {
		t.Errorf("err = %v, want ErrReadOnly", err)
	}
}

func TestEngineFindThenReplace(t *testing.T) {
	e := engine.New(engine.WithContent("foo foo"))
	opts := find.SearchOptions{Query: "foo"}

	if !find.FindNext(e, opts) {
		t.Fatal("FindNext found nothing")
	}
	if e.Selection() != engine.NewSelection(0, 3) {
		t.Fatalf("selection = %v", e.Selection())
	}
	ok, err := find.ReplaceOne(e, opts, "bar")
	if err != nil || !ok {
		t.Fatalf("ReplaceOne = %v, %v", ok, err)
	}
	if e.Text() != "bar foo" {
		t.Errorf("text = %q, want the highlighted match replaced", e.Text())
	}
	if e.SelectionText() != "foo" {
		t.Errorf("selection text = %q, want the next match", e.SelectionText())
	}

	e = engine.New(engine.WithContent("only foo here"))
	find.FindNext(e, opts)
	ok, err = find.ReplaceOne(e, opts, "bar")
	if err != nil || !ok {
		t.Fatalf("single match ReplaceOne = %v, %v", ok, err)
	}
	if e.Text() != "only bar here" {
		t.Errorf("text = %q", e.Text())
	}
}
