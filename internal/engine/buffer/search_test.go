package buffer

import "testing"

func TestFind(t *testing.T) {
	b := NewBufferFromString("Foo foo FOO")

	tests := []struct {
		name          string
		query         string
		from          ByteOffset
		caseSensitive bool
		want          Range
		found         bool
	}{
		{"sensitive from start", "foo", 0, true, NewRange(4, 7), true},
		{"insensitive from start", "foo", 0, false, NewRange(0, 3), true},
		{"insensitive from middle", "foo", 1, false, NewRange(4, 7), true},
		{"insensitive last", "foo", 5, false, NewRange(8, 11), true},
		{"none after end", "foo", 9, false, Range{}, false},
		{"empty query", "", 0, false, Range{}, false},
		{"sensitive miss", "fOo", 0, true, Range{}, false},
		{"from past end", "foo", 20, false, Range{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Find(tt.query, tt.from, tt.caseSensitive)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("range = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindBackward(t *testing.T) {
	b := NewBufferFromString("Foo foo FOO")

	tests := []struct {
		name          string
		query         string
		before        ByteOffset
		caseSensitive bool
		want          Range
		found         bool
	}{
		{"insensitive from end", "foo", 11, false, NewRange(8, 11), true},
		{"insensitive before last", "foo", 8, false, NewRange(4, 7), true},
		{"overlapping end excluded", "foo", 10, false, NewRange(4, 7), true},
		{"sensitive from end", "Foo", 11, true, NewRange(0, 3), true},
		{"nothing before", "foo", 2, false, Range{}, false},
		{"empty query", "", 11, false, Range{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.FindBackward(tt.query, tt.before, tt.caseSensitive)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("range = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindUnicodeFolding(t *testing.T) {
	b := NewBufferFromString("Straße ÜBER über")

	got, ok := b.Find("über", 0, false)
	if !ok {
		t.Fatal("expected match")
	}
	if text, _ := b.TextRange(got.Start, got.End); text != "ÜBER" {
		t.Errorf("matched %q, want ÜBER", text)
	}

	got, ok = b.FindBackward("ÜBER", b.Len(), false)
	if !ok {
		t.Fatal("expected backward match")
	}
	if text, _ := b.TextRange(got.Start, got.End); text != "über" {
		t.Errorf("matched %q, want über", text)
	}
}

func TestFindMidRuneOffset(t *testing.T) {
	b := NewBufferFromString("éa éa")
	// Offset 1 is inside the first "é".
	got, ok := b.Find("éa", 1, false)
	if !ok {
		t.Fatal("expected match")
	}
	if got.Start != 4 {
		t.Errorf("Start = %d, want 4", got.Start)
	}
}
