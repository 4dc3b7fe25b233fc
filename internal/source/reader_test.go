package source_test

import (
	"bytes"
	"strings"
	"testing"

	"cesium/internal/source"
)

func newTestReader(t *testing.T, bufs ...[2]string) *source.Reader {
	t.Helper()
	units := make([]source.Unit, 0, len(bufs))
	for _, b := range bufs {
		units = append(units, source.NewUnit(b[0], strings.NewReader(b[1])))
	}
	return source.NewReader(units, nil)
}

func TestAdvanceTracksPositions(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "ab\nc"})
	if !r.NextSource() {
		t.Fatal("NextSource returned false")
	}

	want := []struct {
		ch   rune
		line int
		col  int
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
	}
	for i, w := range want {
		ch := r.Advance()
		if ch != w.ch {
			t.Fatalf("advance %d: got %q, want %q", i, ch, w.ch)
		}
		if pos := r.Pos(); pos.Line != w.line || pos.Col != w.col {
			t.Fatalf("advance %d: position %v, want (%d,%d)", i, pos, w.line, w.col)
		}
	}
	if ch := r.Advance(); ch != source.EndOfSource {
		t.Fatalf("expected end of source, got %q", ch)
	}
	if last := r.LastPos(); last.Line != 2 || last.Col != 1 {
		t.Fatalf("last position after EOF = %v", last)
	}
}

func TestNewlineFolding(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "a\r\nb\rc"})
	r.NextSource()

	var got []rune
	var lines []int
	for {
		ch := r.Advance()
		if ch == source.EndOfSource {
			break
		}
		got = append(got, ch)
		lines = append(lines, r.Pos().Line)
	}
	if string(got) != "a\nb\nc" {
		t.Fatalf("folded stream = %q", string(got))
	}
	wantLines := []int{1, 1, 2, 2, 3}
	for i, l := range wantLines {
		if lines[i] != l {
			t.Fatalf("char %d on line %d, want %d", i, lines[i], l)
		}
	}
}

func TestEmbeddedNulBecomesSpace(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "a\x00b"})
	r.NextSource()
	r.Advance()
	if ch := r.Advance(); ch != ' ' {
		t.Fatalf("embedded NUL read as %q, want space", ch)
	}
	if ch := r.Advance(); ch != 'b' {
		t.Fatalf("got %q after rewritten NUL", ch)
	}
}

func TestAdvanceBeforeLoadPanics(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "x"})
	defer func() {
		if recover() == nil {
			t.Fatal("Advance before NextSource did not panic")
		}
	}()
	r.Advance()
}

func TestSaveRestore(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "abcdef"})
	r.NextSource()
	r.Advance() // a
	r.Advance() // b

	r.SaveState()
	r.Advance() // c
	r.Advance() // d
	r.RestoreState()

	if ch := r.Current(); ch != 'b' {
		t.Fatalf("current after restore = %q, want 'b'", ch)
	}
	if ch := r.Advance(); ch != 'c' {
		t.Fatalf("advance after restore = %q, want 'c'", ch)
	}
}

func TestOverlappingSavePanics(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "ab"})
	r.NextSource()
	r.SaveState()
	defer func() {
		if recover() == nil {
			t.Fatal("overlapping SaveState did not panic")
		}
	}()
	r.SaveState()
}

func TestRestoreWithoutSavePanics(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "ab"})
	r.NextSource()
	defer func() {
		if recover() == nil {
			t.Fatal("RestoreState without save did not panic")
		}
	}()
	r.RestoreState()
}

func TestMultipleBuffers(t *testing.T) {
	r := newTestReader(t, [2]string{"one.cs", "a"}, [2]string{"two.cs", "b"})

	var loaded []string
	r.OnSourceLoaded = func(name string) { loaded = append(loaded, name) }

	if !r.NextSource() {
		t.Fatal("first NextSource failed")
	}
	if r.Name() != "one.cs" {
		t.Fatalf("first buffer name = %q", r.Name())
	}
	if ch := r.Advance(); ch != 'a' {
		t.Fatalf("first buffer char = %q", ch)
	}

	if !r.NextSource() {
		t.Fatal("second NextSource failed")
	}
	if ch := r.Advance(); ch != 'b' {
		t.Fatalf("second buffer char = %q", ch)
	}
	if pos := r.Pos(); pos.Line != 1 || pos.Col != 1 {
		t.Fatalf("position not reset on new buffer: %v", pos)
	}

	if r.NextSource() {
		t.Fatal("NextSource past the last buffer returned true")
	}
	if len(loaded) != 2 || loaded[0] != "one.cs" || loaded[1] != "two.cs" {
		t.Fatalf("hook order = %v", loaded)
	}
}

func TestSkipWhitespace(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "  \t x\n  y"})
	r.NextSource()
	r.Advance()

	if ch := r.SkipWhitespace(false); ch != 'x' {
		t.Fatalf("skip stopped at %q, want 'x'", ch)
	}
	r.Advance() // move past x
	if ch := r.SkipWhitespace(false); ch != '\n' {
		t.Fatalf("newline skip stopped at %q", ch)
	}
	if ch := r.SkipWhitespace(true); ch != 'y' {
		t.Fatalf("skip with newlines stopped at %q", ch)
	}
}

func TestEnsureValidSource(t *testing.T) {
	r := newTestReader(t, [2]string{"a.cs", "z"})
	if !r.EnsureValidSource() {
		t.Fatal("EnsureValidSource did not load the first buffer")
	}
	if ch := r.Advance(); ch != 'z' {
		t.Fatalf("char after EnsureValidSource = %q", ch)
	}
	if !r.EnsureValidSource() {
		t.Fatal("EnsureValidSource false while a buffer is loaded")
	}
}

func TestUTF16Decode(t *testing.T) {
	// "ok" in UTF-16LE with a BOM
	raw := []byte{0xFF, 0xFE, 'o', 0x00, 'k', 0x00}
	r := source.NewReader([]source.Unit{source.NewUnit("w.cs", bytes.NewReader(raw))}, nil)
	r.NextSource()
	if ch := r.Advance(); ch != 'o' {
		t.Fatalf("first UTF-16 char = %q", ch)
	}
	if ch := r.Advance(); ch != 'k' {
		t.Fatalf("second UTF-16 char = %q", ch)
	}
}

func TestUTF8BOMStripped(t *testing.T) {
	raw := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	r := source.NewReader([]source.Unit{source.NewUnit("b.cs", bytes.NewReader(raw))}, nil)
	r.NextSource()
	if ch := r.Advance(); ch != 'h' {
		t.Fatalf("BOM not stripped, first char = %q", ch)
	}
}
