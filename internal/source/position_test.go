package source_test

import (
	"testing"

	"cesium/internal/source"
)

func TestPositionBefore(t *testing.T) {
	cases := []struct {
		a, b source.Position
		want bool
	}{
		{source.Position{Line: 1, Col: 1}, source.Position{Line: 1, Col: 2}, true},
		{source.Position{Line: 1, Col: 9}, source.Position{Line: 2, Col: 1}, true},
		{source.Position{Line: 2, Col: 1}, source.Position{Line: 1, Col: 9}, false},
		{source.Position{Line: 1, Col: 1}, source.Position{Line: 1, Col: 1}, false},
	}
	for _, c := range cases {
		if got := c.a.Before(c.b); got != c.want {
			t.Errorf("%v.Before(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{
		Start: source.Position{Line: 2, Col: 3},
		End:   source.Position{Line: 2, Col: 7},
	}
	b := source.Span{
		Start: source.Position{Line: 1, Col: 5},
		End:   source.Position{Line: 3, Col: 1},
	}
	got := a.Cover(b)
	if got.Start != b.Start || got.End != b.End {
		t.Fatalf("cover = %v", got)
	}
}

func TestFileSpanString(t *testing.T) {
	fs := source.FileSpan{
		Name: "main.cs",
		Span: source.Span{Start: source.Position{Line: 3, Col: 14}},
	}
	if got := fs.String(); got != "main.cs(3,14)" {
		t.Fatalf("FileSpan.String() = %q", got)
	}
}
