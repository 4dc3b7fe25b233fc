package token_test

import (
	"testing"

	"cesium/internal/token"
)

func TestKeywordRanges(t *testing.T) {
	cases := []struct {
		kind     token.Kind
		keyword  bool
		modifier bool
		typeKw   bool
		declKw   bool
	}{
		{token.KwPublic, true, true, false, false},
		{token.KwVolatile, true, true, false, false},
		{token.KwInt, true, false, true, false},
		{token.KwVoid, true, false, true, false},
		{token.KwClass, true, false, false, true},
		{token.KwStruct, true, false, false, true},
		{token.KwWhile, true, false, false, false},
		{token.Ident, false, false, false, false},
		{token.Plus, false, false, false, false},
	}
	for _, c := range cases {
		if got := c.kind.IsKeyword(); got != c.keyword {
			t.Errorf("%v.IsKeyword() = %v", c.kind, got)
		}
		if got := c.kind.IsModifier(); got != c.modifier {
			t.Errorf("%v.IsModifier() = %v", c.kind, got)
		}
		if got := c.kind.IsTypeKeyword(); got != c.typeKw {
			t.Errorf("%v.IsTypeKeyword() = %v", c.kind, got)
		}
		if got := c.kind.IsDeclKeyword(); got != c.declKw {
			t.Errorf("%v.IsDeclKeyword() = %v", c.kind, got)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := token.LookupKeyword("namespace"); !ok || k != token.KwNamespace {
		t.Fatalf("namespace lookup = %v, %v", k, ok)
	}
	if _, ok := token.LookupKeyword("Namespace"); ok {
		t.Fatal("keywords must be case-sensitive")
	}
	if _, ok := token.LookupKeyword("true"); ok {
		t.Fatal("'true' is a literal, not a keyword kind")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.AndAnd:     "&&",
		token.Shl:        "<<",
		token.KwAbstract: "abstract",
		token.Semicolon:  ";",
		token.EOF:        "end-of-file",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !token.IntValue(3).Equal(token.IntValue(3)) {
		t.Fatal("equal int values differ")
	}
	if token.IntValue(3).Equal(token.LongValue(3)) {
		t.Fatal("int and long values compare equal")
	}
	if !token.StringValue("x").Equal(token.StringValue("x")) {
		t.Fatal("equal strings differ")
	}
	if !token.NullValue().Equal(token.NullValue()) {
		t.Fatal("null values differ")
	}
}
