package ast_test

import (
	"testing"

	"cesium/internal/ast"
	"cesium/internal/source"
	"cesium/internal/token"
)

func ident(name string) *ast.Identifier {
	return ast.NewIdentifier(name, source.FileSpan{Name: "t.cs"})
}

func TestListAppendAndOrder(t *testing.T) {
	var list ast.List[*ast.Identifier]
	a, b, c := ident("a"), ident("b"), ident("c")
	list.Append(a)
	list.Append(b)
	list.Append(c)

	if list.Len() != 3 {
		t.Fatalf("len = %d", list.Len())
	}
	got := list.Slice()
	if got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("order = %v", got)
	}
	if first, ok := list.First(); !ok || first != a {
		t.Fatalf("first = %v", first)
	}
	if a.NextSibling() != ast.Node(b) {
		t.Fatal("sibling link broken")
	}
	if c.NextSibling() != nil {
		t.Fatal("tail has a sibling")
	}
}

func TestNodeCannotJoinTwoChains(t *testing.T) {
	var one, two ast.List[*ast.Identifier]
	n := ident("n")
	one.Append(n)
	defer func() {
		if recover() == nil {
			t.Fatal("appending a node to a second chain did not panic")
		}
	}()
	two.Append(n)
}

func TestRootNamespaceMustBeAnonymous(t *testing.T) {
	named := ast.NewNamespace(ident("N"), source.FileSpan{})
	defer func() {
		if recover() == nil {
			t.Fatal("named root namespace did not panic")
		}
	}()
	ast.NewSourceFile(named, source.FileSpan{})
}

func TestTypeRefInvariants(t *testing.T) {
	ref := ast.NewReferenceType(ast.PrimInt)

	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("array of reference", func() { ast.NewArrayType(ref, 1) })
	mustPanic("zero-rank array", func() { ast.NewArrayType(ast.PrimInt, 0) })
	mustPanic("pointer to reference", func() { ast.NewPointerType(ref) })
	mustPanic("nullable of reference", func() { ast.NewNullableType(ref) })
	mustPanic("nullable of nullable", func() {
		ast.NewNullableType(ast.NewNullableType(ast.PrimInt))
	})
}

func TestTypeNames(t *testing.T) {
	cases := map[string]ast.Type{
		"int":       ast.PrimInt,
		"int[,,]":   ast.NewArrayType(ast.PrimInt, 3),
		"byte*":     ast.NewPointerType(ast.PrimByte),
		"string&":   ast.NewReferenceType(ast.PrimString),
		"decimal?":  ast.NewNullableType(ast.PrimDecimal),
		"char[]":    ast.NewArrayType(ast.PrimChar, 1),
		"bool[][]":  nil, // jagged arrays are not constructed by the parser
		"List.Node": &ast.UnresolvedNestedType{Outer: &ast.UnresolvedType{Name: ident("List")}, Name: ident("Node")},
	}
	for want, typ := range cases {
		if typ == nil {
			continue
		}
		if got := typ.String(); got != want {
			t.Errorf("type name = %q, want %q", got, want)
		}
	}
}

func TestPrimitiveFromToken(t *testing.T) {
	if p, ok := ast.PrimitiveFromToken(token.KwUlong); !ok || p != ast.PrimUlong {
		t.Fatalf("ulong lookup = %v, %v", p, ok)
	}
	if _, ok := ast.PrimitiveFromToken(token.KwClass); ok {
		t.Fatal("'class' is not a primitive")
	}
}

func TestEnumBases(t *testing.T) {
	if !ast.IsValidEnumBase(ast.PrimByte) || !ast.IsValidEnumBase(ast.PrimUlong) {
		t.Fatal("integral base rejected")
	}
	if ast.IsValidEnumBase(ast.PrimString) || ast.IsValidEnumBase(ast.PrimBool) {
		t.Fatal("non-integral base accepted")
	}
}

func TestModifiers(t *testing.T) {
	m, ok := ast.ModifierFromToken(token.KwPublic)
	if !ok || m != ast.ModPublic {
		t.Fatalf("public lookup = %v, %v", m, ok)
	}
	set := ast.ModPublic | ast.ModStatic
	if !set.Has(ast.ModStatic) || set.Has(ast.ModSealed) {
		t.Fatal("bit test broken")
	}
	if s := set.String(); s != "public static" {
		t.Fatalf("modifiers string = %q", s)
	}
}
