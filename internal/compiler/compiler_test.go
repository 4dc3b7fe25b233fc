package compiler_test

import (
	"strings"
	"testing"

	"cesium/internal/compiler"
	"cesium/internal/diag"
	"cesium/internal/source"
	"cesium/internal/token"
)

func unit(name, src string) source.Unit {
	return source.NewUnit(name, strings.NewReader(src))
}

func literals(toks []token.Token) []token.Value {
	var out []token.Value
	for _, tok := range toks {
		if tok.Kind == token.Literal {
			out = append(out, tok.Value)
		}
	}
	return out
}

func TestConfigDefines(t *testing.T) {
	comp := compiler.New(compiler.Config{Defines: []string{"X"}})
	toks, err := comp.Tokenize([]source.Unit{unit("a.cs", "#if X\n1\n#endif")})
	if err != nil {
		t.Fatal(err)
	}
	lits := literals(toks)
	if len(lits) != 1 || !lits[0].Equal(token.IntValue(1)) {
		t.Fatalf("literals = %v", lits)
	}
}

func TestPerFileScopeIsolation(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	toks, err := comp.Tokenize([]source.Unit{
		unit("a.cs", "#define X\n#if X\n1\n#endif"),
		unit("b.cs", "#if X\n2\n#endif"),
	})
	if err != nil {
		t.Fatal(err)
	}
	lits := literals(toks)
	if len(lits) != 1 || !lits[0].Equal(token.IntValue(1)) {
		t.Fatalf("a #define leaked across buffers: %v", lits)
	}
}

func TestWarningsAsErrors(t *testing.T) {
	comp := compiler.New(compiler.Config{WarningsAsErrors: true})
	if _, err := comp.Tokenize([]source.Unit{unit("a.cs", "1l")}); err != nil {
		t.Fatal(err)
	}
	if !comp.HasErrors() {
		t.Fatal("promoted warning did not set has-errors")
	}
	if comp.Messages.Items()[0].Severity != diag.SevError {
		t.Fatalf("severity = %v", comp.Messages.Items()[0].Severity)
	}
}

func TestConfigDisabledWarnings(t *testing.T) {
	comp := compiler.New(compiler.Config{DisabledWarnings: []int{78}})
	if _, err := comp.Tokenize([]source.Unit{unit("a.cs", "1l")}); err != nil {
		t.Fatal(err)
	}
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestWarningLevelGate(t *testing.T) {
	comp := compiler.New(compiler.Config{WarningLevel: 1})
	if _, err := comp.Tokenize([]source.Unit{unit("a.cs", "1l")}); err != nil {
		t.Fatal(err)
	}
	if comp.Messages.Len() != 0 {
		t.Fatalf("level-4 warning shown at level 1: %v", comp.Messages.Items())
	}
}

func TestMessagesKeepEmissionOrder(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	_, err := comp.Tokenize([]source.Unit{unit("a.cs", "$\n1l\n\"open")})
	if err != nil {
		t.Fatal(err)
	}
	msgs := comp.Messages.Items()
	wantCodes := []diag.Code{
		diag.UnexpectedCharacter,
		diag.UseUppercaseL,
		diag.UnterminatedStringLiteral,
	}
	if len(msgs) != len(wantCodes) {
		t.Fatalf("messages = %v", msgs)
	}
	for i, c := range wantCodes {
		if msgs[i].Code != c {
			t.Fatalf("message %d = %s, want %s", i, msgs[i].Code.ID(), c.ID())
		}
	}
}

func TestCompileReportsParserAndScannerDiagnostics(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	files, err := comp.Compile([]source.Unit{unit("a.cs", "class C { int x = 1l }")})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("files = %d", len(files))
	}
	sawScanner, sawParser := false, false
	for _, m := range comp.Messages.Items() {
		switch m.Code {
		case diag.UseUppercaseL:
			sawScanner = true
		case diag.ExpectedSemicolon:
			sawParser = true
		}
	}
	if !sawScanner || !sawParser {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
	if !comp.HasErrors() {
		t.Fatal("missing semicolon must be an error")
	}
}

func TestMissingFileSurfacesLoadError(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	_, err := comp.Tokenize([]source.Unit{source.NewNamedUnit("does-not-exist.cs")})
	if err == nil {
		t.Fatal("missing file did not error")
	}
}

func TestCompileTwiceIsIndependent(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	if _, err := comp.Compile([]source.Unit{unit("a.cs", "class A { }")}); err != nil {
		t.Fatal(err)
	}
	files, err := comp.Compile([]source.Unit{unit("b.cs", "class B { }")})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Root.Types.Slice()[0].Name.Name != "B" {
		t.Fatalf("second compile = %v", files)
	}
	if comp.Options().Depth() != 1 {
		t.Fatalf("option scopes unbalanced: depth %d", comp.Options().Depth())
	}
}
