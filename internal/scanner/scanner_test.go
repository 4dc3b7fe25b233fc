package scanner_test

import (
	"strings"
	"testing"

	"cesium/internal/compiler"
	"cesium/internal/diag"
	"cesium/internal/scanner"
	"cesium/internal/source"
	"cesium/internal/token"
)

// tokenize runs the scanner over one in-memory buffer named test.cs.
func tokenize(t *testing.T, src string) ([]token.Token, *compiler.Compiler) {
	t.Helper()
	comp := compiler.New(compiler.Config{})
	toks, err := comp.Tokenize([]source.Unit{
		source.NewUnit("test.cs", strings.NewReader(src)),
	})
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return toks, comp
}

// realTokens drops the EOF/EOD markers.
func realTokens(toks []token.Token) []token.Token {
	var out []token.Token
	for _, tok := range toks {
		if tok.Kind != token.EOF && tok.Kind != token.EOD {
			out = append(out, tok)
		}
	}
	return out
}

func wantMessage(t *testing.T, comp *compiler.Compiler, i int, code diag.Code, line, col int) {
	t.Helper()
	msgs := comp.Messages.Items()
	if len(msgs) <= i {
		t.Fatalf("want message %d (%s), have %d messages", i, code.ID(), len(msgs))
	}
	m := msgs[i]
	if m.Code != code {
		t.Fatalf("message %d code = %s, want %s (%q)", i, m.Code.ID(), code.ID(), m.Text)
	}
	if m.Pos.Line != line || m.Pos.Col != col {
		t.Fatalf("message %d at %v, want (%d,%d)", i, m.Pos, line, col)
	}
}

func TestLowercaseLSuffix(t *testing.T) {
	toks, comp := tokenize(t, "1l")
	real := realTokens(toks)
	if len(real) != 1 || real[0].Kind != token.Literal {
		t.Fatalf("tokens = %v", real)
	}
	if !real[0].Value.Equal(token.LongValue(1)) {
		t.Fatalf("value = %v", real[0].Value)
	}
	if comp.Messages.Len() != 1 {
		t.Fatalf("message count = %d", comp.Messages.Len())
	}
	wantMessage(t, comp, 0, diag.UseUppercaseL, 1, 2)
}

func TestPragmaDisablesUppercaseLWarning(t *testing.T) {
	toks, comp := tokenize(t, "#pragma warning disable 78\n1l")
	real := realTokens(toks)
	if len(real) != 1 || !real[0].Value.Equal(token.LongValue(1)) {
		t.Fatalf("tokens = %v", real)
	}
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestConditionalChain(t *testing.T) {
	src := "#define YES\n#if YES && NO\n1\n#elif NO || YES\n2\n#else\n3\n#endif"
	toks, comp := tokenize(t, src)
	real := realTokens(toks)
	if len(real) != 1 {
		t.Fatalf("tokens = %v", real)
	}
	if !real[0].Value.Equal(token.IntValue(2)) {
		t.Fatalf("value = %v, want 2", real[0].Value)
	}
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestStringEscapes(t *testing.T) {
	toks, comp := tokenize(t, `"\r\n\q\p"`)
	real := realTokens(toks)
	if len(real) != 1 {
		t.Fatalf("tokens = %v", real)
	}
	want := "\r\n��"
	if real[0].Value.Str != want {
		t.Fatalf("string value = %q, want %q", real[0].Value.Str, want)
	}
	wantMessage(t, comp, 0, diag.UnrecognizedEscape, 1, 7)
	wantMessage(t, comp, 1, diag.UnrecognizedEscape, 1, 9)
}

func TestHexOverflow(t *testing.T) {
	_, comp := tokenize(t, "0x123456789abcdef01")
	wantMessage(t, comp, 0, diag.IntegralConstantTooLarge, 1, 1)
}

func TestLineHidden(t *testing.T) {
	toks, _ := tokenize(t, "#line hidden\nvoid")
	real := realTokens(toks)
	if len(real) != 1 || real[0].Kind != token.KwVoid {
		t.Fatalf("tokens = %v", real)
	}
	if real[0].Line != token.LineHidden {
		t.Fatalf("line override = %d, want hidden", real[0].Line)
	}
}

func TestInvalidPPExpression(t *testing.T) {
	toks, comp := tokenize(t, "#if a a a")
	if len(realTokens(toks)) != 0 {
		t.Fatalf("tokens = %v", realTokens(toks))
	}
	wantMessage(t, comp, 0, diag.InvalidPPExpression, 1, 1)
}

func TestIntegerTyping(t *testing.T) {
	cases := []struct {
		src  string
		want token.Value
	}{
		{"0", token.IntValue(0)},
		{"123", token.IntValue(123)},
		{"2147483647", token.IntValue(2147483647)},
		{"2147483648", token.UintValue(2147483648)},
		{"4294967295", token.UintValue(4294967295)},
		{"4294967296", token.LongValue(4294967296)},
		{"9223372036854775807", token.LongValue(9223372036854775807)},
		{"9223372036854775808", token.UlongValue(9223372036854775808)},
		{"3u", token.UintValue(3)},
		{"3L", token.LongValue(3)},
		{"3UL", token.UlongValue(3)},
		{"3LU", token.UlongValue(3)},
		{"0x10", token.IntValue(16)},
		{"0xffffffff", token.UintValue(0xffffffff)},
		{"0xfffffffff", token.UlongValue(0xfffffffff)},
		{"0x7fffffffL", token.LongValue(0x7fffffff)},
	}
	for _, c := range cases {
		toks, _ := tokenize(t, c.src)
		real := realTokens(toks)
		if len(real) != 1 || real[0].Kind != token.Literal {
			t.Fatalf("%s: tokens = %v", c.src, real)
		}
		if !real[0].Value.Equal(c.want) {
			t.Errorf("%s: value = %v (kind %d), want %v (kind %d)",
				c.src, real[0].Value, real[0].Value.Kind, c.want, c.want.Kind)
		}
	}
}

func TestRealLiterals(t *testing.T) {
	toks, _ := tokenize(t, "1.5")
	if v := realTokens(toks)[0].Value; !v.Equal(token.DoubleValue(1.5)) {
		t.Fatalf("1.5 = %v", v)
	}
	toks, _ = tokenize(t, ".5")
	if v := realTokens(toks)[0].Value; !v.Equal(token.DoubleValue(0.5)) {
		t.Fatalf(".5 = %v", v)
	}
	toks, _ = tokenize(t, "2f")
	if v := realTokens(toks)[0].Value; !v.Equal(token.FloatValue(2)) {
		t.Fatalf("2f = %v", v)
	}
	toks, _ = tokenize(t, "3d")
	if v := realTokens(toks)[0].Value; !v.Equal(token.DoubleValue(3)) {
		t.Fatalf("3d = %v", v)
	}
	toks, _ = tokenize(t, "1e2")
	if v := realTokens(toks)[0].Value; !v.Equal(token.DoubleValue(100)) {
		t.Fatalf("1e2 = %v", v)
	}
	toks, _ = tokenize(t, "1.5m")
	if v := realTokens(toks)[0].Value; v.Kind != token.ValDecimal {
		t.Fatalf("1.5m kind = %d", v.Kind)
	}

	_, comp := tokenize(t, "1e")
	wantMessage(t, comp, 0, diag.InvalidNumber, 1, 1)

	_, comp = tokenize(t, "1e39f")
	wantMessage(t, comp, 0, diag.RealConstantTooLarge, 1, 1)
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks, _ := tokenize(t, `class Foo @int _bar \u0066oo`)
	real := realTokens(toks)
	wantKinds := []token.Kind{token.KwClass, token.Ident, token.Ident, token.Ident, token.Ident}
	if len(real) != len(wantKinds) {
		t.Fatalf("tokens = %v", real)
	}
	for i, k := range wantKinds {
		if real[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, real[i].Kind, k)
		}
	}
	if real[2].Value.Str != "int" {
		t.Fatalf("verbatim identifier = %q", real[2].Value.Str)
	}
	if real[4].Value.Str != "foo" {
		t.Fatalf("escaped identifier = %q", real[4].Value.Str)
	}
}

func TestBoolAndNullLiterals(t *testing.T) {
	toks, _ := tokenize(t, "true false null")
	real := realTokens(toks)
	if !real[0].Value.Equal(token.BoolValue(true)) ||
		!real[1].Value.Equal(token.BoolValue(false)) ||
		!real[2].Value.Equal(token.NullValue()) {
		t.Fatalf("tokens = %v", real)
	}
}

func TestVerbatimStrings(t *testing.T) {
	toks, _ := tokenize(t, `@"a""b"`)
	if v := realTokens(toks)[0].Value.Str; v != `a"b` {
		t.Fatalf("verbatim string = %q", v)
	}
	toks, _ = tokenize(t, "@\"line1\nline2\"")
	if v := realTokens(toks)[0].Value.Str; v != "line1\nline2" {
		t.Fatalf("multiline verbatim = %q", v)
	}
}

func TestStringErrors(t *testing.T) {
	_, comp := tokenize(t, `"abc`)
	wantMessage(t, comp, 0, diag.UnterminatedStringLiteral, 1, 1)

	_, comp = tokenize(t, "\"ab\ncd\"")
	if comp.Messages.Items()[0].Code != diag.NewlineInConstant {
		t.Fatalf("first message = %v", comp.Messages.Items()[0])
	}
}

func TestCharLiterals(t *testing.T) {
	toks, _ := tokenize(t, "'a'")
	if v := realTokens(toks)[0].Value; !v.Equal(token.CharValue('a')) {
		t.Fatalf("'a' = %v", v)
	}
	toks, _ = tokenize(t, `'\n'`)
	if v := realTokens(toks)[0].Value; !v.Equal(token.CharValue('\n')) {
		t.Fatalf("'\\n' = %v", v)
	}
	toks, _ = tokenize(t, `'\x41'`)
	if v := realTokens(toks)[0].Value; !v.Equal(token.CharValue('A')) {
		t.Fatalf("'\\x41' = %v", v)
	}

	_, comp := tokenize(t, "''")
	wantMessage(t, comp, 0, diag.EmptyCharacterLiteral, 1, 1)

	_, comp = tokenize(t, "'ab'")
	wantMessage(t, comp, 0, diag.CharacterLiteralTooLong, 1, 1)
}

func TestComments(t *testing.T) {
	toks, comp := tokenize(t, "// note\n1")
	if v := realTokens(toks)[0].Value; !v.Equal(token.IntValue(1)) {
		t.Fatalf("after line comment: %v", v)
	}
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}

	toks, _ = tokenize(t, "/* a\nb */ 2")
	if v := realTokens(toks)[0].Value; !v.Equal(token.IntValue(2)) {
		t.Fatalf("after block comment: %v", v)
	}

	_, comp = tokenize(t, "/* open")
	wantMessage(t, comp, 0, diag.UnterminatedComment, 1, 1)
}

func TestXmlCommentLine(t *testing.T) {
	toks, _ := tokenize(t, "/// summary text")
	real := realTokens(toks)
	if len(real) != 1 || real[0].Kind != token.XmlCommentLine {
		t.Fatalf("tokens = %v", real)
	}
	if real[0].Value.Str != " summary text" {
		t.Fatalf("doc text = %q", real[0].Value.Str)
	}
}

func TestOperators(t *testing.T) {
	toks, _ := tokenize(t, "a += b <<= == != ?? :: -> ++ =")
	real := realTokens(toks)
	wantKinds := []token.Kind{
		token.Ident, token.OpAssign, token.Ident, token.OpAssign,
		token.EqEq, token.NotEq, token.QuestionQuestion, token.ColonColon,
		token.Arrow, token.Increment, token.OpAssign,
	}
	if len(real) != len(wantKinds) {
		t.Fatalf("token count = %d, want %d", len(real), len(wantKinds))
	}
	for i, k := range wantKinds {
		if real[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, real[i].Kind, k)
		}
	}
	if real[1].Value.Op != token.Plus {
		t.Fatalf("+= base op = %v", real[1].Value.Op)
	}
	if real[3].Value.Op != token.Shl {
		t.Fatalf("<<= base op = %v", real[3].Value.Op)
	}
	if real[10].Value.Op != token.Assign {
		t.Fatalf("= base op = %v", real[10].Value.Op)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, comp := tokenize(t, "$")
	wantMessage(t, comp, 0, diag.UnexpectedCharacter, 1, 1)
	if !strings.Contains(comp.Messages.Items()[0].Text, "'$'") {
		t.Fatalf("message text = %q", comp.Messages.Items()[0].Text)
	}
}

func TestMisplacedVerbatim(t *testing.T) {
	_, comp := tokenize(t, "@ x")
	wantMessage(t, comp, 0, diag.MisplacedVerbatim, 1, 1)
}

func TestRegions(t *testing.T) {
	_, comp := tokenize(t, "#region intro\n1\n#endregion")
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}

	_, comp = tokenize(t, "#endregion")
	wantMessage(t, comp, 0, diag.UnexpectedPPDirective, 1, 1)

	_, comp = tokenize(t, "#region open\n1")
	if comp.Messages.Items()[0].Code != diag.EndRegionExpected {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestPPPlacement(t *testing.T) {
	_, comp := tokenize(t, "1 #define X")
	wantMessage(t, comp, 0, diag.PPNotFirstToken, 1, 3)

	_, comp = tokenize(t, "1\n#define X")
	if comp.Messages.Items()[0].Code != diag.PPTooLate {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestUndefMasksDefine(t *testing.T) {
	toks, comp := tokenize(t, "#define A\n#undef A\n#if A\n1\n#endif")
	if len(realTokens(toks)) != 0 {
		t.Fatalf("tokens = %v", realTokens(toks))
	}
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestUserDirectives(t *testing.T) {
	_, comp := tokenize(t, "#warning mind the gap")
	wantMessage(t, comp, 0, diag.UserWarning, 1, 1)
	if !strings.Contains(comp.Messages.Items()[0].Text, "mind the gap") {
		t.Fatalf("text = %q", comp.Messages.Items()[0].Text)
	}
	if comp.HasErrors() {
		t.Fatal("#warning must not be an error")
	}

	_, comp = tokenize(t, "#error broken build")
	wantMessage(t, comp, 0, diag.UserError, 1, 1)
	if !comp.HasErrors() {
		t.Fatal("#error must set has-errors")
	}
}

func TestLineDirective(t *testing.T) {
	toks, _ := tokenize(t, "#line 42\nx")
	if real := realTokens(toks); real[0].Line != 42 {
		t.Fatalf("line override = %d", real[0].Line)
	}

	toks, _ = tokenize(t, "#line 10 \"other.cs\"\nx")
	real := realTokens(toks)
	if real[0].Line != 10 || real[0].LineSource != "other.cs" {
		t.Fatalf("override = %d %q", real[0].Line, real[0].LineSource)
	}

	toks, _ = tokenize(t, "#line 10\n#line default\nx")
	if real := realTokens(toks); real[0].Line != token.LineDefault {
		t.Fatalf("default did not reset: %d", real[0].Line)
	}

	_, comp := tokenize(t, "#line nonsense")
	wantMessage(t, comp, 0, diag.InvalidLineDirective, 1, 1)
}

func TestPragmaErrors(t *testing.T) {
	_, comp := tokenize(t, "#pragma optimize on")
	wantMessage(t, comp, 0, diag.UnrecognizedPragma, 1, 1)

	_, comp = tokenize(t, "#pragma warning frobnicate")
	wantMessage(t, comp, 0, diag.InvalidWarningPragma, 1, 1)

	_, comp = tokenize(t, "#pragma warning disable 9999")
	if comp.Messages.Items()[0].Code != diag.InvalidWarningCode {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestPragmaDisableAll(t *testing.T) {
	_, comp := tokenize(t, "#pragma warning disable\n1l")
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}

	_, comp = tokenize(t, "#pragma warning disable\n#pragma warning restore 78\n1l")
	wantMessage(t, comp, 0, diag.UseUppercaseL, 3, 2)
}

func TestUnknownDirective(t *testing.T) {
	_, comp := tokenize(t, "#frobnicate")
	wantMessage(t, comp, 0, diag.PPDirectiveExpected, 1, 1)
}

func TestUnexpectedElse(t *testing.T) {
	_, comp := tokenize(t, "#else")
	wantMessage(t, comp, 0, diag.UnexpectedPPDirective, 1, 1)

	_, comp = tokenize(t, "#if true\n1\n#else\n2\n#else\n3\n#endif")
	if comp.Messages.Items()[0].Code != diag.UnexpectedPPDirective {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestMissingEndif(t *testing.T) {
	_, comp := tokenize(t, "#if true\n1")
	wantMessage(t, comp, 0, diag.EndIfExpected, 2, 2)
}

func TestNestedConditionals(t *testing.T) {
	src := "#if false\n#if true\n1\n#endif\n2\n#endif\n3"
	toks, comp := tokenize(t, src)
	real := realTokens(toks)
	if len(real) != 1 || !real[0].Value.Equal(token.IntValue(3)) {
		t.Fatalf("tokens = %v", real)
	}
	if comp.Messages.Len() != 0 {
		t.Fatalf("messages = %v", comp.Messages.Items())
	}
}

func TestEmptyBuffers(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	toks, err := comp.Tokenize([]source.Unit{
		source.NewUnit("a.cs", strings.NewReader("")),
		source.NewUnit("b.cs", strings.NewReader("  // just a comment\n")),
	})
	if err != nil {
		t.Fatal(err)
	}
	wantKinds := []token.Kind{token.EOF, token.EOF, token.EOD}
	if len(toks) != len(wantKinds) {
		t.Fatalf("tokens = %v", toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[0].Source != "a.cs" || toks[1].Source != "b.cs" {
		t.Fatalf("EOF sources = %q, %q", toks[0].Source, toks[1].Source)
	}
}

func TestTokenSourceNames(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	toks, err := comp.Tokenize([]source.Unit{
		source.NewUnit("one.cs", strings.NewReader("1")),
		source.NewUnit("two.cs", strings.NewReader("2")),
	})
	if err != nil {
		t.Fatal(err)
	}
	real := realTokens(toks)
	if real[0].Source != "one.cs" || real[1].Source != "two.cs" {
		t.Fatalf("sources = %q, %q", real[0].Source, real[1].Source)
	}
}

func TestScanIsDeterministic(t *testing.T) {
	src := "#define D\nclass C { int x = 0x10; } // done"
	first, _ := tokenize(t, src)
	second, _ := tokenize(t, src)
	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Kind != b.Kind || a.Start != b.Start || a.End != b.End || !a.Value.Equal(b.Value) {
			t.Fatalf("token %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestPushBackFIFO(t *testing.T) {
	comp := compiler.New(compiler.Config{})
	rd := source.NewReader([]source.Unit{
		source.NewUnit("p.cs", strings.NewReader("a b c")),
	}, nil)
	scn := scanner.New(rd, comp)

	t1, _ := scn.NextToken()
	t2, _ := scn.NextToken()
	scn.PushBack(t1)
	scn.PushBack(t2)

	back1, _ := scn.NextToken()
	back2, _ := scn.NextToken()
	if back1.Value.Str != t1.Value.Str || back2.Value.Str != t2.Value.Str {
		t.Fatalf("push-back order: got %q, %q", back1.Value.Str, back2.Value.Str)
	}
	rest, _ := scn.NextToken()
	if rest.Value.Str != "c" {
		t.Fatalf("stream after push-back = %q", rest.Value.Str)
	}
}

func TestTokenSpansOrdered(t *testing.T) {
	toks, _ := tokenize(t, "class Foo {\n  int bar;\n}")
	for _, tok := range realTokens(toks) {
		if tok.End.Before(tok.Start) {
			t.Fatalf("token %v has end before start", tok)
		}
		if tok.Source != "test.cs" {
			t.Fatalf("token source = %q", tok.Source)
		}
	}
}
