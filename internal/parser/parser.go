// Package parser consumes the token stream into source file trees with
// local error recovery. The grammar covers namespace and type declaration
// scaffolding plus attributes; statement and full expression parsing
// belong to later phases.
package parser

import (
	"cesium/internal/ast"
	"cesium/internal/diag"
	"cesium/internal/scanner"
	"cesium/internal/source"
	"cesium/internal/token"
)

// lookahead is the size of the token ring; the grammar needs at most
// three tokens of context.
const lookahead = 4

// Parser holds the state for one parse over all buffers.
type Parser struct {
	scn *scanner.Scanner
	rep diag.Reporter

	ring  [lookahead]token.Token
	head  int
	count int

	last token.Token // most recently consumed token, for span ends

	docPos    source.FileSpan
	docOpen   bool
	docJudged bool
}

// New builds a parser over scn reporting through rep.
func New(scn *scanner.Scanner, rep diag.Reporter) *Parser {
	return &Parser{scn: scn, rep: rep}
}

// fill buffers tokens until at least n+1 are available. Documentation
// comment tokens are consumed here: they never reach the grammar, but a
// run that does not precede a declaration is flagged.
func (p *Parser) fill(n int) {
	if n >= lookahead {
		panic("parser: lookahead exceeds ring capacity")
	}
	for p.count <= n {
		tok, _ := p.scn.NextToken()
		if tok.Kind == token.XmlCommentLine {
			if !p.docOpen {
				p.docOpen = true
				p.docJudged = false
				p.docPos = tok.FileSpan()
			}
			continue
		}
		if p.docOpen && !p.docJudged {
			p.docJudged = true
			if !declStarter(tok.Kind) {
				p.rep.Report(diag.MisplacedXmlComment, p.docPos)
			}
			p.docOpen = false
		}
		p.ring[(p.head+p.count)%lookahead] = tok
		p.count++
	}
}

// declStarter reports whether a declaration can begin with kind; it gates
// the misplaced-doc-comment warning.
func declStarter(k token.Kind) bool {
	switch k {
	case token.Ident, token.LBracket, token.Tilde,
		token.KwEvent, token.KwConst, token.KwUsing, token.KwExtern:
		return true
	}
	return k.IsModifier() || k.IsTypeKeyword() || k.IsDeclKeyword() || k == token.KwPartial
}

func (p *Parser) peek() token.Token {
	p.fill(0)
	return p.ring[p.head]
}

func (p *Parser) peekN(n int) token.Token {
	p.fill(n)
	return p.ring[(p.head+n)%lookahead]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// atAssign reports whether the next token is a bare '='.
func (p *Parser) atAssign() bool {
	t := p.peek()
	return t.Kind == token.OpAssign && t.Value.Op == token.Assign
}

func (p *Parser) next() token.Token {
	p.fill(0)
	tok := p.ring[p.head]
	p.head = (p.head + 1) % lookahead
	p.count--
	if tok.Kind != token.EOF && tok.Kind != token.EOD {
		p.last = tok
	}
	return tok
}

// here is the location of the next token, or just past the last consumed
// one when the stream is at a buffer boundary.
func (p *Parser) here() source.FileSpan {
	t := p.peek()
	if t.Kind == token.EOF || t.Kind == token.EOD {
		if p.last.Kind != token.Invalid {
			return source.FileSpan{
				Name: p.last.Source,
				Span: source.Span{Start: p.last.End, End: p.last.End},
			}
		}
	}
	return t.FileSpan()
}

// spanFrom covers from the start of tok through the last consumed token.
func (p *Parser) spanFrom(tok token.Token) source.FileSpan {
	return source.FileSpan{
		Name: tok.Source,
		Span: source.Span{Start: tok.Start, End: p.last.End},
	}
}

func (p *Parser) report(code diag.Code, loc source.FileSpan, args ...any) {
	p.rep.Report(code, loc, args...)
}

func (p *Parser) err(code diag.Code, args ...any) {
	p.report(code, p.here(), args...)
}

// expect consumes a token of the given kind or reports code and leaves
// the stream untouched.
func (p *Parser) expect(k token.Kind, code diag.Code, args ...any) (token.Token, bool) {
	if p.at(k) {
		return p.next(), true
	}
	p.err(code, args...)
	return token.Token{Kind: token.Invalid}, false
}

// expectIdent consumes an identifier, distinguishing the keyword case.
func (p *Parser) expectIdent() (token.Token, bool) {
	t := p.peek()
	if t.Kind == token.Ident {
		return p.next(), true
	}
	if t.Kind.IsKeyword() {
		p.err(diag.ExpectedIdentGotKeyword, t.Kind.String())
	} else {
		p.err(diag.ExpectedIdentifier)
	}
	return token.Token{Kind: token.Invalid}, false
}

// ParseProgram parses every buffer into its own source file.
func (p *Parser) ParseProgram() []*ast.SourceFile {
	var files []*ast.SourceFile
	for !p.at(token.EOD) {
		if f := p.ParseOne(); f != nil {
			files = append(files, f)
		}
	}
	return files
}

// ParseOne parses a single buffer, consuming its EOF token. It returns
// nil once every buffer is exhausted.
func (p *Parser) ParseOne() *ast.SourceFile {
	if p.at(token.EOD) {
		return nil
	}
	first := p.peek()
	root := ast.NewNamespace(nil, first.FileSpan())
	p.parseNamespaceBody(root, true)
	if p.at(token.EOF) {
		p.next()
	}
	root.SetSpan(p.spanFrom(first))
	return ast.NewSourceFile(root, p.spanFrom(first))
}
