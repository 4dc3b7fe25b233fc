package parser

import (
	"slices"

	"cesium/internal/source"
	"cesium/internal/token"
)

// recoverTo skips tokens until one of kinds (or the end of input) is
// next.
func (p *Parser) recoverTo(kinds ...token.Kind) {
	for {
		k := p.peek().Kind
		if k == token.EOF || k == token.EOD || slices.Contains(kinds, k) {
			return
		}
		p.next()
	}
}

// recoverFromBadDeclaration resynchronizes after an unparseable
// declaration: it finds the next '{', '}', or ';'; a '{' is skipped as a
// balanced block, anything else is consumed as a single token.
func (p *Parser) recoverFromBadDeclaration() {
	p.recoverTo(token.LBrace, token.RBrace, token.Semicolon)
	switch p.peek().Kind {
	case token.LBrace:
		p.skipBalancedBlock()
	case token.EOF, token.EOD:
	default:
		p.next()
	}
}

// skipBalancedBlock consumes a '{' and everything through its matching
// '}', returning the covered span. End of input stops the skip.
func (p *Parser) skipBalancedBlock() source.Span {
	open := p.next() // '{'
	depth := 1
	end := open.End
	for depth > 0 {
		t := p.peek()
		if t.Kind == token.EOF || t.Kind == token.EOD {
			return source.Span{Start: open.Start, End: end}
		}
		t = p.next()
		end = t.End
		switch t.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
	}
	return source.Span{Start: open.Start, End: end}
}
