package parser

import (
	"cesium/internal/ast"
	"cesium/internal/diag"
	"cesium/internal/token"
)

// parseType parses a type reference:
//
//	Type = TypeName '?'? '*'* ('[' ','* ']')?
//
// where TypeName is a built-in type keyword or a (possibly alias- and
// dot-qualified) name.
func (p *Parser) parseType() (ast.Type, bool) {
	base, ok := p.parseTypeName()
	if !ok {
		return nil, false
	}

	if p.at(token.Question) {
		p.next()
		base = ast.NewNullableType(base)
	}
	for p.at(token.Star) {
		p.next()
		base = ast.NewPointerType(base)
	}
	if p.at(token.LBracket) {
		p.next()
		rank := 1
		for p.at(token.Comma) {
			p.next()
			rank++
		}
		if _, ok := p.expect(token.RBracket, diag.SyntaxError, "]"); !ok {
			p.recoverTo(token.RBracket, token.Semicolon)
			if p.at(token.RBracket) {
				p.next()
			}
		}
		base = ast.NewArrayType(base, rank)
	}
	return base, true
}

// parseTypeName parses the name part of a type: a type keyword, or
// (IDENT '::')? IDENT ('.' IDENT)*.
func (p *Parser) parseTypeName() (ast.Type, bool) {
	t := p.peek()
	if t.Kind.IsTypeKeyword() {
		p.next()
		prim, _ := ast.PrimitiveFromToken(t.Kind)
		return prim, true
	}

	if t.Kind != token.Ident {
		if t.Kind.IsKeyword() {
			p.err(diag.ExpectedIdentGotKeyword, t.Kind.String())
		} else {
			p.err(diag.ExpectedIdentifier)
		}
		return nil, false
	}

	first := p.next()
	name := first.Value.Str
	if p.at(token.ColonColon) {
		p.next()
		seg, ok := p.expectIdent()
		if !ok {
			return nil, false
		}
		name += "::" + seg.Value.Str
	}
	for p.at(token.Period) && p.peekN(1).Kind == token.Ident {
		p.next()
		seg := p.next()
		name += "." + seg.Value.Str
	}
	return &ast.UnresolvedType{Name: ast.NewIdentifier(name, p.spanFrom(first))}, true
}
