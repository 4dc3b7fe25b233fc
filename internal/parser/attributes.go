package parser

import (
	"cesium/internal/ast"
	"cesium/internal/diag"
	"cesium/internal/token"
)

// attrContext names the attachment point of an attribute section; it
// decides which explicit targets are admissible.
type attrContext uint8

const (
	attrCtxTypeDecl attrContext = iota
	attrCtxMember
	attrCtxParam
)

// knownTargets is the full set of attribute target identifiers.
var knownTargets = map[string]bool{
	"assembly": true, "event": true, "field": true, "method": true,
	"param": true, "property": true, "return": true, "type": true,
	"typevar": true,
}

var contextTargets = map[attrContext]map[string]bool{
	attrCtxTypeDecl: {"type": true, "typevar": true},
	attrCtxMember: {
		"event": true, "field": true, "method": true,
		"param": true, "property": true, "return": true,
		// a member position can also hold a nested type declaration
		"type": true, "typevar": true,
	},
	attrCtxParam: {"param": true},
}

// parseAttributeSections parses zero or more '[...]' sections. Sections
// targeted at the assembly go to ns's global list when ns is given; a
// section with an unknown target is discarded with a warning, and one
// whose target the context does not admit is parsed but dropped.
func (p *Parser) parseAttributeSections(ctx attrContext, ns *ast.Namespace) []*ast.Attribute {
	var attrs []*ast.Attribute
	for p.at(token.LBracket) {
		attrs = append(attrs, p.parseAttributeSection(ctx, ns)...)
	}
	return attrs
}

func (p *Parser) parseAttributeSection(ctx attrContext, ns *ast.Namespace) []*ast.Attribute {
	p.next() // '['

	target := ""
	discard := false
	global := false

	if t := p.peek(); (t.Kind == token.Ident || t.Kind == token.KwEvent || t.Kind == token.KwReturn) &&
		p.peekN(1).Kind == token.Colon {
		switch t.Kind {
		case token.KwEvent:
			target = "event"
		case token.KwReturn:
			target = "return"
		default:
			target = t.Value.Str
		}
		p.next() // target
		p.next() // ':'

		switch {
		case !knownTargets[target]:
			p.report(diag.UnknownAttributeTarget, t.FileSpan(), target)
			discard = true
		case target == "assembly":
			if ns == nil {
				p.report(diag.InvalidAttributeTarget, t.FileSpan(), target)
				discard = true
			} else {
				global = true
			}
		case !contextTargets[ctx][target]:
			p.report(diag.InvalidAttributeTarget, t.FileSpan(), target)
			discard = true
		}
	}

	var attrs []*ast.Attribute
	for {
		attr, ok := p.parseAttribute(target)
		if !ok {
			p.recoverTo(token.RBracket, token.Semicolon, token.RBrace)
			break
		}
		switch {
		case discard:
		case global:
			ns.GlobalAttributes.Append(attr)
		default:
			attrs = append(attrs, attr)
		}
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}

	if p.at(token.RBracket) {
		p.next()
	} else {
		p.err(diag.SyntaxError, "]")
	}
	return attrs
}

// parseAttribute parses TypeName followed by an optional constructor
// argument list. Positional arguments must precede named ones.
func (p *Parser) parseAttribute(target string) (*ast.Attribute, bool) {
	start := p.peek()
	typ, ok := p.parseTypeName()
	if !ok {
		return nil, false
	}
	attr := ast.NewAttribute(target, typ, p.spanFrom(start))
	if !p.at(token.LParen) {
		return attr, true
	}
	p.next() // '('

	sawNamed := false
	for !p.at(token.RParen) {
		if p.at(token.Ident) && p.peekN(1).Kind == token.OpAssign &&
			p.peekN(1).Value.Op == token.Assign {
			nameTok := p.next()
			p.next() // '='
			val, ok := p.parseConstExpr()
			if !ok {
				return attr, false
			}
			sawNamed = true
			attr.NamedNames = append(attr.NamedNames,
				ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()))
			attr.NamedValues = append(attr.NamedValues, val)
		} else {
			if sawNamed {
				p.err(diag.NamedArgumentExpected)
			}
			val, ok := p.parseConstExpr()
			if !ok {
				return attr, false
			}
			if !sawNamed {
				attr.Args = append(attr.Args, val)
			}
		}
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}

	if _, ok := p.expect(token.RParen, diag.ExpectedRightParen); !ok {
		return attr, false
	}
	attr.SetEnd(p.last.End)
	return attr, true
}
