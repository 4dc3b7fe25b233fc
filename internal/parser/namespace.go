package parser

import (
	"cesium/internal/ast"
	"cesium/internal/diag"
	"cesium/internal/token"
)

// parseNamespaceBody fills ns with declarations until the closing brace
// (or end of buffer for the root namespace).
func (p *Parser) parseNamespaceBody(ns *ast.Namespace, top bool) {
	var pendingAttrs []*ast.Attribute
	for {
		switch t := p.peek(); t.Kind {
		case token.EOF, token.EOD:
			if !top {
				p.err(diag.ExpectedRightBrace)
			}
			return
		case token.RBrace:
			if top {
				p.err(diag.ExpectedTypeDeclaration)
				p.next()
				continue
			}
			return
		case token.KwExtern:
			p.parseExternAlias(ns)
		case token.KwUsing:
			p.parseUsing(ns)
		case token.KwNamespace:
			p.parseNamespaceDecl(ns)
		case token.LBracket:
			pendingAttrs = append(pendingAttrs, p.parseAttributeSections(attrCtxTypeDecl, ns)...)
		default:
			if decl, ok := p.parseTypeDeclaration(pendingAttrs, ast.KindClass); ok {
				ns.Types.Append(decl)
			}
			pendingAttrs = nil
		}
	}
}

// parseExternAlias parses 'extern alias NAME;'.
func (p *Parser) parseExternAlias(ns *ast.Namespace) {
	p.next() // 'extern'
	if alias, ok := p.expectIdent(); !ok || alias.Value.Str != "alias" {
		if ok {
			p.report(diag.SyntaxError, alias.FileSpan(), "alias")
		}
		p.recoverTo(token.Semicolon)
		if p.at(token.Semicolon) {
			p.next()
		}
		return
	}
	name, ok := p.expectIdent()
	if !ok {
		p.recoverTo(token.Semicolon)
	} else {
		ns.ExternAliases = append(ns.ExternAliases, name.Value.Str)
	}
	if p.at(token.Semicolon) {
		p.next()
	} else {
		p.err(diag.ExpectedSemicolon)
	}
}

// parseUsing parses 'using N.M;' or 'using A = TypeName;'.
func (p *Parser) parseUsing(ns *ast.Namespace) {
	start := p.next() // 'using'
	first, ok := p.expectIdent()
	if !ok {
		p.recoverTo(token.Semicolon)
		if p.at(token.Semicolon) {
			p.next()
		}
		return
	}

	if p.atAssign() {
		p.next() // '='
		alias := ast.NewIdentifier(first.Value.Str, first.FileSpan())
		target, ok := p.parseType()
		if !ok {
			p.recoverTo(token.Semicolon)
		}
		if p.at(token.Semicolon) {
			p.next()
		} else {
			p.err(diag.ExpectedSemicolon)
		}
		ns.Usings.Append(ast.NewUsingAlias(alias, target, p.spanFrom(start)))
		return
	}

	name := p.parseDottedRest(first)
	if p.at(token.Semicolon) {
		p.next()
	} else {
		p.err(diag.ExpectedSemicolon)
	}
	ns.Usings.Append(ast.NewUsingNamespace(name, p.spanFrom(start)))
}

// parseNamespaceDecl parses 'namespace N.M { ... }'.
func (p *Parser) parseNamespaceDecl(parent *ast.Namespace) {
	start := p.next() // 'namespace'
	name, ok := p.parseDottedName()
	if !ok {
		p.recoverFromBadDeclaration()
		return
	}
	if _, ok := p.expect(token.LBrace, diag.ExpectedLeftBrace); !ok {
		p.recoverFromBadDeclaration()
		return
	}
	ns := ast.NewNamespace(name, p.spanFrom(start))
	p.parseNamespaceBody(ns, false)
	if p.at(token.RBrace) {
		p.next()
	} else {
		p.err(diag.ExpectedRightBrace)
	}
	ns.SetSpan(p.spanFrom(start))
	parent.Namespaces.Append(ns)
}

// parseDottedName parses IDENT ('.' IDENT)* into one identifier node.
func (p *Parser) parseDottedName() (*ast.Identifier, bool) {
	first, ok := p.expectIdent()
	if !ok {
		return nil, false
	}
	return p.parseDottedRest(first), true
}

// parseDottedRest continues a dotted name whose first segment is already
// consumed.
func (p *Parser) parseDottedRest(first token.Token) *ast.Identifier {
	name := first.Value.Str
	for p.at(token.Period) && p.peekN(1).Kind == token.Ident {
		p.next() // '.'
		seg := p.next()
		name += "." + seg.Value.Str
	}
	return ast.NewIdentifier(name, p.spanFrom(first))
}
