package parser

import (
	"cesium/internal/ast"
	"cesium/internal/diag"
	"cesium/internal/token"
)

// parseModifiers consumes modifier keywords (and 'partial'), reporting
// duplicates.
func (p *Parser) parseModifiers() ast.Modifiers {
	var mods ast.Modifiers
	for {
		t := p.peek()
		bit, ok := ast.ModifierFromToken(t.Kind)
		if !ok {
			return mods
		}
		p.next()
		if mods.Has(bit) {
			p.report(diag.DuplicateModifier, t.FileSpan(), t.Kind.String())
			continue
		}
		mods |= bit
	}
}

// parseTypeDeclaration parses one class, struct, interface, enum, or
// delegate declaration. enclosing is the kind of the containing type
// declaration, or KindClass at namespace level.
func (p *Parser) parseTypeDeclaration(attrs []*ast.Attribute, enclosing ast.TypeKind) (*ast.TypeDeclaration, bool) {
	attrs = append(attrs, p.parseAttributeSections(attrCtxTypeDecl, nil)...)
	mods := p.parseModifiers()

	start := p.peek()
	var decl *ast.TypeDeclaration
	var ok bool
	switch start.Kind {
	case token.KwClass:
		decl, ok = p.parseClassLike(ast.KindClass)
	case token.KwStruct:
		decl, ok = p.parseClassLike(ast.KindStruct)
	case token.KwInterface:
		decl, ok = p.parseClassLike(ast.KindInterface)
	case token.KwEnum:
		decl, ok = p.parseEnum()
	case token.KwDelegate:
		decl, ok = p.parseDelegate()
	default:
		p.err(diag.ExpectedTypeDeclaration)
		p.recoverFromBadDeclaration()
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if enclosing == ast.KindInterface {
		p.report(diag.NoTypesInInterfaces, decl.Span(), decl.Name.String())
	}
	decl.Attributes = attrs
	decl.Mods = mods
	return decl, true
}

// parseClassLike parses class/struct/interface declarations:
//
//	('class'|'struct'|'interface') IDENT BaseListOpt WhereOpt '{' Member* '}'
func (p *Parser) parseClassLike(kind ast.TypeKind) (*ast.TypeDeclaration, bool) {
	start := p.next() // declaration keyword
	nameTok, ok := p.expectIdent()
	if !ok {
		p.recoverFromBadDeclaration()
		return nil, false
	}
	decl := ast.NewTypeDeclaration(kind,
		ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()), start.FileSpan())

	if p.at(token.Colon) {
		p.next()
		for {
			base, ok := p.parseType()
			if !ok {
				p.recoverTo(token.LBrace, token.Comma, token.Semicolon)
			} else {
				decl.Bases = append(decl.Bases, base)
			}
			if !p.at(token.Comma) {
				break
			}
			p.next()
		}
	}

	// constraint clauses are not analyzed here; scan past them
	for p.at(token.Ident) && p.peek().Value.Str == "where" {
		p.recoverTo(token.LBrace, token.Semicolon)
	}

	if _, ok := p.expect(token.LBrace, diag.ExpectedLeftBrace); !ok {
		p.recoverFromBadDeclaration()
		return decl, true
	}

	for !p.at(token.RBrace) {
		if t := p.peek(); t.Kind == token.EOF || t.Kind == token.EOD {
			p.err(diag.ExpectedRightBrace)
			decl.SetSpan(p.spanFrom(start))
			return decl, true
		}
		p.parseMember(decl)
	}
	p.next() // '}'
	if p.at(token.Semicolon) {
		p.next()
	}
	decl.SetSpan(p.spanFrom(start))
	return decl, true
}

// parseMember disambiguates one type member and adds it to decl.
func (p *Parser) parseMember(decl *ast.TypeDeclaration) {
	attrs := p.parseAttributeSections(attrCtxMember, nil)
	mods := p.parseModifiers()

	t := p.peek()
	switch {
	case t.Kind == token.Tilde:
		p.parseDestructor(decl, attrs, mods)
		return
	case t.Kind == token.Ident && p.peekN(1).Kind == token.LParen:
		p.parseConstructor(decl, attrs, mods)
		return
	case t.Kind.IsDeclKeyword() && t.Kind != token.KwNamespace:
		if nested, ok := p.parseTypeDeclaration(attrs, decl.Kind); ok {
			decl.Nested.Append(nested)
		}
		return
	case t.Kind == token.KwEvent:
		p.parseEvent(decl, attrs, mods)
		return
	case t.Kind == token.KwConst:
		p.next()
		p.parseFieldRest(decl, attrs, mods|ast.ModConst, nil)
		return
	}

	typ, ok := p.parseType()
	if !ok {
		p.err(diag.InvalidTokenInTypeDecl, t.Display())
		p.recoverFromBadDeclaration()
		return
	}

	if p.at(token.KwThis) {
		p.parseIndexer(decl, attrs, mods, typ)
		return
	}

	if !p.at(token.Ident) {
		p.err(diag.InvalidTokenInTypeDecl, p.peek().Display())
		p.recoverFromBadDeclaration()
		return
	}

	// field declarators end in ';', '=', or ','; a '}' right after the
	// name is a field whose ';' is missing
	switch p.peekN(1).Kind {
	case token.Semicolon, token.Comma, token.RBrace:
		p.parseFieldRest(decl, attrs, mods, typ)
		return
	case token.OpAssign:
		if p.peekN(1).Value.Op == token.Assign {
			p.parseFieldRest(decl, attrs, mods, typ)
			return
		}
	}

	nameTok := p.next()
	name := p.parseDottedRest(nameTok)

	switch p.peek().Kind {
	case token.LBrace:
		p.parseProperty(decl, attrs, mods, typ, name, false)
	case token.LBracket:
		p.parseProperty(decl, attrs, mods, typ, name, true)
	case token.LParen:
		p.parseMethod(decl, attrs, mods, typ, name)
	default:
		p.err(diag.InvalidTokenInTypeDecl, p.peek().Display())
		p.recoverFromBadDeclaration()
	}
}

func (p *Parser) parseDestructor(decl *ast.TypeDeclaration, attrs []*ast.Attribute, mods ast.Modifiers) {
	start := p.next() // '~'
	nameTok, ok := p.expectIdent()
	if !ok {
		p.recoverFromBadDeclaration()
		return
	}
	if decl.Kind != ast.KindClass {
		p.report(diag.NoDestructorOutsideClass, start.FileSpan(), nameTok.Value.Str)
	}
	m := ast.NewMethod(ast.MethodDestructor,
		ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()), start.FileSpan())
	m.Attributes = attrs
	m.Mods = mods
	if _, ok := p.expect(token.LParen, diag.SyntaxError, "("); ok {
		p.expect(token.RParen, diag.ExpectedRightParen)
	}
	p.parseMethodBody(m)
	m.SetSpan(p.spanFrom(start))
	decl.Methods.Append(m)
}

func (p *Parser) parseConstructor(decl *ast.TypeDeclaration, attrs []*ast.Attribute, mods ast.Modifiers) {
	nameTok := p.next()
	if decl.Kind == ast.KindInterface {
		p.report(diag.NoConstructorInInterface, nameTok.FileSpan())
	}
	m := ast.NewMethod(ast.MethodConstructor,
		ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()), nameTok.FileSpan())
	m.Attributes = attrs
	m.Mods = mods
	m.Params = p.parseParams()

	// constructor initializer: ': base(...)' / ': this(...)'; not modeled
	if p.at(token.Colon) {
		p.recoverTo(token.LBrace, token.Semicolon)
	}
	p.parseMethodBody(m)
	m.SetSpan(p.spanFrom(nameTok))
	decl.Methods.Append(m)
}

func (p *Parser) parseMethod(decl *ast.TypeDeclaration, attrs []*ast.Attribute, mods ast.Modifiers, ret ast.Type, name *ast.Identifier) {
	m := ast.NewMethod(ast.MethodOrdinary, name, name.Span())
	m.Attributes = attrs
	m.Mods = mods
	m.ReturnType = ret
	m.Params = p.parseParams()
	p.parseMethodBody(m)
	m.SetEnd(p.last.End)
	decl.Methods.Append(m)
}

// parseMethodBody accepts ';' or a balanced '{...}' block that is skipped
// without statement parsing.
func (p *Parser) parseMethodBody(m *ast.Method) {
	switch p.peek().Kind {
	case token.Semicolon:
		p.next()
	case token.LBrace:
		m.HasBody = true
		m.BodySpan = p.skipBalancedBlock()
	default:
		p.err(diag.ExpectedSemicolon)
		p.recoverFromBadDeclaration()
	}
}

func (p *Parser) parseFieldRest(decl *ast.TypeDeclaration, attrs []*ast.Attribute, mods ast.Modifiers, typ ast.Type) {
	if typ == nil {
		// const fields arrive here with the type still unread
		t, ok := p.parseType()
		if !ok {
			p.recoverFromBadDeclaration()
			return
		}
		typ = t
	}
	if decl.Kind == ast.KindInterface {
		p.err(diag.NoFieldsInInterfaces)
	}
	for {
		nameTok, ok := p.expectIdent()
		if !ok {
			p.recoverFromBadDeclaration()
			return
		}
		f := ast.NewField(typ, ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()), nameTok.FileSpan())
		f.Attributes = attrs
		f.Mods = mods
		if p.atAssign() {
			p.next()
			if init, ok := p.parseConstExpr(); ok {
				f.Init = init
			} else {
				p.recoverTo(token.Comma, token.Semicolon)
			}
		}
		f.SetEnd(p.last.End)
		decl.Fields.Append(f)
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	if p.at(token.Semicolon) {
		p.next()
	} else {
		p.err(diag.ExpectedSemicolon)
		p.recoverFromBadDeclaration()
	}
}

func (p *Parser) parseEvent(decl *ast.TypeDeclaration, attrs []*ast.Attribute, mods ast.Modifiers) {
	start := p.next() // 'event'
	typ, ok := p.parseType()
	if !ok {
		p.recoverFromBadDeclaration()
		return
	}
	nameTok, ok := p.expectIdent()
	if !ok {
		p.recoverFromBadDeclaration()
		return
	}
	ev := ast.NewEvent(typ, ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()), start.FileSpan())
	ev.Attributes = attrs
	ev.Mods = mods
	switch p.peek().Kind {
	case token.Semicolon:
		p.next()
	case token.LBrace:
		// add/remove accessors are skipped
		p.skipBalancedBlock()
	default:
		p.err(diag.ExpectedSemicolon)
		p.recoverFromBadDeclaration()
	}
	ev.SetEnd(p.last.End)
	decl.Events.Append(ev)
}

func (p *Parser) parseProperty(decl *ast.TypeDeclaration, attrs []*ast.Attribute, mods ast.Modifiers, typ ast.Type, name *ast.Identifier, indexer bool) {
	prop := ast.NewProperty(typ, name, name.Span())
	prop.Attributes = attrs
	prop.Mods = mods
	prop.IsIndexer = indexer
	if indexer {
		p.next() // '['
		prop.Params = p.parseParamList(token.RBracket)
		if p.at(token.RBracket) {
			p.next()
		} else {
			p.err(diag.SyntaxError, "]")
		}
	}
	p.parseAccessors(prop)
	prop.SetEnd(p.last.End)
	decl.Properties.Append(prop)
}

func (p *Parser) parseIndexer(decl *ast.TypeDeclaration, attrs []*ast.Attribute, mods ast.Modifiers, typ ast.Type) {
	thisTok := p.next() // 'this'
	name := ast.NewIdentifier("this", thisTok.FileSpan())
	if _, ok := p.expect(token.LBracket, diag.SyntaxError, "["); !ok {
		p.recoverFromBadDeclaration()
		return
	}
	prop := ast.NewProperty(typ, name, thisTok.FileSpan())
	prop.Attributes = attrs
	prop.Mods = mods
	prop.IsIndexer = true
	prop.Params = p.parseParamList(token.RBracket)
	if p.at(token.RBracket) {
		p.next()
	} else {
		p.err(diag.SyntaxError, "]")
	}
	p.parseAccessors(prop)
	prop.SetEnd(p.last.End)
	decl.Properties.Append(prop)
}

// parseAccessors parses '{ get ...; set ...; }' with bodies skipped.
func (p *Parser) parseAccessors(prop *ast.Property) {
	if _, ok := p.expect(token.LBrace, diag.ExpectedLeftBrace); !ok {
		p.recoverFromBadDeclaration()
		return
	}
	for !p.at(token.RBrace) {
		if t := p.peek(); t.Kind == token.EOF || t.Kind == token.EOD {
			p.err(diag.ExpectedRightBrace)
			return
		}
		p.parseAttributeSections(attrCtxMember, nil)
		p.parseModifiers()
		t := p.peek()
		if t.Kind != token.Ident || (t.Value.Str != "get" && t.Value.Str != "set") {
			p.err(diag.InvalidTokenInTypeDecl, t.Display())
			p.recoverFromBadDeclaration()
			continue
		}
		p.next()
		if t.Value.Str == "get" {
			prop.HasGetter = true
		} else {
			prop.HasSetter = true
		}
		switch p.peek().Kind {
		case token.Semicolon:
			p.next()
		case token.LBrace:
			p.skipBalancedBlock()
		default:
			p.err(diag.ExpectedSemicolon)
			p.recoverFromBadDeclaration()
		}
	}
	p.next() // '}'
}

// parseParams parses a parenthesized parameter list including both
// delimiters.
func (p *Parser) parseParams() []*ast.Parameter {
	if _, ok := p.expect(token.LParen, diag.SyntaxError, "("); !ok {
		return nil
	}
	params := p.parseParamList(token.RParen)
	if p.at(token.RParen) {
		p.next()
	} else {
		p.err(diag.ExpectedRightParen)
	}
	return params
}

// parseParamList parses parameters up to (not including) close.
func (p *Parser) parseParamList(close token.Kind) []*ast.Parameter {
	var params []*ast.Parameter
	for !p.at(close) {
		if t := p.peek(); t.Kind == token.EOF || t.Kind == token.EOD {
			return params
		}
		p.parseAttributeSections(attrCtxParam, nil)
		mode := ast.ParamValue
		start := p.peek()
		switch start.Kind {
		case token.KwRef:
			mode = ast.ParamRef
			p.next()
		case token.KwOut:
			mode = ast.ParamOut
			p.next()
		case token.KwParams:
			mode = ast.ParamParams
			p.next()
		}
		typ, ok := p.parseType()
		if !ok {
			p.recoverTo(token.Comma, close, token.Semicolon)
			if !p.at(token.Comma) {
				return params
			}
			p.next()
			continue
		}
		if mode == ast.ParamRef || mode == ast.ParamOut {
			typ = ast.NewReferenceType(typ)
		}
		nameTok, ok := p.expectIdent()
		if !ok {
			p.recoverTo(token.Comma, close, token.Semicolon)
		}
		var name *ast.Identifier
		if ok {
			name = ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan())
		}
		params = append(params, ast.NewParameter(mode, typ, name, p.spanFrom(start)))
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	return params
}

// parseEnum parses an enum declaration with an optional integral base and
// constant members.
func (p *Parser) parseEnum() (*ast.TypeDeclaration, bool) {
	start := p.next() // 'enum'
	nameTok, ok := p.expectIdent()
	if !ok {
		p.recoverFromBadDeclaration()
		return nil, false
	}
	decl := ast.NewTypeDeclaration(ast.KindEnum,
		ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()), start.FileSpan())

	if p.at(token.Colon) {
		p.next()
		baseStart := p.peek()
		base, ok := p.parseType()
		if !ok || !ast.IsValidEnumBase(base) {
			p.report(diag.InvalidEnumBase, baseStart.FileSpan())
		} else {
			decl.EnumBase = base
		}
	}

	if _, ok := p.expect(token.LBrace, diag.ExpectedLeftBrace); !ok {
		p.recoverFromBadDeclaration()
		return decl, true
	}

	for !p.at(token.RBrace) {
		if t := p.peek(); t.Kind == token.EOF || t.Kind == token.EOD {
			p.err(diag.ExpectedRightBrace)
			decl.SetSpan(p.spanFrom(start))
			return decl, true
		}
		p.parseAttributeSections(attrCtxMember, nil)
		memTok, ok := p.expectIdent()
		if !ok {
			p.recoverTo(token.Comma, token.RBrace)
			if p.at(token.Comma) {
				p.next()
			}
			continue
		}
		member := ast.NewEnumMember(
			ast.NewIdentifier(memTok.Value.Str, memTok.FileSpan()), memTok.FileSpan())
		if p.atAssign() {
			p.next()
			if val, ok := p.parseConstExpr(); ok {
				member.Value = val
			} else {
				p.recoverTo(token.Comma, token.RBrace)
			}
		}
		member.SetEnd(p.last.End)
		decl.EnumMembers.Append(member)
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	if p.at(token.RBrace) {
		p.next()
	} else {
		p.err(diag.ExpectedRightBrace)
	}
	if p.at(token.Semicolon) {
		p.next()
	}
	decl.SetSpan(p.spanFrom(start))
	return decl, true
}

// parseDelegate parses 'delegate ReturnType Name(params);'.
func (p *Parser) parseDelegate() (*ast.TypeDeclaration, bool) {
	start := p.next() // 'delegate'
	ret, ok := p.parseType()
	if !ok {
		p.recoverFromBadDeclaration()
		return nil, false
	}
	nameTok, ok := p.expectIdent()
	if !ok {
		p.recoverFromBadDeclaration()
		return nil, false
	}
	decl := ast.NewTypeDeclaration(ast.KindDelegate,
		ast.NewIdentifier(nameTok.Value.Str, nameTok.FileSpan()), start.FileSpan())
	decl.ReturnType = ret
	decl.Params = p.parseParams()
	if p.at(token.Semicolon) {
		p.next()
	} else {
		p.err(diag.ExpectedSemicolon)
		p.recoverFromBadDeclaration()
	}
	decl.SetSpan(p.spanFrom(start))
	return decl, true
}
