package parser

import (
	"cesium/internal/ast"
	"cesium/internal/diag"
	"cesium/internal/token"
)

// The constant-expression subset: enough for attribute arguments and enum
// member initializers. Precedence, loosest first:
//
//	|| && | ^ & ==/!= relational shift additive multiplicative
//
// with prefix '+ - ! ~' and parenthesization. Statement-level expression
// forms are out of scope for this phase.

// binaryPrecedence returns the precedence for an infix operator, or 0
// when the kind is not one.
func binaryPrecedence(k token.Kind) int {
	switch k {
	case token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.Pipe:
		return 3
	case token.Caret:
		return 4
	case token.Amp:
		return 5
	case token.EqEq, token.NotEq:
		return 6
	case token.Lt, token.Gt, token.LtEq, token.GtEq:
		return 7
	case token.Shl, token.Shr:
		return 8
	case token.Plus, token.Minus:
		return 9
	case token.Star, token.Div, token.Percent:
		return 10
	}
	return 0
}

// ParseExpression parses one constant expression from the stream. It is
// the public face of the same parser the attribute and enum productions
// use.
func (p *Parser) ParseExpression() (ast.Expr, bool) {
	return p.parseConstExpr()
}

func (p *Parser) parseConstExpr() (ast.Expr, bool) {
	return p.parseBinaryExpr(1)
}

func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}
	for {
		op := p.peek().Kind
		prec := binaryPrecedence(op)
		if prec < minPrec {
			return left, true
		}
		p.next()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return nil, false
		}
		loc := left.Span()
		loc.End = p.last.End
		left = ast.NewBinaryExpr(op, left, right, loc)
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	switch t := p.peek(); t.Kind {
	case token.Minus, token.Plus, token.Bang, token.Tilde:
		p.next()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			return nil, false
		}
		return ast.NewUnaryExpr(t.Kind, operand, p.spanFrom(t)), true
	default:
		return p.parsePrimaryExpr()
	}
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	switch t := p.peek(); t.Kind {
	case token.Literal:
		p.next()
		return ast.NewLiteralExpr(t.Value, t.FileSpan()), true
	case token.Ident:
		p.next()
		name := p.parseDottedRest(t)
		return ast.NewNameExpr(name, p.spanFrom(t)), true
	case token.LParen:
		p.next()
		inner, ok := p.parseConstExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.ExpectedRightParen); !ok {
			return nil, false
		}
		return inner, true
	default:
		p.err(diag.SyntaxError, "expression")
		return nil, false
	}
}
