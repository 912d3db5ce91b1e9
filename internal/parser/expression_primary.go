package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/token"
)

// parsePrimaryExpr разбирает атомарные выражения: литералы, vararg,
// конструктор таблицы, функциональный литерал, идентификатор и
// выражение в скобках. Постфиксы здесь не применяются.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()

	switch tok.Kind {
	case token.KwNil:
		p.advance()
		return p.arenas.Exprs.NewNil(tok.Span), true

	case token.KwTrue:
		p.advance()
		return p.arenas.Exprs.NewBool(tok.Span, true), true

	case token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewBool(tok.Span, false), true

	case token.IntLit:
		p.advance()
		return p.arenas.Exprs.NewInt(tok.Span, tok.Int), true

	case token.FloatLit:
		p.advance()
		return p.arenas.Exprs.NewFloat(tok.Span, tok.Float), true

	case token.StringLit:
		p.advance()
		value := p.arenas.Intern(tok.Text)
		return p.arenas.Exprs.NewString(tok.Span, value), true

	case token.DotDotDot:
		p.advance()
		return p.arenas.Exprs.NewVararg(tok.Span), true

	case token.LBrace:
		return p.parseTableConstructor()

	case token.KwFunction:
		fnTok := p.advance()
		return p.parseFuncBody(fnTok.Span)

	case token.Ident:
		p.advance()
		name := p.arenas.Intern(tok.Text)
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close expression")
		if !ok {
			return ast.NoExprID, false
		}
		span := open.Span.Cover(closeTok.Span)
		return p.arenas.Exprs.NewParen(span, inner), true

	default:
		p.err(diag.SynExpectExpression, "expected expression, got \""+tok.Text+"\"")
		return ast.NoExprID, false
	}
}
