package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/source"
	"lune/internal/token"
)

// parsePrefixExpr разбирает префиксное выражение: атом с цепочкой
// постфиксов — .name, [exp], вызовы и вызовы методов.
func (p *Parser) parsePrefixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parsePostfix(expr)
}

// parsePostfix накручивает постфиксы на уже разобранное выражение.
func (p *Parser) parsePostfix(expr ast.ExprID) (ast.ExprID, bool) {
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Dot:
			p.advance()
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name after '.'")
			if !ok {
				return ast.NoExprID, false
			}
			// t.k — сахар для t["k"]; ключ хранится строковым литералом
			key := p.arenas.Exprs.NewString(nameTok.Span, p.arenas.Intern(nameTok.Text))
			span := p.arenas.Exprs.Get(expr).Span.Cover(nameTok.Span)
			expr = p.arenas.Exprs.NewIndex(span, expr, key)

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close index")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(closeTok.Span)
			expr = p.arenas.Exprs.NewIndex(span, expr, index)

		case token.Colon:
			p.advance()
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected method name after ':'")
			if !ok {
				return ast.NoExprID, false
			}
			args, argsEnd, ok := p.parseCallArgs()
			if !ok {
				return ast.NoExprID, false
			}
			method := p.arenas.Intern(nameTok.Text)
			span := p.arenas.Exprs.Get(expr).Span.Cover(argsEnd)
			expr = p.arenas.Exprs.NewMethodCall(span, expr, method, args)

		case token.LParen, token.StringLit, token.LBrace:
			args, argsEnd, ok := p.parseCallArgs()
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(argsEnd)
			expr = p.arenas.Exprs.NewCall(span, expr, args)

		default:
			return expr, true
		}
	}
}

// parseCallArgs разбирает аргументы вызова: (explist), строковый литерал
// или конструктор таблицы. Возвращает аргументы и span закрывающего токена.
func (p *Parser) parseCallArgs() ([]ast.ExprID, source.Span, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LParen:
		p.advance()
		var args []ast.ExprID
		if !p.at(token.RParen) {
			var ok bool
			args, ok = p.parseExprList()
			if !ok {
				return nil, source.Span{}, false
			}
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close argument list")
		if !ok {
			return nil, source.Span{}, false
		}
		return args, closeTok.Span, true

	case token.StringLit:
		p.advance()
		arg := p.arenas.Exprs.NewString(tok.Span, p.arenas.Intern(tok.Text))
		return []ast.ExprID{arg}, tok.Span, true

	case token.LBrace:
		table, ok := p.parseTableConstructor()
		if !ok {
			return nil, source.Span{}, false
		}
		sp := p.arenas.Exprs.Get(table).Span
		return []ast.ExprID{table}, sp, true

	default:
		p.err(diag.SynUnexpectedToken, "expected call arguments")
		return nil, source.Span{}, false
	}
}

// parseExprList разбирает непустой список выражений через запятую.
func (p *Parser) parseExprList() ([]ast.ExprID, bool) {
	var list []ast.ExprID
	for {
		expr, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		list = append(list, expr)
		if !p.at(token.Comma) {
			return list, true
		}
		p.advance()
	}
}
