package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/source"
	"lune/internal/token"
)

// parseDoStmt разбирает 'do' block 'end'.
func (p *Parser) parseDoStmt() (ast.StmtID, bool) {
	doTok := p.advance()
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	endTok, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'do' block")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewDo(doTok.Span.Cover(endTok.Span), body), true
}

// parseIfStmt разбирает 'if' exp 'then' block {'elseif' ...} ['else' block] 'end'.
// Цепочка elseif сворачивается во вложенные StmtIf.
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.advance() // 'if' или 'elseif'

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwThen, diag.SynExpectThen, "expected 'then' after condition"); !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	switch p.lx.Peek().Kind {
	case token.KwElseif:
		// остаток цепочки — вложенный if, 'end' общий
		nested, ok := p.parseIfStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		span := ifTok.Span.Cover(p.arenas.Stmts.Get(nested).Span)
		return p.arenas.Stmts.NewIf(span, cond, then, []ast.StmtID{nested}), true

	case token.KwElse:
		p.advance()
		els, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		endTok, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'if'")
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewIf(ifTok.Span.Cover(endTok.Span), cond, then, els), true

	default:
		endTok, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'if'")
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewIf(ifTok.Span.Cover(endTok.Span), cond, then, nil), true
	}
}

// parseWhileStmt разбирает 'while' exp 'do' block 'end'.
func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance()

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwDo, diag.SynExpectDo, "expected 'do' after 'while' condition"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	endTok, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'while'")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWhile(whileTok.Span.Cover(endTok.Span), cond, body), true
}

// parseRepeatStmt разбирает 'repeat' block 'until' exp.
func (p *Parser) parseRepeatStmt() (ast.StmtID, bool) {
	repeatTok := p.advance()

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwUntil, diag.SynExpectUntil, "expected 'until' to close 'repeat'"); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := repeatTok.Span.Cover(p.arenas.Exprs.Get(cond).Span)
	return p.arenas.Stmts.NewRepeat(span, body, cond), true
}

// parseForStmt различает числовой и generic for по токену после
// первого имени: '=' — числовой, ',' или 'in' — generic.
func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	forTok := p.advance()

	firstName, _, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	switch p.lx.Peek().Kind {
	case token.Assign:
		p.advance()
		return p.parseNumericFor(forTok, firstName)
	case token.Comma, token.KwIn:
		return p.parseGenericFor(forTok, firstName)
	default:
		p.err(diag.SynBadForHeader, "expected '=', ',' or 'in' in 'for' header")
		return ast.NoStmtID, false
	}
}

// parseNumericFor разбирает 'for' Name '=' exp ',' exp [',' exp] 'do' ... 'end'.
// Отсутствующий шаг заменяется литералом 1 с пустым span.
func (p *Parser) parseNumericFor(forTok token.Token, v source.StringID) (ast.StmtID, bool) {
	start, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Comma, diag.SynBadForHeader, "expected ',' after 'for' start value"); !ok {
		return ast.NoStmtID, false
	}
	limit, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	var step ast.ExprID
	if p.at(token.Comma) {
		p.advance()
		step, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	} else {
		limitSpan := p.arenas.Exprs.Get(limit).Span
		emptySpan := limitSpan
		emptySpan.Start = emptySpan.End
		step = p.arenas.Exprs.NewInt(emptySpan, 1)
	}

	if _, ok := p.expect(token.KwDo, diag.SynExpectDo, "expected 'do' after 'for' header"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	endTok, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'for'")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewNumericFor(forTok.Span.Cover(endTok.Span), v, start, limit, step, body), true
}

// parseGenericFor разбирает 'for' namelist 'in' explist 'do' ... 'end'.
func (p *Parser) parseGenericFor(forTok token.Token, firstName source.StringID) (ast.StmtID, bool) {
	names := []source.StringID{firstName}
	for p.at(token.Comma) {
		p.advance()
		name, _, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		names = append(names, name)
	}

	if _, ok := p.expect(token.KwIn, diag.SynBadForHeader, "expected 'in' in generic 'for'"); !ok {
		return ast.NoStmtID, false
	}
	exprs, ok := p.parseExprList()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwDo, diag.SynExpectDo, "expected 'do' after 'for' header"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	endTok, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'for'")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewGenericFor(forTok.Span.Cover(endTok.Span), names, exprs, body), true
}
