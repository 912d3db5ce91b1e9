package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/source"
	"lune/internal/token"
)

// parseFuncBody разбирает '(' parlist ')' block 'end' после уже
// съеденного 'function'. selfParams добавляются перед объявленными
// (метод получает неявный self).
func (p *Parser) parseFuncBody(start source.Span, selfParams ...source.StringID) (ast.ExprID, bool) {
	if !p.enter() {
		return ast.NoExprID, false
	}
	defer p.leave()

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'function'"); !ok {
		return ast.NoExprID, false
	}

	params := ast.FuncParams{
		Names: append([]source.StringID(nil), selfParams...),
	}
	if !p.at(token.RParen) {
		for {
			if p.at(token.DotDotDot) {
				p.advance()
				params.Varargs = true
				break // '...' всегда последний
			}
			name, _, ok := p.parseIdent()
			if !ok {
				return ast.NoExprID, false
			}
			params.Names = append(params.Names, name)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list"); !ok {
		return ast.NoExprID, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	endTok, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close function")
	if !ok {
		return ast.NoExprID, false
	}

	return p.arenas.Exprs.NewFunction(start.Cover(endTok.Span), params, body), true
}

// parseFunctionStmt разбирает объявление функции:
//
//	function Name {'.' Name} ['(' ... | ':' Name '('] ... end
//
// Точечная цепочка даёт StmtFuncDef, ':' — StmtMethodDef с неявным self.
func (p *Parser) parseFunctionStmt(fnTok token.Token) (ast.StmtID, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynBadFuncName, "expected function name after 'function'")
		return ast.NoStmtID, false
	}
	nameTok := p.advance()
	name := p.arenas.Intern(nameTok.Text)
	target := p.arenas.Exprs.NewIdent(nameTok.Span, name)

	for p.at(token.Dot) {
		p.advance()
		fieldTok, ok := p.expect(token.Ident, diag.SynBadFuncName, "expected name after '.' in function name")
		if !ok {
			return ast.NoStmtID, false
		}
		key := p.arenas.Exprs.NewString(fieldTok.Span, p.arenas.Intern(fieldTok.Text))
		span := p.arenas.Exprs.Get(target).Span.Cover(fieldTok.Span)
		target = p.arenas.Exprs.NewIndex(span, target, key)
	}

	if p.at(token.Colon) {
		p.advance()
		methodTok, ok := p.expect(token.Ident, diag.SynBadFuncName, "expected method name after ':' in function name")
		if !ok {
			return ast.NoStmtID, false
		}
		method := p.arenas.Intern(methodTok.Text)
		selfID := p.arenas.Intern("self")
		fn, ok := p.parseFuncBody(fnTok.Span, selfID)
		if !ok {
			return ast.NoStmtID, false
		}
		span := fnTok.Span.Cover(p.arenas.Exprs.Get(fn).Span)
		return p.arenas.Stmts.NewMethodDef(span, target, method, fn), true
	}

	fn, ok := p.parseFuncBody(fnTok.Span)
	if !ok {
		return ast.NoStmtID, false
	}
	span := fnTok.Span.Cover(p.arenas.Exprs.Get(fn).Span)
	return p.arenas.Stmts.NewFuncDef(span, target, fn), true
}
