package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/source"
	"lune/internal/token"
)

// parseStmt выбирает по первому токену нужный распознаватель стейтмента.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwBreak:
		p.advance()
		return p.arenas.Stmts.NewBreak(tok.Span), true

	case token.KwGoto:
		p.advance()
		label, labelSpan, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewGoto(tok.Span.Cover(labelSpan), label), true

	case token.ColonColon:
		return p.parseLabelStmt()

	case token.KwReturn:
		return p.parseReturnStmt()

	case token.KwDo:
		return p.parseDoStmt()

	case token.KwIf:
		return p.parseIfStmt()

	case token.KwWhile:
		return p.parseWhileStmt()

	case token.KwRepeat:
		return p.parseRepeatStmt()

	case token.KwFor:
		return p.parseForStmt()

	case token.KwFunction:
		fnTok := p.advance()
		return p.parseFunctionStmt(fnTok)

	case token.KwLocal:
		return p.parseLocalStmt()

	case token.Ident, token.LParen:
		return p.parseExprStmt()

	default:
		p.err(diag.SynUnexpectedToken, "unexpected token \""+tok.Text+"\"")
		return ast.NoStmtID, false
	}
}

// parseBlock разбирает последовательность стейтментов до закрывающего
// токена блока (end/else/elseif/until/EOF). Сами закрывающие токены
// не съедаются. return может быть только последним стейтментом.
func (p *Parser) parseBlock() ([]ast.StmtID, bool) {
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	var stmts []ast.StmtID
	for !p.lx.Peek().BlockEnd() {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		stmts = append(stmts, stmt)
		if p.arenas.Stmts.Get(stmt).Kind == ast.StmtReturn {
			if p.at(token.Semicolon) {
				p.advance()
			}
			if !p.lx.Peek().BlockEnd() {
				p.err(diag.SynUnexpectedToken, "unexpected statement after 'return'")
				return nil, false
			}
			break
		}
	}
	return stmts, true
}

// parseLabelStmt разбирает '::' Name '::'.
func (p *Parser) parseLabelStmt() (ast.StmtID, bool) {
	open := p.advance() // '::'
	name, _, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	closeTok, ok := p.expect(token.ColonColon, diag.SynExpectLabelClose, "expected '::' to close label")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLabel(open.Span.Cover(closeTok.Span), name), true
}

// parseReturnStmt разбирает 'return' [explist].
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	retTok := p.advance()
	span := retTok.Span

	var values []ast.ExprID
	// Список выражений опционален: блок может закончиться сразу.
	if !p.lx.Peek().BlockEnd() && !p.at(token.Semicolon) {
		var ok bool
		values, ok = p.parseExprList()
		if !ok {
			return ast.NoStmtID, false
		}
		span = span.Cover(p.arenas.Exprs.Get(values[len(values)-1]).Span)
	}
	return p.arenas.Stmts.NewReturn(span, values), true
}

// parseLocalStmt разбирает 'local' namelist ['=' explist] и
// 'local function' Name funcbody.
func (p *Parser) parseLocalStmt() (ast.StmtID, bool) {
	localTok := p.advance()

	// local function f() ... end — объявление и присваивание одним стейтментом
	if p.at(token.KwFunction) {
		fnTok := p.advance()
		if !p.at(token.Ident) {
			p.err(diag.SynBadFuncName, "expected function name after 'local function'")
			return ast.NoStmtID, false
		}
		nameTok := p.advance()
		name := p.arenas.Intern(nameTok.Text)
		fn, ok := p.parseFuncBody(fnTok.Span)
		if !ok {
			return ast.NoStmtID, false
		}
		span := localTok.Span.Cover(p.arenas.Exprs.Get(fn).Span)
		return p.arenas.Stmts.NewLocal(span, []source.StringID{name}, []ast.ExprID{fn}), true
	}

	var names []source.StringID
	lastSpan := localTok.Span
	for {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		names = append(names, name)
		lastSpan = nameSpan
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	var values []ast.ExprID
	if p.at(token.Assign) {
		p.advance()
		var ok bool
		values, ok = p.parseExprList()
		if !ok {
			return ast.NoStmtID, false
		}
		lastSpan = p.arenas.Exprs.Get(values[len(values)-1]).Span
	}
	return p.arenas.Stmts.NewLocal(localTok.Span.Cover(lastSpan), names, values), true
}

// parseExprStmt разбирает стейтмент, начинающийся с выражения:
// вызов (обычный или метода) либо присваивание. Всё остальное — ошибка.
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	first, ok := p.parsePrefixExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	firstKind := p.arenas.Exprs.Get(first).Kind
	if !p.at_or(token.Assign, token.Comma) {
		span := p.arenas.Exprs.Get(first).Span
		switch firstKind {
		case ast.ExprCall:
			return p.arenas.Stmts.NewCall(ast.StmtCall, span, first), true
		case ast.ExprMethodCall:
			return p.arenas.Stmts.NewCall(ast.StmtMethodCall, span, first), true
		default:
			p.err(diag.SynUnexpectedToken, "expression cannot be used as a statement")
			return ast.NoStmtID, false
		}
	}

	// присваивание: собираем остальные цели
	targets := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		target, ok := p.parsePrefixExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		targets = append(targets, target)
	}

	for _, target := range targets {
		kind := p.arenas.Exprs.Get(target).Kind
		if kind != ast.ExprIdent && kind != ast.ExprIndex {
			p.report(diag.SynUnexpectedToken, diag.SevError,
				p.arenas.Exprs.Get(target).Span, "cannot assign to this expression")
			return ast.NoStmtID, false
		}
	}

	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in assignment"); !ok {
		return ast.NoStmtID, false
	}
	values, ok := p.parseExprList()
	if !ok {
		return ast.NoStmtID, false
	}

	span := p.arenas.Exprs.Get(first).Span.
		Cover(p.arenas.Exprs.Get(values[len(values)-1]).Span)
	return p.arenas.Stmts.NewAssign(span, targets, values), true
}
