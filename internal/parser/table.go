package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/token"
)

// parseTableConstructor разбирает '{' [field {sep field} [sep]] '}'.
// Разделитель — ',' или ';'. Поле — '[exp] = exp', Name '=' exp
// или позиционное выражение.
func (p *Parser) parseTableConstructor() (ast.ExprID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return ast.NoExprID, false
	}
	if !p.enter() {
		return ast.NoExprID, false
	}
	defer p.leave()

	var fields []ast.TableField
	for !p.at(token.RBrace) {
		field, ok := p.parseTableField()
		if !ok {
			return ast.NoExprID, false
		}
		fields = append(fields, field)

		if p.at_or(token.Comma, token.Semicolon) {
			p.advance()
			continue
		}
		break
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close table constructor")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewTable(open.Span.Cover(closeTok.Span), fields), true
}

func (p *Parser) parseTableField() (ast.TableField, bool) {
	switch {
	case p.at(token.LBracket):
		// [exp] = exp
		p.advance()
		key, ok := p.parseExpr()
		if !ok {
			return ast.TableField{}, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in table key"); !ok {
			return ast.TableField{}, false
		}
		if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' after table key"); !ok {
			return ast.TableField{}, false
		}
		value, ok := p.parseExpr()
		if !ok {
			return ast.TableField{}, false
		}
		return ast.TableField{Key: key, Value: value}, true

	default:
		expr, ok := p.parseExpr()
		if !ok {
			return ast.TableField{}, false
		}
		// Name = exp: выражение оказалось голым идентификатором, за ним '='.
		// Ключ хранится строковым литералом с именем поля.
		if ident, isIdent := p.arenas.Exprs.Ident(expr); isIdent && p.at(token.Assign) {
			p.advance() // '='
			span := p.arenas.Exprs.Get(expr).Span
			key := p.arenas.Exprs.NewString(span, ident.Name)
			value, ok := p.parseExpr()
			if !ok {
				return ast.TableField{}, false
			}
			return ast.TableField{Key: key, Value: value}, true
		}
		// позиционное поле
		return ast.TableField{Key: ast.NoExprID, Value: expr}, true
	}
}
