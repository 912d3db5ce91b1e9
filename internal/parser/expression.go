package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
)

// parseExpr - главная точка входа для парсинга выражений
// Возвращает ExprID и флаг успеха
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	if !p.enter() {
		return ast.NoExprID, false
	}
	defer p.leave()
	return p.parseBinaryExpr(0) // минимальный приоритет = 0
}

// parseBinaryExpr реализует precedence climbing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	// Парсим левую часть (унарные операторы + primary)
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// Обрабатываем бинарные операторы в цикле
	for {
		tok := p.lx.Peek()

		// Проверяем, является ли токен бинарным оператором
		prec, isRightAssoc := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec {
			break // приоритет слишком низкий
		}

		// Съедаем оператор
		opTok := p.advance()

		// Вычисляем приоритет для правой части
		nextMinPrec := prec + 1
		if isRightAssoc {
			nextMinPrec = prec
		}

		// Парсим правую часть
		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			return ast.NoExprID, false
		}

		// Создаем узел бинарного выражения
		op := p.tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.arenas.Exprs.Get(left).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		finalSpan := leftSpan.Cover(rightSpan)

		left = p.arenas.Exprs.NewBinary(finalSpan, op, left, right)
	}

	return left, true
}

// parseUnaryExpr обрабатывает унарные префиксы. Операнд разбирается на
// уровне precUnary, поэтому '^' (выше и правоассоциативен) связывает
// сильнее: -a^b == -(a^b), а not a == b == (not a) == b.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	op, isUnary := p.getUnaryOperator(tok.Kind)
	if !isUnary {
		return p.parsePrefixExpr()
	}

	if !p.enter() {
		return ast.NoExprID, false
	}
	defer p.leave()

	opTok := p.advance()
	operand, ok := p.parseBinaryExpr(precUnary)
	if !ok {
		p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
		return ast.NoExprID, false
	}

	span := opTok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
	return p.arenas.Exprs.NewUnary(span, op, operand), true
}
