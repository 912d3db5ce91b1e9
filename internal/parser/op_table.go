package parser

import (
	"lune/internal/ast"
	"lune/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precLogicalOr      = 1  // or
	precLogicalAnd     = 2  // and
	precComparison     = 3  // == ~= < <= > >=
	precBitwiseOr      = 4  // |
	precBitwiseXor     = 5  // ~
	precBitwiseAnd     = 6  // &
	precShift          = 7  // << >>
	precConcat         = 8  // .. (правоассоциативно)
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / // %
	precUnary          = 11 // not - # ~
	precPow            = 12 // ^ (правоассоциативно, сильнее унарных)
)

// getBinaryOperatorPrec возвращает приоритет и ассоциативность оператора
// Возвращает (приоритет, правоассоциативный)
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	// Логические операторы
	case token.KwOr:
		return precLogicalOr, false
	case token.KwAnd:
		return precLogicalAnd, false

	// Сравнения — один уровень, без цепочек
	case token.EqEq, token.TildeEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false

	// Битовые операторы
	case token.Pipe:
		return precBitwiseOr, false
	case token.Tilde:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false

	// Сдвиги
	case token.Shl, token.Shr:
		return precShift, false

	// Конкатенация (правоассоциативна)
	case token.DotDot:
		return precConcat, true

	// Арифметические операторы
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.SlashSlash, token.Percent:
		return precMultiplicative, false

	// Возведение в степень (правоассоциативно)
	case token.Caret:
		return precPow, true

	default:
		return -1, false // не бинарный оператор
	}
}

// tokenKindToBinaryOp преобразует токен в тип бинарного оператора
func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	// Арифметические
	case token.Plus:
		return ast.BinaryAdd
	case token.Minus:
		return ast.BinarySub
	case token.Star:
		return ast.BinaryMul
	case token.Slash:
		return ast.BinaryDiv
	case token.SlashSlash:
		return ast.BinaryIDiv
	case token.Percent:
		return ast.BinaryMod
	case token.Caret:
		return ast.BinaryPow

	// Строки
	case token.DotDot:
		return ast.BinaryConcat

	// Битовые
	case token.Amp:
		return ast.BinaryBitAnd
	case token.Pipe:
		return ast.BinaryBitOr
	case token.Tilde:
		return ast.BinaryBitXor
	case token.Shl:
		return ast.BinaryShl
	case token.Shr:
		return ast.BinaryShr

	// Логические
	case token.KwAnd:
		return ast.BinaryAnd
	case token.KwOr:
		return ast.BinaryOr

	// Сравнения
	case token.EqEq:
		return ast.BinaryEq
	case token.TildeEq:
		return ast.BinaryNotEq
	case token.Lt:
		return ast.BinaryLess
	case token.LtEq:
		return ast.BinaryLessEq
	case token.Gt:
		return ast.BinaryGreater
	case token.GtEq:
		return ast.BinaryGreaterEq

	default:
		// Это не должно случаться, если таблица приоритетов корректна
		return ast.BinaryAdd // fallback
	}
}

// getUnaryOperator возвращает тип унарного оператора для токена
func (p *Parser) getUnaryOperator(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.KwNot:
		return ast.UnaryNot, true
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Hash:
		return ast.UnaryLen, true
	case token.Tilde:
		return ast.UnaryBitNot, true
	default:
		return ast.UnaryNot, false // не унарный оператор
	}
}
