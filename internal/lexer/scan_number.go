package lexer

import (
	"strconv"

	"lune/internal/diag"
	"lune/internal/token"
)

// Десятичные литералы: [0-9]+ (опц. одна '.') (опц. [eE][+-]?[0-9]+).
// Точка допускается только до маркера экспоненты. Наличие '.' или 'e'/'E'
// классифицирует литерал как FloatLit, иначе IntLit. Значение разбирается
// сразу; нечитаемый текст — LexBadNumber и Invalid токен (лексер продолжает).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	hasDot := false
	hasExp := false

scan:
	for {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.' && !hasDot && !hasExp:
			hasDot = true
			lx.cursor.Bump()
		case (b == 'e' || b == 'E') && !hasExp:
			hasExp = true
			lx.cursor.Bump()
			if !lx.cursor.Eat('+') {
				lx.cursor.Eat('-')
			}
		default:
			break scan
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if hasDot || hasExp {
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			lx.errLex(diag.LexBadNumber, sp, "malformed number \""+text+"\"")
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		return token.Token{Kind: token.FloatLit, Span: sp, Text: text, Float: val}
	}

	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, sp, "malformed number \""+text+"\"")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: text, Int: val}
}
