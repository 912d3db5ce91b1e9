package lexer

import (
	"lune/internal/diag"
	"lune/internal/token"
)

// Строки только в двойных кавычках, содержимое копируется дословно —
// escape-последовательности не интерпретируются. Token.Text — содержимое
// без кавычек; Token.Span покрывает кавычки целиком.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		if lx.cursor.Eat('"') {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.StringLit,
				Span: sp,
				Text: string(lx.file.Content[sp.Start+1 : sp.End-1]),
			}
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
