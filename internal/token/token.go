package token

import (
	"lune/internal/source"
)

// Token represents a single source token with its location and trivia.
//
// Text is a view of the token as it appeared in the source; for StringLit the
// surrounding quotes are excluded. Numeric tokens carry their parsed value in
// Int or Float.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Int     int64
	Float   float64
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is one of the reserved words.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAnd && t.Kind <= KwWhile
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, SlashSlash, Percent, Caret, Hash,
		Amp, Tilde, Pipe, Shl, Shr,
		EqEq, TildeEq, LtEq, GtEq, Lt, Gt, Assign,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		ColonColon, Semicolon, Colon, Comma, Dot, DotDot, DotDotDot:
		return true
	default:
		return false
	}
}

// BlockEnd reports whether the token terminates a statement block
// (end, else, elseif, until, or end of input).
func (t Token) BlockEnd() bool {
	switch t.Kind {
	case KwEnd, KwElse, KwElseif, KwUntil, EOF:
		return true
	default:
		return false
	}
}
