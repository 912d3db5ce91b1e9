package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseif represents the 'elseif' keyword.
	KwElseif // elseif
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLocal represents the 'local' keyword.
	KwLocal // local
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwRepeat represents the 'repeat' keyword.
	KwRepeat // repeat
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwUntil represents the 'until' keyword.
	KwUntil // until
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// SlashSlash represents the floor division operator token.
	SlashSlash // //
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the power operator token.
	Caret // ^
	// Hash represents the length operator token.
	Hash // #
	// Amp represents the bitwise and operator token.
	Amp // &
	// Tilde represents the bitwise xor / not operator token.
	Tilde // ~
	// Pipe represents the bitwise or operator token.
	Pipe // |
	// Shl represents the shift left operator token.
	Shl // <<
	// Shr represents the shift right operator token.
	Shr // >>
	// EqEq represents the equality operator token.
	EqEq // ==
	// TildeEq represents the inequality operator token.
	TildeEq // ~=
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// Assign represents the assignment operator token.
	Assign // =
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// ColonColon represents the label delimiter token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the colon token.
	Colon // :
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the concatenation operator token.
	DotDot // ..
	// DotDotDot represents the vararg token.
	DotDotDot // ...
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwAnd:      "KwAnd",
	KwBreak:    "KwBreak",
	KwDo:       "KwDo",
	KwElse:     "KwElse",
	KwElseif:   "KwElseif",
	KwEnd:      "KwEnd",
	KwFalse:    "KwFalse",
	KwFor:      "KwFor",
	KwFunction: "KwFunction",
	KwGoto:     "KwGoto",
	KwIf:       "KwIf",
	KwIn:       "KwIn",
	KwLocal:    "KwLocal",
	KwNil:      "KwNil",
	KwNot:      "KwNot",
	KwOr:       "KwOr",
	KwRepeat:   "KwRepeat",
	KwReturn:   "KwReturn",
	KwThen:     "KwThen",
	KwTrue:     "KwTrue",
	KwUntil:    "KwUntil",
	KwWhile:    "KwWhile",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	SlashSlash: "SlashSlash",
	Percent:    "Percent",
	Caret:      "Caret",
	Hash:       "Hash",
	Amp:        "Amp",
	Tilde:      "Tilde",
	Pipe:       "Pipe",
	Shl:        "Shl",
	Shr:        "Shr",
	EqEq:       "EqEq",
	TildeEq:    "TildeEq",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	Lt:         "Lt",
	Gt:         "Gt",
	Assign:     "Assign",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	ColonColon: "ColonColon",
	Semicolon:  "Semicolon",
	Colon:      "Colon",
	Comma:      "Comma",
	Dot:        "Dot",
	DotDot:     "DotDot",
	DotDotDot:  "DotDotDot",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
