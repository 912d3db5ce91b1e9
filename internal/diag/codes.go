package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectExpression  Code = 2003
	SynExpectEnd         Code = 2004
	SynExpectThen        Code = 2005
	SynExpectDo          Code = 2006
	SynExpectUntil       Code = 2007
	SynExpectAssign      Code = 2008
	SynUnclosedParen     Code = 2009
	SynUnclosedBrace     Code = 2010
	SynUnclosedBracket   Code = 2011
	SynBadForHeader      Code = 2012
	SynBadFuncName       Code = 2013
	SynExpectLabelClose  Code = 2014
	SynTooDeep           Code = 2015

	// Драйверные/IO (резервируем)
	IOInfo  Code = 4000
	IOError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:            "unknown error",
	LexInfo:                "lexer note",
	LexUnknownChar:         "unknown character",
	LexUnterminatedString:  "unterminated string literal",
	LexUnterminatedComment: "unterminated block comment",
	LexBadNumber:           "malformed numeric literal",
	SynInfo:                "parser note",
	SynUnexpectedToken:     "unexpected token",
	SynExpectIdentifier:    "identifier expected",
	SynExpectExpression:    "expression expected",
	SynExpectEnd:           "'end' expected",
	SynExpectThen:          "'then' expected",
	SynExpectDo:            "'do' expected",
	SynExpectUntil:         "'until' expected",
	SynExpectAssign:        "'=' expected",
	SynUnclosedParen:       "unclosed parenthesis",
	SynUnclosedBrace:       "unclosed table constructor",
	SynUnclosedBracket:     "unclosed bracket",
	SynBadForHeader:        "malformed for header",
	SynBadFuncName:         "malformed function name",
	SynExpectLabelClose:    "'::' expected",
	SynTooDeep:             "expression nesting too deep",
	IOInfo:                 "io note",
	IOError:                "io error",
}

// ID возвращает стабильный короткий идентификатор кода (LEX1001, SYN2004, ...).
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
