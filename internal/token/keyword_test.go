package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"and":      KwAnd,
		"break":    KwBreak,
		"do":       KwDo,
		"elseif":   KwElseif,
		"end":      KwEnd,
		"function": KwFunction,
		"goto":     KwGoto,
		"local":    KwLocal,
		"nil":      KwNil,
		"not":      KwNot,
		"repeat":   KwRepeat,
		"return":   KwReturn,
		"until":    KwUntil,
		"while":    KwWhile,
		"true":     KwTrue,
		"false":    KwFalse,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Until", "AND", "End", // регистр важен
		"self", "print", "pairs", // имена из рантайма — обычные Ident
		"identifier", "elsif",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
