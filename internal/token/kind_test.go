package token

import (
	"testing"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Ident"},
		{KwUntil, "KwUntil"},
		{IntLit, "IntLit"},
		{DotDotDot, "DotDotDot"},
		{TildeEq, "TildeEq"},
		{SlashSlash, "SlashSlash"},
	}
	for _, tt := range cases {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if got := Kind(255).String(); got != "Kind(?)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() {
		t.Error("IntLit must be a literal")
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Error("Ident is not a literal")
	}
	if !(Token{Kind: KwRepeat}).IsKeyword() {
		t.Error("KwRepeat must be a keyword")
	}
	if (Token{Kind: DotDot}).IsKeyword() {
		t.Error("DotDot is not a keyword")
	}
	if !(Token{Kind: DotDot}).IsPunctOrOp() {
		t.Error("DotDot must be an operator")
	}
	for _, k := range []Kind{KwEnd, KwElse, KwElseif, KwUntil, EOF} {
		if !(Token{Kind: k}).BlockEnd() {
			t.Errorf("%v must end a block", k)
		}
	}
	if (Token{Kind: KwDo}).BlockEnd() {
		t.Error("KwDo does not end a block")
	}
}
