package lexer_test

import (
	"testing"

	"lune/internal/diag"
	"lune/internal/lexer"
	"lune/internal/source"
	"lune/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lua", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectKinds проверяет последовательность токенов (включая завершающий EOF)
func expectKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if reporter.HasErrors() {
		t.Fatalf("unexpected lex errors for %q: %+v", input, reporter.diagnostics)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d (%v)", len(tokens), len(expected), tokens)
	}
	for i, want := range expected {
		if tokens[i].Kind != want {
			t.Errorf("token[%d] = %v, want %v", i, tokens[i].Kind, want)
		}
	}
}

func TestKeywordsNeverLexAsNames(t *testing.T) {
	cases := map[string]token.Kind{
		"and": token.KwAnd, "break": token.KwBreak, "do": token.KwDo,
		"else": token.KwElse, "elseif": token.KwElseif, "end": token.KwEnd,
		"false": token.KwFalse, "for": token.KwFor, "function": token.KwFunction,
		"goto": token.KwGoto, "if": token.KwIf, "in": token.KwIn,
		"local": token.KwLocal, "nil": token.KwNil, "not": token.KwNot,
		"or": token.KwOr, "repeat": token.KwRepeat, "return": token.KwReturn,
		"then": token.KwThen, "true": token.KwTrue, "until": token.KwUntil,
		"while": token.KwWhile,
	}
	for lexeme, want := range cases {
		lx, _ := makeTestLexer(lexeme)
		tok := lx.Next()
		if tok.Kind != want {
			t.Errorf("%q lexed as %v, want %v", lexeme, tok.Kind, want)
		}
	}
}

func TestCapitalizedUntilIsIdent(t *testing.T) {
	lx, _ := makeTestLexer("Until")
	if tok := lx.Next(); tok.Kind != token.Ident || tok.Text != "Until" {
		t.Errorf("Until lexed as %v %q, want Ident", tok.Kind, tok.Text)
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	expectKinds(t, "if x then end foo_bar", []token.Kind{
		token.KwIf, token.Ident, token.KwThen, token.KwEnd, token.Ident, token.EOF,
	})
}

func TestGreedyOperators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Kind
	}{
		{"eqeq_not_two_assign", "==", []token.Kind{token.EqEq, token.EOF}},
		{"dots_not_three_dots", "...", []token.Kind{token.DotDotDot, token.EOF}},
		{"idiv_not_two_slash", "//", []token.Kind{token.SlashSlash, token.EOF}},
		{"concat", "..", []token.Kind{token.DotDot, token.EOF}},
		{"ne", "~=", []token.Kind{token.TildeEq, token.EOF}},
		{"tilde_alone", "~", []token.Kind{token.Tilde, token.EOF}},
		{"le_ge", "<= >=", []token.Kind{token.LtEq, token.GtEq, token.EOF}},
		{"shifts", "<< >>", []token.Kind{token.Shl, token.Shr, token.EOF}},
		{"label", "::", []token.Kind{token.ColonColon, token.EOF}},
		{"colon_then_assign", ":=", []token.Kind{token.Colon, token.Assign, token.EOF}},
		{"dots_then_dot", "....", []token.Kind{token.DotDotDot, token.Dot, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKinds(t, tt.input, tt.expected)
		})
	}
}

func TestNumbers(t *testing.T) {
	lx, reporter := makeTestLexer("123 4.56 444 4.55555555 4.57e-3 0.3e12 5e+20")

	type num struct {
		kind token.Kind
		i    int64
		f    float64
	}
	expected := []num{
		{token.IntLit, 123, 0},
		{token.FloatLit, 0, 4.56},
		{token.IntLit, 444, 0},
		{token.FloatLit, 0, 4.55555555},
		{token.FloatLit, 0, 4.57e-3},
		{token.FloatLit, 0, 0.3e12},
		{token.FloatLit, 0, 5e+20},
	}

	for i, want := range expected {
		tok := lx.Next()
		if tok.Kind != want.kind {
			t.Fatalf("token[%d] kind = %v, want %v", i, tok.Kind, want.kind)
		}
		if want.kind == token.IntLit && tok.Int != want.i {
			t.Errorf("token[%d] Int = %d, want %d", i, tok.Int, want.i)
		}
		if want.kind == token.FloatLit && tok.Float != want.f {
			t.Errorf("token[%d] Float = %g, want %g", i, tok.Float, want.f)
		}
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
}

func TestBadNumberIsRecoverable(t *testing.T) {
	lx, reporter := makeTestLexer("1e+ x")

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("expected LexBadNumber diagnostic")
	}
	if reporter.diagnostics[0].Code != diag.LexBadNumber {
		t.Errorf("code = %v, want LexBadNumber", reporter.diagnostics[0].Code)
	}

	// лексер продолжает после ошибки
	if tok := lx.Next(); tok.Kind != token.Ident || tok.Text != "x" {
		t.Errorf("lexer did not continue, got %v %q", tok.Kind, tok.Text)
	}
}

func TestStringVerbatim(t *testing.T) {
	lx, _ := makeTestLexer(`print("hello\nworld")`)

	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.LParen {
		t.Fatalf("expected LParen, got %v", tok.Kind)
	}
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %v", tok.Kind)
	}
	// escape-последовательности не обрабатываются
	if tok.Text != `hello\nworld` {
		t.Errorf("Text = %q, want %q", tok.Text, `hello\nworld`)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"oops`)

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected LexUnterminatedString, got %+v", reporter.diagnostics)
	}
}

func TestUnknownCharIsRecoverable(t *testing.T) {
	lx, reporter := makeTestLexer("a $ b")

	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid for '$', got %v", tok.Kind)
	}
	if !reporter.HasErrors() || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %+v", reporter.diagnostics)
	}
	if tok := lx.Next(); tok.Kind != token.Ident || tok.Text != "b" {
		t.Errorf("lexer did not continue, got %v %q", tok.Kind, tok.Text)
	}
}

func TestEOFIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next() // x
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next() after end #%d = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("local x")
	if tok := lx.Peek(); tok.Kind != token.KwLocal {
		t.Fatalf("Peek = %v, want KwLocal", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.KwLocal {
		t.Fatalf("Next after Peek = %v, want KwLocal", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("second Next = %v, want Ident", tok.Kind)
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	lx, reporter := makeTestLexer("-- header\nlocal x --[[ inline ]] = 1")

	tok := lx.Next()
	if tok.Kind != token.KwLocal {
		t.Fatalf("expected KwLocal, got %v", tok.Kind)
	}
	foundComment := false
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaLineComment {
			foundComment = true
			if tr.Text != "-- header" {
				t.Errorf("comment text = %q", tr.Text)
			}
		}
	}
	if !foundComment {
		t.Error("line comment not attached as leading trivia")
	}

	lx.Next() // x
	tok = lx.Next()
	if tok.Kind != token.Assign {
		t.Fatalf("expected Assign, got %v", tok.Kind)
	}
	foundBlock := false
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaBlockComment {
			foundBlock = true
		}
	}
	if !foundBlock {
		t.Error("block comment not attached as leading trivia")
	}
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("--[[ never closed")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if !reporter.HasErrors() || reporter.diagnostics[0].Code != diag.LexUnterminatedComment {
		t.Fatalf("expected LexUnterminatedComment, got %+v", reporter.diagnostics)
	}
}

func TestSpansMatchSource(t *testing.T) {
	input := "local foo"
	lx, _ := makeTestLexer(input)

	tok := lx.Next()
	if got := input[tok.Span.Start:tok.Span.End]; got != "local" {
		t.Errorf("span slice = %q, want %q", got, "local")
	}
	tok = lx.Next()
	if got := input[tok.Span.Start:tok.Span.End]; got != "foo" {
		t.Errorf("span slice = %q, want %q", got, "foo")
	}
}

func TestStatementStream(t *testing.T) {
	expectKinds(t, "local x = 1\nreturn x", []token.Kind{
		token.KwLocal, token.Ident, token.Assign, token.IntLit,
		token.KwReturn, token.Ident, token.EOF,
	})
}
