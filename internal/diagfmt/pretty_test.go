package diagfmt

import (
	"strings"
	"testing"

	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/lexer"
	"lune/internal/parser"
	"lune/internal/source"
	"lune/internal/token"
)

func parseForTest(t *testing.T, input string) (parser.Result, *ast.Builder, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lua", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: reporter})
	return res, arenas, fs
}

func TestPrettyDiagnostics(t *testing.T) {
	res, _, fs := parseForTest(t, "local x = (1 + 2")
	if !res.Bag.HasErrors() {
		t.Fatal("expected a parse error")
	}

	var sb strings.Builder
	Pretty(&sb, res.Bag, fs, PrettyOpts{ShowSource: true})
	out := sb.String()

	if !strings.Contains(out, "test.lua:1:") {
		t.Errorf("output lacks position:\n%s", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("output lacks severity:\n%s", out)
	}
	if !strings.Contains(out, diag.SynUnclosedParen.ID()) {
		t.Errorf("output lacks code:\n%s", out)
	}
	if !strings.Contains(out, "local x = (1 + 2") {
		t.Errorf("output lacks source context:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("output lacks caret marker:\n%s", out)
	}
}

func TestPrettyCaretPosition(t *testing.T) {
	res, _, fs := parseForTest(t, "local = 1")

	var sb strings.Builder
	Pretty(&sb, res.Bag, fs, PrettyOpts{ShowSource: true})
	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", sb.String())
	}
	// маркер стоит под '=' (колонка 7)
	marker := lines[2]
	if got := strings.Index(marker, "^"); got != 2+6 {
		t.Errorf("caret at offset %d:\n%s", got, sb.String())
	}
}

func TestJSONDiagnostics(t *testing.T) {
	res, _, fs := parseForTest(t, "if x then")

	var sb strings.Builder
	if err := JSON(&sb, res.Bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := sb.String()
	for _, want := range []string{`"severity": "ERROR"`, `"code": "SYN`, `"file": "test.lua"`, `"start_line": 1`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output lacks %s:\n%s", want, out)
		}
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lua", []byte("local x = 1"))
	file := fs.Get(fileID)

	lx := lexer.New(file, lexer.Options{Reporter: diag.NopReporter{}})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var sb strings.Builder
	if err := FormatTokensPretty(&sb, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"KwLocal", "Ident", "Assign", "IntLit", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("token output lacks %s:\n%s", want, out)
		}
	}

	sb.Reset()
	if err := FormatTokensJSON(&sb, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	if !strings.Contains(sb.String(), `"int": 1`) {
		t.Errorf("JSON tokens lack int value:\n%s", sb.String())
	}
}

func TestFormatASTPretty(t *testing.T) {
	res, arenas, fs := parseForTest(t, "local x = 1\nreturn x")
	if res.Bag.HasErrors() {
		t.Fatal("unexpected parse errors")
	}

	var sb strings.Builder
	if err := FormatASTPretty(&sb, arenas, res.File, fs); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"Stmt[0]: Local", "Stmt[1]: Return", "Name[0]: x", "└─"} {
		if !strings.Contains(out, want) {
			t.Errorf("AST output lacks %q:\n%s", want, out)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	res, arenas, fs := parseForTest(t, "while x do f() end")

	var sb strings.Builder
	if err := FormatASTJSON(&sb, arenas, res.File, fs); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"While", "Cond: expr#", `"children"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON AST lacks %q:\n%s", want, out)
		}
	}
}

func TestExprInlineForms(t *testing.T) {
	res, arenas, _ := parseForTest(t, `local x = a.b[1] .. f("s")`)
	if res.Bag.HasErrors() {
		t.Fatal("unexpected parse errors")
	}
	file := arenas.Files.Get(res.File)
	local, _ := arenas.Stmts.Local(file.Stmts[0])

	got := formatExprInline(arenas, local.Values[0])
	want := `a.b[1] .. f("s")`
	if got != want {
		t.Errorf("inline = %q, want %q", got, want)
	}
}
