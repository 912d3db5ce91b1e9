package parser

import (
	"fmt"
	"strings"
	"testing"

	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/lexer"
	"lune/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseChunk разбирает строку как целый файл
func parseChunk(t *testing.T, input string) (Result, *ast.Builder) {
	t.Helper()
	return parseChunkOpts(t, input, Options{})
}

func parseChunkOpts(t *testing.T, input string, opts Options) (Result, *ast.Builder) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lua", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	opts.Reporter = &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseFile(fs, lx, arenas, opts)
	return res, arenas
}

// mustParse разбирает строку и требует отсутствия ошибок
func mustParse(t *testing.T, input string) (*ast.File, *ast.Builder) {
	t.Helper()
	res, arenas := parseChunk(t, input)
	if res.Bag.HasErrors() {
		t.Fatalf("parse of %q failed: %s", input, diagnosticsSummary(res.Bag))
	}
	return arenas.Files.Get(res.File), arenas
}

// mustFail разбирает строку и требует конкретной первой ошибки
func mustFail(t *testing.T, input string, wantCode diag.Code) {
	t.Helper()
	res, _ := parseChunk(t, input)
	if !res.Bag.HasErrors() {
		t.Fatalf("parse of %q unexpectedly succeeded", input)
	}
	first := res.Bag.Items()[0]
	if first.Code != wantCode {
		t.Fatalf("first diagnostic = [%s] %s, want %s", first.Code.ID(), first.Message, wantCode.ID())
	}
}

// onlyStmt требует ровно один стейтмент в файле и возвращает его
func onlyStmt(t *testing.T, file *ast.File) ast.StmtID {
	t.Helper()
	if len(file.Stmts) != 1 {
		t.Fatalf("statement count = %d, want 1", len(file.Stmts))
	}
	return file.Stmts[0]
}

// exprOfLocal достаёт единственное значение из local-объявления
func exprOfLocal(t *testing.T, input string) (ast.ExprID, *ast.Builder) {
	t.Helper()
	file, arenas := mustParse(t, input)
	local, ok := arenas.Stmts.Local(onlyStmt(t, file))
	if !ok {
		t.Fatal("expected a local declaration")
	}
	if len(local.Values) != 1 {
		t.Fatalf("local value count = %d, want 1", len(local.Values))
	}
	return local.Values[0], arenas
}
