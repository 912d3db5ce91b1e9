package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lune/internal/ast"
	"lune/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.lua", "local x = 1\n")

	res, err := Tokenize(path, 100)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	kinds := []token.Kind{token.KwLocal, token.Ident, token.Assign, token.IntLit, token.EOF}
	if len(res.Tokens) != len(kinds) {
		t.Fatalf("token count = %d, want %d", len(res.Tokens), len(kinds))
	}
	for i, want := range kinds {
		if res.Tokens[i].Kind != want {
			t.Errorf("token[%d] = %v, want %v", i, res.Tokens[i].Kind, want)
		}
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "nope.lua"), 10); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.lua", "local x = 1\nreturn x\n")

	res, err := Parse(path, 100)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	file := res.Builder.Files.Get(res.FileID)
	if len(file.Stmts) != 2 {
		t.Fatalf("statement count = %d, want 2", len(file.Stmts))
	}
	if res.Builder.Stmts.Get(file.Stmts[1]).Kind != ast.StmtReturn {
		t.Error("second statement must be return")
	}
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.lua", "if x then\n")

	res, err := Parse(path, 100)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected syntax diagnostics")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.lua", "return 2\n")
	writeFile(t, dir, "a.lua", "return 1\n")
	writeFile(t, dir, "skip.txt", "not lua\n")
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.lua", "broken (\n")

	_, results, err := ParseDir(context.Background(), dir, 100, 2)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("result count = %d, want 3", len(results))
	}

	// детерминированный порядок: сортировка по пути
	wantOrder := []string{"a.lua", "b.lua", "c.lua"}
	for i, want := range wantOrder {
		if got := filepath.Base(results[i].Path); got != want {
			t.Errorf("results[%d] = %s, want %s", i, got, want)
		}
	}

	if results[0].Bag.HasErrors() || results[1].Bag.HasErrors() {
		t.Error("well-formed files must not produce diagnostics")
	}
	if !results[2].Bag.HasErrors() {
		t.Error("broken file must produce diagnostics")
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := TokenizeDir(context.Background(), t.TempDir(), 10, 0)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if fs == nil || len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestTokenizeDirParallel(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.lua", "b.lua", "c.lua", "d.lua"} {
		writeFile(t, dir, name, "local v = \"text\"\n")
	}

	_, results, err := TokenizeDir(context.Background(), dir, 10, 4)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("result count = %d", len(results))
	}
	for _, res := range results {
		if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
			t.Errorf("%s: token stream must end with EOF", res.Path)
		}
	}
}
