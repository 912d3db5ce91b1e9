package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newParseTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().String("color", "off", "")
	cmd.PersistentFlags().Bool("quiet", false, "")
	cmd.PersistentFlags().Int("max-diagnostics", 100, "")
	cmd.Flags().String("format", "pretty", "")
	cmd.Flags().Int("jobs", 0, "")
	cmd.SetContext(context.Background())
	return cmd
}

func writeLua(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseAndPrintSuccess(t *testing.T) {
	path := writeLua(t, t.TempDir(), "ok.lua", "local x = 1\nreturn x\n")

	var out bytes.Buffer
	if err := parseAndPrint(newParseTestCmd(t), &out, path, "pretty"); err != nil {
		t.Fatalf("parseAndPrint: %v", err)
	}
	if out.Len() == 0 {
		t.Error("expected AST output for a well-formed file")
	}
}

func TestParseAndPrintFailsWithoutPartialOutput(t *testing.T) {
	path := writeLua(t, t.TempDir(), "broken.lua", "if x then\n")

	var out bytes.Buffer
	err := parseAndPrint(newParseTestCmd(t), &out, path, "pretty")
	if err == nil {
		t.Fatal("expected an error for a file with syntax errors")
	}
	if out.Len() != 0 {
		t.Errorf("partial AST must not be printed, got %q", out.String())
	}
}

func TestParseDirAndPrintSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeLua(t, dir, "ok.lua", "return 1\n")
	writeLua(t, dir, "broken.lua", "if x then\n")

	var out bytes.Buffer
	err := parseDirAndPrint(newParseTestCmd(t), &out, dir, "pretty")
	if err == nil {
		t.Fatal("expected an error when a file in the directory fails to parse")
	}
	got := out.String()
	if !strings.Contains(got, "ok.lua") {
		t.Error("well-formed file must still be printed")
	}
	if strings.Contains(got, "broken.lua") {
		t.Errorf("broken file must not appear in output, got %q", got)
	}
}

func TestParseDirAndPrintAllGood(t *testing.T) {
	dir := t.TempDir()
	writeLua(t, dir, "a.lua", "return 1\n")
	writeLua(t, dir, "b.lua", "return 2\n")

	var out bytes.Buffer
	if err := parseDirAndPrint(newParseTestCmd(t), &out, dir, "tree"); err != nil {
		t.Fatalf("parseDirAndPrint: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "a.lua") || !strings.Contains(got, "b.lua") {
		t.Errorf("both files must be printed, got %q", got)
	}
}
