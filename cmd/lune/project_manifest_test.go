package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindLuneTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, "lune.toml")
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"demo\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	found, ok, err := findLuneToml(sub)
	if err != nil {
		t.Fatalf("findLuneToml: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if found != manifest {
		t.Errorf("found %s, want %s", found, manifest)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lune.toml")
	content := `[package]
name = "demo"
version = "0.1.0"

[run]
main = "scripts/start.lua"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Package.Name != "demo" {
		t.Errorf("package.name = %q", cfg.Package.Name)
	}
	if cfg.Run.Main != "scripts/start.lua" {
		t.Errorf("run.main = %q", cfg.Run.Main)
	}

	m := &projectManifest{Path: path, Root: dir, Config: cfg}
	want := filepath.Join(dir, "scripts", "start.lua")
	if got := m.EntryPath(); got != want {
		t.Errorf("EntryPath = %s, want %s", got, want)
	}
}

func TestLoadProjectConfigRejectsBadManifest(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"missing package section", "[run]\nmain = \"main.lua\"\n"},
		{"empty package name", "[package]\nname = \"\"\n"},
		{"invalid toml", "[package\nname = demo\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := loadProjectConfig(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEntryPathDefaultsToMainLua(t *testing.T) {
	m := &projectManifest{Root: "/proj", Config: projectConfig{}}
	want := filepath.Join("/proj", "main.lua")
	if got := m.EntryPath(); got != want {
		t.Errorf("EntryPath = %s, want %s", got, want)
	}
}
