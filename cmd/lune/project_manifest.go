package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noLuneTomlMessage = "no lune.toml found\nplease specify the file explicitly, e.g.:\n  lune parse path/to/file.lua"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Run     runConfig     `toml:"run"`
}

type packageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type runConfig struct {
	Main string `toml:"main"`
}

// EntryPath возвращает абсолютный путь к входному файлу проекта.
func (m *projectManifest) EntryPath() string {
	main := m.Config.Run.Main
	if main == "" {
		main = "main.lua"
	}
	if filepath.IsAbs(main) {
		return main
	}
	return filepath.Join(m.Root, main)
}

// findLuneToml ищет lune.toml начиная с startDir и вверх по дереву.
func findLuneToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lune.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findLuneToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package] section", path)
	}
	if cfg.Package.Name == "" {
		return projectConfig{}, fmt.Errorf("%s: package.name must not be empty", path)
	}
	return cfg, nil
}
