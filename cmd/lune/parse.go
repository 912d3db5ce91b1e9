package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lune/internal/diagfmt"
	"lune/internal/driver"
	"lune/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.lua|directory>",
	Short: "Parse a lua source file or directory and output AST",
	Long: `Parse analyzes a lua source file or all *.lua files in a directory and
outputs their abstract syntax trees. With no argument it looks for a lune.toml
manifest and parses the entry point it names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var filePath string
	if len(args) == 1 {
		filePath = args[0]
	} else {
		// Без аргумента ищем манифест проекта
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", noLuneTomlMessage)
		}
		filePath = manifest.EntryPath()
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		return parseAndPrint(cmd, os.Stdout, filePath, format)
	}
	return parseDirAndPrint(cmd, os.Stdout, filePath, format)
}

// parseAndPrint парсит один файл и печатает AST в выбранном формате.
// При синтаксических ошибках AST не печатается, возвращается ошибка:
// диагностика уже ушла в stderr, частичный вывод запрещён.
func parseAndPrint(cmd *cobra.Command, out io.Writer, filePath, format string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:      useColorFor(cmd, os.Stderr),
			ShowNotes:  true,
			ShowSource: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: parsing failed", filePath)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(out, result.Builder, result.FileID, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(out, result.Builder, result.FileID, result.FileSet)
	case "tree":
		return diagfmt.FormatASTTree(out, result.Builder, result.FileID, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// parseDirAndPrint парсит все *.lua файлы директории параллельно.
// Файлы с ошибками в вывод не попадают; если такие были, команда
// завершается ошибкой.
func parseDirAndPrint(cmd *cobra.Command, out io.Writer, dir, format string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fs, results, err := driver.ParseDir(ctx, dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:      useColorFor(cmd, os.Stderr),
		ShowNotes:  true,
		ShowSource: true,
	}
	failed := 0
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
		if r.Bag.HasErrors() {
			failed++
		}
	}

	// Результаты уже отсортированы по пути
	printed := 0
	for _, r := range results {
		if r.Bag.HasErrors() || r.Builder == nil {
			continue
		}

		if !quiet {
			if printed > 0 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(out, "== %s ==\n", displayPath(fs, r)); err != nil {
				return err
			}
		}

		switch format {
		case "pretty":
			err = diagfmt.FormatASTPretty(out, r.Builder, r.FileID, fs)
		case "json":
			err = diagfmt.FormatASTJSON(out, r.Builder, r.FileID, fs)
		case "tree":
			err = diagfmt.FormatASTTree(out, r.Builder, r.FileID, fs)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}
		printed++
	}

	if failed > 0 {
		return fmt.Errorf("parsing failed in %d of %d files", failed, len(results))
	}
	return nil
}

func displayPath(fs *source.FileSet, r driver.ParseDirResult) string {
	if r.FileID == 0 || r.Builder == nil {
		return r.Path
	}
	astFile := r.Builder.Files.Get(r.FileID)
	file := fs.Get(astFile.Span.File)
	return file.FormatPath("auto", fs.BaseDir())
}
