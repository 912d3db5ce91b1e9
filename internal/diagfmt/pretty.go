package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"lune/internal/diag"
	"lune/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	head := headline(d, fs, opts)
	fmt.Fprintln(w, head)

	if opts.ShowSource {
		writeSourceContext(w, d.Primary, fs, opts)
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			pos := formatPosition(note.Span, fs, opts.PathMode)
			fmt.Fprintf(w, "  note: %s: %s\n", pos, note.Msg)
		}
	}
}

func headline(d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	pos := formatPosition(d.Primary, fs, opts.PathMode)
	sev := severityLabel(d.Severity, opts.Color)
	code := d.Code.ID()
	if opts.Color {
		code = color.New(color.Bold).Sprint(code)
	}
	return fmt.Sprintf("%s: %s %s: %s", pos, sev, code, d.Message)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

// writeSourceContext печатает строку исходника и подчёркивание ^~~~
// под спаном. Многострочные спаны подчёркиваются до конца первой строки.
func writeSourceContext(w io.Writer, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	if fs == nil {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	line := f.GetLine(start.Line)
	if line == "" && start.Line != 1 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// колонки 1-based; табы заменяются пробелом той же ширины
	pad := strings.Repeat(" ", int(start.Col-1))
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		width = len(line) - int(start.Col) + 1
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}

func formatPosition(sp source.Span, fs *source.FileSet, mode PathMode) string {
	if fs == nil {
		return fmt.Sprintf("byte %d", sp.Start)
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatFilePath(f, fs, mode), start.Line, start.Col)
}

func formatFilePath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
