// Package diag defines the diagnostic model shared by the lexer and parser.
//
//   - Diagnostic is the central record: Severity, a stable numeric Code,
//     a message, the primary source.Span, and optional Notes.
//   - Reporter decouples emission from storage; BagReporter aggregates into
//     a Bag which supports sorting, deduplication, and merge.
//
// The package performs no formatting or IO; rendering lives in
// internal/diagfmt. Parsing is fail-fast, so a Bag normally holds at most one
// error from the parser, but the lexer may contribute several (it keeps
// scanning after emitting Invalid tokens).
package diag
