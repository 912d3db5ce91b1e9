// Package token defines lexical token kinds and trivia for the lune front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except
//     StringLit where the surrounding quotes are stripped.
//   - Token.Span always matches the consumed source bytes exactly.
//   - IntLit/FloatLit tokens own their parsed value (Token.Int / Token.Float).
//   - Keywords are case sensitive: only the lowercase forms are reserved,
//     so "Until" lexes as Ident while "until" is KwUntil.
//   - Comments ('--' and '--[[ ]]') are leading Trivia and never appear in
//     the main token stream.
package token
