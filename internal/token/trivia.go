package token

import "lune/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia(?)"
}

// Trivia — незначимый фрагмент перед токеном: пробелы, переводы строк,
// комментарии '--' и '--[[ ]]'.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
