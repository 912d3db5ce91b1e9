package source

import (
	"fmt"
)

// Span описывает байтовый диапазон внутри одного файла.
// Start включительно, End не включительно.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover возвращает минимальный Span, покрывающий оба диапазона.
// Спаны из разных файлов не объединяются.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ZeroideToEnd возвращает пустой Span в позиции End.
// Удобно для диагностик вида "вставьте токен здесь".
func (s Span) ZeroideToEnd() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}
