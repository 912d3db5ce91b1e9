package ast

import (
	"lune/internal/source"
)

type Hints struct{ Files, Stmts, Exprs uint }

// Builder bundles the arenas for one parse session together with the
// string interner shared by identifiers and string literals.
type Builder struct {
	Files   *Files
	Stmts   *Stmts
	Exprs   *Exprs
	Strings *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 3
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Strings: source.NewInterner(),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}

// Intern помещает строку в общий интернер и возвращает её ID.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}
