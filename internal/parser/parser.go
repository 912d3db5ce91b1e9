package parser

import (
	"lune/internal/ast"
	"lune/internal/diag"
	"lune/internal/lexer"
	"lune/internal/source"
	"lune/internal/token"
)

// Options управляют поведением парсера на один файл.
type Options struct {
	// MaxErrors — сколько диагностик репортуется до отсечки; 0 — без лимита.
	MaxErrors     uint
	CurrentErrors uint
	// MaxDepth ограничивает глубину вложенности выражений и блоков;
	// 0 — дефолт (200).
	MaxDepth uint
	Reporter diag.Reporter
}

const defaultMaxDepth = 200

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл. Разбор fail-fast: первая
// синтаксическая ошибка прекращает разбор, ресинхронизации нет.
type Parser struct {
	lx       *lexer.Lexer    // поток токенов (Peek/Next)
	arenas   *ast.Builder    // построитель аренных узлов
	file     ast.FileID      // текущий FileID (в AST)
	fs       *source.FileSet // нужен только для спанов/путей при надобности
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	depth    uint        // текущая глубина вложенности
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseChunk()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseChunk — основной цикл верхнего уровня: пока не EOF — parseStmt.
// На первой же ошибке разбор останавливается.
func (p *Parser) parseChunk() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		stmtID, ok := p.parseStmt()
		if !ok {
			break
		}
		p.arenas.PushStmt(p.file, stmtID)
		// return завершает блок
		if p.arenas.Stmts.Get(stmtID).Kind == ast.StmtReturn {
			if p.at(token.Semicolon) {
				p.advance()
			}
			if !p.at(token.EOF) {
				p.err(diag.SynUnexpectedToken, "unexpected statement after 'return'")
			}
			break
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}
