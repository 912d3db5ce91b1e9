package ast

import (
	"lune/internal/source"
)

// StmtKind enumerates the different kinds of statements.
type StmtKind uint8

const (
	// StmtBreak represents a break statement.
	StmtBreak StmtKind = iota
	// StmtGoto represents a goto statement.
	StmtGoto
	// StmtLabel represents a label statement (::name::).
	StmtLabel
	// StmtReturn represents a return statement.
	StmtReturn
	// StmtAssign represents a multi-target assignment.
	StmtAssign
	// StmtLocal represents a local declaration.
	StmtLocal
	// StmtCall represents a function call used as a statement.
	StmtCall
	// StmtMethodCall represents a method call used as a statement.
	StmtMethodCall
	// StmtDo represents a do ... end block.
	StmtDo
	// StmtIf represents an if statement.
	StmtIf
	// StmtWhile represents a while loop.
	StmtWhile
	// StmtRepeat represents a repeat ... until loop.
	StmtRepeat
	// StmtNumericFor represents a numeric for loop.
	StmtNumericFor
	// StmtGenericFor represents a generic for-in loop.
	StmtGenericFor
	// StmtFuncDef represents a function definition (function a.b.c() ... end).
	StmtFuncDef
	// StmtMethodDef represents a method definition (function obj:m() ... end).
	StmtMethodDef
)

// Stmt represents a statement node in the AST.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtGotoData stores the target label of a goto.
type StmtGotoData struct {
	Label source.StringID
}

// StmtLabelData stores the name of a label.
type StmtLabelData struct {
	Name source.StringID
}

// StmtReturnData stores the value list of a return statement.
type StmtReturnData struct {
	Values []ExprID
}

// StmtAssignData stores a multi-target assignment: цели слева — только
// идентификаторы и индексные выражения.
type StmtAssignData struct {
	Targets []ExprID
	Values  []ExprID
}

// StmtLocalData stores a local declaration. Values may be empty.
type StmtLocalData struct {
	Names  []source.StringID
	Values []ExprID
}

// StmtCallData stores a call statement. Call — выражение вида
// ExprCall или ExprMethodCall.
type StmtCallData struct {
	Call ExprID
}

// StmtDoData stores the body of a do block.
type StmtDoData struct {
	Body []StmtID
}

// StmtIfData stores an if statement. Цепочка elseif представлена
// вложенным StmtIf — единственным элементом Else.
type StmtIfData struct {
	Cond ExprID
	Then []StmtID
	Else []StmtID
}

// StmtWhileData stores a while loop.
type StmtWhileData struct {
	Cond ExprID
	Body []StmtID
}

// StmtRepeatData stores a repeat loop; условие вычисляется после тела.
type StmtRepeatData struct {
	Body []StmtID
	Cond ExprID
}

// StmtNumericForData stores a numeric for loop. Step is always present:
// при отсутствии в исходнике парсер подставляет литерал 1.
type StmtNumericForData struct {
	Var   source.StringID
	Start ExprID
	Limit ExprID
	Step  ExprID
	Body  []StmtID
}

// StmtGenericForData stores a generic for-in loop.
type StmtGenericForData struct {
	Names []source.StringID
	Exprs []ExprID
	Body  []StmtID
}

// StmtFuncDefData stores a function definition. Name — идентификатор
// или цепочка индексов (a.b.c), Func — ExprFunction с телом.
type StmtFuncDefData struct {
	Name ExprID
	Func ExprID
}

// StmtMethodDefData stores a method definition; первый параметр self
// подставляется при разборе.
type StmtMethodDefData struct {
	Target ExprID
	Method source.StringID
	Func   ExprID
}
