package ast

import (
	"lune/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprNil represents the nil literal.
	ExprNil ExprKind = iota
	// ExprBool represents a boolean literal.
	ExprBool
	// ExprInt represents an integer literal.
	ExprInt
	// ExprFloat represents a float literal.
	ExprFloat
	// ExprString represents a string literal.
	ExprString
	// ExprVararg represents the vararg expression (...).
	ExprVararg
	// ExprIdent represents an identifier expression.
	ExprIdent
	// ExprUnary represents a unary expression.
	ExprUnary
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprCall represents a function call expression.
	ExprCall
	// ExprMethodCall represents a method call expression (obj:m(...)).
	ExprMethodCall
	// ExprIndex represents an index expression (t[k] or t.k).
	ExprIndex
	// ExprParen represents a parenthesized expression.
	ExprParen
	// ExprTable represents a table constructor.
	ExprTable
	// ExprFunction represents an anonymous function literal.
	ExprFunction
)

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBoolData stores the value of a boolean literal.
type ExprBoolData struct {
	Value bool
}

// ExprIntData stores the value of an integer literal.
type ExprIntData struct {
	Value int64
}

// ExprFloatData stores the value of a float literal.
type ExprFloatData struct {
	Value float64
}

// ExprStringData stores the interned content of a string literal
// (без кавычек, escape-последовательности не обрабатываются).
type ExprStringData struct {
	Value source.StringID
}

// ExprIdentData stores the interned name of an identifier.
type ExprIdentData struct {
	Name source.StringID
}

// ExprUnaryData stores a unary operator application.
type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

// ExprBinaryData stores a binary operator application.
type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// ExprCallData stores a function call: target(args...).
type ExprCallData struct {
	Target ExprID
	Args   []ExprID
}

// ExprMethodCallData stores a method call: target:method(args...).
type ExprMethodCallData struct {
	Target ExprID
	Method source.StringID
	Args   []ExprID
}

// ExprIndexData stores an index access. Для t.k ключ — строковый литерал
// с именем поля, для t[e] — произвольное выражение.
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprParenData stores a parenthesized expression. Скобки значимы в Lua
// (усечение мультизначений), поэтому узел явный.
type ExprParenData struct {
	Inner ExprID
}

// TableField is one entry of a table constructor. Key == NoExprID
// means a positional (array-part) entry.
type TableField struct {
	Key   ExprID
	Value ExprID
}

// ExprTableData stores a table constructor.
type ExprTableData struct {
	Fields []TableField
}

// FuncParams describes a function parameter list.
type FuncParams struct {
	Names   []source.StringID
	Varargs bool
}

// ExprFunctionData stores a function literal: parameters and body.
type ExprFunctionData struct {
	Params FuncParams
	Body   []StmtID
}
