package ast

import (
	"lune/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena       *Arena[Expr]
	Bools       *Arena[ExprBoolData]
	Ints        *Arena[ExprIntData]
	Floats      *Arena[ExprFloatData]
	Strings     *Arena[ExprStringData]
	Idents      *Arena[ExprIdentData]
	Unaries     *Arena[ExprUnaryData]
	Binaries    *Arena[ExprBinaryData]
	Calls       *Arena[ExprCallData]
	MethodCalls *Arena[ExprMethodCallData]
	Indices     *Arena[ExprIndexData]
	Parens      *Arena[ExprParenData]
	Tables      *Arena[ExprTableData]
	Functions   *Arena[ExprFunctionData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint
// as the initial capacity. If capHint is 0, a default of 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Bools:       NewArena[ExprBoolData](capHint),
		Ints:        NewArena[ExprIntData](capHint),
		Floats:      NewArena[ExprFloatData](capHint),
		Strings:     NewArena[ExprStringData](capHint),
		Idents:      NewArena[ExprIdentData](capHint),
		Unaries:     NewArena[ExprUnaryData](capHint),
		Binaries:    NewArena[ExprBinaryData](capHint),
		Calls:       NewArena[ExprCallData](capHint),
		MethodCalls: NewArena[ExprMethodCallData](capHint),
		Indices:     NewArena[ExprIndexData](capHint),
		Parens:      NewArena[ExprParenData](capHint),
		Tables:      NewArena[ExprTableData](capHint),
		Functions:   NewArena[ExprFunctionData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewNil creates a new nil literal expression.
func (e *Exprs) NewNil(span source.Span) ExprID {
	return e.new(ExprNil, span, NoPayloadID)
}

// NewVararg creates a new vararg expression.
func (e *Exprs) NewVararg(span source.Span) ExprID {
	return e.new(ExprVararg, span, NoPayloadID)
}

// NewBool creates a new boolean literal expression.
func (e *Exprs) NewBool(span source.Span, value bool) ExprID {
	payload := e.Bools.Allocate(ExprBoolData{Value: value})
	return e.new(ExprBool, span, PayloadID(payload))
}

// Bool returns the boolean data for the given expression ID.
func (e *Exprs) Bool(id ExprID) (*ExprBoolData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBool {
		return nil, false
	}
	return e.Bools.Get(uint32(expr.Payload)), true
}

// NewInt creates a new integer literal expression.
func (e *Exprs) NewInt(span source.Span, value int64) ExprID {
	payload := e.Ints.Allocate(ExprIntData{Value: value})
	return e.new(ExprInt, span, PayloadID(payload))
}

// Int returns the integer data for the given expression ID.
func (e *Exprs) Int(id ExprID) (*ExprIntData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprInt {
		return nil, false
	}
	return e.Ints.Get(uint32(expr.Payload)), true
}

// NewFloat creates a new float literal expression.
func (e *Exprs) NewFloat(span source.Span, value float64) ExprID {
	payload := e.Floats.Allocate(ExprFloatData{Value: value})
	return e.new(ExprFloat, span, PayloadID(payload))
}

// Float returns the float data for the given expression ID.
func (e *Exprs) Float(id ExprID) (*ExprFloatData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFloat {
		return nil, false
	}
	return e.Floats.Get(uint32(expr.Payload)), true
}

// NewString creates a new string literal expression.
func (e *Exprs) NewString(span source.Span, value source.StringID) ExprID {
	payload := e.Strings.Allocate(ExprStringData{Value: value})
	return e.new(ExprString, span, PayloadID(payload))
}

// String returns the string data for the given expression ID.
func (e *Exprs) String(id ExprID) (*ExprStringData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprString {
		return nil, false
	}
	return e.Strings.Get(uint32(expr.Payload)), true
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a new function call expression.
func (e *Exprs) NewCall(span source.Span, target ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Target: target,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewMethodCall creates a new method call expression.
func (e *Exprs) NewMethodCall(span source.Span, target ExprID, method source.StringID, args []ExprID) ExprID {
	payload := e.MethodCalls.Allocate(ExprMethodCallData{
		Target: target,
		Method: method,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprMethodCall, span, PayloadID(payload))
}

// MethodCall returns the method call data for the given expression ID.
func (e *Exprs) MethodCall(id ExprID) (*ExprMethodCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMethodCall {
		return nil, false
	}
	return e.MethodCalls.Get(uint32(expr.Payload)), true
}

// NewIndex creates a new index expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewParen creates a new parenthesized expression.
func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Parens.Allocate(ExprParenData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

// Paren returns the paren data for the given expression ID.
func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprParen {
		return nil, false
	}
	return e.Parens.Get(uint32(expr.Payload)), true
}

// NewTable creates a new table constructor expression.
func (e *Exprs) NewTable(span source.Span, fields []TableField) ExprID {
	payload := e.Tables.Allocate(ExprTableData{
		Fields: append([]TableField(nil), fields...),
	})
	return e.new(ExprTable, span, PayloadID(payload))
}

// Table returns the table data for the given expression ID.
func (e *Exprs) Table(id ExprID) (*ExprTableData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTable {
		return nil, false
	}
	return e.Tables.Get(uint32(expr.Payload)), true
}

// NewFunction creates a new function literal expression.
func (e *Exprs) NewFunction(span source.Span, params FuncParams, body []StmtID) ExprID {
	payload := e.Functions.Allocate(ExprFunctionData{
		Params: params,
		Body:   append([]StmtID(nil), body...),
	})
	return e.new(ExprFunction, span, PayloadID(payload))
}

// Function returns the function data for the given expression ID.
func (e *Exprs) Function(id ExprID) (*ExprFunctionData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFunction {
		return nil, false
	}
	return e.Functions.Get(uint32(expr.Payload)), true
}
