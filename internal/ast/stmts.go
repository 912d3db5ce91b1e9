package ast

import (
	"lune/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena       *Arena[Stmt]
	Gotos       *Arena[StmtGotoData]
	Labels      *Arena[StmtLabelData]
	Returns     *Arena[StmtReturnData]
	Assigns     *Arena[StmtAssignData]
	Locals      *Arena[StmtLocalData]
	Calls       *Arena[StmtCallData]
	Dos         *Arena[StmtDoData]
	Ifs         *Arena[StmtIfData]
	Whiles      *Arena[StmtWhileData]
	Repeats     *Arena[StmtRepeatData]
	NumericFors *Arena[StmtNumericForData]
	GenericFors *Arena[StmtGenericForData]
	FuncDefs    *Arena[StmtFuncDefData]
	MethodDefs  *Arena[StmtMethodDefData]
}

// NewStmts creates a new Stmts with per-kind arenas preallocated using capHint
// as the initial capacity. If capHint is 0, a default of 1<<8 is used.
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:       NewArena[Stmt](capHint),
		Gotos:       NewArena[StmtGotoData](capHint),
		Labels:      NewArena[StmtLabelData](capHint),
		Returns:     NewArena[StmtReturnData](capHint),
		Assigns:     NewArena[StmtAssignData](capHint),
		Locals:      NewArena[StmtLocalData](capHint),
		Calls:       NewArena[StmtCallData](capHint),
		Dos:         NewArena[StmtDoData](capHint),
		Ifs:         NewArena[StmtIfData](capHint),
		Whiles:      NewArena[StmtWhileData](capHint),
		Repeats:     NewArena[StmtRepeatData](capHint),
		NumericFors: NewArena[StmtNumericForData](capHint),
		GenericFors: NewArena[StmtGenericForData](capHint),
		FuncDefs:    NewArena[StmtFuncDefData](capHint),
		MethodDefs:  NewArena[StmtMethodDefData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewBreak creates a new break statement.
func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

// NewGoto creates a new goto statement.
func (s *Stmts) NewGoto(span source.Span, label source.StringID) StmtID {
	payload := s.Gotos.Allocate(StmtGotoData{Label: label})
	return s.new(StmtGoto, span, PayloadID(payload))
}

// Goto returns the goto data for the given statement ID.
func (s *Stmts) Goto(id StmtID) (*StmtGotoData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtGoto {
		return nil, false
	}
	return s.Gotos.Get(uint32(stmt.Payload)), true
}

// NewLabel creates a new label statement.
func (s *Stmts) NewLabel(span source.Span, name source.StringID) StmtID {
	payload := s.Labels.Allocate(StmtLabelData{Name: name})
	return s.new(StmtLabel, span, PayloadID(payload))
}

// Label returns the label data for the given statement ID.
func (s *Stmts) Label(id StmtID) (*StmtLabelData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLabel {
		return nil, false
	}
	return s.Labels.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a new return statement.
func (s *Stmts) NewReturn(span source.Span, values []ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{
		Values: append([]ExprID(nil), values...),
	})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return data for the given statement ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewAssign creates a new assignment statement.
func (s *Stmts) NewAssign(span source.Span, targets, values []ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{
		Targets: append([]ExprID(nil), targets...),
		Values:  append([]ExprID(nil), values...),
	})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewLocal creates a new local declaration statement.
func (s *Stmts) NewLocal(span source.Span, names []source.StringID, values []ExprID) StmtID {
	payload := s.Locals.Allocate(StmtLocalData{
		Names:  append([]source.StringID(nil), names...),
		Values: append([]ExprID(nil), values...),
	})
	return s.new(StmtLocal, span, PayloadID(payload))
}

// Local returns the local declaration data for the given statement ID.
func (s *Stmts) Local(id StmtID) (*StmtLocalData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLocal {
		return nil, false
	}
	return s.Locals.Get(uint32(stmt.Payload)), true
}

// NewCall creates a new call statement. kind — StmtCall или StmtMethodCall.
func (s *Stmts) NewCall(kind StmtKind, span source.Span, call ExprID) StmtID {
	payload := s.Calls.Allocate(StmtCallData{Call: call})
	return s.new(kind, span, PayloadID(payload))
}

// Call returns the call data for the given statement ID.
func (s *Stmts) Call(id StmtID) (*StmtCallData, bool) {
	stmt := s.Get(id)
	if stmt == nil || (stmt.Kind != StmtCall && stmt.Kind != StmtMethodCall) {
		return nil, false
	}
	return s.Calls.Get(uint32(stmt.Payload)), true
}

// NewDo creates a new do-block statement.
func (s *Stmts) NewDo(span source.Span, body []StmtID) StmtID {
	payload := s.Dos.Allocate(StmtDoData{
		Body: append([]StmtID(nil), body...),
	})
	return s.new(StmtDo, span, PayloadID(payload))
}

// Do returns the do-block data for the given statement ID.
func (s *Stmts) Do(id StmtID) (*StmtDoData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDo {
		return nil, false
	}
	return s.Dos.Get(uint32(stmt.Payload)), true
}

// NewIf creates a new if statement.
func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els []StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{
		Cond: cond,
		Then: append([]StmtID(nil), then...),
		Else: append([]StmtID(nil), els...),
	})
	return s.new(StmtIf, span, PayloadID(payload))
}

// If returns the if data for the given statement ID.
func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a new while loop statement.
func (s *Stmts) NewWhile(span source.Span, cond ExprID, body []StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{
		Cond: cond,
		Body: append([]StmtID(nil), body...),
	})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while data for the given statement ID.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewRepeat creates a new repeat loop statement.
func (s *Stmts) NewRepeat(span source.Span, body []StmtID, cond ExprID) StmtID {
	payload := s.Repeats.Allocate(StmtRepeatData{
		Body: append([]StmtID(nil), body...),
		Cond: cond,
	})
	return s.new(StmtRepeat, span, PayloadID(payload))
}

// Repeat returns the repeat data for the given statement ID.
func (s *Stmts) Repeat(id StmtID) (*StmtRepeatData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtRepeat {
		return nil, false
	}
	return s.Repeats.Get(uint32(stmt.Payload)), true
}

// NewNumericFor creates a new numeric for loop statement.
func (s *Stmts) NewNumericFor(span source.Span, v source.StringID, start, limit, step ExprID, body []StmtID) StmtID {
	payload := s.NumericFors.Allocate(StmtNumericForData{
		Var:   v,
		Start: start,
		Limit: limit,
		Step:  step,
		Body:  append([]StmtID(nil), body...),
	})
	return s.new(StmtNumericFor, span, PayloadID(payload))
}

// NumericFor returns the numeric for data for the given statement ID.
func (s *Stmts) NumericFor(id StmtID) (*StmtNumericForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtNumericFor {
		return nil, false
	}
	return s.NumericFors.Get(uint32(stmt.Payload)), true
}

// NewGenericFor creates a new generic for-in loop statement.
func (s *Stmts) NewGenericFor(span source.Span, names []source.StringID, exprs []ExprID, body []StmtID) StmtID {
	payload := s.GenericFors.Allocate(StmtGenericForData{
		Names: append([]source.StringID(nil), names...),
		Exprs: append([]ExprID(nil), exprs...),
		Body:  append([]StmtID(nil), body...),
	})
	return s.new(StmtGenericFor, span, PayloadID(payload))
}

// GenericFor returns the generic for data for the given statement ID.
func (s *Stmts) GenericFor(id StmtID) (*StmtGenericForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtGenericFor {
		return nil, false
	}
	return s.GenericFors.Get(uint32(stmt.Payload)), true
}

// NewFuncDef creates a new function definition statement.
func (s *Stmts) NewFuncDef(span source.Span, name, fn ExprID) StmtID {
	payload := s.FuncDefs.Allocate(StmtFuncDefData{Name: name, Func: fn})
	return s.new(StmtFuncDef, span, PayloadID(payload))
}

// FuncDef returns the function definition data for the given statement ID.
func (s *Stmts) FuncDef(id StmtID) (*StmtFuncDefData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFuncDef {
		return nil, false
	}
	return s.FuncDefs.Get(uint32(stmt.Payload)), true
}

// NewMethodDef creates a new method definition statement.
func (s *Stmts) NewMethodDef(span source.Span, target ExprID, method source.StringID, fn ExprID) StmtID {
	payload := s.MethodDefs.Allocate(StmtMethodDefData{
		Target: target,
		Method: method,
		Func:   fn,
	})
	return s.new(StmtMethodDef, span, PayloadID(payload))
}

// MethodDef returns the method definition data for the given statement ID.
func (s *Stmts) MethodDef(id StmtID) (*StmtMethodDefData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtMethodDef {
		return nil, false
	}
	return s.MethodDefs.Get(uint32(stmt.Payload)), true
}
