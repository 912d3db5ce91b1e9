package parser

import (
	"testing"

	"lune/internal/ast"
	"lune/internal/diag"
)

func TestBasicLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ast.ExprKind
	}{
		{"integer", "local x = 42", ast.ExprInt},
		{"float", "local x = 3.14", ast.ExprFloat},
		{"string", "local x = \"hello\"", ast.ExprString},
		{"true", "local x = true", ast.ExprBool},
		{"false", "local x = false", ast.ExprBool},
		{"nil", "local x = nil", ast.ExprNil},
		{"table", "local x = {}", ast.ExprTable},
		{"function", "local x = function() end", ast.ExprFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, arenas := exprOfLocal(t, tt.input)
			if got := arenas.Exprs.Get(value).Kind; got != tt.kind {
				t.Errorf("expr kind = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestBinaryOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		op    ast.BinaryOp
	}{
		{"addition", "local x = a + b", ast.BinaryAdd},
		{"subtraction", "local x = a - b", ast.BinarySub},
		{"multiplication", "local x = a * b", ast.BinaryMul},
		{"division", "local x = a / b", ast.BinaryDiv},
		{"floor_division", "local x = a // b", ast.BinaryIDiv},
		{"modulo", "local x = a % b", ast.BinaryMod},
		{"power", "local x = a ^ b", ast.BinaryPow},
		{"concat", "local x = a .. b", ast.BinaryConcat},
		{"equality", "local x = a == b", ast.BinaryEq},
		{"inequality", "local x = a ~= b", ast.BinaryNotEq},
		{"less_than", "local x = a < b", ast.BinaryLess},
		{"less_equal", "local x = a <= b", ast.BinaryLessEq},
		{"greater_than", "local x = a > b", ast.BinaryGreater},
		{"greater_equal", "local x = a >= b", ast.BinaryGreaterEq},
		{"logical_and", "local x = a and b", ast.BinaryAnd},
		{"logical_or", "local x = a or b", ast.BinaryOr},
		{"bit_and", "local x = a & b", ast.BinaryBitAnd},
		{"bit_or", "local x = a | b", ast.BinaryBitOr},
		{"bit_xor", "local x = a ~ b", ast.BinaryBitXor},
		{"shift_left", "local x = a << b", ast.BinaryShl},
		{"shift_right", "local x = a >> b", ast.BinaryShr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, arenas := exprOfLocal(t, tt.input)
			bin, ok := arenas.Exprs.Binary(value)
			if !ok {
				t.Fatalf("expected binary expression, got %v", arenas.Exprs.Get(value).Kind)
			}
			if bin.Op != tt.op {
				t.Errorf("op = %v, want %v", bin.Op, tt.op)
			}
		})
	}
}

func TestPrecedenceMulOverAdd(t *testing.T) {
	// 1 + 2 * 3 == 1 + (2 * 3)
	value, arenas := exprOfLocal(t, "local x = 1 + 2 * 3")

	root, ok := arenas.Exprs.Binary(value)
	if !ok || root.Op != ast.BinaryAdd {
		t.Fatalf("root is not addition: %+v", root)
	}
	right, ok := arenas.Exprs.Binary(root.Right)
	if !ok || right.Op != ast.BinaryMul {
		t.Fatalf("right child is not multiplication: %+v", right)
	}
}

func TestConcatRightAssociative(t *testing.T) {
	// a .. b .. c == a .. (b .. c)
	value, arenas := exprOfLocal(t, `local x = a .. b .. c`)

	root, ok := arenas.Exprs.Binary(value)
	if !ok || root.Op != ast.BinaryConcat {
		t.Fatalf("root is not concat: %+v", root)
	}
	if _, isIdent := arenas.Exprs.Ident(root.Left); !isIdent {
		t.Error("left operand of right-assoc concat must be the bare 'a'")
	}
	right, ok := arenas.Exprs.Binary(root.Right)
	if !ok || right.Op != ast.BinaryConcat {
		t.Fatalf("right child is not concat: %+v", right)
	}
}

func TestPowRightAssociative(t *testing.T) {
	// a ^ b ^ c == a ^ (b ^ c)
	value, arenas := exprOfLocal(t, "local x = a ^ b ^ c")

	root, ok := arenas.Exprs.Binary(value)
	if !ok || root.Op != ast.BinaryPow {
		t.Fatalf("root is not pow: %+v", root)
	}
	right, ok := arenas.Exprs.Binary(root.Right)
	if !ok || right.Op != ast.BinaryPow {
		t.Fatalf("right child is not pow: %+v", right)
	}
}

func TestUnaryBindsWeakerThanPow(t *testing.T) {
	// -a ^ b == -(a ^ b)
	value, arenas := exprOfLocal(t, "local x = -a ^ b")

	un, ok := arenas.Exprs.Unary(value)
	if !ok || un.Op != ast.UnaryNeg {
		t.Fatalf("root is not unary minus: %+v", un)
	}
	if bin, ok := arenas.Exprs.Binary(un.Operand); !ok || bin.Op != ast.BinaryPow {
		t.Fatalf("operand is not pow: %+v", bin)
	}
}

func TestUnaryBindsTighterThanMul(t *testing.T) {
	// -a * b == (-a) * b
	value, arenas := exprOfLocal(t, "local x = -a * b")

	bin, ok := arenas.Exprs.Binary(value)
	if !ok || bin.Op != ast.BinaryMul {
		t.Fatalf("root is not multiplication: %+v", bin)
	}
	if un, ok := arenas.Exprs.Unary(bin.Left); !ok || un.Op != ast.UnaryNeg {
		t.Fatalf("left operand is not unary minus: %+v", un)
	}
}

func TestNotBindsTighterThanComparison(t *testing.T) {
	// not a == b — это (not a) == b
	value, arenas := exprOfLocal(t, "local x = not a == b")

	bin, ok := arenas.Exprs.Binary(value)
	if !ok || bin.Op != ast.BinaryEq {
		t.Fatalf("root is not equality: %+v", bin)
	}
	if un, ok := arenas.Exprs.Unary(bin.Left); !ok || un.Op != ast.UnaryNot {
		t.Fatalf("left operand is not 'not': %+v", un)
	}
}

func TestUnaryOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		op    ast.UnaryOp
	}{
		{"not", "local x = not a", ast.UnaryNot},
		{"negate", "local x = -a", ast.UnaryNeg},
		{"length", "local x = #a", ast.UnaryLen},
		{"bit_not", "local x = ~a", ast.UnaryBitNot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, arenas := exprOfLocal(t, tt.input)
			un, ok := arenas.Exprs.Unary(value)
			if !ok {
				t.Fatalf("expected unary expression")
			}
			if un.Op != tt.op {
				t.Errorf("op = %v, want %v", un.Op, tt.op)
			}
		})
	}
}

func TestParenIsExplicitNode(t *testing.T) {
	value, arenas := exprOfLocal(t, "local x = (a + b) * c")

	bin, ok := arenas.Exprs.Binary(value)
	if !ok || bin.Op != ast.BinaryMul {
		t.Fatalf("root is not multiplication")
	}
	paren, ok := arenas.Exprs.Paren(bin.Left)
	if !ok {
		t.Fatalf("left operand is not a paren node: %v", arenas.Exprs.Get(bin.Left).Kind)
	}
	if inner, ok := arenas.Exprs.Binary(paren.Inner); !ok || inner.Op != ast.BinaryAdd {
		t.Fatal("paren inner is not the addition")
	}
}

func TestPostfixChain(t *testing.T) {
	// a.b[c](1):m(2) — постфиксы навешиваются слева направо
	value, arenas := exprOfLocal(t, `local x = a.b[c](1):m(2)`)

	mc, ok := arenas.Exprs.MethodCall(value)
	if !ok {
		t.Fatalf("root is not a method call: %v", arenas.Exprs.Get(value).Kind)
	}
	if got, _ := arenas.Strings.Lookup(mc.Method); got != "m" {
		t.Errorf("method = %q, want m", got)
	}
	if len(mc.Args) != 1 {
		t.Fatalf("method arg count = %d", len(mc.Args))
	}

	call, ok := arenas.Exprs.Call(mc.Target)
	if !ok {
		t.Fatalf("method target is not a call")
	}
	idx, ok := arenas.Exprs.Index(call.Target)
	if !ok {
		t.Fatalf("call target is not an index")
	}
	dot, ok := arenas.Exprs.Index(idx.Target)
	if !ok {
		t.Fatalf("index target is not a dot access")
	}
	// a.b — ключ хранится строковым литералом "b"
	key, ok := arenas.Exprs.String(dot.Index)
	if !ok {
		t.Fatal("dot key is not a string literal")
	}
	if got := arenas.Strings.MustLookup(key.Value); got != "b" {
		t.Errorf("dot key = %q, want b", got)
	}
}

func TestCallSugarForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"string_arg", `print "hello"`},
		{"table_arg", "setup{1, 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, arenas := mustParse(t, tt.input)
			call, ok := arenas.Stmts.Call(onlyStmt(t, file))
			if !ok {
				t.Fatal("expected a call statement")
			}
			data, ok := arenas.Exprs.Call(call.Call)
			if !ok || len(data.Args) != 1 {
				t.Fatalf("call args = %+v", data)
			}
		})
	}
}

func TestTableConstructorFields(t *testing.T) {
	value, arenas := exprOfLocal(t, `local x = {1, name = "n", [k] = v; 2}`)

	table, ok := arenas.Exprs.Table(value)
	if !ok {
		t.Fatal("expected a table constructor")
	}
	if len(table.Fields) != 4 {
		t.Fatalf("field count = %d, want 4", len(table.Fields))
	}
	if table.Fields[0].Key != ast.NoExprID {
		t.Error("field 0 must be positional")
	}
	if _, ok := arenas.Exprs.String(table.Fields[1].Key); !ok {
		t.Error("field 1 key must be a string literal")
	}
	if _, ok := arenas.Exprs.Ident(table.Fields[2].Key); !ok {
		t.Error("field 2 key must be the bracketed identifier")
	}
	if table.Fields[3].Key != ast.NoExprID {
		t.Error("field 3 must be positional")
	}
}

func TestVarargExpression(t *testing.T) {
	file, arenas := mustParse(t, "local f = function(...) return ... end")
	local, _ := arenas.Stmts.Local(onlyStmt(t, file))
	fn, ok := arenas.Exprs.Function(local.Values[0])
	if !ok {
		t.Fatal("expected a function literal")
	}
	if !fn.Params.Varargs {
		t.Error("params must carry varargs flag")
	}
	ret, ok := arenas.Stmts.Return(fn.Body[len(fn.Body)-1])
	if !ok {
		t.Fatal("function body must end with return")
	}
	if arenas.Exprs.Get(ret.Values[0]).Kind != ast.ExprVararg {
		t.Error("return value must be vararg expression")
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing_operand", "local x = 1 +", diag.SynExpectExpression},
		{"unclosed_paren", "local x = (1 + 2", diag.SynUnclosedParen},
		{"unclosed_bracket", "local x = a[1", diag.SynUnclosedBracket},
		{"unclosed_table", "local x = {1, 2", diag.SynUnclosedBrace},
		{"bare_keyword", "local x = then", diag.SynExpectExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustFail(t, tt.input, tt.code)
		})
	}
}

func TestDeepNestingIsLimited(t *testing.T) {
	input := "local x = "
	for i := 0; i < 300; i++ {
		input += "("
	}
	input += "1"
	res, _ := parseChunkOpts(t, input, Options{MaxDepth: 50})
	if !res.Bag.HasErrors() {
		t.Fatal("expected depth diagnostic")
	}
	if got := res.Bag.Items()[0].Code; got != diag.SynTooDeep {
		t.Errorf("code = %s, want %s", got.ID(), diag.SynTooDeep.ID())
	}
}
