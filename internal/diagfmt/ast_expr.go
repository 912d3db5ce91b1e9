package diagfmt

import (
	"fmt"
	"strconv"
	"strings"

	"lune/internal/ast"
	"lune/internal/source"
)

const exprInlineMaxDepth = 32

// formatExprSummary produces a compact diagnostic summary for the given expression ID.
// If exprID is invalid it returns "<none>". Otherwise it returns a string of the form
// "expr#<id>: <inline>".
func formatExprSummary(builder *ast.Builder, exprID ast.ExprID) string {
	if !exprID.IsValid() {
		return "<none>"
	}
	inline := formatExprInlineDepth(builder, exprID, 0)
	if inline == "" {
		inline = "<invalid>"
	}
	return fmt.Sprintf("expr#%d: %s", uint32(exprID), inline)
}

// formatExprInline produces a compact, human-friendly inline representation
// of the expression identified by exprID.
func formatExprInline(builder *ast.Builder, exprID ast.ExprID) string {
	return formatExprInlineDepth(builder, exprID, 0)
}

func formatExprInlineDepth(builder *ast.Builder, exprID ast.ExprID, depth int) string {
	if !exprID.IsValid() {
		return "<none>"
	}
	if builder == nil || builder.Exprs == nil {
		return "<invalid>"
	}
	if depth >= exprInlineMaxDepth {
		return "..."
	}

	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return "<invalid>"
	}

	switch expr.Kind {
	case ast.ExprNil:
		return "nil"
	case ast.ExprVararg:
		return "..."
	case ast.ExprBool:
		data, ok := builder.Exprs.Bool(exprID)
		if !ok {
			return "<invalid-bool>"
		}
		if data.Value {
			return "true"
		}
		return "false"
	case ast.ExprInt:
		data, ok := builder.Exprs.Int(exprID)
		if !ok {
			return "<invalid-int>"
		}
		return strconv.FormatInt(data.Value, 10)
	case ast.ExprFloat:
		data, ok := builder.Exprs.Float(exprID)
		if !ok {
			return "<invalid-float>"
		}
		return strconv.FormatFloat(data.Value, 'g', -1, 64)
	case ast.ExprString:
		data, ok := builder.Exprs.String(exprID)
		if !ok {
			return "<invalid-string>"
		}
		return strconv.Quote(lookupStringOr(builder, data.Value, ""))
	case ast.ExprIdent:
		data, ok := builder.Exprs.Ident(exprID)
		if !ok {
			return "<invalid-ident>"
		}
		return lookupStringOr(builder, data.Name, "<ident>")
	case ast.ExprUnary:
		data, ok := builder.Exprs.Unary(exprID)
		if !ok {
			return "<invalid-unary>"
		}
		op := data.Op.String()
		if data.Op == ast.UnaryNot {
			op += " "
		}
		return op + formatExprInlineDepth(builder, data.Operand, depth+1)
	case ast.ExprBinary:
		data, ok := builder.Exprs.Binary(exprID)
		if !ok {
			return "<invalid-binary>"
		}
		return fmt.Sprintf("%s %s %s",
			formatExprInlineDepth(builder, data.Left, depth+1),
			data.Op,
			formatExprInlineDepth(builder, data.Right, depth+1))
	case ast.ExprParen:
		data, ok := builder.Exprs.Paren(exprID)
		if !ok {
			return "<invalid-paren>"
		}
		return "(" + formatExprInlineDepth(builder, data.Inner, depth+1) + ")"
	case ast.ExprCall:
		data, ok := builder.Exprs.Call(exprID)
		if !ok {
			return "<invalid-call>"
		}
		return formatExprInlineDepth(builder, data.Target, depth+1) +
			"(" + formatExprListInline(builder, data.Args, depth+1) + ")"
	case ast.ExprMethodCall:
		data, ok := builder.Exprs.MethodCall(exprID)
		if !ok {
			return "<invalid-method-call>"
		}
		return formatExprInlineDepth(builder, data.Target, depth+1) +
			":" + lookupStringOr(builder, data.Method, "<method>") +
			"(" + formatExprListInline(builder, data.Args, depth+1) + ")"
	case ast.ExprIndex:
		data, ok := builder.Exprs.Index(exprID)
		if !ok {
			return "<invalid-index>"
		}
		target := formatExprInlineDepth(builder, data.Target, depth+1)
		// t.k выводится в точечной записи, если ключ — строковый литерал
		if key, isStr := builder.Exprs.String(data.Index); isStr {
			name := lookupStringOr(builder, key.Value, "")
			if isPlainName(name) {
				return target + "." + name
			}
		}
		return target + "[" + formatExprInlineDepth(builder, data.Index, depth+1) + "]"
	case ast.ExprTable:
		data, ok := builder.Exprs.Table(exprID)
		if !ok {
			return "<invalid-table>"
		}
		if len(data.Fields) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(data.Fields))
		for _, field := range data.Fields {
			value := formatExprInlineDepth(builder, field.Value, depth+1)
			if field.Key == ast.NoExprID {
				parts = append(parts, value)
			} else {
				parts = append(parts, "["+formatExprInlineDepth(builder, field.Key, depth+1)+"] = "+value)
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case ast.ExprFunction:
		data, ok := builder.Exprs.Function(exprID)
		if !ok {
			return "<invalid-function>"
		}
		return "function(" + formatParamsInline(builder, data.Params) + ") ... end"
	default:
		return "<unknown-expr>"
	}
}

func formatExprListInline(builder *ast.Builder, ids []ast.ExprID, depth int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, formatExprInlineDepth(builder, id, depth))
	}
	return strings.Join(parts, ", ")
}

func formatParamsInline(builder *ast.Builder, params ast.FuncParams) string {
	parts := make([]string, 0, len(params.Names)+1)
	for _, name := range params.Names {
		parts = append(parts, lookupStringOr(builder, name, "_"))
	}
	if params.Varargs {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

func lookupStringOr(builder *ast.Builder, id source.StringID, fallback string) string {
	if builder == nil || builder.Strings == nil || id == source.NoStringID {
		return fallback
	}
	if s, ok := builder.Strings.Lookup(id); ok {
		return s
	}
	return fallback
}

// isPlainName сообщает, пригодно ли имя для точечной записи
func isPlainName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		letter := b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		if !letter && !(i > 0 && b >= '0' && b <= '9') {
			return false
		}
	}
	return true
}
