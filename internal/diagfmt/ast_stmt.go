package diagfmt

import (
	"fmt"

	"lune/internal/ast"
	"lune/internal/source"
)

// formatStmtKind возвращает имя вида стейтмента для вывода.
func formatStmtKind(kind ast.StmtKind) string {
	switch kind {
	case ast.StmtBreak:
		return "Break"
	case ast.StmtGoto:
		return "Goto"
	case ast.StmtLabel:
		return "Label"
	case ast.StmtReturn:
		return "Return"
	case ast.StmtAssign:
		return "Assign"
	case ast.StmtLocal:
		return "Local"
	case ast.StmtCall:
		return "Call"
	case ast.StmtMethodCall:
		return "MethodCall"
	case ast.StmtDo:
		return "Do"
	case ast.StmtIf:
		return "If"
	case ast.StmtWhile:
		return "While"
	case ast.StmtRepeat:
		return "Repeat"
	case ast.StmtNumericFor:
		return "NumericFor"
	case ast.StmtGenericFor:
		return "GenericFor"
	case ast.StmtFuncDef:
		return "FuncDef"
	case ast.StmtMethodDef:
		return "MethodDef"
	default:
		return "Stmt(?)"
	}
}

// buildStmtTreeNode строит дерево вывода для одного стейтмента.
// Выражения сворачиваются в однострочные сводки, блоки рекурсивно
// разворачиваются в дочерние узлы.
func buildStmtTreeNode(builder *ast.Builder, stmtID ast.StmtID, fs *source.FileSet, idx int) *treeNode {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return &treeNode{label: fmt.Sprintf("Stmt[%d]: <nil>", idx)}
	}

	node := &treeNode{
		label: fmt.Sprintf("Stmt[%d]: %s (span: %s)", idx, formatStmtKind(stmt.Kind), formatSpan(stmt.Span, fs)),
	}

	switch stmt.Kind {
	case ast.StmtGoto:
		if data, ok := builder.Stmts.Goto(stmtID); ok {
			node.addChild("Label: " + lookupStringOr(builder, data.Label, "<label>"))
		}
	case ast.StmtLabel:
		if data, ok := builder.Stmts.Label(stmtID); ok {
			node.addChild("Name: " + lookupStringOr(builder, data.Name, "<label>"))
		}
	case ast.StmtReturn:
		if data, ok := builder.Stmts.Return(stmtID); ok {
			for i, value := range data.Values {
				node.addChild(fmt.Sprintf("Value[%d]: %s", i, formatExprSummary(builder, value)))
			}
			if len(data.Values) == 0 {
				node.addChild("Value: <none>")
			}
		}
	case ast.StmtAssign:
		if data, ok := builder.Stmts.Assign(stmtID); ok {
			for i, target := range data.Targets {
				node.addChild(fmt.Sprintf("Target[%d]: %s", i, formatExprSummary(builder, target)))
			}
			for i, value := range data.Values {
				node.addChild(fmt.Sprintf("Value[%d]: %s", i, formatExprSummary(builder, value)))
			}
		}
	case ast.StmtLocal:
		if data, ok := builder.Stmts.Local(stmtID); ok {
			for i, name := range data.Names {
				node.addChild(fmt.Sprintf("Name[%d]: %s", i, lookupStringOr(builder, name, "_")))
			}
			for i, value := range data.Values {
				node.addChild(fmt.Sprintf("Value[%d]: %s", i, formatExprSummary(builder, value)))
			}
		}
	case ast.StmtCall, ast.StmtMethodCall:
		if data, ok := builder.Stmts.Call(stmtID); ok {
			node.addChild("Expr: " + formatExprSummary(builder, data.Call))
		}
	case ast.StmtDo:
		if data, ok := builder.Stmts.Do(stmtID); ok {
			node.children = append(node.children, buildBlockTreeNode(builder, "Body", data.Body, fs))
		}
	case ast.StmtIf:
		if data, ok := builder.Stmts.If(stmtID); ok {
			node.addChild("Cond: " + formatExprSummary(builder, data.Cond))
			node.children = append(node.children, buildBlockTreeNode(builder, "Then", data.Then, fs))
			if len(data.Else) > 0 {
				node.children = append(node.children, buildBlockTreeNode(builder, "Else", data.Else, fs))
			}
		}
	case ast.StmtWhile:
		if data, ok := builder.Stmts.While(stmtID); ok {
			node.addChild("Cond: " + formatExprSummary(builder, data.Cond))
			node.children = append(node.children, buildBlockTreeNode(builder, "Body", data.Body, fs))
		}
	case ast.StmtRepeat:
		if data, ok := builder.Stmts.Repeat(stmtID); ok {
			node.children = append(node.children, buildBlockTreeNode(builder, "Body", data.Body, fs))
			node.addChild("Until: " + formatExprSummary(builder, data.Cond))
		}
	case ast.StmtNumericFor:
		if data, ok := builder.Stmts.NumericFor(stmtID); ok {
			node.addChild("Var: " + lookupStringOr(builder, data.Var, "_"))
			node.addChild("Start: " + formatExprSummary(builder, data.Start))
			node.addChild("Limit: " + formatExprSummary(builder, data.Limit))
			node.addChild("Step: " + formatExprSummary(builder, data.Step))
			node.children = append(node.children, buildBlockTreeNode(builder, "Body", data.Body, fs))
		}
	case ast.StmtGenericFor:
		if data, ok := builder.Stmts.GenericFor(stmtID); ok {
			for i, name := range data.Names {
				node.addChild(fmt.Sprintf("Name[%d]: %s", i, lookupStringOr(builder, name, "_")))
			}
			for i, expr := range data.Exprs {
				node.addChild(fmt.Sprintf("In[%d]: %s", i, formatExprSummary(builder, expr)))
			}
			node.children = append(node.children, buildBlockTreeNode(builder, "Body", data.Body, fs))
		}
	case ast.StmtFuncDef:
		if data, ok := builder.Stmts.FuncDef(stmtID); ok {
			node.addChild("Name: " + formatExprInline(builder, data.Name))
			node.children = append(node.children, buildFunctionTreeNode(builder, data.Func, fs))
		}
	case ast.StmtMethodDef:
		if data, ok := builder.Stmts.MethodDef(stmtID); ok {
			node.addChild("Target: " + formatExprInline(builder, data.Target))
			node.addChild("Method: " + lookupStringOr(builder, data.Method, "<method>"))
			node.children = append(node.children, buildFunctionTreeNode(builder, data.Func, fs))
		}
	}

	return node
}

func buildBlockTreeNode(builder *ast.Builder, label string, body []ast.StmtID, fs *source.FileSet) *treeNode {
	node := &treeNode{label: label}
	if len(body) == 0 {
		node.addChild("<empty>")
		return node
	}
	for i, stmtID := range body {
		node.children = append(node.children, buildStmtTreeNode(builder, stmtID, fs, i))
	}
	return node
}

func buildFunctionTreeNode(builder *ast.Builder, fnID ast.ExprID, fs *source.FileSet) *treeNode {
	data, ok := builder.Exprs.Function(fnID)
	if !ok {
		return &treeNode{label: "Func: <invalid>"}
	}
	node := &treeNode{label: "Func"}
	node.addChild("Params: (" + formatParamsInline(builder, data.Params) + ")")
	node.children = append(node.children, buildBlockTreeNode(builder, "Body", data.Body, fs))
	return node
}
