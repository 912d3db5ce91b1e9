package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lune/internal/ast"
	"lune/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) addChild(label string) {
	n.children = append(n.children, &treeNode{label: label})
}

// buildFileTreeNode constructs a treeNode representing the file identified
// by fileID. If fs is non-nil the header is the source file's formatted path;
// otherwise the header is "File".
func buildFileTreeNode(builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) *treeNode {
	file := builder.Files.Get(fileID)
	if file == nil {
		return &treeNode{label: fmt.Sprintf("File[%d]: <nil>", fileID)}
	}
	header := "File"
	if fs != nil {
		srcFile := fs.Get(file.Span.File)
		header = srcFile.FormatPath("auto", fs.BaseDir())
	}
	root := &treeNode{
		label: fmt.Sprintf("%s (span: %s)", header, formatSpan(file.Span, fs)),
	}

	for idx, stmtID := range file.Stmts {
		root.children = append(root.children, buildStmtTreeNode(builder, stmtID, fs, idx))
	}

	return root
}

// FormatASTPretty печатает дерево стейтментов с ветками ├─/└─.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	root := buildFileTreeNode(builder, fileID, fs)
	fmt.Fprintln(w, root.label)
	renderChildren(w, root, "")
	return nil
}

func renderChildren(w io.Writer, node *treeNode, prefix string) {
	for i, child := range node.children {
		isLast := i == len(node.children)-1
		branch, nested := "├─ ", "│  "
		if isLast {
			branch, nested = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label)
		renderChildren(w, child, prefix+nested)
	}
}

// FormatASTTree печатает то же дерево в компактном виде: только отступы.
func FormatASTTree(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	root := buildFileTreeNode(builder, fileID, fs)
	renderIndented(w, root, 0)
	return nil
}

func renderIndented(w io.Writer, node *treeNode, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintln(w, node.label)
	for _, child := range node.children {
		renderIndented(w, child, depth+1)
	}
}

// ASTNodeOutput — узел дерева для JSON вывода.
type ASTNodeOutput struct {
	Label    string          `json:"label"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTJSON сериализует дерево стейтментов в JSON.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}
	root := buildFileTreeNode(builder, fileID, fs)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toJSONNode(root))
}

func toJSONNode(node *treeNode) ASTNodeOutput {
	out := ASTNodeOutput{Label: node.label}
	for _, child := range node.children {
		out.Children = append(out.Children, toJSONNode(child))
	}
	return out
}
