package format

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/doc"
)

// printWith renders a with statement. The item list breaks by gaining
// parentheses, since bare with-items cannot wrap; a magic trailing
// comma inside source parentheses forces the broken form.
func (pr *printer) printWith(n *ast.With) *doc.Doc {
	items := make([]*doc.Doc, 0, len(n.Items))
	for _, item := range n.Items {
		items = append(items, pr.printWithItem(item))
	}

	magic := n.Parenthesized && n.TrailingComma
	mode := doc.BreakAuto
	if magic {
		mode = doc.BreakAlways
	}

	inner := []*doc.Doc{doc.SoftLine()}
	inner = append(inner, joinComma(items)...)
	inner = append(inner, doc.IfBreak(doc.Text(","), nil))

	header := doc.GroupBreak(mode,
		doc.IfBreak(doc.Text("("), nil),
		doc.Indent(inner...),
		doc.SoftLine(),
		doc.IfBreak(doc.Text(")"), nil),
	)

	return doc.Seq(
		doc.Text("with "),
		header,
		pr.printSuite(n.Body, &n.Meta),
	)
}

func (pr *printer) printWithItem(item ast.WithItem) *doc.Doc {
	if item.Var == nil {
		return pr.printExpr(item.Context)
	}
	return doc.Seq(
		pr.printExpr(item.Context),
		doc.Text(" as "),
		pr.printExpr(item.Var),
	)
}
