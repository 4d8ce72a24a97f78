package format

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/doc"
)

// printCall renders callee plus argument list. The whole call inherits
// broken mode from its argument list so nested broken calls mark their
// ancestors broken too.
func (pr *printer) printCall(n *ast.Call) *doc.Doc {
	elems := make([]*doc.Doc, 0, len(n.Args)+len(n.Keywords))
	for _, arg := range n.Args {
		elems = append(elems, pr.printExpr(arg))
	}
	for _, kw := range n.Keywords {
		elems = append(elems, pr.printKeyword(kw))
	}

	return doc.GroupBreak(doc.BreakIfNested,
		pr.printSub(n.Func, precPostfix),
		bracketed("(", ")", elems, true, n.TrailingComma),
	)
}

func (pr *printer) printKeyword(kw ast.Keyword) *doc.Doc {
	if kw.Name == "" {
		return doc.Seq(doc.Text("**"), pr.printExpr(kw.Value))
	}
	// No spaces around `=` in keyword arguments.
	return doc.Seq(doc.Text(kw.Name+"="), pr.printExpr(kw.Value))
}

func (pr *printer) printSubscript(n *ast.Subscript) *doc.Doc {
	return doc.Seq(
		pr.printSub(n.Value, precPostfix),
		doc.Group(
			doc.Text("["),
			doc.Indent(doc.SoftLine(), pr.printExpr(n.Index)),
			doc.SoftLine(),
			doc.Text("]"),
		),
	)
}
