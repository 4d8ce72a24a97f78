package format

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/doc"
)

// printFunctionDef renders a def header and its suite. The parameter
// list and the return annotation are separate groups: a broken
// annotation never forces a trailing comma into a parameter list that
// fits flat on its own.
func (pr *printer) printFunctionDef(n *ast.FunctionDef) *doc.Doc {
	parts := []*doc.Doc{
		doc.Text("def " + n.Name),
		pr.printParams(n.Params, n.ParamsTrailingComma),
	}

	if n.Returns != nil {
		parts = append(parts,
			doc.Text(" -> "),
			optionalParens(pr.chainBody(n.Returns), false),
		)
	}

	parts = append(parts, pr.printSuite(n.Body, &n.Meta))
	return doc.Seq(parts...)
}

func (pr *printer) printParams(params []ast.Param, magic bool) *doc.Doc {
	elems := make([]*doc.Doc, 0, len(params))
	for _, p := range params {
		elems = append(elems, pr.printParam(p))
	}
	return bracketed("(", ")", elems, true, magic)
}

func (pr *printer) printParam(p ast.Param) *doc.Doc {
	var parts []*doc.Doc
	if p.Star != "" {
		parts = append(parts, doc.Text(p.Star))
	}
	if p.Name != "" {
		parts = append(parts, doc.Text(p.Name))
	}
	if p.Annotation != nil {
		parts = append(parts, doc.Text(": "), pr.printExpr(p.Annotation))
	}
	if p.Default != nil {
		// `=` is spaced only when an annotation is present.
		eq := "="
		if p.Annotation != nil {
			eq = " = "
		}
		parts = append(parts, doc.Text(eq), pr.printExpr(p.Default))
	}
	return doc.Seq(parts...)
}

func (pr *printer) printReturn(n *ast.Return) *doc.Doc {
	if n.Value == nil {
		return pr.simpleStmt(doc.Text("return"), &n.Meta)
	}
	return pr.simpleStmt(
		doc.Seq(doc.Text("return "), pr.printStatementExpr(n.Value)),
		&n.Meta,
	)
}

func (pr *printer) printAssign(n *ast.Assign) *doc.Doc {
	var parts []*doc.Doc
	for _, target := range n.Targets {
		parts = append(parts, pr.printExpr(target), doc.Text(" = "))
	}
	parts = append(parts, pr.printStatementExpr(n.Value))
	return pr.simpleStmt(doc.Seq(parts...), &n.Meta)
}
