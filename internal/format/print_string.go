package format

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/doc"
	"github.com/jgberry/ruff/internal/pystring"
)

// printString normalizes each literal token and, for implicit
// concatenation, lets a fill wrap the parts like words: each gap breaks
// independently depending on whether the next part still fits.
func (pr *printer) printString(n *ast.String) *doc.Doc {
	if len(n.Parts) == 1 {
		return doc.Text(pr.normalizePart(n.Parts[0]))
	}
	return doc.Group(pr.stringFill(n))
}

func (pr *printer) stringFill(n *ast.String) *doc.Doc {
	items := make([]*doc.Doc, 0, len(n.Parts))
	for _, part := range n.Parts {
		items = append(items, doc.Text(pr.normalizePart(part)))
	}
	if len(items) == 1 {
		return items[0]
	}
	seps := make([]*doc.Doc, len(items)-1)
	for i := range seps {
		seps[i] = doc.Space()
	}
	return doc.Fill(items, seps)
}

func (pr *printer) normalizePart(part ast.StringPart) string {
	return pystring.Normalize(part.Text, pr.opt.stringOptions())
}
