package format

import (
	"strings"

	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/doc"
	"github.com/jgberry/ruff/internal/layout"
	"github.com/jgberry/ruff/internal/parser"
	"github.com/jgberry/ruff/internal/pystring"
	"github.com/jgberry/ruff/internal/source"
)

// Options configures formatting.
type Options struct {
	MaxWidth    int // line length budget, default 88
	IndentWidth int
	Quote       pystring.Quote
	// Preview selects the strict escape policy that also upper-cases
	// \u/\U digits and \N{...} identifiers.
	Preview bool
}

func (o Options) withDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 88
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	if o.Quote == 0 {
		o.Quote = pystring.QuoteDouble
	}
	return o
}

func (o Options) stringOptions() pystring.Options {
	policy := pystring.PolicyPreserve
	if o.Preview {
		policy = pystring.PolicyStrict
	}
	return pystring.Options{Preferred: o.Quote, Policy: policy}
}

type printer struct {
	opt Options
}

// FormatFile parses and formats one source file.
func FormatFile(sf *source.File, opt Options) ([]byte, error) {
	mod, err := parser.ParseFile(sf)
	if err != nil {
		return nil, err
	}
	return FormatModule(mod, opt), nil
}

// FormatModule renders a module. Each top-level statement gets a fresh
// document tree, consumed exactly once by the layout engine.
func FormatModule(mod *ast.Module, opt Options) []byte {
	opt = opt.withDefaults()
	pr := printer{opt: opt}

	var out strings.Builder
	for i, stmt := range mod.Body {
		blank := stmt.StmtMeta().BlankBefore
		if i == 0 {
			blank = 0
		}
		for n := 0; n < min(blank, 2); n++ {
			out.WriteByte('\n')
		}

		rendered := layout.Render(pr.printStmt(stmt), layout.Options{
			MaxWidth:    opt.MaxWidth,
			IndentWidth: opt.IndentWidth,
		})
		out.WriteString(rendered)
		out.WriteByte('\n')
	}

	for _, c := range mod.Tail {
		out.WriteString(normalizeComment(c.Text))
		out.WriteByte('\n')
	}
	return []byte(out.String())
}

// printStmt builds the full document for one statement, including its
// attached comments and any nested suite.
func (pr *printer) printStmt(stmt ast.Stmt) *doc.Doc {
	meta := stmt.StmtMeta()

	var parts []*doc.Doc
	for _, c := range meta.Leading {
		parts = append(parts, doc.Text(normalizeComment(c.Text)), doc.HardLine())
	}
	parts = append(parts, pr.printStmtBody(stmt))
	return doc.Seq(parts...)
}

func (pr *printer) printStmtBody(stmt ast.Stmt) *doc.Doc {
	switch s := stmt.(type) {
	case *ast.FunctionDef:
		return pr.printFunctionDef(s)
	case *ast.With:
		return pr.printWith(s)
	case *ast.Return:
		return pr.printReturn(s)
	case *ast.Pass:
		return pr.simpleStmt(doc.Text("pass"), &s.Meta)
	case *ast.Assign:
		return pr.printAssign(s)
	case *ast.ExprStmt:
		return pr.simpleStmt(pr.printStatementExpr(s.Value), &s.Meta)
	default:
		panic("format: unhandled statement kind")
	}
}

// simpleStmt appends a trailing comment, if any, to a one-line statement.
func (pr *printer) simpleStmt(body *doc.Doc, meta *ast.Meta) *doc.Doc {
	if len(meta.Trailing) == 0 {
		return body
	}
	return doc.Seq(body, doc.Text("  "+trailingText(meta.Trailing)))
}

// printSuite renders `:` plus an indented body. Inline suites from the
// source (`def f(): pass`) are expanded into a block.
func (pr *printer) printSuite(body []ast.Stmt, meta *ast.Meta) *doc.Doc {
	parts := []*doc.Doc{doc.Text(":")}
	if len(meta.Trailing) > 0 {
		parts = append(parts, doc.Text("  "+trailingText(meta.Trailing)))
	}

	var inner []*doc.Doc
	for i, stmt := range body {
		if i == 0 {
			inner = append(inner, doc.HardLine())
		} else {
			inner = append(inner, blockSeparator(stmt.StmtMeta().BlankBefore)...)
		}
		inner = append(inner, pr.printStmt(stmt))
	}
	for _, c := range meta.Dangling {
		inner = append(inner, doc.HardLine(), doc.Text(normalizeComment(c.Text)))
	}
	parts = append(parts, doc.Indent(inner...))
	return doc.Seq(parts...)
}

// blockSeparator translates preserved blank-line counts into breaks.
func blockSeparator(blank int) []*doc.Doc {
	switch {
	case blank <= 0:
		return []*doc.Doc{doc.HardLine()}
	case blank == 1:
		return []*doc.Doc{doc.BlankLine()}
	default:
		return []*doc.Doc{doc.BlankLine(), doc.HardLine()}
	}
}

func trailingText(comments []ast.Comment) string {
	parts := make([]string, 0, len(comments))
	for _, c := range comments {
		parts = append(parts, normalizeComment(c.Text))
	}
	return strings.Join(parts, "  ")
}

// normalizeComment ensures a space after the '#' marker.
func normalizeComment(text string) string {
	if len(text) > 1 && text[1] != ' ' && text[1] != '!' && text[1] != '#' {
		return "# " + text[1:]
	}
	return text
}
