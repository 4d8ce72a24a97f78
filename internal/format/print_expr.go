package format

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/doc"
)

// Precedence levels, loosest first. Children with looser precedence
// than their context get explicit parentheses.
const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precCmp
	precBitOr
	precBitXor
	precBitAnd
	precArith
	precTerm
	precUnary
	precPower
	precPostfix
	precAtom
)

var binOpPrec = map[string]int{
	"|": precBitOr, "^": precBitXor, "&": precBitAnd,
	"+": precArith, "-": precArith,
	"*": precTerm, "/": precTerm, "//": precTerm, "%": precTerm, "@": precTerm,
	"**": precPower,
}

func exprPrec(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.BoolOp:
		if n.Op == "or" {
			return precOr
		}
		return precAnd
	case *ast.Compare:
		return precCmp
	case *ast.BinOp:
		return binOpPrec[n.Op]
	case *ast.UnaryOp:
		if n.Op == "not" {
			return precNot
		}
		return precUnary
	case *ast.Tuple:
		if !n.Parenthesized {
			return precLowest
		}
		return precAtom
	case *ast.Call, *ast.Attribute, *ast.Subscript:
		return precPostfix
	default:
		return precAtom
	}
}

// printExpr renders an expression for use inside brackets, where soft
// breaks need no extra parentheses.
func (pr *printer) printExpr(e ast.Expr) *doc.Doc {
	switch n := e.(type) {
	case *ast.Name:
		return doc.Text(n.Ident)

	case *ast.Number:
		return doc.Text(n.Text)

	case *ast.String:
		return pr.printString(n)

	case *ast.Tuple:
		return pr.printTuple(n)

	case *ast.List:
		return bracketed("[", "]", pr.printExprs(n.Elts), true, n.TrailingComma)

	case *ast.Set:
		return bracketed("{", "}", pr.printExprs(n.Elts), true, n.TrailingComma)

	case *ast.Dict:
		return pr.printDict(n)

	case *ast.Call:
		return pr.printCall(n)

	case *ast.Attribute:
		return doc.Seq(pr.printSub(n.Value, precPostfix), doc.Text("."+n.Attr))

	case *ast.Subscript:
		return pr.printSubscript(n)

	case *ast.Starred:
		return doc.Seq(doc.Text("*"), pr.printSub(n.Value, precUnary))

	case *ast.BoolOp:
		return doc.Group(pr.boolChain(n)...)

	case *ast.BinOp:
		return doc.Group(pr.binChain(n)...)

	case *ast.Compare:
		return doc.Group(pr.compareChain(n)...)

	case *ast.UnaryOp:
		return pr.printUnary(n)

	default:
		panic("format: unhandled expression kind")
	}
}

// printSub renders a child expression, parenthesizing it when its
// precedence is looser than the surrounding context requires.
func (pr *printer) printSub(e ast.Expr, context int) *doc.Doc {
	inner := pr.printExpr(e)
	if exprPrec(e) < context {
		return doc.Group(
			doc.Text("("),
			doc.Indent(doc.SoftLine(), inner),
			doc.SoftLine(),
			doc.Text(")"),
		)
	}
	return inner
}

func (pr *printer) printExprs(elts []ast.Expr) []*doc.Doc {
	out := make([]*doc.Doc, 0, len(elts))
	for _, e := range elts {
		out = append(out, pr.printExpr(e))
	}
	return out
}

func (pr *printer) printTuple(n *ast.Tuple) *doc.Doc {
	if len(n.Elts) == 0 {
		return doc.Text("()")
	}
	if len(n.Elts) == 1 && n.Parenthesized {
		// Single-element tuples keep a mandatory comma.
		return doc.Group(
			doc.Text("("),
			doc.Indent(doc.SoftLine(), pr.printExpr(n.Elts[0]), doc.Text(",")),
			doc.SoftLine(),
			doc.Text(")"),
		)
	}
	if n.Parenthesized {
		return bracketed("(", ")", pr.printExprs(n.Elts), true, n.TrailingComma)
	}
	// Bare tuples break with optional parentheses at statement level;
	// inside brackets their commas simply wrap.
	return doc.Group(joinComma(pr.printExprs(n.Elts))...)
}

func (pr *printer) printDict(n *ast.Dict) *doc.Doc {
	if len(n.Values) == 0 {
		return doc.Text("{}")
	}
	entries := make([]*doc.Doc, 0, len(n.Values))
	for i, value := range n.Values {
		if n.Keys[i] == nil {
			entries = append(entries, doc.Seq(doc.Text("**"), pr.printExpr(value)))
			continue
		}
		entries = append(entries, doc.Seq(
			pr.printExpr(n.Keys[i]),
			doc.Text(": "),
			pr.printExpr(value),
		))
	}
	return bracketed("{", "}", entries, true, n.TrailingComma)
}

func (pr *printer) printUnary(n *ast.UnaryOp) *doc.Doc {
	op := n.Op
	context := precUnary
	if n.Op == "not" {
		op = "not "
		context = precNot
	}
	return doc.Seq(doc.Text(op), pr.printSub(n.Operand, context))
}

// boolChain flattens `a and b and c` into operands joined by breaks
// placed before each operator, so the broken form reads one operand per
// line with leading keywords.
func (pr *printer) boolChain(n *ast.BoolOp) []*doc.Doc {
	context := precAnd
	if n.Op == "or" {
		context = precOr
	}
	out := make([]*doc.Doc, 0, len(n.Values)*3)
	for i, v := range n.Values {
		if i > 0 {
			out = append(out, doc.Space(), doc.Text(n.Op+" "))
		}
		out = append(out, pr.printSub(v, context+1))
	}
	return out
}

// binChain flattens a left-associative spine of equal-precedence binary
// operators, which is how string concatenation chains over `+` wrap.
func (pr *printer) binChain(n *ast.BinOp) []*doc.Doc {
	level := binOpPrec[n.Op]

	var walk func(e ast.Expr) []*doc.Doc
	walk = func(e ast.Expr) []*doc.Doc {
		if b, ok := e.(*ast.BinOp); ok && binOpPrec[b.Op] == level && level != precPower {
			left := walk(b.Left)
			return append(left, doc.Space(), doc.Text(b.Op+" "), pr.printSub(b.Right, level+1))
		}
		return []*doc.Doc{pr.printSub(e, level)}
	}
	return walk(n)
}

func (pr *printer) compareChain(n *ast.Compare) []*doc.Doc {
	out := []*doc.Doc{pr.printSub(n.Left, precCmp+1)}
	for i, op := range n.Ops {
		out = append(out, doc.Space(), doc.Text(op+" "), pr.printSub(n.Comparators[i], precCmp+1))
	}
	return out
}

// chainlike reports whether an expression breaks by wrapping its own
// operands (rather than bringing brackets), which means statement-level
// uses must add optional parentheses around it.
func chainlike(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.BoolOp, *ast.BinOp, *ast.Compare:
		return true
	case *ast.String:
		return len(n.Parts) > 1
	case *ast.Tuple:
		return !n.Parenthesized && len(n.Elts) > 1
	default:
		return false
	}
}

// chainBody renders a chainlike expression without its enclosing group
// so optionalParens can own the break decision.
func (pr *printer) chainBody(e ast.Expr) *doc.Doc {
	switch n := e.(type) {
	case *ast.BoolOp:
		return doc.Seq(pr.boolChain(n)...)
	case *ast.BinOp:
		return doc.Seq(pr.binChain(n)...)
	case *ast.Compare:
		return doc.Seq(pr.compareChain(n)...)
	case *ast.String:
		return pr.stringFill(n)
	case *ast.Tuple:
		return doc.Seq(joinComma(pr.printExprs(n.Elts))...)
	default:
		return pr.printExpr(e)
	}
}

// printStatementExpr renders an expression in statement position, where
// breaking a chain requires wrapping it in parentheses.
func (pr *printer) printStatementExpr(e ast.Expr) *doc.Doc {
	if chainlike(e) {
		magic := false
		if t, ok := e.(*ast.Tuple); ok {
			magic = t.TrailingComma
		}
		return optionalParens(pr.chainBody(e), magic)
	}
	return pr.printExpr(e)
}
