package ast

import "github.com/jgberry/ruff/internal/source"

// Name is an identifier, including the keyword constants True, False
// and None.
type Name struct {
	Ident string
	Span  source.Span
}

// Number keeps the original spelling of a numeric literal.
type Number struct {
	Text string
	Span source.Span
}

// StringPart is one literal token of a (possibly implicitly
// concatenated) string. Text is the exact source token including
// prefix and quotes.
type StringPart struct {
	Text string
	Span source.Span
}

// IsRaw reports whether the token carries an r prefix.
func (p StringPart) IsRaw() bool { return p.hasPrefix('r', 'R') }

// IsBytes reports whether the token carries a b prefix.
func (p StringPart) IsBytes() bool { return p.hasPrefix('b', 'B') }

func (p StringPart) hasPrefix(lo, up byte) bool {
	for i := 0; i < len(p.Text); i++ {
		c := p.Text[i]
		if c == '"' || c == '\'' {
			return false
		}
		if c == lo || c == up {
			return true
		}
	}
	return false
}

// String is a string or bytes literal; multiple parts represent
// implicit concatenation of adjacent tokens.
type String struct {
	Parts []StringPart
	Span  source.Span
}

// Tuple is a tuple display. Parenthesized records whether the source
// wrote explicit parentheses.
type Tuple struct {
	Elts          []Expr
	Parenthesized bool
	TrailingComma bool
	Span          source.Span
}

// List is a list display.
type List struct {
	Elts          []Expr
	TrailingComma bool
	Span          source.Span
}

// Set is a set display.
type Set struct {
	Elts          []Expr
	TrailingComma bool
	Span          source.Span
}

// Dict is a dict display. A nil key marks a **mapping unpacking entry.
type Dict struct {
	Keys          []Expr
	Values        []Expr
	TrailingComma bool
	Span          source.Span
}

// Keyword is a keyword argument; an empty Name marks **kwargs.
type Keyword struct {
	Name  string
	Value Expr
	Span  source.Span
}

// Call is a call expression. TrailingComma records a source-literal
// trailing comma after the last argument (the magic trailing comma).
type Call struct {
	Func          Expr
	Args          []Expr
	Keywords      []Keyword
	TrailingComma bool
	Span          source.Span
}

// Attribute is a dotted attribute access.
type Attribute struct {
	Value Expr
	Attr  string
	Span  source.Span
}

// Subscript is an indexing expression.
type Subscript struct {
	Value Expr
	Index Expr
	Span  source.Span
}

// Starred is *expr in a call or display.
type Starred struct {
	Value Expr
	Span  source.Span
}

// BoolOp is a chain of `and` or `or` operands (len(Values) >= 2).
type BoolOp struct {
	Op     string
	Values []Expr
	Span   source.Span
}

// BinOp is a binary operation; `+` chains over string literals are the
// concatenation chains the split rules care about.
type BinOp struct {
	Left  Expr
	Op    string
	Right Expr
	Span  source.Span
}

// UnaryOp is a prefix operation.
type UnaryOp struct {
	Op      string
	Operand Expr
	Span    source.Span
}

// Compare is a comparison chain: Left, then pairwise (Ops[i],
// Comparators[i]).
type Compare struct {
	Left        Expr
	Ops         []string
	Comparators []Expr
	Span        source.Span
}

func (n *Name) exprNode()      {}
func (n *Number) exprNode()    {}
func (n *String) exprNode()    {}
func (n *Tuple) exprNode()     {}
func (n *List) exprNode()      {}
func (n *Set) exprNode()       {}
func (n *Dict) exprNode()      {}
func (n *Call) exprNode()      {}
func (n *Attribute) exprNode() {}
func (n *Subscript) exprNode() {}
func (n *Starred) exprNode()   {}
func (n *BoolOp) exprNode()    {}
func (n *BinOp) exprNode()     {}
func (n *UnaryOp) exprNode()   {}
func (n *Compare) exprNode()   {}

func (n *Name) ExprSpan() source.Span      { return n.Span }
func (n *Number) ExprSpan() source.Span    { return n.Span }
func (n *String) ExprSpan() source.Span    { return n.Span }
func (n *Tuple) ExprSpan() source.Span     { return n.Span }
func (n *List) ExprSpan() source.Span      { return n.Span }
func (n *Set) ExprSpan() source.Span       { return n.Span }
func (n *Dict) ExprSpan() source.Span      { return n.Span }
func (n *Call) ExprSpan() source.Span      { return n.Span }
func (n *Attribute) ExprSpan() source.Span { return n.Span }
func (n *Subscript) ExprSpan() source.Span { return n.Span }
func (n *Starred) ExprSpan() source.Span   { return n.Span }
func (n *BoolOp) ExprSpan() source.Span    { return n.Span }
func (n *BinOp) ExprSpan() source.Span     { return n.Span }
func (n *UnaryOp) ExprSpan() source.Span   { return n.Span }
func (n *Compare) ExprSpan() source.Span   { return n.Span }
