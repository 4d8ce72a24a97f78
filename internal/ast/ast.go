// Package ast defines the syntax tree the formatter consumes.
//
// The node set is closed: split-policy rules dispatch on concrete node
// types with a type switch, and a missing case is a bug in the rules,
// not an extension point. Literal nodes carry their original token text
// so the string normalizer can operate on exact escape spellings.
// Comments arrive pre-attached to their owning statements with
// leading/trailing placement already resolved.
package ast

import "github.com/jgberry/ruff/internal/source"

// Module is the root of one parsed file.
type Module struct {
	Body []Stmt
	// Tail holds comments after the last statement.
	Tail []Comment
}

// Comment is a single '#' comment including its marker.
type Comment struct {
	Text string
	Span source.Span
}

// Meta carries the data every statement owns: its span, attached
// comments, and how many blank lines preceded it in the source
// (capped at 2 by the parser).
type Meta struct {
	Span     source.Span
	Leading  []Comment
	Trailing []Comment
	// Dangling holds comments that sit on their own lines after the
	// last statement of this statement's suite.
	Dangling    []Comment
	BlankBefore int
}

func (m *Meta) StmtMeta() *Meta { return m }

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
	ExprSpan() source.Span
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	StmtMeta() *Meta
}
