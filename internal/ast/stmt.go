package ast

// Param is one function parameter. Star is "", "*" or "**"; a bare "*"
// separator is a Param with Star "*" and an empty Name.
type Param struct {
	Name       string
	Star       string
	Annotation Expr
	Default    Expr
}

// FunctionDef is a `def` statement.
type FunctionDef struct {
	Meta
	Name                string
	Params              []Param
	ParamsTrailingComma bool
	Returns             Expr
	Body                []Stmt
}

// Return is a `return` statement; Value may be nil.
type Return struct {
	Meta
	Value Expr
}

// Pass is a `pass` statement.
type Pass struct {
	Meta
}

// Assign is `target = value` (chained targets supported).
type Assign struct {
	Meta
	Targets []Expr
	Value   Expr
}

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	Meta
	Value Expr
}

// WithItem is one `context as var` entry; Var may be nil.
type WithItem struct {
	Context Expr
	Var     Expr
}

// With is a `with` statement. TrailingComma records a magic trailing
// comma inside a parenthesized item list.
type With struct {
	Meta
	Items         []WithItem
	Parenthesized bool
	TrailingComma bool
	Body          []Stmt
}

func (s *FunctionDef) stmtNode() {}
func (s *Return) stmtNode()      {}
func (s *Pass) stmtNode()        {}
func (s *Assign) stmtNode()      {}
func (s *ExprStmt) stmtNode()    {}
func (s *With) stmtNode()        {}
