package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline terminates a logical line; it is suppressed inside brackets.
	Newline
	// Indent opens a deeper indentation block.
	Indent
	// Dedent closes an indentation block.
	Dedent
	// Comment is a '#' comment including its marker.
	Comment

	// Ident represents an identifier token.
	Ident
	// Number represents any numeric literal; the spelling is preserved.
	Number
	// String represents a string or bytes literal token incl. prefix.
	String

	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIs represents the 'is' keyword.
	KwIs // is

	// LParen ( RParen ) LBracket [ RBracket ] LBrace { RBrace }
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// Comma , Colon : Dot . Semicolon ;
	Comma
	Colon
	Dot
	Semicolon

	// Assign = Arrow -> Star * DoubleStar ** At @
	Assign
	Arrow
	Star
	DoubleStar
	At

	// Arithmetic and comparison operators.
	Plus
	Minus
	Slash
	DoubleSlash
	Percent
	EqEq
	BangEq
	Lt
	LtEq
	Gt
	GtEq
	Amp
	Pipe
	Caret
	Tilde
)

// IsKeyword reports whether the token kind is a language keyword.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwDef, KwReturn, KwPass, KwWith, KwAs, KwAnd, KwOr, KwNot, KwIn, KwIs:
		return true
	default:
		return false
	}
}
