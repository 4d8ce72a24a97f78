package token

import "github.com/jgberry/ruff/internal/source"

// Token represents a single source token with its location and text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// BlankBefore counts blank source lines immediately before this
	// token (capped by the lexer); only meaningful on the first token
	// of a logical line.
	BlankBefore int
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number || t.Kind == String
}

var keywords = map[string]Kind{
	"def":    KwDef,
	"return": KwReturn,
	"pass":   KwPass,
	"with":   KwWith,
	"as":     KwAs,
	"and":    KwAnd,
	"or":     KwOr,
	"not":    KwNot,
	"in":     KwIn,
	"is":     KwIs,
}

// LookupKeyword maps an identifier spelling to its keyword kind, or
// Ident when the spelling is not a keyword.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}
