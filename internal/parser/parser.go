// Package parser builds the formatter's syntax tree from a token
// stream. It is a plain recursive-descent parser: statements dispatch
// on the leading keyword, expressions use one function per precedence
// level. Comment tokens are collected while parsing and attached to the
// statement they precede (leading) or share a line with (trailing).
package parser

import (
	"fmt"

	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/lexer"
	"github.com/jgberry/ruff/internal/source"
	"github.com/jgberry/ruff/internal/token"
)

// Parser consumes a token slice produced by the lexer.
type Parser struct {
	toks []token.Token
	pos  int

	// pending holds leading comments waiting for their statement.
	pending      []ast.Comment
	pendingBlank int
}

// ParseFile lexes and parses one source file.
func ParseFile(sf *source.File) (*ast.Module, error) {
	toks, err := lexer.New(sf).Tokenize()
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Parse builds a module from tokens.
func Parse(toks []token.Token) (*ast.Module, error) {
	p := &Parser{toks: toks}
	mod := &ast.Module{}

	for {
		p.collectComments()
		if p.at(token.EOF) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		mod.Body = append(mod.Body, stmt)
	}

	mod.Tail = p.takeComments()
	return mod, nil
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(kind token.Kind) bool {
	return p.toks[p.pos].Kind == kind
}

func (p *Parser) next() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind, what string) (token.Token, error) {
	if !p.at(kind) {
		return token.Token{}, p.errorf("expected %s, found %q", what, p.peek().Text)
	}
	return p.next(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	tok := p.peek()
	return fmt.Errorf("parser: %s (at offset %d)", fmt.Sprintf(format, args...), tok.Span.Start)
}

// collectComments consumes standalone comment tokens; they become the
// leading comments of the next statement.
func (p *Parser) collectComments() {
	for p.at(token.Comment) {
		tok := p.next()
		if len(p.pending) == 0 && p.pendingBlank == 0 {
			p.pendingBlank = tok.BlankBefore
		}
		p.pending = append(p.pending, ast.Comment{Text: tok.Text, Span: tok.Span})
		if p.at(token.Newline) {
			p.next()
		}
	}
}

func (p *Parser) takeComments() []ast.Comment {
	out := p.pending
	p.pending = nil
	return out
}

// beginStmt fills the statement meta from pending comments and the
// blank-line count on the first token.
func (p *Parser) beginStmt(meta *ast.Meta) {
	meta.Leading = p.takeComments()
	if len(meta.Leading) > 0 {
		meta.BlankBefore = p.pendingBlank
		p.pendingBlank = 0
	} else {
		meta.BlankBefore = p.peek().BlankBefore
	}
	meta.Span = p.peek().Span
}

// endStmt consumes a trailing comment (if the statement shares its line
// with one) and the terminating newline.
func (p *Parser) endStmt(meta *ast.Meta) error {
	if p.at(token.Comment) {
		tok := p.next()
		meta.Trailing = append(meta.Trailing, ast.Comment{Text: tok.Text, Span: tok.Span})
	}
	if p.at(token.Newline) {
		p.next()
		return nil
	}
	if p.at(token.EOF) || p.at(token.Dedent) {
		return nil
	}
	return p.errorf("expected end of statement, found %q", p.peek().Text)
}
