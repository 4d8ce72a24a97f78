// Package lexer tokenizes Python-like source into the token stream the
// parser consumes: significant indentation becomes Indent/Dedent
// tokens, logical lines end in Newline, and comments are emitted as
// ordinary tokens so the parser can attach them to statements.
package lexer

import (
	"fmt"

	"github.com/jgberry/ruff/internal/source"
	"github.com/jgberry/ruff/internal/token"
)

const tabWidth = 8

// maxBlankRun caps how many consecutive blank lines are reported; the
// formatter never preserves more than two.
const maxBlankRun = 2

// Lexer scans one source file into tokens.
type Lexer struct {
	file    *source.File
	content []byte
	pos     int

	indents     []int
	depth       int // bracket nesting; newlines are joined when > 0
	atLineStart bool
	blanks      int
	pendingBlk  int

	tokens []token.Token
}

// New creates a lexer over sf.
func New(sf *source.File) *Lexer {
	return &Lexer{
		file:        sf,
		content:     sf.Content,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Tokenize scans the whole file. The returned stream always ends with
// trailing Dedents (if any) followed by EOF.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	for {
		if lx.atLineStart && lx.depth == 0 {
			done, err := lx.scanLineStart()
			if err != nil {
				return nil, err
			}
			if done {
				break
			}
			continue
		}
		if lx.pos >= len(lx.content) {
			break
		}
		if err := lx.scanToken(); err != nil {
			return nil, err
		}
	}

	lx.finish()
	return lx.tokens, nil
}

// scanLineStart handles indentation, blank lines and comment-only
// lines. It reports done=true at end of input.
func (lx *Lexer) scanLineStart() (bool, error) {
	col := 0
	for lx.pos < len(lx.content) {
		switch lx.content[lx.pos] {
		case ' ':
			col++
			lx.pos++
		case '\t':
			col += tabWidth - col%tabWidth
			lx.pos++
		default:
			goto measured
		}
	}
measured:
	if lx.pos >= len(lx.content) {
		return true, nil
	}

	switch lx.content[lx.pos] {
	case '\n':
		lx.pos++
		if lx.blanks < maxBlankRun {
			lx.blanks++
		}
		return false, nil
	case '#':
		lx.pendingBlk = lx.blanks
		lx.blanks = 0
		lx.scanComment()
		if lx.pos < len(lx.content) && lx.content[lx.pos] == '\n' {
			lx.pos++
		}
		return false, nil
	}

	top := lx.indents[len(lx.indents)-1]
	switch {
	case col > top:
		lx.indents = append(lx.indents, col)
		lx.emit(token.Indent, lx.pos, lx.pos)
	case col < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > col {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.emit(token.Dedent, lx.pos, lx.pos)
		}
		if lx.indents[len(lx.indents)-1] != col {
			line, _ := lx.lineColAt(lx.pos)
			return false, fmt.Errorf("lexer: inconsistent indentation at line %d", line)
		}
	}

	lx.atLineStart = false
	lx.pendingBlk = lx.blanks
	lx.blanks = 0
	return false, nil
}

func (lx *Lexer) finish() {
	if n := len(lx.tokens); n > 0 && lx.tokens[n-1].Kind != token.Newline {
		lx.emit(token.Newline, lx.pos, lx.pos)
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.emit(token.Dedent, lx.pos, lx.pos)
	}
	lx.emit(token.EOF, lx.pos, lx.pos)
}

func (lx *Lexer) emit(kind token.Kind, start, end int) {
	tok := token.Token{
		Kind: kind,
		Span: source.Span{File: lx.file.ID, Start: uint32(start), End: uint32(end)},
		Text: string(lx.content[start:end]),
	}
	if lx.pendingBlk > 0 {
		tok.BlankBefore = lx.pendingBlk
		lx.pendingBlk = 0
	}
	lx.tokens = append(lx.tokens, tok)
}

func (lx *Lexer) lineColAt(pos int) (int, int) {
	line, col := 1, 1
	for i := 0; i < pos && i < len(lx.content); i++ {
		if lx.content[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
