package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/jgberry/ruff/internal/token"
)

func (lx *Lexer) scanToken() error {
	c := lx.content[lx.pos]

	switch {
	case c == ' ' || c == '\t':
		lx.pos++
		return nil

	case c == '\n':
		lx.pos++
		if lx.depth > 0 {
			return nil
		}
		lx.emit(token.Newline, lx.pos-1, lx.pos)
		lx.atLineStart = true
		return nil

	case c == '\\' && lx.pos+1 < len(lx.content) && lx.content[lx.pos+1] == '\n':
		// Explicit line joining.
		lx.pos += 2
		return nil

	case c == '#':
		lx.scanComment()
		return nil

	case c == '"' || c == '\'':
		return lx.scanString(lx.pos)

	case isIdentStart(c):
		return lx.scanIdentOrString()

	case isDigit(c) || (c == '.' && lx.pos+1 < len(lx.content) && isDigit(lx.content[lx.pos+1])):
		lx.scanNumber()
		return nil

	default:
		return lx.scanOperator()
	}
}

func (lx *Lexer) scanComment() {
	start := lx.pos
	for lx.pos < len(lx.content) && lx.content[lx.pos] != '\n' {
		lx.pos++
	}
	lx.emit(token.Comment, start, lx.pos)
}

// scanIdentOrString scans an identifier, keyword, or a prefixed string
// literal such as r'...' or b"...".
func (lx *Lexer) scanIdentOrString() error {
	start := lx.pos
	for lx.pos < len(lx.content) {
		c := lx.content[lx.pos]
		if isIdentStart(c) || isDigit(c) {
			lx.pos++
			continue
		}
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(lx.content[lx.pos:])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				lx.pos += size
				continue
			}
		}
		break
	}

	if lx.pos < len(lx.content) {
		q := lx.content[lx.pos]
		if (q == '"' || q == '\'') && isStringPrefix(lx.content[start:lx.pos]) {
			return lx.scanString(start)
		}
	}

	text := string(lx.content[start:lx.pos])
	lx.emit(token.LookupKeyword(text), start, lx.pos)
	return nil
}

// scanString consumes a full literal starting at start (which may point
// at a prefix). lx.pos must sit on the opening quote.
func (lx *Lexer) scanString(start int) error {
	q := lx.content[lx.pos]
	triple := lx.pos+2 < len(lx.content) && lx.content[lx.pos+1] == q && lx.content[lx.pos+2] == q
	if triple {
		lx.pos += 3
	} else {
		lx.pos++
	}

	for lx.pos < len(lx.content) {
		c := lx.content[lx.pos]
		if c == '\\' && lx.pos+1 < len(lx.content) {
			// A backslash keeps the next byte from closing the literal
			// even in raw strings.
			lx.pos += 2
			continue
		}
		if c == '\n' && !triple {
			break
		}
		if c == q {
			if !triple {
				lx.pos++
				lx.emit(token.String, start, lx.pos)
				return nil
			}
			if lx.pos+2 < len(lx.content) && lx.content[lx.pos+1] == q && lx.content[lx.pos+2] == q {
				lx.pos += 3
				lx.emit(token.String, start, lx.pos)
				return nil
			}
		}
		lx.pos++
	}
	line, _ := lx.lineColAt(start)
	return fmt.Errorf("lexer: unterminated string literal at line %d", line)
}

func (lx *Lexer) scanNumber() {
	start := lx.pos
	for lx.pos < len(lx.content) {
		c := lx.content[lx.pos]
		if isDigit(c) || isIdentStart(c) || c == '.' || c == '_' {
			lx.pos++
			continue
		}
		// Exponent sign.
		if (c == '+' || c == '-') && lx.pos > start {
			prev := lx.content[lx.pos-1]
			if prev == 'e' || prev == 'E' {
				lx.pos++
				continue
			}
		}
		break
	}
	lx.emit(token.Number, start, lx.pos)
}

var operators = []struct {
	text string
	kind token.Kind
}{
	{"**", token.DoubleStar},
	{"->", token.Arrow},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"//", token.DoubleSlash},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{",", token.Comma},
	{":", token.Colon},
	{".", token.Dot},
	{";", token.Semicolon},
	{"=", token.Assign},
	{"*", token.Star},
	{"@", token.At},
	{"+", token.Plus},
	{"-", token.Minus},
	{"/", token.Slash},
	{"%", token.Percent},
	{"<", token.Lt},
	{">", token.Gt},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
	{"~", token.Tilde},
}

func (lx *Lexer) scanOperator() error {
	rest := lx.content[lx.pos:]
	for _, op := range operators {
		if len(rest) < len(op.text) {
			continue
		}
		if string(rest[:len(op.text)]) != op.text {
			continue
		}
		start := lx.pos
		lx.pos += len(op.text)
		switch op.kind {
		case token.LParen, token.LBracket, token.LBrace:
			lx.depth++
		case token.RParen, token.RBracket, token.RBrace:
			if lx.depth > 0 {
				lx.depth--
			}
		}
		lx.emit(op.kind, start, lx.pos)
		return nil
	}
	line, col := lx.lineColAt(lx.pos)
	return fmt.Errorf("lexer: unexpected character %q at %d:%d", lx.content[lx.pos], line, col)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= utf8.RuneSelf
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isStringPrefix(s []byte) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	for _, c := range s {
		switch c {
		case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		default:
			return false
		}
	}
	return true
}
