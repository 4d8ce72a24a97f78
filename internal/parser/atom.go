package parser

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/source"
	"github.com/jgberry/ruff/internal/token"
)

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.next()
		return &ast.Name{Ident: tok.Text, Span: tok.Span}, nil

	case token.Number:
		p.next()
		return &ast.Number{Text: tok.Text, Span: tok.Span}, nil

	case token.String:
		return p.parseString()

	case token.LParen:
		return p.parseParenthesized()

	case token.LBracket:
		return p.parseList()

	case token.LBrace:
		return p.parseDictOrSet()

	case token.Star:
		p.next()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Starred{Value: value, Span: tok.Span.Cover(value.ExprSpan())}, nil

	default:
		return nil, p.errorf("expected expression, found %q", tok.Text)
	}
}

// parseString collects adjacent literal tokens into one implicitly
// concatenated String node.
func (p *Parser) parseString() (ast.Expr, error) {
	first := p.next()
	str := &ast.String{
		Parts: []ast.StringPart{{Text: first.Text, Span: first.Span}},
		Span:  first.Span,
	}
	for p.at(token.String) {
		tok := p.next()
		str.Parts = append(str.Parts, ast.StringPart{Text: tok.Text, Span: tok.Span})
		str.Span = str.Span.Cover(tok.Span)
	}
	return str, nil
}

func (p *Parser) parseParenthesized() (ast.Expr, error) {
	open := p.next() // (
	p.skipComments()

	if p.at(token.RParen) {
		closeTok := p.next()
		return &ast.Tuple{Parenthesized: true, Span: open.Span.Cover(closeTok.Span)}, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.skipComments()
	if !p.at(token.Comma) {
		closeTok, err := p.expect(token.RParen, "')'")
		if err != nil {
			return nil, err
		}
		// Grouping parentheses only; the formatter re-derives them from
		// layout, so they are not recorded on the inner expression.
		_ = closeTok
		return first, nil
	}

	tuple := &ast.Tuple{Elts: []ast.Expr{first}, Parenthesized: true, Span: open.Span}
	for p.at(token.Comma) {
		p.next()
		p.skipComments()
		if p.at(token.RParen) {
			tuple.TrailingComma = true
			break
		}
		elt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		tuple.Elts = append(tuple.Elts, elt)
		p.skipComments()
	}
	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	// A single-element tuple keeps its flag even without a closing comma
	// before ')': `(x,)` sets TrailingComma above.
	tuple.Span = tuple.Span.Cover(closeTok.Span)
	return tuple, nil
}

func (p *Parser) parseList() (ast.Expr, error) {
	open := p.next() // [
	list := &ast.List{Span: open.Span}

	elts, trailing, closeSpan, err := p.parseBracketed(token.RBracket, "']'")
	if err != nil {
		return nil, err
	}
	list.Elts = elts
	list.TrailingComma = trailing
	list.Span = list.Span.Cover(closeSpan)
	return list, nil
}

func (p *Parser) parseDictOrSet() (ast.Expr, error) {
	open := p.next() // {
	p.skipComments()

	if p.at(token.RBrace) {
		closeTok := p.next()
		return &ast.Dict{Span: open.Span.Cover(closeTok.Span)}, nil
	}

	// Distinguish dict from set by the first entry.
	if p.at(token.DoubleStar) {
		return p.parseDict(open.Span, nil, nil)
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.at(token.Colon) {
		p.next()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.parseDict(open.Span, first, value)
	}

	set := &ast.Set{Elts: []ast.Expr{first}, Span: open.Span}
	for p.at(token.Comma) {
		p.next()
		p.skipComments()
		if p.at(token.RBrace) {
			set.TrailingComma = true
			break
		}
		elt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		set.Elts = append(set.Elts, elt)
		p.skipComments()
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	set.Span = set.Span.Cover(closeTok.Span)
	return set, nil
}

// parseDict continues a dict display after its first entry (which may be
// nil when the display opens with an unpacking entry).
func (p *Parser) parseDict(openSpan source.Span, firstKey, firstValue ast.Expr) (ast.Expr, error) {
	dict := &ast.Dict{Span: openSpan}
	if firstValue != nil || firstKey != nil {
		dict.Keys = append(dict.Keys, firstKey)
		dict.Values = append(dict.Values, firstValue)
	}

	for {
		p.skipComments()
		if len(dict.Keys) > 0 {
			if !p.at(token.Comma) {
				break
			}
			p.next()
			p.skipComments()
			if p.at(token.RBrace) {
				dict.TrailingComma = true
				break
			}
		}

		if p.at(token.DoubleStar) {
			p.next()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			dict.Keys = append(dict.Keys, nil)
			dict.Values = append(dict.Values, value)
			continue
		}

		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "':'"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		dict.Keys = append(dict.Keys, key)
		dict.Values = append(dict.Values, value)
	}

	closeTok, err := p.expect(token.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	dict.Span = dict.Span.Cover(closeTok.Span)
	return dict, nil
}

// parseBracketed parses comma-separated expressions up to close,
// reporting whether a trailing comma preceded the closing bracket.
func (p *Parser) parseBracketed(close token.Kind, what string) ([]ast.Expr, bool, source.Span, error) {
	var elts []ast.Expr
	trailing := false

	for {
		p.skipComments()
		if p.at(close) {
			break
		}
		elt, err := p.parseExpr()
		if err != nil {
			return nil, false, source.Span{}, err
		}
		elts = append(elts, elt)

		p.skipComments()
		if !p.at(token.Comma) {
			break
		}
		p.next()
		p.skipComments()
		trailing = p.at(close)
	}

	closeTok, err := p.expect(close, what)
	if err != nil {
		return nil, false, source.Span{}, err
	}
	return elts, trailing, closeTok.Span, nil
}
