package parser

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/token"
)

// parseTestList parses expr (',' expr)* and folds multiple entries into
// an unparenthesized tuple.
func (p *Parser) parseTestList() (ast.Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Comma) {
		return first, nil
	}

	tuple := &ast.Tuple{Elts: []ast.Expr{first}, Span: first.ExprSpan()}
	for p.at(token.Comma) {
		p.next()
		if p.exprEnds() {
			tuple.TrailingComma = true
			break
		}
		elt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		tuple.Elts = append(tuple.Elts, elt)
		tuple.Span = tuple.Span.Cover(elt.ExprSpan())
	}
	return tuple, nil
}

func (p *Parser) exprEnds() bool {
	switch p.peek().Kind {
	case token.Newline, token.Comment, token.EOF, token.RParen, token.RBracket,
		token.RBrace, token.Colon, token.Assign, token.Dedent:
		return true
	}
	return false
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseOrTest()
}

func (p *Parser) parseOrTest() (ast.Expr, error) {
	return p.parseBoolChain(token.KwOr, "or", p.parseAndTest)
}

func (p *Parser) parseAndTest() (ast.Expr, error) {
	return p.parseBoolChain(token.KwAnd, "and", p.parseNotTest)
}

// parseBoolChain flattens a chain of identical boolean operators into a
// single BoolOp node so the split rules see the whole chain at once.
func (p *Parser) parseBoolChain(kind token.Kind, op string, sub func() (ast.Expr, error)) (ast.Expr, error) {
	first, err := sub()
	if err != nil {
		return nil, err
	}
	if !p.at(kind) {
		return first, nil
	}
	chain := &ast.BoolOp{Op: op, Values: []ast.Expr{first}, Span: first.ExprSpan()}
	for p.at(kind) {
		p.next()
		value, err := sub()
		if err != nil {
			return nil, err
		}
		chain.Values = append(chain.Values, value)
		chain.Span = chain.Span.Cover(value.ExprSpan())
	}
	return chain, nil
}

func (p *Parser) parseNotTest() (ast.Expr, error) {
	if p.at(token.KwNot) {
		tok := p.next()
		operand, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "not", Operand: operand, Span: tok.Span.Cover(operand.ExprSpan())}, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	var cmp *ast.Compare
	for {
		op, ok := p.compOp()
		if !ok {
			break
		}
		right, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		if cmp == nil {
			cmp = &ast.Compare{Left: left, Span: left.ExprSpan()}
		}
		cmp.Ops = append(cmp.Ops, op)
		cmp.Comparators = append(cmp.Comparators, right)
		cmp.Span = cmp.Span.Cover(right.ExprSpan())
	}
	if cmp != nil {
		return cmp, nil
	}
	return left, nil
}

func (p *Parser) compOp() (string, bool) {
	switch p.peek().Kind {
	case token.Lt, token.Gt, token.EqEq, token.BangEq, token.LtEq, token.GtEq:
		return p.next().Text, true
	case token.KwIn:
		p.next()
		return "in", true
	case token.KwIs:
		p.next()
		if p.at(token.KwNot) {
			p.next()
			return "is not", true
		}
		return "is", true
	case token.KwNot:
		// `not in`; a lone `not` cannot start a comparison operator.
		if p.toks[p.pos+1].Kind == token.KwIn {
			p.next()
			p.next()
			return "not in", true
		}
	}
	return "", false
}

func (p *Parser) parseBitOr() (ast.Expr, error) {
	return p.parseBinChain([]token.Kind{token.Pipe}, p.parseBitXor)
}

func (p *Parser) parseBitXor() (ast.Expr, error) {
	return p.parseBinChain([]token.Kind{token.Caret}, p.parseBitAnd)
}

func (p *Parser) parseBitAnd() (ast.Expr, error) {
	return p.parseBinChain([]token.Kind{token.Amp}, p.parseArith)
}

func (p *Parser) parseArith() (ast.Expr, error) {
	return p.parseBinChain([]token.Kind{token.Plus, token.Minus}, p.parseTerm)
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinChain(
		[]token.Kind{token.Star, token.Slash, token.DoubleSlash, token.Percent, token.At},
		p.parseFactor,
	)
}

func (p *Parser) parseBinChain(kinds []token.Kind, sub func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, kind := range kinds {
			if p.at(kind) {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		op := p.next().Text
		right, err := sub()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{
			Left:  left,
			Op:    op,
			Right: right,
			Span:  left.ExprSpan().Cover(right.ExprSpan()),
		}
	}
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.peek().Kind {
	case token.Plus, token.Minus, token.Tilde:
		tok := p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: tok.Text, Operand: operand, Span: tok.Span.Cover(operand.ExprSpan())}, nil
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (ast.Expr, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.at(token.DoubleStar) {
		p.next()
		exp, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{
			Left:  base,
			Op:    "**",
			Right: exp,
			Span:  base.ExprSpan().Cover(exp.ExprSpan()),
		}, nil
	}
	return base, nil
}

// parsePostfix parses an atom followed by call, subscript and attribute
// trailers.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			expr, err = p.parseCall(expr)
		case token.LBracket:
			expr, err = p.parseSubscript(expr)
		case token.Dot:
			p.next()
			nameTok, nameErr := p.expect(token.Ident, "attribute name")
			if nameErr != nil {
				return nil, nameErr
			}
			expr = &ast.Attribute{
				Value: expr,
				Attr:  nameTok.Text,
				Span:  expr.ExprSpan().Cover(nameTok.Span),
			}
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseCall(fn ast.Expr) (ast.Expr, error) {
	p.next() // (
	call := &ast.Call{Func: fn, Span: fn.ExprSpan()}

	for !p.at(token.RParen) {
		p.skipComments()
		if p.at(token.RParen) {
			break
		}
		switch {
		case p.at(token.DoubleStar):
			p.next()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Keywords = append(call.Keywords, ast.Keyword{Value: value, Span: value.ExprSpan()})

		case p.at(token.Star):
			tok := p.next()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, &ast.Starred{Value: value, Span: tok.Span.Cover(value.ExprSpan())})

		case p.at(token.Ident) && p.toks[p.pos+1].Kind == token.Assign:
			nameTok := p.next()
			p.next() // =
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Keywords = append(call.Keywords, ast.Keyword{
				Name:  nameTok.Text,
				Value: value,
				Span:  nameTok.Span.Cover(value.ExprSpan()),
			})

		default:
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}

		p.skipComments()
		if !p.at(token.Comma) {
			break
		}
		p.next()
		p.skipComments()
		call.TrailingComma = p.at(token.RParen)
	}

	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	call.Span = call.Span.Cover(closeTok.Span)
	return call, nil
}

func (p *Parser) parseSubscript(value ast.Expr) (ast.Expr, error) {
	p.next() // [
	index, err := p.parseTestList()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RBracket, "']'")
	if err != nil {
		return nil, err
	}
	return &ast.Subscript{
		Value: value,
		Index: index,
		Span:  value.ExprSpan().Cover(closeTok.Span),
	}, nil
}

// skipComments drops comments that appear between bracketed elements.
// Their placement is not preserved; the owning statement keeps its own
// comments.
func (p *Parser) skipComments() {
	for p.at(token.Comment) {
		p.next()
	}
}
