package parser

import (
	"github.com/jgberry/ruff/internal/ast"
	"github.com/jgberry/ruff/internal/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.peek().Kind {
	case token.KwDef:
		return p.parseFunctionDef()
	case token.KwWith:
		return p.parseWith()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwPass:
		return p.parsePass()
	default:
		return p.parseExprOrAssign()
	}
}

func (p *Parser) parseFunctionDef() (ast.Stmt, error) {
	fn := &ast.FunctionDef{}
	p.beginStmt(&fn.Meta)
	p.next() // def

	nameTok, err := p.expect(token.Ident, "function name")
	if err != nil {
		return nil, err
	}
	fn.Name = nameTok.Text

	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	fn.Params, fn.ParamsTrailingComma, err = p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}

	if p.at(token.Arrow) {
		p.next()
		fn.Returns, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	fn.Body, err = p.parseSuite(&fn.Meta)
	return fn, err
}

func (p *Parser) parseParams() ([]ast.Param, bool, error) {
	var params []ast.Param
	trailing := false

	for !p.at(token.RParen) {
		var param ast.Param
		switch p.peek().Kind {
		case token.Star:
			p.next()
			param.Star = "*"
		case token.DoubleStar:
			p.next()
			param.Star = "**"
		}

		if p.at(token.Ident) {
			param.Name = p.next().Text
			if p.at(token.Colon) {
				p.next()
				ann, err := p.parseExpr()
				if err != nil {
					return nil, false, err
				}
				param.Annotation = ann
			}
			if p.at(token.Assign) {
				p.next()
				def, err := p.parseExpr()
				if err != nil {
					return nil, false, err
				}
				param.Default = def
			}
		} else if param.Star == "" {
			return nil, false, p.errorf("expected parameter name, found %q", p.peek().Text)
		}
		params = append(params, param)

		if !p.at(token.Comma) {
			break
		}
		p.next()
		trailing = p.at(token.RParen)
	}
	return params, trailing, nil
}

func (p *Parser) parseWith() (ast.Stmt, error) {
	w := &ast.With{}
	p.beginStmt(&w.Meta)
	p.next() // with

	// A parenthesized item list allows a magic trailing comma; detect it
	// by checking that the parenthesis encloses `expr as var`-style items
	// rather than a single parenthesized expression.
	if p.at(token.LParen) {
		save := p.pos
		p.next()
		items, trailing, err := p.parseWithItems(true)
		if err == nil && p.at(token.RParen) {
			p.next()
			if p.at(token.Colon) {
				w.Items = items
				w.Parenthesized = true
				w.TrailingComma = trailing
				body, err := p.parseSuite(&w.Meta)
				w.Body = body
				return w, err
			}
		}
		p.pos = save
	}

	items, _, err := p.parseWithItems(false)
	if err != nil {
		return nil, err
	}
	w.Items = items
	w.Body, err = p.parseSuite(&w.Meta)
	return w, err
}

func (p *Parser) parseWithItems(parenthesized bool) ([]ast.WithItem, bool, error) {
	var items []ast.WithItem
	trailing := false
	for {
		ctx, err := p.parseExpr()
		if err != nil {
			return nil, false, err
		}
		item := ast.WithItem{Context: ctx}
		if p.at(token.KwAs) {
			p.next()
			v, err := p.parseExpr()
			if err != nil {
				return nil, false, err
			}
			item.Var = v
		}
		items = append(items, item)

		if !p.at(token.Comma) {
			break
		}
		p.next()
		if parenthesized && p.at(token.RParen) {
			trailing = true
			break
		}
	}
	return items, trailing, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	ret := &ast.Return{}
	p.beginStmt(&ret.Meta)
	p.next() // return

	if !p.at(token.Newline) && !p.at(token.Comment) && !p.at(token.EOF) {
		value, err := p.parseTestList()
		if err != nil {
			return nil, err
		}
		ret.Value = value
	}
	return ret, p.endStmt(&ret.Meta)
}

func (p *Parser) parsePass() (ast.Stmt, error) {
	pass := &ast.Pass{}
	p.beginStmt(&pass.Meta)
	p.next()
	return pass, p.endStmt(&pass.Meta)
}

func (p *Parser) parseExprOrAssign() (ast.Stmt, error) {
	var meta ast.Meta
	p.beginStmt(&meta)

	first, err := p.parseTestList()
	if err != nil {
		return nil, err
	}

	if !p.at(token.Assign) {
		stmt := &ast.ExprStmt{Meta: meta, Value: first}
		return stmt, p.endStmt(&stmt.Meta)
	}

	assign := &ast.Assign{Meta: meta, Targets: []ast.Expr{first}}
	for p.at(token.Assign) {
		p.next()
		value, err := p.parseTestList()
		if err != nil {
			return nil, err
		}
		assign.Targets = append(assign.Targets, value)
	}
	// The last parsed expression is the assigned value.
	assign.Value = assign.Targets[len(assign.Targets)-1]
	assign.Targets = assign.Targets[:len(assign.Targets)-1]
	return assign, p.endStmt(&assign.Meta)
}

// parseSuite parses `: stmt` on one line or an indented block.
func (p *Parser) parseSuite(meta *ast.Meta) ([]ast.Stmt, error) {
	if _, err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}

	// Inline suite: `def f(): pass`.
	if !p.at(token.Newline) && !p.at(token.Comment) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{stmt}, nil
	}

	if p.at(token.Comment) {
		tok := p.next()
		meta.Trailing = append(meta.Trailing, ast.Comment{Text: tok.Text, Span: tok.Span})
	}
	if _, err := p.expect(token.Newline, "newline"); err != nil {
		return nil, err
	}
	p.collectComments()
	if _, err := p.expect(token.Indent, "indented block"); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for {
		p.collectComments()
		if p.at(token.Dedent) || p.at(token.EOF) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	// Comments on their own lines after the last statement keep their
	// own lines inside the suite.
	meta.Dangling = append(meta.Dangling, p.takeComments()...)
	p.pendingBlank = 0
	if p.at(token.Dedent) {
		p.next()
	}
	return body, nil
}
