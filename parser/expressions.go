package parser

import (
	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/object"
)

var trueLiteral object.Value = object.Bool(true)

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses the LHS as an ordinary expression; if it's followed
// by '=' the LHS must be a Variable (-> Assign) or a Get (-> Set).
// Anything else is a non-fatal "Invalid assignment target." diagnostic —
// the LHS expression is returned unchanged and parsing continues,
// matching spec.md §4.2.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr, nil
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, lexer.BANG_EQUAL, lexer.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, lexer.MINUS, lexer.PLUS)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, lexer.SLASH, lexer.STAR)
}

// leftAssocBinary implements the common "operand (op operand)*" shape
// shared by equality/comparison/term/factor, parameterized by the next
// tighter-precedence production and the set of operators at this level.
func (p *Parser) leftAssocBinary(operand func() (ast.Expr, error), types ...lexer.TokenType) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(types...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.DOT):
			name, err := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: object.Bool(false)}, nil
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: object.Bool(true)}, nil
	case p.match(lexer.NIL):
		return &ast.Literal{Value: object.Null}, nil
	case p.match(lexer.NUMBER):
		return &ast.Literal{Value: object.Number(p.previous().Literal.(float64))}, nil
	case p.match(lexer.STRING):
		return &ast.Literal{Value: object.String(p.previous().Literal.(string))}, nil
	case p.match(lexer.SUPER):
		keyword := p.previous()
		if _, err := p.consume(lexer.DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}
	return nil, p.errorAt(p.peek(), "Expect expression.")
}
