package parser

import (
	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/lexer"
)

// declaration parses a class/function/variable declaration, falling
// back to an ordinary statement. On error it synchronizes and reports
// no statement for this iteration, so the caller's loop just moves on.
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	var err error

	switch {
	case p.match(lexer.CLASS):
		stmt, err = p.classDeclaration()
	case p.match(lexer.FUN):
		stmt, err = p.function("function")
	case p.match(lexer.VAR):
		stmt, err = p.varDeclaration()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		if _, err := p.consume(lexer.IDENTIFIER, "Expect superclass name."); err != nil {
			return nil, err
		}
		superclass = &ast.Variable{Name: p.previous()}
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		m, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, m.(*ast.Function))
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}, nil
}

// function parses "IDENT ( params? ) block" — used for both top-level
// "fun" declarations and methods inside a class body, distinguished only
// by the diagnostic wording (kind is "function" or "method").
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}
