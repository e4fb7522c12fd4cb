/*
File   : loxmix/parser/parser.go

Package parser implements a recursive-descent, precedence-climbing
parser for Lox. It turns a token stream into an ordered list of
statements, collecting diagnostics instead of aborting on the first
syntax error so a single invocation can report as many problems as
possible (spec.md §4.2).
*/
package parser

import (
	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/diag"
	"github.com/loxmix-lang/loxmix/lexer"
)

// Parser holds the token stream and the cursor into it, plus the
// diagnostics accumulated so far.
type Parser struct {
	tokens  []lexer.Token
	current int
	diags   []diag.Diagnostic
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the entire token stream and returns the top-level
// statements parsed, plus any diagnostics. A statement that failed to
// parse contributes nothing to the result slice (it is dropped after
// synchronizing), but parsing continues with whatever follows.
func (p *Parser) Parse() ([]ast.Stmt, []diag.Diagnostic) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.diags
}

// --- token cursor helpers ---

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.END_OF_FILE
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances past the current token if it has any of the given
// types, reporting whether it did.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the expected type, or records a
// diagnostic anchored at the offending token and returns an error.
func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

// errorAt records a diagnostic anchored at tok and returns it as an
// error, so call sites can both report and bail out of the current
// production in one step.
func (p *Parser) errorAt(tok lexer.Token, message string) error {
	var d diag.Diagnostic
	if tok.Type == lexer.END_OF_FILE {
		d = diag.AtEnd(tok.Line, message)
	} else {
		d = diag.AtLexeme(tok.Line, tok.Lexeme, message)
	}
	p.diags = append(p.diags, d)
	return d
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so one syntax error doesn't cascade into a wall of spurious
// follow-on errors. It stops before a statement keyword (including one
// that is the offending token itself) or right after a ';'.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR,
			lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		if p.advance().Type == lexer.SEMICOLON {
			return
		}
	}
}
