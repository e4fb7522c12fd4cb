package ast

import (
	"testing"

	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/object"
	"github.com/stretchr/testify/assert"
)

func TestPrintBinaryExpression(t *testing.T) {
	// 1 + 2 * 3
	expr := &Binary{
		Left:     &Literal{Value: object.Number(1)},
		Operator: lexer.Token{Type: lexer.PLUS, Lexeme: "+"},
		Right: &Binary{
			Left:     &Literal{Value: object.Number(2)},
			Operator: lexer.Token{Type: lexer.STAR, Lexeme: "*"},
			Right:    &Literal{Value: object.Number(3)},
		},
	}
	assert.Equal(t, "(+ 1 (* 2 3))", Print(expr))
}

func TestPrintGroupingAndUnary(t *testing.T) {
	expr := &Unary{
		Operator: lexer.Token{Type: lexer.MINUS, Lexeme: "-"},
		Right: &Grouping{
			Expression: &Literal{Value: object.Number(5)},
		},
	}
	assert.Equal(t, "(- (group 5))", Print(expr))
}
