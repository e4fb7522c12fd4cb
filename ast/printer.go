package ast

import "strings"

// Print renders an expression tree as a parenthesized debug form, e.g.
// "1 + 2 * 3" prints as "(+ 1 (* 2 3))". It exists for debugging (wired
// into the CLI behind a hidden --print-ast flag) and is never part of
// the interpreter's documented output contract.
func Print(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		b.WriteString(n.Value.String())
	case *Grouping:
		parenthesize(b, "group", n.Expression)
	case *Unary:
		parenthesize(b, n.Operator.Lexeme, n.Right)
	case *Binary:
		parenthesize(b, n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		parenthesize(b, n.Operator.Lexeme, n.Left, n.Right)
	case *Variable:
		b.WriteString(n.Name.Lexeme)
	case *Assign:
		parenthesize(b, "= "+n.Name.Lexeme, n.Value)
	case *Call:
		parenthesize(b, "call", append([]Expr{n.Callee}, n.Arguments...)...)
	case *Get:
		parenthesize(b, "get ."+n.Name.Lexeme, n.Object)
	case *Set:
		parenthesize(b, "set ."+n.Name.Lexeme, n.Object, n.Value)
	case *This:
		b.WriteString("this")
	case *Super:
		b.WriteString("(super." + n.Method.Lexeme + ")")
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		printExpr(b, e)
	}
	b.WriteString(")")
}
