/*
File   : loxmix/ast/expr.go

Package ast defines the node shapes produced by the parser and consumed
by the resolver and interpreter. Each node is an immutable struct; passes
dispatch on the concrete type with a type switch rather than a visitor
interface, since Go's type switches make double-dispatch unnecessary.

A node's pointer identity (the *Expr value itself, since every concrete
type is used through a pointer) is what the resolver's distance table
keys on — see resolvr.Table.
*/
package ast

import (
	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/object"
)

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Literal is a constant value baked into the source: a number, string,
// boolean, or nil.
type Literal struct {
	Value object.Value
}

// Grouping is a parenthesized expression, kept as its own node (rather
// than collapsed away) so error anchors and the ast.Print debug form can
// tell "(1 + 2)" apart from "1 + 2".
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operator application: "!x" or "-x".
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Binary is an infix operator application that always evaluates both
// operands. Logical short-circuiting has its own node, Logical.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Logical is "and"/"or", kept distinct from Binary because only one
// operand may need to be evaluated.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Variable is a read of a named binding.
type Variable struct {
	Name lexer.Token
}

// Assign is a write to a named binding; its value is the assignment's
// result (Lox assignment is an expression).
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Call applies Callee to Arguments. Paren is the closing ')' token, kept
// so runtime errors (arity mismatch, non-callable callee) can anchor
// their line to the call site rather than to the callee expression.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

// Get reads a property (field or bound method) off an instance.
type Get struct {
	Object Expr
	Name   lexer.Token
}

// Set writes a field on an instance.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// This refers to the receiver inside a method body.
type This struct {
	Keyword lexer.Token
}

// Super is a "super.method" reference inside a subclass method body.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
