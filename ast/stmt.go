package ast

import "github.com/loxmix-lang/loxmix/lexer"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Expression evaluates an expression and discards the result.
type Expression struct {
	Expr Expr
}

// Print evaluates an expression, stringifies it, and writes it followed
// by a newline to the interpreter's stdout sink.
type Print struct {
	Expr Expr
}

// Var declares a new binding in the current scope. Initializer is nil
// when the declaration has no "= value" part, in which case the binding
// starts out Nil.
type Var struct {
	Name        lexer.Token
	Initializer Expr
}

// Block introduces a new lexical scope around a sequence of statements.
type Block struct {
	Statements []Stmt
}

// If is a conditional with an optional else branch.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// While is Lox's only loop construct; "for" is desugared into this by
// the parser, so the AST carries no separate For node.
type While struct {
	Condition Expr
	Body      Stmt
}

// Function declares a named function (or, inside a Class, a method).
type Function struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// Return unwinds out of the nearest enclosing function call. Value is
// nil for a bare "return;", which evaluates to Nil.
type Return struct {
	Keyword lexer.Token
	Value   Expr
}

// Class declares a class, optionally extending a superclass, with a set
// of methods (each itself a Function node).
type Class struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*Function
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
