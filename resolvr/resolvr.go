/*
File   : loxmix/resolvr/resolvr.go

Package resolvr is a static analysis pass that runs between parsing and
evaluation. It walks the AST once, maintaining a stack of lexical scopes
that mirrors the Environment chain the interpreter will build at runtime,
and records how many enclosing scopes separate every variable/this/super
reference from the scope that declares it. The interpreter uses that
distance to jump straight to the right Environment frame instead of
searching scope-by-scope at every access, which is what makes closures
over reassigned variables behave correctly (spec.md §4.3).

It also doubles as a second error-checking pass, ground on
original_source/src/Resolver.cpp: it catches return-outside-function,
this/super-outside-class, and self-referential initializers, none of
which the parser or evaluator are positioned to catch on their own.
*/
package resolvr

import (
	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/diag"
	"github.com/loxmix-lang/loxmix/lexer"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Table maps a resolved Variable/Assign/This/Super node to the number of
// environment hops between the scope it's used in and the scope that
// declares it. A node absent from the table is global and should be
// looked up directly in Interpreter.Globals.
type Table map[ast.Expr]int

// Resolver performs the static resolution pass described above.
type Resolver struct {
	scopes  []map[string]bool
	locals  Table
	diags   []diag.Diagnostic
	currFn  functionType
	currCls classType
}

// New creates a Resolver ready to walk a parsed program.
func New() *Resolver {
	return &Resolver{locals: make(Table)}
}

// Resolve walks every top-level statement and returns the distance table
// together with any diagnostics produced along the way.
func Resolve(stmts []ast.Stmt) (Table, []diag.Diagnostic) {
	r := New()
	r.resolveStmts(stmts)
	return r.locals, r.diags
}

func (r *Resolver) errorAt(tok lexer.Token, message string) {
	r.diags = append(r.diags, diag.AtLexeme(tok.Line, tok.Lexeme, message))
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope, marked not-yet-ready, so a
// later reference to itself in its own initializer can be rejected.
func (r *Resolver) declare(name lexer.Token) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	if _, ok := scope[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized and ready to be resolved
// against.
func (r *Resolver) define(name lexer.Token) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	scope[name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward, recording
// the hop distance at the first scope that declares name. No match means
// the binding is global and nothing is recorded.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
