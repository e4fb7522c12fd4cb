/*
File   : loxmix/interp/interp.go

Package interp is the tree-walking evaluator: the last stage of the
pipeline, executing a resolved statement list against an environment
chain (spec.md §4.4). It threads object.Value throughout, dispatches on
AST node type with a plain Go type switch (no visitor/Accept machinery,
per spec.md §9's redesign note), and distinguishes "return" from a
runtime error using two different Go error types caught at different
points in the call stack.
*/
package interp

import (
	"io"
	"os"

	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/environment"
	"github.com/loxmix-lang/loxmix/object"
	"github.com/loxmix-lang/loxmix/resolvr"
)

// Interpreter holds the global environment (never replaced), the
// current environment (swapped as blocks/calls are entered and left),
// the resolver's distance table for the program currently running, and
// the stdout sink Print statements write to.
type Interpreter struct {
	Globals *environment.Environment
	current *environment.Environment
	locals  resolvr.Table
	Out     io.Writer
}

// New creates an Interpreter with an empty global environment and every
// native bound in by natives.Install (done by the caller, typically
// lox.Run, so natives stays an independent, optional package).
func New() *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{Globals: globals, current: globals, Out: os.Stdout}
}

// Interpret runs stmts (already resolved, with locals as the resolver's
// distance table) to completion or the first runtime error.
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals resolvr.Table) error {
	in.locals = locals
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		io.WriteString(in.Out, stringify(v)+"\n")
		return nil

	case *ast.Var:
		value := object.Value(object.Null)
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.current.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Statements, environment.New(in.current))

	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if object.Truthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !object.Truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := newLoxFunction(s, in.current, false)
		in.current.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		value := object.Value(object.Null)
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	case *ast.Class:
		return in.executeClass(s)
	}
	return nil
}

// executeBlock runs statements against env, restoring the previous
// current environment on every exit path — normal completion, a
// returnSignal, or a runtime error (spec.md §4.4.1 and §5).
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := in.current
	in.current = env
	defer func() { in.current = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *LoxClass
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.current.Define(s.Name.Lexeme, object.Null)

	methodEnv := in.current
	if superclass != nil {
		methodEnv = environment.New(in.current)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = newLoxFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := newLoxClass(s.Name.Lexeme, superclass, methods)
	in.current.Assign(s.Name.Lexeme, class)
	return nil
}

// stringify renders a runtime value for "print" and REPL echoing,
// per spec.md §4.4.3.
func stringify(v object.Value) string {
	return v.String()
}
