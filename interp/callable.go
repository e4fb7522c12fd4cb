package interp

import (
	"fmt"

	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/environment"
	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/object"
)

// Callable is implemented by every value that can appear as the callee
// of a Call expression: user functions, classes (callable to construct
// an instance), bound methods, and built-in natives (spec.md §4.5).
type Callable interface {
	object.Value
	Arity() int
	Call(in *Interpreter, args []object.Value) (object.Value, error)
}

// LoxFunction wraps a Function AST node with the environment it closed
// over at definition time. isInitializer marks a class's "init" method,
// which always returns the bound "this" regardless of its body.
type LoxFunction struct {
	declaration   *ast.Function
	closure       *environment.Environment
	isInitializer bool
}

func newLoxFunction(decl *ast.Function, closure *environment.Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

func (f *LoxFunction) Type() string { return "function" }

func (f *LoxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

func (f *LoxFunction) Arity() int { return len(f.declaration.Params) }

// bind produces a new LoxFunction whose closure is a fresh environment,
// enclosing this function's own closure, with "this" defined as
// instance — the method-binding step from spec.md §4.4.4.
func (f *LoxFunction) bind(instance *LoxInstance) *LoxFunction {
	env := environment.New(f.closure)
	env.Define("this", instance)
	return newLoxFunction(f.declaration, env, f.isInitializer)
}

func (f *LoxFunction) Call(in *Interpreter, args []object.Value) (object.Value, error) {
	callEnv := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.declaration.Body, callEnv)
	if err != nil {
		if ret, ok := err.(returnSignal); ok {
			if f.isInitializer {
				v, _ := f.closure.GetAt(0, "this")
				return v, nil
			}
			return ret.value, nil
		}
		return nil, err
	}

	if f.isInitializer {
		v, _ := f.closure.GetAt(0, "this")
		return v, nil
	}
	return object.Null, nil
}

// LoxClass is both a callable (constructs instances) and a value in its
// own right (can be passed around, compared, printed).
type LoxClass struct {
	name       string
	superclass *LoxClass
	methods    map[string]*LoxFunction
}

func newLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, methods: methods}
}

func (c *LoxClass) Type() string   { return "class" }
func (c *LoxClass) String() string { return c.name }

// findMethod walks the superclass chain looking for name, per spec.md
// §4.4.4's method-binding rule.
func (c *LoxClass) findMethod(name string) (*LoxFunction, bool) {
	if m, ok := c.methods[name]; ok {
		return m, true
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init" if the class (or an ancestor) defines
// one, else 0.
func (c *LoxClass) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *LoxClass) Call(in *Interpreter, args []object.Value) (object.Value, error) {
	instance := newLoxInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// LoxInstance is a runtime object: a class reference plus a mutable
// field map. Fields shadow methods of the same name (spec.md §4.4.4).
type LoxInstance struct {
	class  *LoxClass
	fields map[string]object.Value
}

func newLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: make(map[string]object.Value)}
}

func (i *LoxInstance) Type() string   { return "instance" }
func (i *LoxInstance) String() string { return i.class.name + " instance" }

// get implements property access: fields first, then a method bound to
// this instance, else a runtime error anchored at the property name.
func (i *LoxInstance) get(name lexer.Token) (object.Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.class.findMethod(name.Lexeme); ok {
		return method.bind(i), nil
	}
	return nil, newRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

func (i *LoxInstance) set(name lexer.Token, value object.Value) {
	i.fields[name.Lexeme] = value
}
