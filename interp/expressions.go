package interp

import (
	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/object"
)

func (in *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		return in.lookupVariable(e.Name, e)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.current.AssignAt(distance, e.Name.Lexeme, value)
		} else if !in.Globals.Assign(e.Name.Lexeme, value) {
			return nil, newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*LoxInstance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have properties.")
		}
		return instance.get(e.Name)

	case *ast.Set:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*LoxInstance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have fields.")
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		instance.set(e.Name, value)
		return value, nil

	case *ast.This:
		return in.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return in.evalSuper(e)
	}
	return object.Null, nil
}

func (in *Interpreter) lookupVariable(name lexer.Token, expr ast.Expr) (object.Value, error) {
	if distance, ok := in.locals[expr]; ok {
		if v, ok := in.current.GetAt(distance, name.Lexeme); ok {
			return v, nil
		}
	} else if v, ok := in.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

func (in *Interpreter) evalUnary(e *ast.Unary) (object.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.BANG:
		return object.Bool(!object.Truthy(right)), nil
	case lexer.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	}
	return object.Null, nil
}

func (in *Interpreter) evalLogical(e *ast.Logical) (object.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if object.Truthy(left) {
			return left, nil
		}
	} else {
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (object.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS, lexer.SLASH, lexer.STAR:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case lexer.MINUS:
			return ln - rn, nil
		case lexer.SLASH:
			return ln / rn, nil
		case lexer.STAR:
			return ln * rn, nil
		}

	case lexer.PLUS:
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(object.String); ok {
			if rs, ok := right.(object.String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case lexer.GREATER:
			return object.Bool(ln > rn), nil
		case lexer.GREATER_EQUAL:
			return object.Bool(ln >= rn), nil
		case lexer.LESS:
			return object.Bool(ln < rn), nil
		case lexer.LESS_EQUAL:
			return object.Bool(ln <= rn), nil
		}

	case lexer.BANG_EQUAL:
		return object.Bool(!object.Equal(left, right)), nil
	case lexer.EQUAL_EQUAL:
		return object.Bool(object.Equal(left, right)), nil
	}
	return object.Null, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (object.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.Super) (object.Value, error) {
	distance := in.locals[e]
	superVal, _ := in.current.GetAt(distance, "super")
	superclass := superVal.(*LoxClass)

	instVal, _ := in.current.GetAt(distance-1, "this")
	instance := instVal.(*LoxInstance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(instance), nil
}
