/*
File   : loxmix/environment/environment.go

Package environment implements the runtime binding chain the interpreter
builds as it enters and leaves blocks, function calls, and class bodies.
It's modeled directly on original_source/src/Environment.cpp: each frame
holds its own bindings plus a pointer to the enclosing frame, and the
distance-addressed Ancestor/GetAt/AssignAt methods let the interpreter
jump straight to the frame the resolver already determined a reference
belongs to, instead of walking the chain on every access.
*/
package environment

import (
	"fmt"

	"github.com/loxmix-lang/loxmix/object"
)

// Environment is one frame of bindings in the chain. The zero value is
// not usable; construct with New.
type Environment struct {
	enclosing *Environment
	values    map[string]object.Value
}

// New creates a frame. enclosing is nil for the global frame.
func New(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]object.Value)}
}

// Define binds name in this frame, shadowing any binding of the same
// name in an enclosing frame. Redefinition within the same frame is
// permitted (Lox allows "var a = 1; var a = 2;" at global scope).
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get looks up name starting at this frame and walking outward.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign updates an existing binding of name, walking outward to find
// it. It reports false (without creating a new binding) if name is
// undeclared anywhere in the chain, so the caller can raise an
// "Undefined variable" runtime error.
func (e *Environment) Assign(name string, value object.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// Ancestor walks distance frames outward. A distance larger than the
// chain's depth is a resolver/interpreter bug, not a runtime condition,
// so it panics rather than returning an error.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.enclosing == nil {
			panic(fmt.Sprintf("environment: ancestor distance %d exceeds chain depth", distance))
		}
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the frame distance hops out, skipping
// the walk-and-check Get otherwise needs to perform.
func (e *Environment) GetAt(distance int, name string) (object.Value, bool) {
	v, ok := e.Ancestor(distance).values[name]
	return v, ok
}

// AssignAt writes name directly into the frame distance hops out.
func (e *Environment) AssignAt(distance int, name string, value object.Value) {
	e.Ancestor(distance).values[name] = value
}
