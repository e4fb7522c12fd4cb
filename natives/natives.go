/*
File   : loxmix/natives/natives.go

Package natives provides the handful of built-in LoxCallable values that
aren't expressible in Lox itself. spec.md §4.5 names "clock()" as the
one optional native; Install binds it (and any future native) into the
global environment before a program runs, when the caller enables it.

There's no third-party clock/time library anywhere in the example pack
to ground this on — every repo that reads wall-clock time reaches for
the standard "time" package, so clock() stays on the standard library
rather than inventing a dependency nothing in the corpus actually uses.
*/
package natives

import (
	"time"

	"github.com/loxmix-lang/loxmix/environment"
	"github.com/loxmix-lang/loxmix/interp"
	"github.com/loxmix-lang/loxmix/object"
)

// clockFn is a zero-argument native returning wall-clock seconds as a
// Lox number.
type clockFn struct{}

func (clockFn) Type() string   { return "native" }
func (clockFn) String() string { return "<native fn>" }
func (clockFn) Arity() int     { return 0 }

func (clockFn) Call(_ *interp.Interpreter, _ []object.Value) (object.Value, error) {
	return object.Number(float64(time.Now().UnixNano()) / 1e9), nil
}

// Install binds every native function into env under its Lox-visible
// name.
func Install(env *environment.Environment) {
	env.Define("clock", clockFn{})
}
