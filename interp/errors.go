package interp

import (
	"fmt"

	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/object"
)

// RuntimeError carries the token execution was at when a Lox-level
// runtime problem was detected, so the driver can report the offending
// line without threading line numbers through every evaluate call.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(tok lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is the non-error control-flow value a "return" statement
// unwinds the call stack with. It is caught exactly once, at the
// LoxFunction.Call boundary, and must never reach the top-level
// interpret loop — spec.md §5 and §7 require return and runtime errors
// to be distinguishable all the way up.
type returnSignal struct {
	value object.Value
}

func (returnSignal) Error() string {
	return "return outside of function (interpreter bug)"
}
