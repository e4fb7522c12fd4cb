/*
File   : loxmix/lox/lox.go

Package lox is the pipeline façade: it threads one chunk of source text
through Scanner -> Parser -> Resolver -> Interpreter, applying spec.md
§7's short-circuit rule at each boundary (a stage with errors stops the
line from reaching the next one) and returning a Result the caller can
render however its surface (REPL vs batch file) needs.
*/
package lox

import (
	"io"
	"os"

	"github.com/loxmix-lang/loxmix/diag"
	"github.com/loxmix-lang/loxmix/interp"
	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/natives"
	"github.com/loxmix-lang/loxmix/parser"
	"github.com/loxmix-lang/loxmix/resolvr"
)

// Result reports what happened running one chunk of source: any
// compile diagnostics (scanner, parser, or resolver), any runtime
// error, and whether compilation reached the point of attempting
// execution at all.
type Result struct {
	Diagnostics  []diag.Diagnostic
	RuntimeError *interp.RuntimeError
}

// HadError is true when compilation failed before execution could even
// begin — the exit-65 case from spec.md §6.
func (r Result) HadError() bool { return len(r.Diagnostics) > 0 }

// HadRuntimeError is true when execution started but a Lox-level
// runtime error unwound it — the exit-70 case from spec.md §6.
func (r Result) HadRuntimeError() bool { return r.RuntimeError != nil }

// Runner holds the interpreter state that persists across multiple Run
// calls within one REPL session (globals, defined functions/classes),
// while keeping compile diagnostics scoped to each individual call.
type Runner struct {
	interp *interp.Interpreter
}

// NewRunner creates a Runner with a fresh global environment. Natives
// are installed only when enableClock is true (config.Config's
// "enable_clock" knob, the one native the CLI lets a user gate).
func NewRunner(out io.Writer, enableClock bool) *Runner {
	in := interp.New()
	if out != nil {
		in.Out = out
	}
	if enableClock {
		natives.Install(in.Globals)
	}
	return &Runner{interp: in}
}

// Run scans, parses, resolves, and (if those all succeed) executes
// source against the Runner's persistent environment.
func (r *Runner) Run(source string) Result {
	tokens, scanErrs := lexer.New(source).ScanTokens()

	stmts, parseErrs := parser.New(tokens).Parse()

	var diags []diag.Diagnostic
	diags = append(diags, scanErrs...)
	diags = append(diags, parseErrs...)
	if len(diags) > 0 {
		return Result{Diagnostics: diags}
	}

	locals, resolveErrs := resolvr.Resolve(stmts)
	if len(resolveErrs) > 0 {
		return Result{Diagnostics: resolveErrs}
	}

	if err := r.interp.Interpret(stmts, locals); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			return Result{RuntimeError: rerr}
		}
		// A returnSignal escaping every call boundary would mean
		// "return" was used outside a function, which the resolver
		// already rejects as a compile error — so this path is
		// unreachable for well-resolved programs.
		return Result{RuntimeError: &interp.RuntimeError{Message: err.Error()}}
	}
	return Result{}
}

// Run is the one-shot convenience form used for batch-mode file
// execution, where no state needs to persist past a single call.
func Run(source string, enableClock bool) Result {
	return NewRunner(os.Stdout, enableClock).Run(source)
}
