package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/parser"
	"github.com/loxmix-lang/loxmix/resolvr"
)

// run scans, parses, resolves, and interprets source against a fresh
// Interpreter, failing the test immediately on any compile error so
// each case below can assert only on runtime behavior.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source).ScanTokens()
	require.Empty(t, scanErrs)

	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)

	locals, resolveErrs := resolvr.Resolve(stmts)
	require.Empty(t, resolveErrs)

	in := New()
	var out strings.Builder
	in.Out = &out
	err := in.Interpret(stmts, locals)
	return out.String(), err
}

func TestBareReturnFromOrdinaryFunctionYieldsNil(t *testing.T) {
	out, err := run(t, `fun f() { return; } print f();`)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestReturnWithValueFromOrdinaryFunctionYieldsThatValue(t *testing.T) {
	out, err := run(t, `fun f() { return 42; } print f();`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestBareReturnFromInitializerYieldsBoundThis(t *testing.T) {
	out, err := run(t, `class Foo { init() { return; } } print Foo();`)
	require.NoError(t, err)
	assert.Equal(t, "Foo instance\n", out)
}

func TestFallingOffInitializerBodyYieldsBoundThisToo(t *testing.T) {
	out, err := run(t, `class Foo { init() { var x = 1; } } print Foo();`)
	require.NoError(t, err)
	assert.Equal(t, "Foo instance\n", out)
}

func TestFindMethodWalksSuperclassChainAcrossMultipleLevels(t *testing.T) {
	source := `
		class Grandparent { greet() { print "grandparent"; } }
		class Parent < Grandparent {}
		class Child < Parent {}
		Child().greet();
	`
	out, err := run(t, source)
	require.NoError(t, err)
	assert.Equal(t, "grandparent\n", out)
}

func TestFindMethodPrefersNearestOverride(t *testing.T) {
	source := `
		class Grandparent { greet() { print "grandparent"; } }
		class Parent < Grandparent { greet() { print "parent"; } }
		class Child < Parent {}
		Child().greet();
	`
	out, err := run(t, source)
	require.NoError(t, err)
	assert.Equal(t, "parent\n", out)
}

func TestFieldShadowsMethodOfSameName(t *testing.T) {
	source := `
		class Box { contents() { return "method"; } }
		var b = Box();
		b.contents = "field";
		print b.contents;
	`
	out, err := run(t, source)
	require.NoError(t, err)
	assert.Equal(t, "field\n", out)
}

func TestMethodWithoutFieldIsReachableAfterShadowRemains(t *testing.T) {
	// A field on one instance never shadows the method on another, since
	// fields live per-instance while methods live on the shared class.
	source := `
		class Box { contents() { return "method"; } }
		var a = Box();
		var b = Box();
		a.contents = "field";
		print b.contents();
	`
	out, err := run(t, source)
	require.NoError(t, err)
	assert.Equal(t, "method\n", out)
}

func TestUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, err := run(t, `class Box {} print Box().missing;`)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rerr.Message, "Undefined property 'missing'.")
}

func TestCallArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rerr.Message, "Expected 2 arguments but got 1.")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rerr.Message, "Can only call functions and classes.")
}

func TestBoundMethodClosesOverItsOwnInstance(t *testing.T) {
	// Binding a method into a variable must keep it anchored to the
	// instance it was pulled off, independent of any later rebinding.
	source := `
		class Counter {
			init() { this.n = 0; }
			bump() { this.n = this.n + 1; return this.n; }
		}
		var c1 = Counter();
		var c2 = Counter();
		var bump1 = c1.bump;
		print bump1();
		print bump1();
		print c2.bump();
	`
	out, err := run(t, source)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestSuperDispatchBindsToOriginalThisNotSuperclass(t *testing.T) {
	source := `
		class A {
			who() { return "A"; }
			describe() { print this.who(); }
		}
		class B < A {
			who() { return "B"; }
			describe() { super.describe(); }
		}
		B().describe();
	`
	out, err := run(t, source)
	require.NoError(t, err)
	// super.describe() runs A's describe body, but "this" still resolves
	// to the B instance, so this.who() dispatches dynamically back to B.
	assert.Equal(t, "B\n", out)
}
