package lox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, source string) (string, Result) {
	t.Helper()
	var out strings.Builder
	result := NewRunner(&out, true).Run(source)
	return out.String(), result
}

func TestScenarioArithmeticAddition(t *testing.T) {
	out, result := run(t, `var a = 1; var b = 2; print a + b;`)
	require.False(t, result.HadError())
	assert.Equal(t, "3\n", out)
}

func TestScenarioStringConcatenation(t *testing.T) {
	out, result := run(t, `var a = "hi "; var b = "there"; print a + b;`)
	require.False(t, result.HadError())
	assert.Equal(t, "hi there\n", out)
}

func TestScenarioClosureCounter(t *testing.T) {
	source := `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var c = makeCounter();
		c(); c(); c();
	`
	out, result := run(t, source)
	require.False(t, result.HadError())
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestScenarioClassFieldsAndThis(t *testing.T) {
	source := `
		class Cake {
			taste() {
				var adjective = "delicious";
				print "The " + this.flavor + " cake is " + adjective + "!";
			}
		}
		var cake = Cake();
		cake.flavor = "German chocolate";
		cake.taste();
	`
	out, result := run(t, source)
	require.False(t, result.HadError())
	assert.Equal(t, "The German chocolate cake is delicious!\n", out)
}

func TestScenarioSuperDispatch(t *testing.T) {
	source := `
		class A {
			method() {
				print "A";
			}
		}
		class B < A {
			method() {
				print "B";
				super.method();
			}
		}
		class C < B {}
		C().method();
	`
	out, result := run(t, source)
	require.False(t, result.HadError())
	assert.Equal(t, "B\nA\n", out)
}

func TestScenarioResolverLexicalDistance(t *testing.T) {
	source := `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
	`
	out, result := run(t, source)
	require.False(t, result.HadError())
	assert.Equal(t, "global\nglobal\n", out)
}

func TestScenarioPlusOnMixedTypesIsRuntimeError(t *testing.T) {
	_, result := run(t, `print "1" + 2;`)
	require.True(t, result.HadRuntimeError())
	assert.Contains(t, result.RuntimeError.Error(), "Operands must be two numbers or two strings.")
}

func TestScenarioBareReturnYieldsNil(t *testing.T) {
	out, result := run(t, `fun f() { return; } print f();`)
	require.False(t, result.HadError())
	assert.Equal(t, "nil\n", out)
}

func TestScenarioBareReturnInInitializerYieldsInstance(t *testing.T) {
	out, result := run(t, `class Foo { init() { return; } } print Foo();`)
	require.False(t, result.HadError())
	assert.Equal(t, "Foo instance\n", out)
}

func TestScenarioReturnValueInInitializerIsCompileError(t *testing.T) {
	_, result := run(t, `class Foo { init() { return 1; } }`)
	require.True(t, result.HadError())
	assert.Contains(t, result.Diagnostics[0].Format(), "Can't return a value from an initializer.")
}

func TestEnableClockFalseOmitsNativeClock(t *testing.T) {
	var out strings.Builder
	result := NewRunner(&out, false).Run(`print clock;`)
	require.True(t, result.HadRuntimeError())
	assert.Contains(t, result.RuntimeError.Error(), "Undefined variable 'clock'.")
}

func TestEnableClockTrueInstallsNativeClock(t *testing.T) {
	var out strings.Builder
	result := NewRunner(&out, true).Run(`print clock() > 0;`)
	require.False(t, result.HadError())
	require.False(t, result.HadRuntimeError())
	assert.Equal(t, "true\n", out.String())
}

func TestRunnerPersistsStateAcrossCalls(t *testing.T) {
	var out strings.Builder
	runner := NewRunner(&out, true)

	result := runner.Run(`var counter = 0;`)
	require.False(t, result.HadError())

	result = runner.Run(`counter = counter + 1; print counter;`)
	require.False(t, result.HadError())
	assert.Equal(t, "1\n", out.String())
}
