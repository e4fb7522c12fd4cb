package parser

import (
	"testing"

	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) ([]ast.Stmt, []string) {
	t.Helper()
	tokens, scanErrs := lexer.New(source).ScanTokens()
	require.Empty(t, scanErrs)
	stmts, diags := New(tokens).Parse()
	var messages []string
	for _, d := range diags {
		messages = append(messages, d.Format())
	}
	return stmts, messages
}

func TestParseExpressionPrecedence(t *testing.T) {
	stmts, errs := parseSource(t, "1 + 2 * 3;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)
	exprStmt := stmts[0].(*ast.Expression)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Print(exprStmt.Expr))
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	stmts, errs := parseSource(t, "a = b = 3;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)
	assign := stmts[0].(*ast.Expression).Expr.(*ast.Assign)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner := assign.Value.(*ast.Assign)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetIsNonFatal(t *testing.T) {
	stmts, errs := parseSource(t, "1 + 2 = 3; print 1;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Invalid assignment target.")
	// parsing continued past the bad assignment and recovered the
	// following print statement.
	require.Len(t, stmts, 2)
	_, ok := stmts[1].(*ast.Print)
	assert.True(t, ok)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, errs := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)
	outer := stmts[0].(*ast.Block)
	require.Len(t, outer.Statements, 2)
	_, ok := outer.Statements[0].(*ast.Var)
	assert.True(t, ok)
	whileStmt, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)
	body := whileStmt.Body.(*ast.Block)
	require.Len(t, body.Statements, 2)
}

func TestParseForWithoutConditionDefaultsTrue(t *testing.T) {
	stmts, errs := parseSource(t, "for (;;) print 1;")
	require.Empty(t, errs)
	// With no initializer there is no enclosing Block: the While is the
	// top-level statement.
	whileStmt := stmts[0].(*ast.While)
	lit := whileStmt.Condition.(*ast.Literal)
	assert.Equal(t, trueLiteral, lit.Value)
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	stmts, errs := parseSource(t, "class Cake < Pastry { taste() { return 1; } }")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)
	class := stmts[0].(*ast.Class)
	assert.Equal(t, "Cake", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "Pastry", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "taste", class.Methods[0].Name.Lexeme)
}

func TestParseMissingSemicolonReportsErrorAndSynchronizes(t *testing.T) {
	stmts, errs := parseSource(t, "var a = 1\nprint a;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Expect ';' after variable declaration.")
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
}

func TestParseTooManyArgumentsReportsNonFatalDiagnostic(t *testing.T) {
	args := "1"
	for i := 0; i < 255; i++ {
		args += ", 1"
	}
	stmts, errs := parseSource(t, "f("+args+");")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Can't have more than 255 arguments.")
	require.Len(t, stmts, 1)
}

func TestParseUnexpectedTokenReportsExpectExpression(t *testing.T) {
	_, errs := parseSource(t, "var a = ;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Expect expression.")
}
