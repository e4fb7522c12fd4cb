/*
File   : loxmix/cmd/loxmix/cmd/root.go

Package cmd wires the Lox pipeline (package lox) to a command-line
surface: an interactive REPL when invoked with no arguments, one-shot
file execution when given exactly one, and a usage error otherwise
(spec.md §6). Exit codes follow spec.md exactly: 0 success, 64 usage
error, 65 one or more compile errors, 70 a runtime error.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/loxmix-lang/loxmix/ast"
	"github.com/loxmix-lang/loxmix/config"
	"github.com/loxmix-lang/loxmix/lexer"
	"github.com/loxmix-lang/loxmix/lox"
	"github.com/loxmix-lang/loxmix/parser"
)

const (
	exitSuccess    = 0
	exitUsageError = 64
	exitDataError  = 65
	exitRuntime    = 70
)

var (
	flagNoColor  bool
	flagConfig   string
	flagPrintAST bool
)

var rootCmd = &cobra.Command{
	Use:           "loxmix [script]",
	Short:         "A tree-walking interpreter for the Lox language",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a loxmix config file")
	rootCmd.Flags().BoolVar(&flagPrintAST, "print-ast", false, "print the parsed AST instead of executing (debug)")
	_ = rootCmd.Flags().MarkHidden("print-ast")
}

// Execute runs the root command and returns the process exit code
// spec.md §6 requires — distinct from cobra's own default of "1 on any
// error", which wouldn't distinguish usage/compile/runtime failures.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := err.(exitCodeError); ok {
			return int(code)
		}
		fmt.Fprintln(os.Stderr, err)
		return exitUsageError
	}
	return lastExitCode
}

// exitCodeError lets a RunE handler communicate a specific exit code
// back to Execute without cobra printing anything extra (errors are
// silenced above; every message is written by this package directly).
type exitCodeError int

func (e exitCodeError) Error() string { return "" }

// lastExitCode is set by run's success paths, which have nothing to
// return as an error.
var lastExitCode int

func run(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: loxmix [script]")
		return exitCodeError(exitUsageError)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loxmix: failed to load config: %v\n", err)
		return exitCodeError(exitUsageError)
	}
	if flagNoColor {
		disabled := true
		cfg.Color = &disabled
	}

	if len(args) == 1 {
		lastExitCode = runFile(args[0], cfg)
		return nil
	}
	lastExitCode = runPrompt(cfg)
	return nil
}

func colorEnabled(cfg config.Config, stream *os.File) bool {
	if cfg.Color != nil {
		return *cfg.Color
	}
	return isatty.IsTerminal(stream.Fd())
}

// runFile implements "lox <path>": read the whole file, run it once
// against a fresh Runner, and report the appropriate exit code.
func runFile(path string, cfg config.Config) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loxmix: can't read '%s': %v\n", path, err)
		return exitUsageError
	}

	if flagPrintAST {
		printAST(string(source))
		return exitSuccess
	}

	result := lox.Run(string(source), cfg.EnableClock)
	return reportResult(result, cfg)
}

// runPrompt implements the interactive REPL: read-eval-print one line
// at a time, persisting interpreter state across lines, exiting on an
// empty line, "exit", "quit", or EOF.
func runPrompt(cfg config.Config) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "loxmix: %v\n", err)
		return exitUsageError
	}
	defer rl.Close()

	runner := lox.NewRunner(rl.Stdout(), cfg.EnableClock)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return exitSuccess
		}
		line = strings.TrimSpace(line)
		if line == "" || line == "exit" || line == "quit" {
			return exitSuccess
		}

		result := runner.Run(line)
		reportResult(result, cfg)
		// The REPL never exits on a compile or runtime error — spec.md
		// §7 resets both error flags before the next line is read.
	}
}

// reportResult renders a Result's diagnostics/runtime error (if any) to
// stderr and returns the exit code it implies.
func reportResult(result lox.Result, cfg config.Config) int {
	errColor := color.New(color.FgRed)
	useColor := colorEnabled(cfg, os.Stderr)

	if result.HadError() {
		for _, d := range result.Diagnostics {
			writeDiagnostic(os.Stderr, d.Format(), errColor, useColor)
		}
		return exitDataError
	}
	if result.HadRuntimeError() {
		writeDiagnostic(os.Stderr, result.RuntimeError.Error(), errColor, useColor)
		return exitRuntime
	}
	return exitSuccess
}

func writeDiagnostic(w io.Writer, message string, c *color.Color, useColor bool) {
	if useColor {
		c.Fprintln(w, message)
		return
	}
	fmt.Fprintln(w, message)
}

// printAST is a debug aid gated behind the hidden --print-ast flag: it
// parses source (without resolving or running it) and prints each
// top-level expression statement via ast.Print.
func printAST(source string) {
	tokens, _ := lexer.New(source).ScanTokens()
	stmts, _ := parser.New(tokens).Parse()
	for _, stmt := range stmts {
		if exprStmt, ok := stmt.(*ast.Expression); ok {
			fmt.Fprintln(os.Stdout, ast.Print(exprStmt.Expr))
		}
	}
}
