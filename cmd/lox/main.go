/*
File    : loxgo/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Command lox is the CLI entry point: `lox run <file>` runs a
script to completion, `lox repl` starts the interactive session. Exit
codes follow spec §6 exactly: 0 clean, 65 on a lex/parse/resolve error,
70 on an uncaught runtime error.

Adopted from the pack's opal-lang-opal cli/main.go, which structures a
root cobra.Command with subcommands around a lex → parse → plan →
execute pipeline the same shape as ours (lex → parse → resolve →
interpret) — the teacher's own main.go/main_test.go is GoMix's REPL-only
demo entry point and has no file-running subcommand to adapt from.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/loxgo/interpreter"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/repl"
	"github.com/akashmaji946/loxgo/reporter"
	"github.com/akashmaji946/loxgo/resolver"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitDataError   = 65 // lex/parse/resolve error, per spec §6
	exitRuntimeFail = 70 // uncaught runtime error, per spec §6
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := exitOK

	rootCmd := &cobra.Command{
		Use:           "lox",
		Short:         "A tree-walking interpreter for Lox",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Lox script to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runFile(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Lox session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startRepl(cmd.OutOrStdout())
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, replCmd)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDataError
	}
	return exitCode
}

// runFile executes a single Lox source file through the full pipeline
// and maps the Reporter's error state onto spec §6's exit codes. `out`
// carries `print` output, `errOut` carries Reporter diagnostics — kept
// separate so piping a script's stdout never mixes in error text.
func runFile(path string, out, errOut io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "lox: %v\n", err)
		return exitDataError
	}

	rep := reporter.New(errOut)

	lex := lexer.New(string(source), rep)
	tokens := lex.ScanTokens()
	if rep.HadError() {
		return exitDataError
	}

	par := parser.New(tokens, rep)
	statements := par.Parse()
	if rep.HadError() {
		return exitDataError
	}

	res := resolver.New(rep)
	table := res.Resolve(statements)
	if rep.HadError() {
		return exitDataError
	}

	interp := interpreter.New(rep, table, out)
	interp.Interpret(statements)
	if rep.HadRuntimeError() {
		return exitRuntimeFail
	}
	return exitOK
}

func startRepl(out io.Writer) {
	session := repl.New(
		"loxgo -- a tree-walking interpreter for Lox",
		"0.1.0",
		"Akash Maji",
		"----------------------------------------------",
		"MIT",
		"lox> ",
	)
	session.Start(out)
}
