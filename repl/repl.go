/*
File    : loxgo/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Lox
interpreter. The REPL reads one line at a time,
pushes it through the full lex → parse → resolve → interpret pipeline,
prints the value of a bare expression, clears the error flags between
lines, and keeps globals (the same Interpreter instance persists
across lines — spec §5 "in REPL mode the same interpreter persists
across lines so globals accumulate").

Adapted nearly directly from the teacher's repl/repl.go: the same Repl
struct fields, the same readline session + five-color scheme, the same
`.exit` sentinel and panic-recovery-per-line discipline — generalized
from GoMix's root-node evaluation to Lox's statement-list pipeline.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/loxgo/interpreter"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/reporter"
	"github.com/akashmaji946/loxgo/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching the teacher's scheme:
// - blueColor: decorative lines and separators
// - yellowColor: expression results and version info
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents a Read-Eval-Print Loop instance.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a REPL instance with the supplied banner configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to loxgo!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. It keeps a single Reporter and a
// single Interpreter alive across lines so that globals accumulate
//, clearing the Reporter's error flags after each line.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	rep := reporter.New(writer)
	resolution := make(resolver.Resolution)
	interp := interpreter.New(rep, resolution, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, rep, interp)
		rep.Reset()
	}
}

// evalLine runs one REPL line through lex → parse → resolve →
// interpret, printing a bare expression's value in yellow. Reporter
// diagnostics go to writer uncolored; only a recovered panic is printed
// in red. A panic recovery wraps the whole pipeline so a bug in
// the interpreter cannot kill the session (the teacher's
// executeWithRecovery does the same around eval.Evaluator.Eval).
func (r *Repl) evalLine(writer io.Writer, line string, rep *reporter.Reporter, interp *interpreter.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	lex := lexer.New(line, rep)
	tokens := lex.ScanTokens()
	if rep.HadError() {
		return
	}

	par := parser.New(tokens, rep)
	statements := par.Parse()
	if rep.HadError() {
		return
	}

	res := resolver.New(rep)
	table := res.Resolve(statements)
	if rep.HadError() {
		return
	}
	for id, depth := range table {
		interp.SetResolution(id, depth)
	}

	result, ok := interp.InterpretExpressionResult(statements)
	if ok {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
