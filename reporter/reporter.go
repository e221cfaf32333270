/*
File    : loxgo/reporter/reporter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package reporter centralizes error surfacing for the whole pipeline.
Rather than the classic Crafting-Interpreters "hadError" process
global, it is reified as an explicit value threaded through
the lexer, parser, resolver and interpreter. Each stage calls the
Reporter method for the error kind it can raise; the driver consults
HadError/HadRuntimeError afterwards to decide whether to continue to
the next stage and which process exit code to use.
*/
package reporter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/loxgo/token"
)

// Reporter accumulates the two error flags the pipeline needs and
// writes formatted messages to an injected writer (stderr by default),
// the same io.Writer-injection idiom the teacher's Evaluator uses for
// its output writer.
type Reporter struct {
	Out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter that writes to out.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// HadError reports whether a lexical, parse, or resolve error has been
// observed since the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error has been observed
// since the last Reset.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both flags. The REPL calls this between lines so a
// mistake on one line does not poison later ones.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

// report writes "[line N] Error <where>: <message>" and sets hadError,
// matching the message shape required by spec §7.
func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// LexicalError reports a lexer-stage error at line.
func (r *Reporter) LexicalError(line int, format string, args ...interface{}) {
	r.report(line, "", fmt.Sprintf(format, args...))
}

// ParseError reports a parser-stage error anchored to tok.
func (r *Reporter) ParseError(tok token.Token, format string, args ...interface{}) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	r.report(tok.Line, where, fmt.Sprintf(format, args...))
}

// ResolveError reports a resolver-stage error anchored to tok.
func (r *Reporter) ResolveError(tok token.Token, format string, args ...interface{}) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	r.report(tok.Line, where, fmt.Sprintf(format, args...))
}

// RuntimeError reports a runtime error at line and sets hadRuntimeError
// instead of hadError, since it aborts only the current program run
// rather than preventing one from starting.
func (r *Reporter) RuntimeError(line int, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error: %s\n", line, message)
	r.hadRuntimeError = true
}
