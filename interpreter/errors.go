/*
File    : loxgo/interpreter/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/values"
)

// RuntimeError carries the offending token so its line can be reported
// in a line-annotated message.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is the dedicated non-local control transfer that carries
// `return` values up to the nearest function call frame, distinct from
// *RuntimeError. It is thrown with panic and caught only at the call
// boundary in LoxFunction.Call.
type returnSignal struct {
	value values.Value
}
