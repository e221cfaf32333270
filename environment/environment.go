/*
File    : loxgo/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package environment implements the lexically nested name-to-value
table described in spec §3/§4.4. It is adapted almost directly from
the teacher's scope/scope.go: NewScope → New, LookUp → Get, Bind →
Define, Assign kept as Assign, with the same parent-chain walk.

Two operations the teacher has no use for — GetAt/AssignAt — are added
here because Lox's resolver statically computes how many environments
to walk outward for a given variable reference; they walk
`Enclosing` exactly `depth` times with a plain loop, while Get/Assign
keep the teacher's recursive parent walk from LookUp/Assign.

const/let/type-tracking fields from the teacher's Scope (Consts,
LetVars, LetTypes) are dropped: Lox has no const/let/statically-typed
variable forms, so those fields have no SPEC_FULL.md component to
serve.
*/
package environment

import (
	"fmt"

	"github.com/akashmaji946/loxgo/values"
)

// Environment is a lexically nested name→value mapping with an
// optional parent pointer. A nil Enclosing marks the global
// environment. Shared ownership (via Go's garbage collector) lets a
// closure keep its defining environment alive past the lexical block
// that created it.
type Environment struct {
	values    map[string]values.Value
	Enclosing *Environment
}

// New creates an Environment nested inside enclosing (nil for the
// global environment).
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]values.Value), Enclosing: enclosing}
}

// Define binds name to value in this environment. Redeclaration at the
// same level simply replaces the previous binding — the resolver is
// responsible for rejecting redeclaration where Lox disallows it;
// Define itself never errors, matching the teacher's Bind.
func (e *Environment) Define(name string, value values.Value) {
	e.values[name] = value
}

// Get walks this environment and its ancestors looking for name,
// returning a runtime error if it is never found.
func (e *Environment) Get(name string) (values.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates name in the first environment (walking outward) that
// already defines it, per the teacher's Assign. A variable must be
// declared with Define before it can be Assign-ed; assigning an
// undeclared name is a runtime error.
func (e *Environment) Assign(name string, value values.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks Enclosing exactly depth times.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt performs the O(depth) lookup the resolver enables: walk
// exactly depth environments outward, then look up name directly in
// that environment without re-checking ancestors, bypassing accidental
// shadowing introduced since resolution.
func (e *Environment) GetAt(depth int, name string) values.Value {
	return e.ancestor(depth).values[name]
}

// AssignAt mirrors GetAt for assignment.
func (e *Environment) AssignAt(depth int, name string, value values.Value) {
	e.ancestor(depth).values[name] = value
}
