/*
File    : loxgo/interpreter/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

LoxClass and LoxInstance are adapted from the teacher's
objects.GoMixStruct / objects.GoMixObjectInstance
(objects/struct.go): GetMethod → FindMethod (generalized to search a
superclass chain, since GoMix structs have no inheritance), Fields map
kept verbatim, and the struct holding a Methods map of callables.
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/values"
)

// LoxClass is a class value: its name, optional superclass, and its
// own methods. Calling a class constructs an instance.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	Methods    map[string]*LoxFunction
}

func (*LoxClass) Type() values.ValueType { return "class" }
func (c *LoxClass) String() string       { return c.Name }

// FindMethod searches the class's own methods, then recurses into the
// superclass chain.
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity equals `init`'s arity, or 0 if the class declares no
// initializer.
func (c *LoxClass) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call allocates a new instance, binds and invokes `init` if present,
// and returns the instance — construction.
func (c *LoxClass) Call(interp *Interpreter, args []values.Value) values.Value {
	instance := &LoxInstance{Class: c, Fields: make(map[string]values.Value)}
	if init, ok := c.FindMethod("init"); ok {
		init.Bind(instance).Call(interp, args)
	}
	return instance
}

// LoxInstance is an instance of a LoxClass: a reference to its class
// plus a mutable field map.
type LoxInstance struct {
	Class  *LoxClass
	Fields map[string]values.Value
}

func (*LoxInstance) Type() values.ValueType { return "instance" }
func (i *LoxInstance) String() string       { return i.Class.Name + " instance" }

// Get returns a field if present, else a method bound to this instance
// via a fresh environment containing `this` parented at the method's
// closure, else a runtime error.
func (i *LoxInstance) Get(name token.Token) (values.Value, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name.Lexeme)
}

// Set installs or overwrites a field.
func (i *LoxInstance) Set(name string, value values.Value) {
	i.Fields[name] = value
}
