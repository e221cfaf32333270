/*
File    : loxgo/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/values"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", values.Number(1))

	v, err := env.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, values.Number(1), v)
}

func TestGet_UndefinedIsAnError(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestGet_WalksEnclosingChain(t *testing.T) {
	globals := New(nil)
	globals.Define("a", values.Number(1))
	child := New(globals)

	v, err := child.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, values.Number(1), v)
}

func TestAssign_UpdatesNearestDefiningScope(t *testing.T) {
	globals := New(nil)
	globals.Define("a", values.Number(1))
	child := New(globals)

	err := child.Assign("a", values.Number(2))
	assert.NoError(t, err)

	v, _ := globals.Get("a")
	assert.Equal(t, values.Number(2), v)
}

func TestAssign_UndeclaredIsAnError(t *testing.T) {
	env := New(nil)
	err := env.Assign("missing", values.Number(1))
	assert.Error(t, err)
}

func TestGetAtAndAssignAt(t *testing.T) {
	globals := New(nil)
	child := New(globals)
	grandchild := New(child)
	grandchild.Define("a", values.Number(1))

	assert.Equal(t, values.Number(1), grandchild.GetAt(0, "a"))

	grandchild.AssignAt(0, "a", values.Number(2))
	assert.Equal(t, values.Number(2), grandchild.GetAt(0, "a"))
}

func TestDefine_ShadowingDoesNotAffectEnclosing(t *testing.T) {
	globals := New(nil)
	globals.Define("a", values.Number(1))
	child := New(globals)
	child.Define("a", values.Number(99))

	childVal, _ := child.Get("a")
	globalVal, _ := globals.Get("a")
	assert.Equal(t, values.Number(99), childVal)
	assert.Equal(t, values.Number(1), globalVal)
}
