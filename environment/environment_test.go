package environment

import (
	"testing"

	"github.com/loxmix-lang/loxmix/object"
	"github.com/stretchr/testify/assert"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", object.Number(1))
	v, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)
}

func TestGetWalksEnclosingChain(t *testing.T) {
	global := New(nil)
	global.Define("a", object.Number(1))
	local := New(global)
	v, ok := local.Get("a")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)
}

func TestGetUndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssignUpdatesEnclosingBinding(t *testing.T) {
	global := New(nil)
	global.Define("a", object.Number(1))
	local := New(global)
	ok := local.Assign("a", object.Number(2))
	assert.True(t, ok)
	v, _ := global.Get("a")
	assert.Equal(t, object.Number(2), v)
}

func TestAssignUndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	ok := env.Assign("missing", object.Number(1))
	assert.False(t, ok)
}

func TestShadowingDefinesInInnermostFrame(t *testing.T) {
	global := New(nil)
	global.Define("a", object.String("outer"))
	local := New(global)
	local.Define("a", object.String("inner"))

	v, _ := local.Get("a")
	assert.Equal(t, object.String("inner"), v)
	outer, _ := global.Get("a")
	assert.Equal(t, object.String("outer"), outer)
}

func TestGetAtAndAssignAtAddressDistanceDirectly(t *testing.T) {
	global := New(nil)
	block1 := New(global)
	block2 := New(block1)
	block1.Define("a", object.Number(1))

	v, ok := block2.GetAt(1, "a")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)

	block2.AssignAt(1, "a", object.Number(42))
	updated, _ := block1.Get("a")
	assert.Equal(t, object.Number(42), updated)
}

func TestAncestorZeroIsSelf(t *testing.T) {
	env := New(nil)
	assert.Same(t, env, env.Ancestor(0))
}
