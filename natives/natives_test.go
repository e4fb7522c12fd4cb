package natives

import (
	"testing"

	"github.com/loxmix-lang/loxmix/environment"
	"github.com/loxmix-lang/loxmix/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallBindsClock(t *testing.T) {
	env := environment.New(nil)
	Install(env)

	v, ok := env.Get("clock")
	require.True(t, ok)

	fn, ok := v.(clockFn)
	require.True(t, ok)
	assert.Equal(t, 0, fn.Arity())

	result, err := fn.Call(nil, nil)
	require.NoError(t, err)
	n, ok := result.(object.Number)
	require.True(t, ok)
	assert.Greater(t, float64(n), 0.0)
}
