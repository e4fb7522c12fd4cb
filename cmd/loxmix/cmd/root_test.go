package cmd

import (
	"testing"

	"github.com/loxmix-lang/loxmix/config"
	"github.com/loxmix-lang/loxmix/lox"
	"github.com/stretchr/testify/assert"
)

func TestReportResultSuccessReturnsZero(t *testing.T) {
	code := reportResult(lox.Result{}, config.Default())
	assert.Equal(t, exitSuccess, code)
}

func TestReportResultCompileErrorReturns65(t *testing.T) {
	result := lox.NewRunner(nil, true).Run("1 +")
	code := reportResult(result, config.Default())
	assert.Equal(t, exitDataError, code)
}

func TestReportResultRuntimeErrorReturns70(t *testing.T) {
	result := lox.NewRunner(nil, true).Run(`print "1" + 2;`)
	code := reportResult(result, config.Default())
	assert.Equal(t, exitRuntime, code)
}

func TestColorEnabledHonorsExplicitOverride(t *testing.T) {
	enabled := true
	cfg := config.Config{Color: &enabled}
	// An explicit override short-circuits before touching the stream,
	// so passing nil here is safe.
	assert.True(t, colorEnabled(cfg, nil))

	disabled := false
	cfg.Color = &disabled
	assert.False(t, colorEnabled(cfg, nil))
}
