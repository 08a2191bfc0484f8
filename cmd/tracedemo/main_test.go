package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/xgx-trace/internal/config"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv(config.EnvEnv, "prod")
	t.Setenv(config.EnvLogLevel, "info")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvColor, "never")

	envFile := filepath.Join(t.TempDir(), "missing.env")
	var out, errOut bytes.Buffer
	code = execute(context.Background(), append([]string{"--env-file", envFile}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	code, out, _ := runCLI(t, "list")
	require.Equal(t, 0, code)
	for _, name := range []string{"original", "nested", "fallback", "ok"} {
		assert.Contains(t, out, name)
	}
}

func TestRun_Default(t *testing.T) {
	code, _, stderr := runCLI(t, "run")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: Permission denied")
	assert.Contains(t, stderr, "trace (5 hops, oldest first):")

	// baz is listed before Main.
	baz := strings.Index(stderr, "demo.baz")
	main := strings.Index(stderr, "demo.Main")
	require.NotEqual(t, -1, baz)
	require.NotEqual(t, -1, main)
	assert.Less(t, baz, main)
}

func TestRun_SmallInput(t *testing.T) {
	code, _, stderr := runCLI(t, "run", "--x", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Permission denied")
	assert.Contains(t, stderr, "trace (2 hops, oldest first):")
}

func TestScenario_OK(t *testing.T) {
	code, out, stderr := runCLI(t, "scenario", "ok")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ok: ok\n", out)
	assert.NotContains(t, stderr, "Error:")
}

func TestScenario_Nested(t *testing.T) {
	code, _, stderr := runCLI(t, "scenario", "nested")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "trace (3 hops, oldest first):")
	assert.Contains(t, stderr, "scenario=nested")
}

func TestScenario_Unknown(t *testing.T) {
	code, _, stderr := runCLI(t, "scenario", "nope")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown scenario")
}

func TestInvalidFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "--color", "sometimes", "list")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid flags")
}

func TestFlags_CaseInsensitive(t *testing.T) {
	code, out, stderr := runCLI(t, "--log-level", "DEBUG", "--color", "Never", "list")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "original")
}

func TestLogClosedWhenCommandFails(t *testing.T) {
	t.Setenv(config.EnvEnv, "prod")
	t.Setenv(config.EnvLogLevel, "info")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvColor, "never")
	dir := t.TempDir()

	var out, errOut bytes.Buffer
	a := &app{stdout: &out, stderr: &errOut}
	code := a.execute(context.Background(), []string{
		"--env-file", filepath.Join(dir, "missing.env"),
		"--log-file", filepath.Join(dir, "demo.log"),
		"scenario", "nope",
	})
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "unknown scenario")
	assert.Nil(t, a.log)
}

func TestNoColorEscapes(t *testing.T) {
	_, _, stderr := runCLI(t, "scenario", "fallback")
	assert.NotContains(t, stderr, "\x1b[")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, colorEnabled("always", &buf))
	assert.False(t, colorEnabled("never", &buf))
	assert.False(t, colorEnabled("auto", &buf))
}

func TestShortFunc(t *testing.T) {
	assert.Equal(t, "demo.baz", shortFunc("github.com/xgx-io/xgx-trace/internal/demo.baz"))
	assert.Equal(t, "???", shortFunc(""))
}
