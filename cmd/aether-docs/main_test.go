package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "PREVIEW_FILE",
		"TEXT_ALLOW_FONT_SCALING", "TEXT_MAX_FONT_SIZE_MULTIPLIER",
		"TEXT_ADJUSTS_FONT_SIZE_TO_FIT", "TEXT_MINIMUM_FONT_SCALE",
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	clearEnv(t)

	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "aether-button--primary")
	assert.Contains(t, out, "aether-layout-hstack--wrapping")
}

func TestRender(t *testing.T) {
	clearEnv(t)

	out, err := run(t, "render", "aether-button--primary", "--arg", "title=Ship it")
	require.NoError(t, err)
	assert.Contains(t, out, `<button class="bg-aether-primary p-aether-md rounded-lg"`)
	assert.Contains(t, out, "Ship it")
}

func TestRenderErrors(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "render", "nope--nope")
	assert.Error(t, err)

	_, err = run(t, "render", "aether-button--primary", "--arg", "title")
	assert.Error(t, err)

	_, err = run(t, "render", "aether-button--primary", "--arg", "size=xl")
	assert.Error(t, err)
}

func TestRenderWithPreviewAndEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "preview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("text:\n  allowFontScaling: false\n"), 0o644))

	out, err := run(t, "--preview", path, "render", "aether-text--defaults", "--page")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `data-allow-font-scaling="false"`)

	t.Setenv("TEXT_MAX_FONT_SIZE_MULTIPLIER", "2")
	out, err = run(t, "--preview", path, "render", "aether-text--defaults")
	require.NoError(t, err)
	assert.Equal(t, `<span data-max-font-size-multiplier="2">The quick brown fox</span>`+"\n", out)
}

func TestServeRejectsInvalidPort(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "serve", "--port", "http")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
	assert.Contains(t, err.Error(), `"numeric"`)
}
