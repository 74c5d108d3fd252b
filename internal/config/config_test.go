package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsgen/internal/codegen"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.Equal(t, codegen.Pretty, cfg.Mode)
	assert.Equal(t, "-", cfg.Out)
	assert.Empty(t, cfg.Sources)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/.jsgen.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
indent = 4
mode = "compact"
out = "out.js"
sources = ["a.json", "b.json"]
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.IndentWidth)
	assert.Equal(t, codegen.Compact, cfg.Mode)
	assert.Equal(t, "out.js", cfg.Out)
	assert.Equal(t, []string{"a.json", "b.json"}, cfg.Sources)
}

func TestParsePartialOverrideKeepsOtherDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`mode = "compact"`))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.Equal(t, codegen.Compact, cfg.Mode)
	assert.Equal(t, "-", cfg.Out)
}

func TestParseInvalidModeErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(`mode = "loud"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")
}

func TestParseNegativeIndentErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(`indent = -1`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent")
}

func TestParseZeroIndentKeepsDefault(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`indent = 0`))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.IndentWidth)
}

func TestParseEmptyInputIsDefault(t *testing.T) {
	cfg, err := Parse(strings.NewReader(``))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
