package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDecodesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableau.toml")
	require.NoError(t, os.WriteFile(path, []byte(`max_gamma_rounds = 8`+"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxGammaRounds)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestBindOverridesTakesPrecedenceOverFile(t *testing.T) {
	cfg := Default()
	v := viper.New()
	v.Set("color", "never")

	merged := BindOverrides(cfg, v)
	assert.Equal(t, ColorNever, merged.Color)
	assert.Equal(t, cfg.MaxGammaRounds, merged.MaxGammaRounds)
}
