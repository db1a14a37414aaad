package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/config"
)

type fileConfig struct {
	Name     string   `env:"IFT_NAME"`
	Workers  int      `env:"IFT_WORKERS"`
	Strict   bool     `env:"IFT_STRICT"`
	Tags     []string `env:"IFT_TAGS" envSeparator:","`
	Quoted   string   `env:"IFT_QUOTED"`
	Empty    string   `env:"IFT_EMPTY"`
	Priority string   `env:"IFT_PRIORITY"`
}

type overrideConfig struct {
	OnlyOverride string `env:"IFT_ONLY_OVERRIDE"`
}

func clearFileEnv() {
	for _, key := range []string{
		"IFT_NAME", "IFT_WORKERS", "IFT_STRICT", "IFT_TAGS", "IFT_QUOTED",
		"IFT_EMPTY", "IFT_PRIORITY", "IFT_ONLY_OVERRIDE",
	} {
		os.Unsetenv(key)
	}
	config.ResetCache()
}

func TestLoadEnv(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		clearFileEnv()
		t.Cleanup(clearFileEnv)

		require.NoError(t, config.LoadEnv("testdata/.env.custom"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, fileConfig{
			Name:     "custom_value",
			Workers:  1234,
			Strict:   true,
			Tags:     []string{"item1", "item2", "item3"},
			Quoted:   "quoted value",
			Priority: "custom_file_value",
		}, cfg)
	})

	t.Run("later files win", func(t *testing.T) {
		clearFileEnv()
		t.Cleanup(clearFileEnv)

		require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override_value", cfg.Name)
		assert.Equal(t, 9999, cfg.Workers)
		assert.Equal(t, "override_value", cfg.Priority)
		assert.Equal(t, "quoted value", cfg.Quoted)

		var over overrideConfig
		require.NoError(t, config.Load(&over))
		assert.Equal(t, "unique_to_override", over.OnlyOverride)
	})

	t.Run("process environment wins", func(t *testing.T) {
		clearFileEnv()
		t.Cleanup(clearFileEnv)
		t.Setenv("IFT_PRIORITY", "from_process")

		require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))
		assert.Equal(t, "from_process", os.Getenv("IFT_PRIORITY"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/.env.custom", "testdata/missing.env")
		require.ErrorIs(t, err, config.ErrLoadingEnv)
		assert.Contains(t, err.Error(), "testdata/missing.env")
		clearFileEnv()
	})

	t.Run("default file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(dir+"/.env", []byte("IFT_DEFAULT=from_default_file\n"), 0o600))
		t.Chdir(dir)
		os.Unsetenv("IFT_DEFAULT")
		t.Cleanup(func() { os.Unsetenv("IFT_DEFAULT") })

		require.NoError(t, config.LoadEnv())
		assert.Equal(t, "from_default_file", os.Getenv("IFT_DEFAULT"))
	})
}

func TestMustLoadEnv(t *testing.T) {
	t.Cleanup(clearFileEnv)

	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.custom") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}

func TestForceReloadConfig(t *testing.T) {
	type requiredConfig struct {
		Value string `env:"IFT_REQUIRED,required"`
	}
	os.Unsetenv("IFT_REQUIRED")
	config.ResetCache()

	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("IFT_REQUIRED", "first")
	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("IFT_REQUIRED", "second")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value, "cached value is kept")

	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.Equal(t, "second", cfg.Value)

	assert.ErrorIs(t, config.ForceReloadConfig[requiredConfig](nil), config.ErrNilPointer)
}
