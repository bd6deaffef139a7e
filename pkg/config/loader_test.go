package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uranus/pkg/config"
)

type defaultsConfig struct {
	Addr        string `env:"TEST_DEFAULTS_ADDR" envDefault:":8080"`
	MaxBody     int    `env:"TEST_DEFAULTS_MAX_BODY" envDefault:"1048576"`
	Progressive bool   `env:"TEST_DEFAULTS_PROGRESSIVE" envDefault:"false"`
}

type successConfig struct {
	Addr        string `env:"TEST_SUCCESS_ADDR" envDefault:":8080"`
	MaxBody     int    `env:"TEST_SUCCESS_MAX_BODY" envDefault:"1048576"`
	Progressive bool   `env:"TEST_SUCCESS_PROGRESSIVE" envDefault:"false"`
}

type singletonConfig struct {
	LogLevel string `env:"TEST_SINGLETON_LOG_LEVEL" envDefault:"info"`
}

type prefixedConfig struct {
	Progressive bool `env:"PROGRESSIVE" envDefault:"false"`
}

type fileConfig struct {
	Addr        string `env:"URANUS_TEST_FILE_ADDR"`
	Progressive bool   `env:"URANUS_TEST_FILE_PROGRESSIVE"`
}

type requiredConfig struct {
	Rules string `env:"TEST_REQUIRED_RULES,required"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("TEST_SUCCESS_ADDR", ":9000")
		t.Setenv("TEST_SUCCESS_MAX_BODY", "2048")
		t.Setenv("TEST_SUCCESS_PROGRESSIVE", "true")

		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, 2048, cfg.MaxBody)
		assert.True(t, cfg.Progressive)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 1048576, cfg.MaxBody)
		assert.False(t, cfg.Progressive)
	})

	t.Run("missing required value", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_RULES")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required value can be fixed after failure", func(t *testing.T) {
		t.Setenv("TEST_REQUIRED_RULES", "rules.json")

		var cfg requiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "rules.json", cfg.Rules)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *successConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_SINGLETON_LOG_LEVEL", "debug")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_SINGLETON_LOG_LEVEL", "error")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "debug", second.LogLevel)

	config.ResetCache()

	var third singletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "error", third.LogLevel)
}

func TestLoad_WithPrefix(t *testing.T) {
	t.Setenv("URANUS_PROGRESSIVE", "true")
	t.Setenv("OTHER_PROGRESSIVE", "false")

	var a prefixedConfig
	require.NoError(t, config.Load(&a, config.WithPrefix("URANUS_")))
	assert.True(t, a.Progressive)

	var b prefixedConfig
	require.NoError(t, config.Load(&b, config.WithPrefix("OTHER_")))
	assert.False(t, b.Progressive)
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("URANUS_TEST_FILE_ADDR")
		os.Unsetenv("URANUS_TEST_FILE_PROGRESSIVE")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.serve"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Progressive)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	assert.NotPanics(t, func() { config.MustLoadEnv() })
}
