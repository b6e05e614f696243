package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hareramrai/missing-validators/pkg/config"
)

type defaultsConfig struct {
	Locale      string `env:"VALIDATE_DEFAULTS_LOCALE" envDefault:"en"`
	Concurrency int    `env:"VALIDATE_DEFAULTS_CONCURRENCY" envDefault:"1"`
}

type cachedConfig struct {
	Value string `env:"VALIDATE_CACHED_VALUE"`
}

type requiredConfig struct {
	Required string `env:"VALIDATE_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Locale      string   `env:"VALIDATE_TEST_LOCALE"`
	Concurrency int      `env:"VALIDATE_TEST_CONCURRENCY"`
	Domains     []string `env:"VALIDATE_TEST_DOMAINS" envSeparator:","`
	Message     string   `env:"VALIDATE_TEST_MESSAGE"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 1, cfg.Concurrency)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("VALIDATE_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("VALIDATE_CACHED_VALUE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_Required(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("VALIDATE_REQUIRED_VALUE")

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("VALIDATE_REQUIRED_VALUE", "present")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "present", cfg.Required)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReload(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"VALIDATE_TEST_LOCALE", "VALIDATE_TEST_CONCURRENCY", "VALIDATE_TEST_DOMAINS", "VALIDATE_TEST_MESSAGE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, []string{"com", "org"}, cfg.Domains)
	assert.Equal(t, "quoted value", cfg.Message)
}

func TestLoadEnv_Missing(t *testing.T) {
	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.test") })
}
