package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brform/pkg/config"
)

var testKeys = []string{
	"BRFORM_TEST_NAME",
	"BRFORM_TEST_LANGS",
	"BRFORM_TEST_PORT",
	"BRFORM_TEST_QUOTED",
	"BRFORM_TEST_EXTRA",
	"BRFORM_TEST_REQUIRED",
}

func resetEnv(t *testing.T) {
	t.Helper()
	for _, k := range testKeys {
		require.NoError(t, os.Unsetenv(k))
	}
	config.ResetCache()
	t.Cleanup(func() {
		for _, k := range testKeys {
			_ = os.Unsetenv(k)
		}
		config.ResetCache()
	})
}

type fileConfig struct {
	Name   string   `env:"BRFORM_TEST_NAME"`
	Langs  []string `env:"BRFORM_TEST_LANGS" envSeparator:","`
	Port   int      `env:"BRFORM_TEST_PORT"`
	Quoted string   `env:"BRFORM_TEST_QUOTED"`
	Extra  string   `env:"BRFORM_TEST_EXTRA" envDefault:"none"`
}

type requiredConfig struct {
	Value string `env:"BRFORM_TEST_REQUIRED,required"`
}

func TestLoadEnv(t *testing.T) {
	resetEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, []string{"pt", "en"}, cfg.Langs)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Equal(t, "none", cfg.Extra)
}

func TestLoadEnv_FirstFileWins(t *testing.T) {
	resetEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.test", "testdata/.env.override"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, "extra", cfg.Extra)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	resetEnv(t)
	t.Setenv("BRFORM_TEST_NAME", "from_process")

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_process", cfg.Name)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}

func TestLoad_Cached(t *testing.T) {
	resetEnv(t)
	t.Setenv("BRFORM_TEST_NAME", "first")

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)

	t.Setenv("BRFORM_TEST_NAME", "second")
	var again fileConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name)

	config.ResetCache()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Name)
}

func TestLoad_Errors(t *testing.T) {
	resetEnv(t)

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	assert.ErrorIs(t, config.Load[fileConfig](nil), config.ErrNilPointer)
}
