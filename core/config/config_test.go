package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfoundry/staticd/core/config"
)

type loadTestConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Port    int           `env:"CONFIG_TEST_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
}

type cacheTestConfig struct {
	Value string `env:"CONFIG_TEST_CACHED" envDefault:"original"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "from-env")
	t.Setenv("CONFIG_TEST_PORT", "9090")

	var cfg loadTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var first cacheTestConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// A later change to the environment is not observed: the type was
	// already loaded once.
	t.Setenv("CONFIG_TEST_CACHED", "second")

	var second cacheTestConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadNilTarget(t *testing.T) {
	t.Parallel()

	assert.Error(t, config.Load[loadTestConfig](nil))
}
