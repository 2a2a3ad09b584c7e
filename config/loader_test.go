package config_test

import (
	"testing"
	"time"

	"code.witanprotocol.io/witan/config"
	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/paths"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader(t *testing.T) {
	t.Run("Saving and loading the configuration round-trips", testLoaderSavingAndLoadingRoundTrips)
	t.Run("Loading without a saved configuration fails", testLoaderLoadingWithoutSavedConfigurationFails)
	t.Run("Ensuring the node config fails when not initialised", testEnsureNodeConfigFailsWhenNotInitialised)
}

func testLoaderSavingAndLoadingRoundTrips(t *testing.T) {
	// given
	witanPaths := paths.New(t.TempDir())

	loader, err := config.InitialiseLoader(witanPaths)
	require.NoError(t, err)

	cfg := config.NewDefaultConfig()
	cfg.Logging.Level = encoding.LogLevel{Level: logging.DebugLevel}
	cfg.Time.TickInterval = encoding.Duration{Duration: 30 * time.Second}
	cfg.Broker.Socket.Enabled = true

	// when
	err = loader.Save(&cfg)

	// then
	require.NoError(t, err)

	exists, err := loader.ConfigExists()
	require.NoError(t, err)
	assert.True(t, exists)

	// when
	loadedCfg, err := loader.Get()

	// then
	require.NoError(t, err)
	assert.Equal(t, logging.DebugLevel, loadedCfg.Logging.Level.Get())
	assert.Equal(t, 30*time.Second, loadedCfg.Time.TickInterval.Get())
	assert.True(t, bool(loadedCfg.Broker.Socket.Enabled))
}

func testLoaderLoadingWithoutSavedConfigurationFails(t *testing.T) {
	// given
	witanPaths := paths.New(t.TempDir())

	loader, err := config.InitialiseLoader(witanPaths)
	require.NoError(t, err)

	// when
	exists, err := loader.ConfigExists()

	// then
	require.NoError(t, err)
	assert.False(t, exists)

	// when
	cfg, err := loader.Get()

	// then
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func testEnsureNodeConfigFailsWhenNotInitialised(t *testing.T) {
	// given
	witanPaths := paths.New(t.TempDir())

	// when
	loader, cfg, err := config.EnsureNodeConfig(witanPaths)

	// then
	require.Error(t, err)
	assert.Nil(t, loader)
	assert.Nil(t, cfg)
}
