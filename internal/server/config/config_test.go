package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.EndpointAddr)
	assert.Equal(t, "secret-key", cfg.SecretKey)
	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "postgres", cfg.StoreBackend)
}

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("JWT_EXPIRATION", "30m")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	// untouched layers keep defaults
	assert.Equal(t, "secret-key", cfg.SecretKey)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestParseJson_PartialFileKeepsOtherFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key":"from-json","token_validity_duration":"2h"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "from-json", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, ":3000", cfg.EndpointAddr)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-a", ":8081", "-t", "15", "-m", "memory"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8081", cfg.EndpointAddr)
	assert.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "memory", cfg.StoreBackend)
}
